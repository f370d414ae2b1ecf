package models

type ContactMessage struct {
	Name    string  `json:"name" bson:"name" validate:"required"`
	Email   *string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty" bson:"phone,omitempty"`
	Message string  `json:"message" bson:"message" validate:"required"`
}

func (cm *ContactMessage) Validate() []FieldError {
	return checkStruct(cm)
}
