package models

type User struct {
	Name     string `json:"name" bson:"name" validate:"required"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Address  string `json:"address" bson:"address" validate:"required"`
	Age      *int   `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	IsActive *bool  `json:"is_active" bson:"is_active"`
}

func (u *User) Validate() []FieldError {
	if u.IsActive == nil {
		u.IsActive = boolPtr(true)
	}
	return checkStruct(u)
}
