package models

type Reservation struct {
	Name           string  `json:"name" bson:"name" validate:"required"`
	Email          *string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone          string  `json:"phone" bson:"phone" validate:"required"`
	Date           string  `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	Time           string  `json:"time" bson:"time" validate:"required,datetime=15:04"`
	Guests         *int    `json:"guests" bson:"guests" validate:"required,gte=1,lte=20"`
	SpecialRequest *string `json:"special_request,omitempty" bson:"special_request,omitempty"`
}

func (r *Reservation) Validate() []FieldError {
	return checkStruct(r)
}
