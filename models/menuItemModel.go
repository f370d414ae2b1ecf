package models

type MenuItem struct {
	Name        string   `json:"name" bson:"name" validate:"required"`
	Description *string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       *float64 `json:"price" bson:"price" validate:"required,gte=0"`
	Category    string   `json:"category" bson:"category" validate:"required"`
	IsSpicy     *bool    `json:"is_spicy" bson:"is_spicy"`
	IsVeg       *bool    `json:"is_veg" bson:"is_veg"`
	Tags        []string `json:"tags,omitempty" bson:"tags,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// Validate applies declared defaults to omitted fields, then reports every
// violated constraint. A nil result means the record is normalized and valid.
func (m *MenuItem) Validate() []FieldError {
	if m.IsSpicy == nil {
		m.IsSpicy = boolPtr(false)
	}
	if m.IsVeg == nil {
		m.IsVeg = boolPtr(true)
	}
	return checkStruct(m)
}
