package models

type Product struct {
	Title       string   `json:"title" bson:"title" validate:"required"`
	Description *string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       *float64 `json:"price" bson:"price" validate:"required,gte=0"`
	Category    string   `json:"category" bson:"category" validate:"required"`
	InStock     *bool    `json:"in_stock" bson:"in_stock"`
}

func (p *Product) Validate() []FieldError {
	if p.InStock == nil {
		p.InStock = boolPtr(true)
	}
	return checkStruct(p)
}
