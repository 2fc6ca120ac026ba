package inventory

import (
	"staffdesk/internal/crud"
	"staffdesk/internal/forms"
)

var Fields = []forms.Field{
	{Name: "name", Kind: forms.Text, Required: true},
	{Name: "quantity", Kind: forms.UInt, Required: true},
	{Name: "price", Kind: forms.Decimal, Required: true, Min: forms.MinValue(0)},
}

func NewDescriptor() crud.Descriptor[InventoryItem] {
	return crud.Descriptor[InventoryItem]{
		Name:   "inventory_item",
		Fields: Fields,

		Apply: func(d forms.Decoded, e *InventoryItem) error {
			e.Name = d.String("name")
			e.Quantity = d.UInt("quantity")
			e.Price = d.Float("price")
			return nil
		},

		Response: func(e *InventoryItem) any {
			return Response{
				ID:       e.ID,
				Name:     e.Name,
				Quantity: e.Quantity,
				Price:    e.Price,
			}
		},
	}
}
