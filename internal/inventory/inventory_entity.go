package inventory

import "time"

// InventoryItem is free-standing stock: no relationships, no cascade.
type InventoryItem struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"type:varchar(100);not null"`
	Quantity  uint    `gorm:"not null"`
	Price     float64 `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Response struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Quantity uint    `json:"quantity"`
	Price    float64 `json:"price"`
}
