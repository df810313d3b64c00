package entity

import "time"

const (
	ShipmentPending  = "pending"
	ShipmentSent     = "sent"
	ShipmentReceived = "received"
)

// Shipment is an inter-store transfer identified by product name, not
// product id (soft link). It touches the ledger only when it transitions
// to received, which writes an `in` movement on the destination store's
// matching or newly created product.
type Shipment struct {
	ID                 uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductName        string    `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	Quantity           float64   `gorm:"column:quantity;type:decimal(12,4);not null" json:"quantity"`
	DestinationStoreID uint      `gorm:"column:destination_store_id;index;not null" json:"destination_store_id"`
	Status             string    `gorm:"column:status;type:varchar(16);not null" json:"status"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Shipment) TableName() string {
	return "shipments"
}
