package entity

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RequestPending   = "pending"
	RequestCompleted = "completed"
)

// Request is a client restock order with its own lifecycle, independent of
// the movement ledger. Completing a request writes no movement: the ledger
// records physical stock changes only, and the stock leaves through a
// normal sale movement when the goods are handed over.
type Request struct {
	ID             uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StoreID        uint            `gorm:"column:store_id;index;not null" json:"store_id"`
	ProductID      uint            `gorm:"column:product_id;not null" json:"product_id"`
	Quantity       float64         `gorm:"column:quantity;type:decimal(12,4);not null" json:"quantity"`
	Status         string          `gorm:"column:status;type:varchar(16);not null" json:"status"`
	ClientName     string          `gorm:"column:client_name;type:varchar(128)" json:"client_name,omitempty"`
	ClientPhone    string          `gorm:"column:client_phone;type:varchar(64)" json:"client_phone,omitempty"`
	PaymentStatus  string          `gorm:"column:payment_status;type:varchar(8)" json:"payment_status,omitempty"`
	PaymentDueDate *datatypes.Date `gorm:"column:payment_due_date" json:"payment_due_date,omitempty"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Request) TableName() string {
	return "requests"
}
