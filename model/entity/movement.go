package entity

import (
	"time"

	"gorm.io/datatypes"
)

const (
	MovementIn  = "in"
	MovementOut = "out"

	PaymentPaid    = "paid"
	PaymentPending = "pending"
)

// Movement is an append-only ledger entry: one row per stock change.
// Rows are never updated or deleted; the signed sum per product should
// reconcile with Product.StockQuantity.
type Movement struct {
	ID             uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID      uint            `gorm:"column:product_id;index;not null" json:"product_id"`
	Type           string          `gorm:"column:type;type:varchar(8);not null" json:"type"`
	Quantity       float64         `gorm:"column:quantity;type:decimal(12,4);not null" json:"quantity"`
	UserID         uint            `gorm:"column:user_id;not null" json:"user_id"`
	Timestamp      time.Time       `gorm:"column:timestamp;autoCreateTime;index" json:"timestamp"`
	Observation    string          `gorm:"column:observation;type:text" json:"observation"`
	ClientName     string          `gorm:"column:client_name;type:varchar(128)" json:"client_name,omitempty"`
	ClientContact  string          `gorm:"column:client_contact;type:varchar(64)" json:"client_contact,omitempty"`
	PaymentStatus  string          `gorm:"column:payment_status;type:varchar(8)" json:"payment_status,omitempty"`
	PaymentDueDate *datatypes.Date `gorm:"column:payment_due_date" json:"payment_due_date,omitempty"`
}

func (Movement) TableName() string {
	return "movements"
}
