package entity

import "time"

// Product units as stored (free text in the schema).
const (
	UnitPiece = "un"
	UnitKilo  = "kg"
	UnitGram  = "g"
	UnitLiter = "l"
)

// Product carries the live stock counter. StockQuantity must stay >= 0
// after any committed ledger operation; it is decimal because fractional
// outbound sales subtract weight-derived fractions of one unit.
type Product struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StoreID       uint      `gorm:"column:store_id;index;not null" json:"store_id"`
	Name          string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description   string    `gorm:"column:description;type:text" json:"description"`
	Category      string    `gorm:"column:category;type:varchar(64)" json:"category"`
	Weight        float64   `gorm:"column:weight;type:decimal(12,4);default:0" json:"weight"`
	Unit          string    `gorm:"column:unit;type:varchar(8)" json:"unit"`
	StockQuantity float64   `gorm:"column:stock_quantity;type:decimal(12,4);not null;default:0" json:"stock_quantity"`
	Image         string    `gorm:"column:image;type:text" json:"image"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
