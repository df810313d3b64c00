package entity

// Store is the tenant root; products and users are scoped to a store.
type Store struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Location string `gorm:"column:location;type:varchar(255)" json:"location"`
}

func (Store) TableName() string {
	return "stores"
}
