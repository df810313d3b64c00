package entity

// All returns every entity for AutoMigrate, in FK dependency order.
func All() []interface{} {
	return []interface{}{
		&Store{},
		&User{},
		&Product{},
		&Movement{},
		&Request{},
		&Shipment{},
	}
}
