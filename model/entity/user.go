package entity

const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// User is an operator account. StoreID is null only for superadmins.
type User struct {
	ID       uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Email    string  `gorm:"column:email;type:varchar(128);not null;uniqueIndex" json:"email"`
	Password string  `gorm:"column:password;type:varchar(128);not null" json:"-"`
	Role     string  `gorm:"column:role;type:varchar(16);not null" json:"role"`
	StoreID  *uint   `gorm:"column:store_id;index" json:"store_id"`
	Phone    string  `gorm:"column:phone;type:varchar(32)" json:"phone"`
}

func (User) TableName() string {
	return "users"
}
