package models

// Customer is the single resource managed by the service
type Customer struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	FirstName string `json:"firstName" gorm:"column:first_name"`
	SurName   string `json:"surName" gorm:"column:sur_name"`
}

// TableName overrides the table name used by gorm
func (Customer) TableName() string {
	return "customers"
}

// SameDetails reports whether two customers match on every field except ID
func (c Customer) SameDetails(other Customer) bool {
	return c.FirstName == other.FirstName && c.SurName == other.SurName
}
