package model

import "time"

// ContactModel mirrors the 'contacts' table. The composite index on
// (username, id) backs the owner-scoped lookups.
type ContactModel struct {
	ID        string `gorm:"type:varchar(100);primaryKey"`
	Username  string `gorm:"type:varchar(100);not null;index:idx_contacts_owner"`
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100)"`
	Email     string `gorm:"type:varchar(100)"`
	Phone     string `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
