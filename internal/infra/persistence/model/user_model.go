// Package model holds the GORM persistence models. They mirror the database
// tables and are mapped to and from the pure domain entities at the
// repository boundary.
package model

import "time"

// UserModel mirrors the 'users' table. The username is the natural primary
// key; the token columns are nullable and always set or cleared together.
type UserModel struct {
	Username       string  `gorm:"type:varchar(100);primaryKey"`
	Name           string  `gorm:"type:varchar(100);not null"`
	Password       string  `gorm:"type:varchar(100);not null"`
	Token          *string `gorm:"type:varchar(100);uniqueIndex"`
	TokenExpiredAt *int64  `gorm:"column:token_expired_at"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Contacts []ContactModel `gorm:"foreignKey:Username;references:Username"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
