package domain

import (
	"time"
)

type User struct {
	ID            int        `gorm:"primaryKey" json:"id"`
	Email         *string    `gorm:"uniqueIndex;column:email" json:"email,omitempty"`
	EmailVerified *time.Time `gorm:"column:email_verified" json:"email_verified,omitempty"`
	IsPremium     bool       `gorm:"not null;default:false;column:is_premium" json:"is_premium"`
	IsAdmin       bool       `gorm:"not null;default:false;column:is_admin" json:"is_admin"`

	Profile *Profile `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"profile,omitempty"`
}

func (User) TableName() string {
	return tableName("user")
}
