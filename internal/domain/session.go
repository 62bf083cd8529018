package domain

import (
	"time"
)

// Session rows are keyed by an opaque token issued by the auth layer, not an
// auto-incrementing id. expires_at is stored only; expiry enforcement belongs
// to the caller.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"index;not null" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	ExpiresAt time.Time `gorm:"not null;column:expires_at" json:"expires_at"`
}

func (Session) TableName() string {
	return tableName("session")
}
