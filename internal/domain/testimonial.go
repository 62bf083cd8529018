package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Testimonial struct {
	ID                int            `gorm:"primaryKey" json:"id"`
	UserID            int            `gorm:"not null;index" json:"user_id"`
	User              *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Content           string         `gorm:"not null;column:content" json:"content"`
	Emojis            datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:emojis" json:"emojis"`
	DisplayName       string         `gorm:"not null;column:display_name" json:"display_name"`
	PermissionGranted bool           `gorm:"not null;default:false;column:permission_granted" json:"permission_granted"`
	CreatedAt         time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Testimonial) TableName() string { return tableName("testimonial") }

// TestimonialInsert is the insert shape for Testimonial. A nil Emojis list
// materializes as the empty jsonb array rather than null.
type TestimonialInsert struct {
	UserID            int            `json:"user_id"`
	Content           string         `json:"content"`
	Emojis            datatypes.JSON `json:"emojis,omitempty"`
	DisplayName       string         `json:"display_name"`
	PermissionGranted *bool          `json:"permission_granted,omitempty"`
}

func (in TestimonialInsert) Row() *Testimonial {
	t := &Testimonial{
		UserID:      in.UserID,
		Content:     in.Content,
		Emojis:      in.Emojis,
		DisplayName: in.DisplayName,
	}
	if t.Emojis == nil {
		t.Emojis = datatypes.JSON([]byte("[]"))
	}
	if in.PermissionGranted != nil {
		t.PermissionGranted = *in.PermissionGranted
	}
	return t
}
