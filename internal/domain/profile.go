package domain

type Profile struct {
	ID          int     `gorm:"primaryKey" json:"id"`
	UserID      int     `gorm:"uniqueIndex;not null" json:"user_id"`
	User        *User   `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	DisplayName *string `gorm:"column:display_name" json:"display_name,omitempty"`
	ImageID     *string `gorm:"column:image_id" json:"image_id,omitempty"`
	Image       *string `gorm:"column:image" json:"image,omitempty"`
	Bio         string  `gorm:"not null;default:'';column:bio" json:"bio"`
}

func (Profile) TableName() string { return tableName("profile") }
