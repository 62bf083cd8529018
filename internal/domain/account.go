package domain

type Account struct {
	ID       int     `gorm:"primaryKey" json:"id"`
	UserID   int     `gorm:"not null;index:idx_account_user_google" json:"user_id"`
	User     *User   `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	GoogleID *string `gorm:"uniqueIndex;index:idx_account_user_google;column:google_id" json:"google_id,omitempty"`
}

// The plural physical name is inherited from the original schema.
func (Account) TableName() string { return tableName("accounts") }
