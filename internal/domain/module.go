package domain

import (
	"time"
)

type Module struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null;column:title" json:"title"`
	Order     int       `gorm:"not null;column:order" json:"order"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Segments []Segment `gorm:"constraint:OnDelete:CASCADE;foreignKey:ModuleID;references:ID" json:"segments,omitempty"`
}

func (Module) TableName() string { return tableName("module") }

// ModuleInsert is the insert shape for Module. id and timestamps are
// generated by the database and absent here.
type ModuleInsert struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}

func (in ModuleInsert) Row() *Module {
	return &Module{
		Title: in.Title,
		Order: in.Order,
	}
}
