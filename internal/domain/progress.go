package domain

import (
	"time"
)

type Progress struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"not null;index:idx_progress_user_segment,unique" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	SegmentID int       `gorm:"not null;index:idx_progress_user_segment,unique" json:"segment_id"`
	Segment   *Segment  `gorm:"constraint:OnDelete:CASCADE;foreignKey:SegmentID;references:ID" json:"segment,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Progress) TableName() string { return tableName("progress") }

// ProgressInsert is the insert shape for Progress. The (user_id, segment_id)
// pair is unique, so re-marking a watched segment is a constraint violation
// the caller has to handle.
type ProgressInsert struct {
	UserID    int `json:"user_id"`
	SegmentID int `json:"segment_id"`
}

func (in ProgressInsert) Row() *Progress {
	return &Progress{
		UserID:    in.UserID,
		SegmentID: in.SegmentID,
	}
}
