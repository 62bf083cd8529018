package domain

import (
	"time"
)

type Attachment struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	SegmentID int       `gorm:"not null;index" json:"segment_id"`
	Segment   *Segment  `gorm:"constraint:OnDelete:CASCADE;foreignKey:SegmentID;references:ID" json:"segment,omitempty"`
	FileName  string    `gorm:"not null;column:file_name" json:"file_name"`
	FileKey   string    `gorm:"not null;column:file_key" json:"file_key"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Attachment) TableName() string { return tableName("attachment") }

// AttachmentInsert is the insert shape for Attachment.
type AttachmentInsert struct {
	SegmentID int    `json:"segment_id"`
	FileName  string `json:"file_name"`
	FileKey   string `json:"file_key"`
}

func (in AttachmentInsert) Row() *Attachment {
	return &Attachment{
		SegmentID: in.SegmentID,
		FileName:  in.FileName,
		FileKey:   in.FileKey,
	}
}
