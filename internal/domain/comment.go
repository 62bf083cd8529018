package domain

import (
	"time"
)

// Comment threads are a tree: parent_id is null for root comments and
// cascades downward, so deleting a parent removes its whole subtree.
// replied_to_id points at the replied-to user; the replied-to profile is
// reached by eager-loading RepliedTo.Profile.
type Comment struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	UserID      int       `gorm:"not null;index" json:"user_id"`
	User        *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	SegmentID   int       `gorm:"not null;index" json:"segment_id"`
	Segment     *Segment  `gorm:"constraint:OnDelete:CASCADE;foreignKey:SegmentID;references:ID" json:"segment,omitempty"`
	ParentID    *int      `gorm:"index;column:parent_id" json:"parent_id,omitempty"`
	Parent      *Comment  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ParentID;references:ID" json:"parent,omitempty"`
	RepliedToID *int      `gorm:"index;column:replied_to_id" json:"replied_to_id,omitempty"`
	RepliedTo   *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:RepliedToID;references:ID" json:"replied_to,omitempty"`
	Content     string    `gorm:"not null;column:content" json:"content"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`

	Children []Comment `gorm:"constraint:OnDelete:CASCADE;foreignKey:ParentID;references:ID" json:"children,omitempty"`
}

func (Comment) TableName() string { return tableName("comment") }

// CommentInsert is the insert shape for Comment.
type CommentInsert struct {
	UserID      int    `json:"user_id"`
	SegmentID   int    `json:"segment_id"`
	ParentID    *int   `json:"parent_id,omitempty"`
	RepliedToID *int   `json:"replied_to_id,omitempty"`
	Content     string `json:"content"`
}

func (in CommentInsert) Row() *Comment {
	return &Comment{
		UserID:      in.UserID,
		SegmentID:   in.SegmentID,
		ParentID:    in.ParentID,
		RepliedToID: in.RepliedToID,
		Content:     in.Content,
	}
}
