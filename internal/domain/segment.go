package domain

type Segment struct {
	ID        int     `gorm:"primaryKey" json:"id"`
	Slug      string  `gorm:"not null;index:idx_segment_slug;column:slug" json:"slug"`
	Title     string  `gorm:"not null;column:title" json:"title"`
	Content   *string `gorm:"column:content" json:"content,omitempty"`
	Order     int     `gorm:"not null;column:order" json:"order"`
	Length    *string `gorm:"column:length" json:"length,omitempty"`
	IsPremium bool    `gorm:"not null;default:false;column:is_premium" json:"is_premium"`
	ModuleID  int     `gorm:"not null;index" json:"module_id"`
	Module    *Module `gorm:"constraint:OnDelete:CASCADE;foreignKey:ModuleID;references:ID" json:"module,omitempty"`
	VideoKey  *string `gorm:"column:video_key" json:"video_key,omitempty"`

	Attachments []Attachment `gorm:"constraint:OnDelete:CASCADE;foreignKey:SegmentID;references:ID" json:"attachments,omitempty"`
	Comments    []Comment    `gorm:"constraint:OnDelete:CASCADE;foreignKey:SegmentID;references:ID" json:"comments,omitempty"`
}

func (Segment) TableName() string { return tableName("segment") }

// SegmentInsert is the insert shape for Segment. order is required (the
// column has no default); nil optionals fall back to column defaults or null.
type SegmentInsert struct {
	Slug      string  `json:"slug"`
	Title     string  `json:"title"`
	Content   *string `json:"content,omitempty"`
	Order     int     `json:"order"`
	Length    *string `json:"length,omitempty"`
	IsPremium *bool   `json:"is_premium,omitempty"`
	ModuleID  int     `json:"module_id"`
	VideoKey  *string `json:"video_key,omitempty"`
}

func (in SegmentInsert) Row() *Segment {
	s := &Segment{
		Slug:     in.Slug,
		Title:    in.Title,
		Content:  in.Content,
		Order:    in.Order,
		Length:   in.Length,
		ModuleID: in.ModuleID,
		VideoKey: in.VideoKey,
	}
	if in.IsPremium != nil {
		s.IsPremium = *in.IsPremium
	}
	return s
}
