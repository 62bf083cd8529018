package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tejash429/course-platform-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB) *domain.User {
	tb.Helper()
	email := "user-" + uuid.NewString() + "@example.com"
	u := &domain.User{
		Email: &email,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedAccount(tb testing.TB, ctx context.Context, tx *gorm.DB, userID int) *domain.Account {
	tb.Helper()
	googleID := "google-" + uuid.NewString()
	a := &domain.Account{
		UserID:   userID,
		GoogleID: &googleID,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed account: %v", err)
	}
	return a
}

func SeedProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, userID int) *domain.Profile {
	tb.Helper()
	name := "user"
	p := &domain.Profile{
		UserID:      userID,
		DisplayName: &name,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return p
}

func SeedSession(tb testing.TB, ctx context.Context, tx *gorm.DB, userID int) *domain.Session {
	tb.Helper()
	s := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed session: %v", err)
	}
	return s
}

func SeedModule(tb testing.TB, ctx context.Context, tx *gorm.DB, order int) *domain.Module {
	tb.Helper()
	m := &domain.Module{
		Title: "module",
		Order: order,
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed module: %v", err)
	}
	return m
}

func SeedSegment(tb testing.TB, ctx context.Context, tx *gorm.DB, moduleID int, order int) *domain.Segment {
	tb.Helper()
	s := &domain.Segment{
		Slug:     "segment-" + uuid.NewString(),
		Title:    "segment",
		Order:    order,
		ModuleID: moduleID,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed segment: %v", err)
	}
	return s
}

func SeedComment(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, segmentID int, parentID *int) *domain.Comment {
	tb.Helper()
	c := &domain.Comment{
		UserID:    userID,
		SegmentID: segmentID,
		ParentID:  parentID,
		Content:   "comment",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed comment: %v", err)
	}
	return c
}

func SeedProgress(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, segmentID int) *domain.Progress {
	tb.Helper()
	p := &domain.Progress{
		UserID:    userID,
		SegmentID: segmentID,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed progress: %v", err)
	}
	return p
}

func SeedTestimonial(tb testing.TB, ctx context.Context, tx *gorm.DB, userID int) *domain.Testimonial {
	tb.Helper()
	t := domain.TestimonialInsert{
		UserID:      userID,
		Content:     "testimonial",
		DisplayName: "user",
	}.Row()
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed testimonial: %v", err)
	}
	return t
}

func SeedAttachment(tb testing.TB, ctx context.Context, tx *gorm.DB, segmentID int) *domain.Attachment {
	tb.Helper()
	a := &domain.Attachment{
		SegmentID: segmentID,
		FileName:  "notes.pdf",
		FileKey:   "attachment-" + uuid.NewString(),
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed attachment: %v", err)
	}
	return a
}
