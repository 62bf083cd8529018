package domain

// Models returns every declared model in dependency order: parents before
// children so foreign keys resolve during migration.
func Models() []interface{} {
	return []interface{}{

		// =========================
		// Identity + auth
		// =========================
		&User{},
		&Account{},
		&Profile{},
		&Session{},

		// =========================
		// Course content
		// =========================
		&Module{},
		&Segment{},
		&Attachment{},

		// =========================
		// Engagement
		// =========================
		&Comment{},
		&Progress{},
		&Testimonial{},
	}
}
