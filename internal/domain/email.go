package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// CampAnnouncementEmailData holds data for the new camp announcement email.
type CampAnnouncementEmailData struct {
	To        string
	Moniker   string
	Name      string
	Venue     string
	StartDate time.Time
	EndDate   time.Time
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendCampAnnouncement(ctx context.Context, data *CampAnnouncementEmailData) error
}
