package services

import (
	"context"
	"fmt"
	"log/slog"

	"corecodecamp/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendCampAnnouncement sends the "camp_announcement" template to data.To.
func (s *emailService) SendCampAnnouncement(ctx context.Context, data *domain.CampAnnouncementEmailData) error {
	if data == nil {
		return fmt.Errorf("camp announcement data is nil")
	}
	if data.To == "" {
		return fmt.Errorf("camp announcement recipient is empty")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("camp_announcement", data)
	if err != nil {
		return fmt.Errorf("failed to render camp_announcement template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.To, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send camp announcement: %w", err)
	}
	s.logger.InfoContext(ctx, "camp announcement sent", "moniker", data.Moniker, "to", data.To)
	return nil
}
