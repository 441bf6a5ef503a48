package services

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"fueltracker-api/config"
	"fueltracker-api/models"
)

// EmailService sends the closing summary of a tank cycle. It is optional:
// when no SMTP host or recipient is configured the service stays disabled
// and SendCycleSummary is never called.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

func (es *EmailService) Enabled() bool {
	return es.config.SMTPHost != "" && es.config.SummaryEmail != ""
}

// SendCycleSummary mails the aggregated stats of a just-closed cycle to the
// configured recipient.
func (es *EmailService) SendCycleSummary(stats models.CycleStats, currency string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", es.config.SummaryEmail)
	m.SetHeader("Subject", "FuelTracker - Tank Cycle Closed")

	var rows strings.Builder
	for _, u := range stats.UserStats {
		fmt.Fprintf(&rows, "  %s: %.2f km, %.2f L, %.2f %s (avg %.2f L/100km)\n",
			u.UserName, u.TotalDistance, u.TotalFuel, u.TotalCost, currency, u.AvgConsumption)
	}

	textBody := fmt.Sprintf(`A tank cycle was closed.

Cycle totals:
  Distance: %.2f km
  Fuel:     %.2f L
  Cost:     %.2f %s

Per driver:
%s
This is an automated email, please do not reply.
`, stats.TotalDistance, stats.TotalFuel, stats.TotalCost, currency, rows.String())

	m.SetBody("text/plain", textBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send cycle summary email: %w", err)
	}
	return nil
}
