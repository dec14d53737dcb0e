// File: services/booking/whatsapp.go
package booking

import (
	"context"
	"fmt"
	"net/url"

	"afinare/config"
	"afinare/models"
)

// BuildWhatsAppLink assembles the wa.me deep link carrying a human-readable
// booking summary as URL-encoded text. Delivery is the client device's
// responsibility; nothing here is confirmed or retried.
func BuildWhatsAppLink(number string, appt models.Appointment) string {
	if number == "" {
		return ""
	}
	message := fmt.Sprintf(
		"Novo agendamento:\n\nNome: %s\nServiço: %s\nData: %s\nHorário: %s\nTelefone: %s\nE-mail: %s",
		appt.ClienteNome, appt.ServicoNome, appt.Data, appt.Hora, appt.ClientePhone, appt.ClienteEmail,
	)
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// whatsAppLink resolves the clinic number from the config singleton, falling
// back to the static configuration when the store has no record.
func (s *DefaultBookingService) whatsAppLink(ctx context.Context, appt models.Appointment) string {
	number := config.AppConfig.WhatsAppNumber
	if s.Settings != nil {
		if cfg, err := s.Settings.Get(ctx); err == nil && cfg.WhatsApp != "" {
			number = cfg.WhatsApp
		}
	}
	return BuildWhatsAppLink(number, appt)
}
