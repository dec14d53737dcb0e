// File: services/booking/whatsapp_test.go
package booking

import (
	"net/url"
	"strings"
	"testing"

	"afinare/models"
)

func TestBuildWhatsAppLink(t *testing.T) {
	appt := models.Appointment{
		ClienteNome:  "Maria Silva",
		ClienteEmail: "maria@example.com",
		ClientePhone: "61999998888",
		ServicoNome:  "Botox",
		Data:         "10/06/2024",
		Hora:         "10:00",
	}

	link := BuildWhatsAppLink("5561986543099", appt)
	if !strings.HasPrefix(link, "https://wa.me/5561986543099?text=") {
		t.Fatalf("unexpected link prefix: %q", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	text := parsed.Query().Get("text")
	for _, want := range []string{"Maria Silva", "Botox", "10/06/2024", "10:00", "61999998888", "maria@example.com"} {
		if !strings.Contains(text, want) {
			t.Errorf("message missing %q: %q", want, text)
		}
	}
	if !strings.HasPrefix(text, "Novo agendamento:") {
		t.Errorf("message should open with the booking header: %q", text)
	}
}

func TestBuildWhatsAppLinkNoNumber(t *testing.T) {
	if link := BuildWhatsAppLink("", models.Appointment{}); link != "" {
		t.Errorf("link = %q, want empty when no number is configured", link)
	}
}
