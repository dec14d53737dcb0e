// models/appointment.go
package models

import "time"

// Appointment statuses as persisted in the agendamentos collection.
const (
	StatusPending   = "pendente"
	StatusConfirmed = "confirmado"
	StatusCompleted = "concluido"
	StatusCancelled = "cancelado"
)

// Appointment represents a booked session at the clinic.
type Appointment struct {
	ID           string    `bson:"id" json:"id"`                             // Unique appointment identifier (UUID)
	ClienteNome  string    `bson:"clienteNome" json:"clienteNome"`           // Client full name
	ClienteEmail string    `bson:"clienteEmail" json:"clienteEmail"`         // Client contact e-mail
	ClientePhone string    `bson:"clientePhone" json:"clientePhone"`         // Client phone / WhatsApp number
	ServicoID    string    `bson:"servicoId" json:"servicoId"`               // Catalog service slug
	ServicoNome  string    `bson:"servicoNome" json:"servicoNome"`           // Service name, denormalized at booking time
	ServicoPreco float64   `bson:"servicoPreco" json:"servicoPreco"`         // Service price, captured at booking time
	Data         string    `bson:"data" json:"data"`                         // Date in "DD/MM/YYYY" (pt-BR) format
	Hora         string    `bson:"hora" json:"hora"`                         // One of the fixed clinic time slots, "HH:MM"
	Status       string    `bson:"status" json:"status"`                     // pendente | confirmado | concluido | cancelado
	IsRecurring  bool      `bson:"isRecurring,omitempty" json:"isRecurring"` // Materialized from a recurring template
	RecurringID  string    `bson:"recurringId,omitempty" json:"recurringId,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// IsValidStatus reports whether s is one of the persisted status values.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// HoldsSlot reports whether an appointment in this status occupies capacity
// in its time slot. Cancelled and completed appointments free the slot.
func HoldsSlot(status string) bool {
	return status == StatusPending || status == StatusConfirmed
}
