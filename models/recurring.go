// models/recurring.go
package models

import "time"

// Recurrence cadences for fixed appointments.
const (
	RecurrenceWeekly  = "semanal"
	RecurrenceMonthly = "mensal"
)

// RecurringAppointment is an administrator-defined template that the expander
// materializes into concrete appointments over a forward window.
type RecurringAppointment struct {
	ID           string    `bson:"id" json:"id"`
	ClienteNome  string    `bson:"clienteNome" json:"clienteNome"`
	ClienteEmail string    `bson:"clienteEmail" json:"clienteEmail"`
	ClientePhone string    `bson:"clientePhone" json:"clientePhone"`
	ServicoID    string    `bson:"servicoId" json:"servicoId"`
	ServicoNome  string    `bson:"servicoNome" json:"servicoNome"`
	ServicoPreco float64   `bson:"servicoPreco" json:"servicoPreco"`
	Hora         string    `bson:"hora" json:"hora"`
	Tipo         string    `bson:"tipo" json:"tipo"`                             // semanal | mensal
	DiaSemana    int       `bson:"diaSemana,omitempty" json:"diaSemana"`         // 0-6 (domingo-sábado), meaningful for semanal
	DiaMes       int       `bson:"diaMes,omitempty" json:"diaMes"`               // 1-31, meaningful for mensal
	Ativo        bool      `bson:"ativo" json:"ativo"`                           // Inactive templates are skipped on expansion
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
