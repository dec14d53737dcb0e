// File: services/booking/errors.go
package booking

import "errors"

var (
	// ErrSlotFull is returned when the chosen time slot already holds the
	// maximum number of bookings.
	ErrSlotFull = errors.New("horário lotado: este horário já atingiu o limite de agendamentos")

	// ErrMissingFields is returned when any required booking field is empty.
	ErrMissingFields = errors.New("todos os campos são obrigatórios")

	// ErrInvalidSlot is returned for a time outside the fixed clinic slots.
	ErrInvalidSlot = errors.New("horário inválido")

	// ErrInvalidDate is returned when the date does not parse as DD/MM/YYYY.
	ErrInvalidDate = errors.New("data inválida")

	// ErrPastDate is returned for dates before today.
	ErrPastDate = errors.New("não é possível agendar para datas passadas")

	// ErrSundayClosed is returned for Sundays, when the clinic is closed.
	ErrSundayClosed = errors.New("a clínica não abre aos domingos")

	// ErrUnknownService is returned when the service slug is not in the catalog.
	ErrUnknownService = errors.New("serviço não encontrado")

	// ErrInvalidRecurrence is returned for an unknown cadence or an
	// out-of-range day on a recurring template.
	ErrInvalidRecurrence = errors.New("recorrência inválida")

	// ErrAppointmentNotFound is returned when no appointment matches the id.
	ErrAppointmentNotFound = errors.New("agendamento não encontrado")

	// ErrUnknownStatus is returned for a status value outside the enum.
	ErrUnknownStatus = errors.New("status desconhecido")

	// ErrInvalidTransition is returned when the requested status change is not
	// allowed from the appointment's current status.
	ErrInvalidTransition = errors.New("transição de status não permitida")
)
