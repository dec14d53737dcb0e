// models/slots.go
package models

// SlotCapacity is the maximum number of simultaneous bookings per time slot.
const SlotCapacity = 2

// DateLayout is the pt-BR calendar date format used across the store.
const DateLayout = "02/01/2006"

// TimeSlots are the fixed clock times an appointment can be booked into.
var TimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// IsValidSlot reports whether hora is one of the fixed clinic time slots.
func IsValidSlot(hora string) bool {
	for _, s := range TimeSlots {
		if s == hora {
			return true
		}
	}
	return false
}

// SlotCounter tracks write-time occupancy for one (date, hora) pair.
// A unique index on (data, hora) backs the conditional increment that
// enforces SlotCapacity atomically.
type SlotCounter struct {
	Data  string `bson:"data" json:"data"`
	Hora  string `bson:"hora" json:"hora"`
	Count int    `bson:"count" json:"count"`
}

// Availability is the occupancy snapshot for one date.
type Availability struct {
	Date      string         `json:"date"`
	Counts    map[string]int `json:"counts"`
	FullSlots []string       `json:"fullSlots"`
}
