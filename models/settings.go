// models/settings.go
package models

// OpeningHours holds the displayed opening hours per day group.
type OpeningHours struct {
	Semana string `bson:"semana" json:"semana"`
	Sabado string `bson:"sabado" json:"sabado"`
}

// ClinicConfig is the singleton contact/hours record shown across the site
// and used to build the WhatsApp deep link.
type ClinicConfig struct {
	WhatsApp  string       `bson:"whatsapp" json:"whatsapp"`
	Instagram string       `bson:"instagram" json:"instagram"`
	Endereco  string       `bson:"endereco" json:"endereco"`
	Horarios  OpeningHours `bson:"horarios" json:"horarios"`
}
