// models/catalog.go
package models

// ServiceFAQ is a question/answer pair shown on a service detail page.
type ServiceFAQ struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}

// Service is a catalog treatment offered by the clinic.
type Service struct {
	ID               string       `bson:"id" json:"id"` // Slug derived from the name
	Name             string       `bson:"name" json:"name"`
	Description      string       `bson:"description" json:"description"`
	LongDescription  string       `bson:"longDescription,omitempty" json:"longDescription,omitempty"`
	PrecoOriginal    float64      `bson:"preco_original" json:"preco_original"`
	PrecoPromocional float64      `bson:"preco_promocional" json:"preco_promocional"`
	Category         string       `bson:"category" json:"category"` // laser | facial | wellness | injectable | body
	Fotos            []string     `bson:"fotos,omitempty" json:"fotos,omitempty"`
	Benefits         []string     `bson:"benefits,omitempty" json:"benefits,omitempty"`
	FAQs             []ServiceFAQ `bson:"faqs,omitempty" json:"faqs,omitempty"`
	Duration         string       `bson:"duration,omitempty" json:"duration,omitempty"`
}

// Combo bundles several services at a combined discount.
type Combo struct {
	ID               string   `bson:"id" json:"id"`
	Name             string   `bson:"name" json:"name"`
	Description      string   `bson:"description" json:"description"`
	Services         []string `bson:"services" json:"services"` // Bundled service names
	PrecoOriginal    float64  `bson:"preco_original" json:"preco_original"`
	PrecoPromocional float64  `bson:"preco_promocional" json:"preco_promocional"`
	Economia         float64  `bson:"economia" json:"economia"` // Savings versus booking separately
	Sessions         int      `bson:"sessions" json:"sessions"`
}

// CourseModule groups the topics covered by one block of a course.
type CourseModule struct {
	Title  string   `bson:"title" json:"title"`
	Topics []string `bson:"topics" json:"topics"`
}

// Course is a professional training offering.
type Course struct {
	ID             string         `bson:"id" json:"id"`
	Name           string         `bson:"name" json:"name"`
	Description    string         `bson:"description" json:"description"`
	Preco          float64        `bson:"preco" json:"preco"`
	Duration       string         `bson:"duration" json:"duration"`
	Format         string         `bson:"format,omitempty" json:"format,omitempty"`
	Certificate    string         `bson:"certificate,omitempty" json:"certificate,omitempty"`
	Students       string         `bson:"students,omitempty" json:"students,omitempty"`
	Benefits       []string       `bson:"benefits,omitempty" json:"benefits,omitempty"`
	Modules        []CourseModule `bson:"modules,omitempty" json:"modules,omitempty"`
	TargetAudience []string       `bson:"targetAudience,omitempty" json:"targetAudience,omitempty"`
	Image          string         `bson:"image,omitempty" json:"image,omitempty"`
}
