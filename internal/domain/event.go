package domain

import "time"

// FAQ is an organizer-provided question and answer pair shown to attendees.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Event represents a published event
type Event struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Organizer       string    `json:"organizer"`
	Details         string    `json:"details"`
	StartTime       string    `json:"startTime,omitempty"`
	EndTime         string    `json:"endTime,omitempty"`
	Date            string    `json:"date,omitempty"`
	Time            string    `json:"time"`
	ContactNumber   string    `json:"contactNumber"`
	WhatsAppNumber  string    `json:"whatsappNumber,omitempty"`
	ChatLink        string    `json:"chatLink"`
	WhatsAppMessage string    `json:"whatsappMessage,omitempty"`
	FAQs            []FAQ     `json:"faqs,omitempty"`
	Context         string    `json:"context,omitempty"`
	SourceDocument  string    `json:"sourceDocument,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
