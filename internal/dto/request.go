package dto

// FAQEntry is a question/answer pair submitted by the organizer
type FAQEntry struct {
	Question string `json:"question" example:"Can I participate alone?"`
	Answer   string `json:"answer" example:"No, you need to form a team of 2-4 members."`
}

// CreateEventRequest represents an event creation request
type CreateEventRequest struct {
	Name           string     `json:"name" binding:"required" example:"Hack4Bengal 2023"`
	Organizer      string     `json:"organizer" binding:"required" example:"Bengal Developer Community"`
	Details        string     `json:"details" binding:"required" example:"A 36-hour hackathon for developers and designers."`
	Time           string     `json:"time" example:"June 15, 2023 at 10:00 AM"`
	StartTime      string     `json:"startTime" example:"10:00 AM"`
	EndTime        string     `json:"endTime" example:"10:00 PM"`
	Date           string     `json:"date" example:"June 15, 2023"`
	ContactNumber  string     `json:"contactNumber" example:"1234567890"`
	WhatsAppNumber string     `json:"whatsappNumber" example:"1234567890"`
	FAQs           []FAQEntry `json:"faqs"`
}

// UpdateEventRequest represents a full event replacement; the derived
// context is regenerated from the new details and FAQs.
type UpdateEventRequest struct {
	Name           string     `json:"name" binding:"required"`
	Organizer      string     `json:"organizer" binding:"required"`
	Details        string     `json:"details" binding:"required"`
	Time           string     `json:"time"`
	StartTime      string     `json:"startTime"`
	EndTime        string     `json:"endTime"`
	Date           string     `json:"date"`
	ContactNumber  string     `json:"contactNumber"`
	WhatsAppNumber string     `json:"whatsappNumber"`
	FAQs           []FAQEntry `json:"faqs"`
}

// ChatRequest represents a chat message scoped to one event
type ChatRequest struct {
	EventID string `json:"eventId" binding:"required" example:"7f6c1c0e-8a2b-4f8e-9c31-2d1f0a1b2c3d"`
	Message string `json:"message" binding:"required" example:"When does the event start?"`
}

// SendWhatsAppRequest represents an outbound WhatsApp message request
type SendWhatsAppRequest struct {
	To      string `json:"to" binding:"required" example:"1234567890"`
	Message string `json:"message" binding:"required" example:"See you at the event!"`
}
