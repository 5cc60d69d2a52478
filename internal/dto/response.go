package dto

import "github.com/suto6/whatsevent/internal/domain"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"name is required"`
}

// CreateEventResponse represents a successful event creation response
type CreateEventResponse struct {
	Success bool          `json:"success" example:"true"`
	Link    string        `json:"link" example:"/event/7f6c1c0e-8a2b-4f8e-9c31-2d1f0a1b2c3d"`
	Event   *domain.Event `json:"event"`
}

// ChatResponse represents the assistant's answer to a chat message
type ChatResponse struct {
	Response string `json:"response" example:"The event starts at 10:00 on June 15."`
}

// SendWhatsAppResponse represents a successful outbound message response
type SendWhatsAppResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Message sent successfully"`
}
