package service

import (
	"github.com/suto6/whatsevent/internal/domain"
	"github.com/suto6/whatsevent/internal/dto"
)

// EventServicer defines the interface for event service operations
type EventServicer interface {
	CreateEvent(req *dto.CreateEventRequest) (*dto.CreateEventResponse, error)
	CreateEventWithPDF(req *dto.CreateEventRequest, pdfPath string) (*dto.CreateEventResponse, error)
	GetEvent(id string) (*domain.Event, error)
	ListEvents() ([]*domain.Event, error)
	UpdateEvent(id string, req *dto.UpdateEventRequest) (*domain.Event, error)
	DeleteEvent(id string) error
	Chat(eventID, message string) (string, error)
}
