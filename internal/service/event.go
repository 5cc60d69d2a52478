package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/suto6/whatsevent/internal/answer"
	"github.com/suto6/whatsevent/internal/domain"
	"github.com/suto6/whatsevent/internal/dto"
	"github.com/suto6/whatsevent/internal/eventcontext"
	"github.com/suto6/whatsevent/internal/metrics"
	"github.com/suto6/whatsevent/internal/mockevent"
	"github.com/suto6/whatsevent/internal/pdftext"
	"github.com/suto6/whatsevent/internal/repository"
)

// EventService represents event service
type EventService struct {
	repository repository.EventRepository
	answerer   answer.Answerer
	log        *zap.Logger
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepository, answerer answer.Answerer, log *zap.Logger) *EventService {
	return &EventService{
		repository: repo,
		answerer:   answerer,
		log:        log,
	}
}

// CreateEvent validates, derives the chat context, and stores a new event
func (s *EventService) CreateEvent(req *dto.CreateEventRequest) (*dto.CreateEventResponse, error) {
	return s.create(req, "", "")
}

// CreateEventWithPDF creates an event whose details are augmented with text
// extracted from an uploaded PDF document
func (s *EventService) CreateEventWithPDF(req *dto.CreateEventRequest, pdfPath string) (*dto.CreateEventResponse, error) {
	text, err := pdftext.Extract(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from uploaded document: %w", err)
	}

	return s.create(req, pdfPath, text)
}

func (s *EventService) create(req *dto.CreateEventRequest, sourceDocument, extractedText string) (*dto.CreateEventResponse, error) {
	ctx := context.Background()

	id := uuid.NewString()
	now := time.Now().UTC()

	details := req.Details
	if text := strings.TrimSpace(extractedText); text != "" {
		details = details + "\n\nAdditional Information from Document:\n" + text
	}

	eventTime := composeTime(req.Time, req.StartTime, req.EndTime, req.Date)
	contact := req.ContactNumber
	if contact == "" {
		contact = req.WhatsAppNumber
	}

	chatLink := "/event/" + id
	whatsappMessage := chatLink
	if req.WhatsAppNumber != "" {
		greeting := fmt.Sprintf("Hey! I saw your event %q happening at %s. I'd love to know more!", req.Name, eventTime)
		whatsappMessage = "https://wa.me/" + req.WhatsAppNumber + "?text=" + url.QueryEscape(greeting)
	}

	faqs := convertFAQs(req.FAQs)

	event := &domain.Event{
		ID:              id,
		Name:            req.Name,
		Organizer:       req.Organizer,
		Details:         details,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Date:            req.Date,
		Time:            eventTime,
		ContactNumber:   contact,
		WhatsAppNumber:  req.WhatsAppNumber,
		ChatLink:        chatLink,
		WhatsAppMessage: whatsappMessage,
		FAQs:            faqs,
		Context: eventcontext.Build(eventcontext.Input{
			Name:      req.Name,
			Organizer: req.Organizer,
			Time:      eventTime,
			Contact:   contact,
			Details:   details,
			FAQs:      faqs,
		}),
		SourceDocument: sourceDocument,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repository.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to store event: %w", err)
	}

	metrics.EventsCreated.Inc()
	s.log.Info("Event created",
		zap.String("event_id", event.ID),
		zap.String("name", event.Name))

	return &dto.CreateEventResponse{
		Success: true,
		Link:    chatLink,
		Event:   event,
	}, nil
}

// GetEvent fetches a single event; demo ids return the hardcoded fixture
func (s *EventService) GetEvent(id string) (*domain.Event, error) {
	if mockevent.Is(id) {
		return mockevent.Event(id), nil
	}

	event, err := s.repository.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// ListEvents returns all stored events
func (s *EventService) ListEvents() ([]*domain.Event, error) {
	events, err := s.repository.List(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// UpdateEvent replaces the stored fields and regenerates the derived context
func (s *EventService) UpdateEvent(id string, req *dto.UpdateEventRequest) (*domain.Event, error) {
	ctx := context.Background()

	event, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	eventTime := composeTime(req.Time, req.StartTime, req.EndTime, req.Date)
	contact := req.ContactNumber
	if contact == "" {
		contact = req.WhatsAppNumber
	}
	faqs := convertFAQs(req.FAQs)

	event.Name = req.Name
	event.Organizer = req.Organizer
	event.Details = req.Details
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	event.Date = req.Date
	event.Time = eventTime
	event.ContactNumber = contact
	event.WhatsAppNumber = req.WhatsAppNumber
	event.FAQs = faqs
	event.Context = eventcontext.Build(eventcontext.Input{
		Name:      req.Name,
		Organizer: req.Organizer,
		Time:      eventTime,
		Contact:   contact,
		Details:   req.Details,
		FAQs:      faqs,
	})
	event.UpdatedAt = time.Now().UTC()

	if err := s.repository.Update(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info("Event updated", zap.String("event_id", event.ID))
	return event, nil
}

// DeleteEvent removes a stored event
func (s *EventService) DeleteEvent(id string) error {
	return s.repository.Delete(context.Background(), id)
}

// Chat resolves the event and feeds its context and the question into the
// answer engine. The engine itself never fails; only event resolution can.
func (s *EventService) Chat(eventID, message string) (string, error) {
	ctx := context.Background()

	var event *domain.Event
	if mockevent.Is(eventID) {
		event = mockevent.Event(eventID)
	} else {
		var err error
		event, err = s.repository.GetByID(ctx, eventID)
		if err != nil {
			return "", err
		}
	}

	reply := s.answerer.Answer(ctx, eventcontext.ForEvent(event), message)

	metrics.ChatRequests.WithLabelValues(s.answerer.Source()).Inc()
	s.log.Info("Chat answered",
		zap.String("event_id", eventID),
		zap.String("source", s.answerer.Source()))

	return reply, nil
}

// composeTime falls back to assembling a freeform time string from the
// structured fields when no explicit one was submitted.
func composeTime(explicit, startTime, endTime, date string) string {
	if explicit != "" {
		return explicit
	}

	var parts []string
	if date != "" {
		parts = append(parts, date)
	}
	if startTime != "" {
		span := startTime
		if endTime != "" {
			span = startTime + " to " + endTime
		}
		if len(parts) > 0 {
			parts = append(parts, "at", span)
		} else {
			parts = append(parts, span)
		}
	}

	return strings.Join(parts, " ")
}

func convertFAQs(entries []dto.FAQEntry) []domain.FAQ {
	if len(entries) == 0 {
		return nil
	}
	faqs := make([]domain.FAQ, 0, len(entries))
	for _, entry := range entries {
		faqs = append(faqs, domain.FAQ{
			Question: entry.Question,
			Answer:   entry.Answer,
		})
	}
	return faqs
}
