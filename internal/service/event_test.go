package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/suto6/whatsevent/internal/domain"
	"github.com/suto6/whatsevent/internal/dto"
)

// MockEventRepository is a mock implementation of repository.EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepository) FindByContact(ctx context.Context, number string) (*domain.Event, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) SearchByName(ctx context.Context, name string) (*domain.Event, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) InitSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

// stubAnswerer records the context it was handed and echoes a canned reply.
type stubAnswerer struct {
	reply       string
	lastContext string
	lastMessage string
}

func (s *stubAnswerer) Answer(_ context.Context, eventContext, question string) string {
	s.lastContext = eventContext
	s.lastMessage = question
	return s.reply
}

func (s *stubAnswerer) Source() string { return "stub" }

func TestEventService_CreateEvent(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	service := NewEventService(mockRepo, &stubAnswerer{}, zap.NewNop())

	resp, err := service.CreateEvent(&dto.CreateEventRequest{
		Name:           "Hack4Bengal 2023",
		Organizer:      "Bengal Developer Community",
		Details:        "A 36-hour hackathon.",
		Date:           "June 15, 2023",
		StartTime:      "10:00 AM",
		EndTime:        "10:00 PM",
		WhatsAppNumber: "1234567890",
	})

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Event.ID)
	assert.Equal(t, "/event/"+resp.Event.ID, resp.Link)
	assert.Equal(t, "June 15, 2023 at 10:00 AM to 10:00 PM", resp.Event.Time)
	// No explicit contact number, so the WhatsApp number stands in.
	assert.Equal(t, "1234567890", resp.Event.ContactNumber)
	assert.Contains(t, resp.Event.WhatsAppMessage, "https://wa.me/1234567890?text=")
	assert.Contains(t, resp.Event.Context, "Name: Hack4Bengal 2023")
	mockRepo.AssertExpectations(t)
}

func TestEventService_CreateEvent_ExplicitTime(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	service := NewEventService(mockRepo, &stubAnswerer{}, zap.NewNop())

	resp, err := service.CreateEvent(&dto.CreateEventRequest{
		Name:      "Meetup",
		Organizer: "Org",
		Details:   "details",
		Time:      "Saturday evening",
		Date:      "June 15, 2023",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Saturday evening", resp.Event.Time)
}

func TestEventService_CreateEvent_NoWhatsAppNumber(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	service := NewEventService(mockRepo, &stubAnswerer{}, zap.NewNop())

	resp, err := service.CreateEvent(&dto.CreateEventRequest{
		Name:      "Meetup",
		Organizer: "Org",
		Details:   "details",
	})

	assert.NoError(t, err)
	assert.Equal(t, resp.Link, resp.Event.WhatsAppMessage)
	assert.False(t, strings.Contains(resp.Event.WhatsAppMessage, "wa.me"))
}

func TestEventService_CreateEvent_RepositoryError(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(assert.AnError)

	service := NewEventService(mockRepo, &stubAnswerer{}, zap.NewNop())

	_, err := service.CreateEvent(&dto.CreateEventRequest{
		Name:      "Meetup",
		Organizer: "Org",
		Details:   "details",
	})

	assert.Error(t, err)
}

func TestEventService_GetEvent_Mock(t *testing.T) {
	mockRepo := new(MockEventRepository)
	service := NewEventService(mockRepo, &stubAnswerer{}, zap.NewNop())

	event, err := service.GetEvent("mock-event-123")

	assert.NoError(t, err)
	assert.Equal(t, "Hack4Bengal 2023", event.Name)
	// Demo ids never touch the store.
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestEventService_GetEvent_NotFound(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	service := NewEventService(mockRepo, &stubAnswerer{}, zap.NewNop())

	_, err := service.GetEvent("missing")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_UpdateEvent(t *testing.T) {
	existing := &domain.Event{
		ID:        "evt-1",
		Name:      "Old Name",
		Organizer: "Org",
		Details:   "old details",
		Context:   "stale context",
	}

	mockRepo := new(MockEventRepository)
	mockRepo.On("GetByID", mock.Anything, "evt-1").Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	service := NewEventService(mockRepo, &stubAnswerer{}, zap.NewNop())

	updated, err := service.UpdateEvent("evt-1", &dto.UpdateEventRequest{
		Name:      "New Name",
		Organizer: "Org",
		Details:   "new details",
	})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	// The derived context must be regenerated from the new fields.
	assert.Contains(t, updated.Context, "Name: New Name")
	assert.Contains(t, updated.Context, "new details")
	assert.NotContains(t, updated.Context, "stale context")
	mockRepo.AssertExpectations(t)
}

func TestEventService_UpdateEvent_NotFound(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	service := NewEventService(mockRepo, &stubAnswerer{}, zap.NewNop())

	_, err := service.UpdateEvent("missing", &dto.UpdateEventRequest{Name: "x", Organizer: "y", Details: "z"})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_DeleteEvent(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockRepo.On("Delete", mock.Anything, "evt-1").Return(nil)

	service := NewEventService(mockRepo, &stubAnswerer{}, zap.NewNop())

	assert.NoError(t, service.DeleteEvent("evt-1"))
	mockRepo.AssertExpectations(t)
}

func TestEventService_ListEvents(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockRepo.On("List", mock.Anything).Return([]*domain.Event{{ID: "evt-1"}}, nil)

	service := NewEventService(mockRepo, &stubAnswerer{}, zap.NewNop())

	events, err := service.ListEvents()
	assert.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestEventService_Chat_StoredContext(t *testing.T) {
	event := &domain.Event{
		ID:      "evt-1",
		Name:    "GopherCon",
		Details: "details",
		Context: "Event Information:\n\nName: GopherCon\n",
	}

	mockRepo := new(MockEventRepository)
	mockRepo.On("GetByID", mock.Anything, "evt-1").Return(event, nil)

	answerer := &stubAnswerer{reply: "The event is GopherCon."}
	service := NewEventService(mockRepo, answerer, zap.NewNop())

	reply, err := service.Chat("evt-1", "What is this event?")

	assert.NoError(t, err)
	assert.Equal(t, "The event is GopherCon.", reply)
	// The stored context is handed to the answer engine verbatim.
	assert.Equal(t, event.Context, answerer.lastContext)
	assert.Equal(t, "What is this event?", answerer.lastMessage)
}

func TestEventService_Chat_MockEvent(t *testing.T) {
	mockRepo := new(MockEventRepository)

	answerer := &stubAnswerer{reply: "ok"}
	service := NewEventService(mockRepo, answerer, zap.NewNop())

	reply, err := service.Chat("mock-demo", "Where is the venue?")

	assert.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.Contains(t, answerer.lastContext, "Hack4Bengal 2023")
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestEventService_Chat_EventNotFound(t *testing.T) {
	mockRepo := new(MockEventRepository)
	mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	service := NewEventService(mockRepo, &stubAnswerer{}, zap.NewNop())

	_, err := service.Chat("missing", "hello")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
