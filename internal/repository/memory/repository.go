package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/suto6/whatsevent/internal/domain"
)

// Repository implements repository.EventRepository in process memory.
// Used for tests and local demo mode; data does not survive a restart.
type Repository struct {
	mu     sync.RWMutex
	events map[string]*domain.Event
	log    *zap.Logger
}

// NewRepository creates an empty in-memory repository
func NewRepository(log *zap.Logger) *Repository {
	return &Repository{
		events: make(map[string]*domain.Event),
		log:    log,
	}
}

// Create stores a new event record
func (r *Repository) Create(_ context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[event.ID] = clone(event)
	return nil
}

// GetByID fetches a single event by its identifier
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return clone(event), nil
}

// List returns all stored events, newest first
func (r *Repository) List(_ context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*domain.Event, 0, len(r.events))
	for _, event := range r.events {
		events = append(events, clone(event))
	}
	sort.Slice(events, func(i, j int) bool {
		if !events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].CreatedAt.After(events[j].CreatedAt)
		}
		return events[i].ID < events[j].ID
	})

	return events, nil
}

// Update replaces a stored event record
func (r *Repository) Update(_ context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[event.ID]; !ok {
		return domain.ErrEventNotFound
	}
	r.events[event.ID] = clone(event)
	return nil
}

// Delete removes an event record
func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

// FindByContact fetches the event registered under a contact or WhatsApp number
func (r *Repository) FindByContact(ctx context.Context, number string) (*domain.Event, error) {
	events, _ := r.List(ctx)
	for _, event := range events {
		if event.WhatsAppNumber == number || event.ContactNumber == number {
			return event, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

// SearchByName fetches the newest event whose name contains the query
func (r *Repository) SearchByName(ctx context.Context, name string) (*domain.Event, error) {
	query := strings.ToLower(name)
	events, _ := r.List(ctx)
	for _, event := range events {
		if strings.Contains(strings.ToLower(event.Name), query) {
			return event, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

// InitSchema is a no-op for the in-memory store
func (r *Repository) InitSchema(context.Context) error {
	return nil
}

// Ping is a no-op for the in-memory store
func (r *Repository) Ping(context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store
func (r *Repository) Close() error {
	return nil
}

// clone keeps callers from mutating stored records through shared pointers.
func clone(event *domain.Event) *domain.Event {
	out := *event
	if event.FAQs != nil {
		out.FAQs = append([]domain.FAQ(nil), event.FAQs...)
	}
	return &out
}
