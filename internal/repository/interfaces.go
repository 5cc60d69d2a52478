package repository

import (
	"context"

	"github.com/suto6/whatsevent/internal/domain"
)

// EventRepository defines the interface for event storage operations.
// Lookups return domain.ErrEventNotFound when no record matches.
type EventRepository interface {
	// Create stores a new event record
	Create(ctx context.Context, event *domain.Event) error

	// GetByID fetches a single event by its identifier
	GetByID(ctx context.Context, id string) (*domain.Event, error)

	// List returns all stored events, newest first
	List(ctx context.Context) ([]*domain.Event, error)

	// Update replaces a stored event record
	Update(ctx context.Context, event *domain.Event) error

	// Delete removes an event record
	Delete(ctx context.Context, id string) error

	// FindByContact fetches the event registered under a contact or
	// WhatsApp number
	FindByContact(ctx context.Context, number string) (*domain.Event, error)

	// SearchByName fetches the newest event whose name contains the query,
	// case-insensitively
	SearchByName(ctx context.Context, name string) (*domain.Event, error)

	// InitSchema initializes the storage schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// Ping checks if the storage connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}
