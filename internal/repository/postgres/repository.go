package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/suto6/whatsevent/internal/domain"
)

const eventColumns = `id, name, organizer, details, start_time, end_time, event_date,
	event_time, contact_number, whatsapp_number, chat_link, whatsapp_message,
	faqs, context, source_document, created_at, updated_at`

// Repository implements repository.EventRepository for PostgreSQL
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema initializes the events table
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS events (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		organizer        TEXT NOT NULL,
		details          TEXT NOT NULL,
		start_time       TEXT NOT NULL DEFAULT '',
		end_time         TEXT NOT NULL DEFAULT '',
		event_date       TEXT NOT NULL DEFAULT '',
		event_time       TEXT NOT NULL DEFAULT '',
		contact_number   TEXT NOT NULL DEFAULT '',
		whatsapp_number  TEXT NOT NULL DEFAULT '',
		chat_link        TEXT NOT NULL DEFAULT '',
		whatsapp_message TEXT NOT NULL DEFAULT '',
		faqs             JSONB NOT NULL DEFAULT '[]',
		context          TEXT NOT NULL DEFAULT '',
		source_document  TEXT NOT NULL DEFAULT '',
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)
	`

	if _, err := r.client.Pool().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	r.log.Info("PostgreSQL schema initialized successfully")
	return nil
}

// Create stores a new event record
func (r *Repository) Create(ctx context.Context, event *domain.Event) error {
	faqs, err := marshalFAQs(event.FAQs)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO events (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`, eventColumns)

	_, err = r.client.Pool().Exec(ctx, query,
		event.ID, event.Name, event.Organizer, event.Details,
		event.StartTime, event.EndTime, event.Date, event.Time,
		event.ContactNumber, event.WhatsAppNumber, event.ChatLink, event.WhatsAppMessage,
		faqs, event.Context, event.SourceDocument, event.CreatedAt, event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

// GetByID fetches a single event by its identifier
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE id = $1", eventColumns)
	return r.queryOne(ctx, query, id)
}

// List returns all stored events, newest first
func (r *Repository) List(ctx context.Context) ([]*domain.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events ORDER BY created_at DESC", eventColumns)

	rows, err := r.client.Pool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// Update replaces a stored event record
func (r *Repository) Update(ctx context.Context, event *domain.Event) error {
	faqs, err := marshalFAQs(event.FAQs)
	if err != nil {
		return err
	}

	query := `UPDATE events SET
		name = $2, organizer = $3, details = $4, start_time = $5, end_time = $6,
		event_date = $7, event_time = $8, contact_number = $9, whatsapp_number = $10,
		chat_link = $11, whatsapp_message = $12, faqs = $13, context = $14,
		source_document = $15, updated_at = $16
	WHERE id = $1`

	tag, err := r.client.Pool().Exec(ctx, query,
		event.ID, event.Name, event.Organizer, event.Details,
		event.StartTime, event.EndTime, event.Date, event.Time,
		event.ContactNumber, event.WhatsAppNumber, event.ChatLink, event.WhatsAppMessage,
		faqs, event.Context, event.SourceDocument, event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// Delete removes an event record
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.client.Pool().Exec(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// FindByContact fetches the event registered under a contact or WhatsApp number
func (r *Repository) FindByContact(ctx context.Context, number string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events
		WHERE whatsapp_number = $1 OR contact_number = $1
		ORDER BY created_at DESC LIMIT 1`, eventColumns)
	return r.queryOne(ctx, query, number)
}

// SearchByName fetches the newest event whose name contains the query
func (r *Repository) SearchByName(ctx context.Context, name string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events
		WHERE name ILIKE '%%' || $1 || '%%'
		ORDER BY created_at DESC LIMIT 1`, eventColumns)
	return r.queryOne(ctx, query, name)
}

// Ping checks if the PostgreSQL connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Pool().Ping(ctx)
}

// Close closes the PostgreSQL connection
func (r *Repository) Close() error {
	return r.client.Close()
}

func (r *Repository) queryOne(ctx context.Context, query string, args ...interface{}) (*domain.Event, error) {
	rows, err := r.client.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query event: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error reading event row: %w", err)
		}
		return nil, domain.ErrEventNotFound
	}

	return scanEvent(rows)
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var event domain.Event
	var faqs []byte

	err := row.Scan(
		&event.ID, &event.Name, &event.Organizer, &event.Details,
		&event.StartTime, &event.EndTime, &event.Date, &event.Time,
		&event.ContactNumber, &event.WhatsAppNumber, &event.ChatLink, &event.WhatsAppMessage,
		&faqs, &event.Context, &event.SourceDocument, &event.CreatedAt, &event.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan event row: %w", err)
	}

	if len(faqs) > 0 {
		if err := json.Unmarshal(faqs, &event.FAQs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event FAQs: %w", err)
		}
	}

	return &event, nil
}

func marshalFAQs(faqs []domain.FAQ) ([]byte, error) {
	if faqs == nil {
		faqs = []domain.FAQ{}
	}
	out, err := json.Marshal(faqs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event FAQs: %w", err)
	}
	return out, nil
}
