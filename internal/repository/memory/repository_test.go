package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/suto6/whatsevent/internal/domain"
)

func testEvent(id, name string, createdAt time.Time) *domain.Event {
	return &domain.Event{
		ID:             id,
		Name:           name,
		Organizer:      "Org",
		Details:        "details",
		WhatsAppNumber: "111",
		ContactNumber:  "222",
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := NewRepository(zap.NewNop())
	ctx := context.Background()

	event := testEvent("evt-1", "GopherCon", time.Now())
	assert.NoError(t, repo.Create(ctx, event))

	got, err := repo.GetByID(ctx, "evt-1")
	assert.NoError(t, err)
	assert.Equal(t, "GopherCon", got.Name)

	// Mutating the returned record must not affect the stored copy.
	got.Name = "changed"
	again, err := repo.GetByID(ctx, "evt-1")
	assert.NoError(t, err)
	assert.Equal(t, "GopherCon", again.Name)
}

func TestRepository_GetMissing(t *testing.T) {
	repo := NewRepository(zap.NewNop())

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRepository_ListNewestFirst(t *testing.T) {
	repo := NewRepository(zap.NewNop())
	ctx := context.Background()

	base := time.Now()
	assert.NoError(t, repo.Create(ctx, testEvent("evt-1", "Old", base.Add(-time.Hour))))
	assert.NoError(t, repo.Create(ctx, testEvent("evt-2", "New", base)))

	events, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "New", events[0].Name)
	assert.Equal(t, "Old", events[1].Name)
}

func TestRepository_Update(t *testing.T) {
	repo := NewRepository(zap.NewNop())
	ctx := context.Background()

	event := testEvent("evt-1", "GopherCon", time.Now())
	assert.NoError(t, repo.Create(ctx, event))

	event.Name = "GopherCon EU"
	assert.NoError(t, repo.Update(ctx, event))

	got, err := repo.GetByID(ctx, "evt-1")
	assert.NoError(t, err)
	assert.Equal(t, "GopherCon EU", got.Name)
}

func TestRepository_UpdateMissing(t *testing.T) {
	repo := NewRepository(zap.NewNop())

	err := repo.Update(context.Background(), testEvent("nope", "x", time.Now()))
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository(zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, testEvent("evt-1", "GopherCon", time.Now())))
	assert.NoError(t, repo.Delete(ctx, "evt-1"))

	_, err := repo.GetByID(ctx, "evt-1")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "evt-1"), domain.ErrEventNotFound)
}

func TestRepository_FindByContact(t *testing.T) {
	repo := NewRepository(zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, testEvent("evt-1", "GopherCon", time.Now())))

	got, err := repo.FindByContact(ctx, "111")
	assert.NoError(t, err)
	assert.Equal(t, "evt-1", got.ID)

	got, err = repo.FindByContact(ctx, "222")
	assert.NoError(t, err)
	assert.Equal(t, "evt-1", got.ID)

	_, err = repo.FindByContact(ctx, "999")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRepository_SearchByName(t *testing.T) {
	repo := NewRepository(zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, testEvent("evt-1", "Hack4Bengal 2023", time.Now())))

	got, err := repo.SearchByName(ctx, "hack4bengal")
	assert.NoError(t, err)
	assert.Equal(t, "evt-1", got.ID)

	_, err = repo.SearchByName(ctx, "unknown fest")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
