package whatsapp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/suto6/whatsevent/internal/domain"
	"github.com/suto6/whatsevent/internal/repository/memory"
)

type stubAnswerer struct {
	reply       string
	lastContext string
}

func (s *stubAnswerer) Answer(_ context.Context, eventContext, _ string) string {
	s.lastContext = eventContext
	return s.reply
}

func (s *stubAnswerer) Source() string { return "stub" }

func seedEvent(t *testing.T, repo *memory.Repository) *domain.Event {
	t.Helper()
	event := &domain.Event{
		ID:             "evt-1",
		Name:           "Hack4Bengal 2023",
		Organizer:      "Bengal Developer Community",
		Details:        "A 36-hour hackathon.",
		Time:           "June 15, 2023 at 10:00 AM",
		WhatsAppNumber: "1234567890",
		ContactNumber:  "1234567890",
	}
	assert.NoError(t, repo.Create(context.Background(), event))
	return event
}

func TestBot_JoinCode(t *testing.T) {
	repo := memory.NewRepository(zap.NewNop())
	seedEvent(t, repo)

	bot := NewBot(repo, &stubAnswerer{}, zap.NewNop())

	reply := bot.HandleMessage("whatsapp:+15550001", "join evt-1")
	assert.Equal(t, "Welcome to the Hack4Bengal 2023 event assistant! You can now ask me any questions about the event.", reply)
}

func TestBot_JoinCode_CaseInsensitive(t *testing.T) {
	repo := memory.NewRepository(zap.NewNop())
	seedEvent(t, repo)

	bot := NewBot(repo, &stubAnswerer{}, zap.NewNop())

	reply := bot.HandleMessage("whatsapp:+15550001", "JOIN evt-1")
	assert.Contains(t, reply, "Welcome to the Hack4Bengal 2023")
}

func TestBot_JoinCode_Unknown(t *testing.T) {
	repo := memory.NewRepository(zap.NewNop())

	bot := NewBot(repo, &stubAnswerer{}, zap.NewNop())

	reply := bot.HandleMessage("whatsapp:+15550001", "join nope-123")
	assert.Equal(t, unknownCodeReply, reply)
}

func TestBot_QuestionResolvedByName(t *testing.T) {
	repo := memory.NewRepository(zap.NewNop())
	seedEvent(t, repo)

	answerer := &stubAnswerer{reply: "It starts at 10:00 AM."}
	bot := NewBot(repo, answerer, zap.NewNop())

	reply := bot.HandleMessage("whatsapp:+15559999", "I'm interested in the event: Hack4Bengal 2023. When does it start?")
	assert.Equal(t, "It starts at 10:00 AM.", reply)
	assert.Contains(t, answerer.lastContext, "Name: Hack4Bengal 2023")
}

func TestBot_QuestionResolvedBySenderNumber(t *testing.T) {
	repo := memory.NewRepository(zap.NewNop())
	seedEvent(t, repo)

	answerer := &stubAnswerer{reply: "ok"}
	bot := NewBot(repo, answerer, zap.NewNop())

	// Message text matches nothing, but the sender number is registered.
	reply := bot.HandleMessage("whatsapp:1234567890", "hi")
	assert.Equal(t, "ok", reply)
}

func TestBot_QuestionUnknownEvent(t *testing.T) {
	repo := memory.NewRepository(zap.NewNop())

	bot := NewBot(repo, &stubAnswerer{}, zap.NewNop())

	reply := bot.HandleMessage("whatsapp:+15559999", "tell me about Some Unknown Fest")
	assert.Equal(t, unknownEventReply, reply)
}

func TestExtractEventName(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"interested pattern", "Hi! I'm interested in the event: Hack4Bengal 2023. Tell me more", "Hack4Bengal 2023"},
		{"about pattern", "can you tell me about DevFest Kolkata?", "DevFest Kolkata"},
		{"first words fallback", "Hack4Bengal venue details please now thanks", "Hack4Bengal venue details please now"},
		{"too short", "hi", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractEventName(tt.message))
		})
	}
}
