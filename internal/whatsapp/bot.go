package whatsapp

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/suto6/whatsevent/internal/answer"
	"github.com/suto6/whatsevent/internal/domain"
	"github.com/suto6/whatsevent/internal/eventcontext"
	"github.com/suto6/whatsevent/internal/repository"
)

const (
	unknownCodeReply  = "I couldn't find an event with that code. Please check and try again."
	unknownEventReply = "Sorry, I couldn't find information about this event. Please make sure you're using the correct join code."
	errorReply        = "Sorry, I encountered an error while processing your message. Please try again later."
)

var (
	joinCodeRe   = regexp.MustCompile(`(?i)^join\s+([\w-]+)$`)
	interestedRe = regexp.MustCompile(`(?i)interested in the event:\s*([^.!?]+)`)
	aboutRe      = regexp.MustCompile(`(?i)about\s+([^.!?]+)`)
)

// Responder turns an inbound WhatsApp message into a reply body.
type Responder interface {
	HandleMessage(from, body string) string
}

// Bot answers inbound WhatsApp messages. Unlike the web chat path there is
// no event id in the payload, so the event is resolved from the message text
// or the sender's number.
type Bot struct {
	repository repository.EventRepository
	answerer   answer.Answerer
	log        *zap.Logger
}

// NewBot creates a new WhatsApp bot
func NewBot(repo repository.EventRepository, answerer answer.Answerer, log *zap.Logger) *Bot {
	return &Bot{
		repository: repo,
		answerer:   answerer,
		log:        log,
	}
}

// HandleMessage processes one inbound message and returns the reply body.
// It never returns an error; every failure degrades to an apology string.
func (b *Bot) HandleMessage(from, body string) string {
	ctx := context.Background()

	if match := joinCodeRe.FindStringSubmatch(strings.TrimSpace(body)); match != nil {
		event, err := b.findByJoinCode(ctx, match[1])
		if err != nil {
			b.log.Warn("Join code lookup failed",
				zap.String("code", match[1]),
				zap.Error(err))
			return unknownCodeReply
		}
		return "Welcome to the " + event.Name + " event assistant! You can now ask me any questions about the event."
	}

	event, err := b.findEvent(ctx, extractEventName(body), from)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return unknownEventReply
		}
		b.log.Error("Event lookup failed", zap.Error(err))
		return errorReply
	}

	return b.answerer.Answer(ctx, eventcontext.ForEvent(event), body)
}

// findByJoinCode treats the code as an event id first, then as a name query.
func (b *Bot) findByJoinCode(ctx context.Context, code string) (*domain.Event, error) {
	if event, err := b.repository.GetByID(ctx, code); err == nil {
		return event, nil
	}
	return b.repository.SearchByName(ctx, code)
}

// findEvent resolves the event by extracted name first, then by the sender's
// number with the transport prefix stripped.
func (b *Bot) findEvent(ctx context.Context, eventName, from string) (*domain.Event, error) {
	if eventName != "" {
		if event, err := b.repository.SearchByName(ctx, eventName); err == nil {
			return event, nil
		}
	}

	number := strings.TrimPrefix(from, "whatsapp:")
	return b.repository.FindByContact(ctx, number)
}

// extractEventName pulls a candidate event name out of freeform message text.
// It checks the share-link phrasing first, then "about <name>", and finally
// falls back to the first few words of the message.
func extractEventName(message string) string {
	if match := interestedRe.FindStringSubmatch(message); match != nil {
		return strings.TrimSpace(match[1])
	}

	if match := aboutRe.FindStringSubmatch(message); match != nil {
		return strings.TrimSpace(match[1])
	}

	fields := strings.Fields(message)
	if len(fields) > 5 {
		fields = fields[:5]
	}
	if words := strings.Join(fields, " "); len(words) > 3 {
		return words
	}

	return ""
}
