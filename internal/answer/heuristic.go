package answer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	timeTokenRe   = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
	dateTokenRe   = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}\b`)
	locationRe    = regexp.MustCompile(`(?:at|in)\s+([^.,\n]+)`)
	organizedByRe = regexp.MustCompile(`(?i)organized by\s+([^.,\n]+)`)
)

// stopwords excluded from the keyword scan in the default branch.
var stopwords = map[string]struct{}{
	"what": {}, "when": {}, "where": {}, "which": {}, "will": {},
	"there": {}, "this": {}, "that": {}, "does": {}, "have": {},
	"about": {}, "your": {}, "with": {}, "from": {}, "event": {},
	"please": {}, "tell": {}, "know": {}, "would": {}, "could": {},
}

// Heuristic answers questions with a deterministic decision tree over the
// context text. No randomness, no I/O: identical input always yields the
// same output. Used when no model credential is configured, and shared by
// the web chat and WhatsApp paths so both degrade identically.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

func (h *Heuristic) Source() string {
	return "heuristic"
}

// Answer dispatches on keyword presence in the lower-cased question; the
// first matching branch wins. Nothing here can fail: empty input degrades
// to the generic apology.
func (h *Heuristic) Answer(_ context.Context, eventContext, question string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" || strings.TrimSpace(eventContext) == "" {
		return h.defaultAnswer(eventContext, question)
	}

	switch {
	case containsAny(q, "when", "time", "date"):
		return h.scheduleAnswer(eventContext)
	case containsAny(q, "where", "location", "venue"):
		return h.locationAnswer(eventContext)
	case containsAny(q, "organizer", "who", "host"):
		return h.organizerAnswer(eventContext)
	case containsAny(q, "cost", "price", "fee", "free"):
		return h.costAnswer(eventContext)
	case containsAny(q, "travel", "transport", "how to get"):
		return h.topicAnswer(eventContext, "travel information",
			"travel", "transport", "shuttle", "bus", "train", "metro")
	case containsAny(q, "accommodation", "hotel", "stay"):
		return h.topicAnswer(eventContext, "accommodation information",
			"accommodation", "hotel", "stay")
	case strings.Contains(q, "certificate"):
		return h.topicAnswer(eventContext, "certificate information",
			"certificate")
	case containsAny(q, "goodies", "swag", "gift"):
		return h.topicAnswer(eventContext, "information about goodies",
			"goodies", "swag", "gift", "prize")
	}

	if reply, ok := h.faqAnswer(eventContext, q); ok {
		return reply
	}

	return h.defaultAnswer(eventContext, question)
}

func (h *Heuristic) scheduleAnswer(eventContext string) string {
	if line := firstLineContaining(eventContext, "date", "time", "when"); line != "" {
		return fmt.Sprintf("Here is the schedule information I have: %s", line)
	}

	timeToken := timeTokenRe.FindString(eventContext)
	dateToken := dateTokenRe.FindString(eventContext)
	switch {
	case timeToken != "" && dateToken != "":
		return fmt.Sprintf("The event starts at %s on %s.", timeToken, dateToken)
	case timeToken != "":
		return fmt.Sprintf("The event starts at %s.", timeToken)
	case dateToken != "":
		return fmt.Sprintf("The event is scheduled for %s.", dateToken)
	}

	return "I don't have specific information about the schedule in my records."
}

func (h *Heuristic) locationAnswer(eventContext string) string {
	if m := locationRe.FindStringSubmatch(eventContext); m != nil {
		return fmt.Sprintf("The event will be held at %s.", strings.TrimSpace(m[1]))
	}
	return "I don't have specific information about the location in my records."
}

func (h *Heuristic) organizerAnswer(eventContext string) string {
	for _, line := range strings.Split(eventContext, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Organizer:") {
			name := strings.TrimSpace(strings.TrimPrefix(trimmed, "Organizer:"))
			if name != "" {
				return fmt.Sprintf("This event is organized by %s.", name)
			}
		}
	}
	if m := organizedByRe.FindStringSubmatch(eventContext); m != nil {
		return fmt.Sprintf("This event is organized by %s.", strings.TrimSpace(m[1]))
	}
	return "I don't have specific information about the organizer in my records."
}

func (h *Heuristic) costAnswer(eventContext string) string {
	if strings.Contains(strings.ToLower(eventContext), "free") {
		return "Good news! This event is free to attend."
	}
	if line := firstLineContaining(eventContext, "cost", "price", "fee"); line != "" {
		return fmt.Sprintf("Here is what I found about pricing: %s", line)
	}
	return "I don't have information about the cost in my records. Please contact the organizer for details."
}

// topicAnswer handles the single-topic branches: presence check on the topic
// keywords, then quote the first matching context line.
func (h *Heuristic) topicAnswer(eventContext, topic string, keywords ...string) string {
	lower := strings.ToLower(eventContext)
	found := false
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			found = true
			break
		}
	}
	if !found {
		return fmt.Sprintf("The organizer has not provided %s for this event.", topic)
	}
	if line := firstLineContaining(eventContext, keywords...); line != "" {
		return fmt.Sprintf("Here's what I found: %s", line)
	}
	return fmt.Sprintf("The organizer has not provided %s for this event.", topic)
}

type faqPair struct {
	question string
	answer   string
}

// faqAnswer matches the question against FAQ pairs embedded in the context.
// Tokens overlap when one is a substring of the other; two or more shared
// tokens select that FAQ's answer verbatim.
func (h *Heuristic) faqAnswer(eventContext, q string) (string, bool) {
	if !strings.Contains(eventContext, "Q:") {
		return "", false
	}

	qWords := tokenize(q)
	if len(qWords) == 0 {
		return "", false
	}

	for _, pair := range parseFAQs(eventContext) {
		fWords := tokenize(strings.ToLower(pair.question))
		overlap := 0
		for _, qw := range qWords {
			for _, fw := range fWords {
				if strings.Contains(qw, fw) || strings.Contains(fw, qw) {
					overlap++
					break
				}
			}
		}
		if overlap >= 2 {
			return pair.answer, true
		}
	}

	return "", false
}

func parseFAQs(eventContext string) []faqPair {
	lines := strings.Split(eventContext, "\n")
	var pairs []faqPair

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, "Q:") {
			continue
		}
		question := strings.TrimSpace(strings.TrimPrefix(trimmed, "Q:"))
		for j := i + 1; j < len(lines); j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				continue
			}
			if strings.HasPrefix(next, "A:") {
				pairs = append(pairs, faqPair{
					question: question,
					answer:   strings.TrimSpace(strings.TrimPrefix(next, "A:")),
				})
				i = j
			}
			break
		}
	}

	return pairs
}

// defaultAnswer scans context lines for question keywords longer than three
// characters and quotes the first hit.
func (h *Heuristic) defaultAnswer(eventContext, question string) string {
	for _, word := range tokenize(strings.ToLower(question)) {
		if len(word) <= 3 {
			continue
		}
		if _, ok := stopwords[word]; ok {
			continue
		}
		for _, line := range strings.Split(eventContext, "\n") {
			if strings.Contains(strings.ToLower(line), word) {
				return "Based on the event information, I found this relevant detail: " + strings.TrimSpace(line)
			}
		}
	}

	return fmt.Sprintf("I'm sorry, I don't have details about %q. Please contact the organizer for more information.", question)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// firstLineContaining returns the first trimmed context line containing any
// of the words, case-insensitively.
func firstLineContaining(eventContext string, words ...string) string {
	for _, line := range strings.Split(eventContext, "\n") {
		lower := strings.ToLower(line)
		for _, w := range words {
			if strings.Contains(lower, w) {
				return strings.TrimSpace(line)
			}
		}
	}
	return ""
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
