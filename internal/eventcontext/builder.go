package eventcontext

import (
	"fmt"
	"strings"

	"github.com/suto6/whatsevent/internal/domain"
)

// sectionHeaders is the closed set of markers recognised inside
// organizer-submitted details. The slice order is the output order.
var sectionHeaders = []string{
	"Venue Address",
	"Parking Information",
	"Accommodation Information",
	"Food & Refreshments",
	"Certificates & Rewards",
	"Registration Information",
	"FAQs",
}

// Input carries the event fields the context is derived from.
type Input struct {
	Name      string
	Organizer string
	Time      string
	Contact   string
	Details   string
	FAQs      []domain.FAQ
}

// Build serialises the event fields into a single prompt-ready text block.
// It is pure and never fails: empty details still produce a valid, minimal
// context. Text is passed through verbatim, without escaping.
func Build(in Input) string {
	main, sections := splitSections(in.Details)

	var b strings.Builder
	b.WriteString("Event Information:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", in.Name)
	fmt.Fprintf(&b, "Organizer: %s\n", in.Organizer)
	fmt.Fprintf(&b, "Time: %s\n", in.Time)
	fmt.Fprintf(&b, "Contact: %s\n", in.Contact)

	if main != "" {
		b.WriteString("\nEvent Details:\n")
		b.WriteString(main)
		b.WriteString("\n")
	}

	for _, header := range sectionHeaders {
		body := strings.TrimSpace(sections[header])
		if body == "" {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n%s\n", header, body)
	}

	wroteFAQHeader := false
	for _, faq := range in.FAQs {
		if faq.Question == "" || faq.Answer == "" {
			continue
		}
		if !wroteFAQHeader {
			b.WriteString("\nFrequently Asked Questions:\n")
			wroteFAQHeader = true
		}
		fmt.Fprintf(&b, "\nQ: %s\nA: %s\n", faq.Question, faq.Answer)
	}

	return b.String()
}

// ForEvent returns the text fed to the answer engine for an event:
// the stored precomputed context when present, otherwise a context derived
// on the fly from the event fields.
func ForEvent(e *domain.Event) string {
	if strings.TrimSpace(e.Context) != "" {
		return e.Context
	}
	contact := e.ContactNumber
	if contact == "" {
		contact = e.WhatsAppNumber
	}
	return Build(Input{
		Name:      e.Name,
		Organizer: e.Organizer,
		Time:      e.Time,
		Contact:   contact,
		Details:   e.Details,
		FAQs:      e.FAQs,
	})
}

// splitSections scans details line by line, routing lines before any header
// into the main buffer and subsequent lines into the buffer of the most
// recently seen section. Header lines themselves are discarded. Header-like
// text outside the closed set is ordinary content.
func splitSections(details string) (string, map[string]string) {
	var mainBuf []string
	buffers := make(map[string][]string, len(sectionHeaders))
	current := ""

	for _, line := range strings.Split(details, "\n") {
		if header, ok := matchHeader(line); ok {
			current = header
			continue
		}
		if current == "" {
			mainBuf = append(mainBuf, line)
		} else {
			buffers[current] = append(buffers[current], line)
		}
	}

	sections := make(map[string]string, len(buffers))
	for header, lines := range buffers {
		sections[header] = strings.Join(lines, "\n")
	}

	return strings.TrimSpace(strings.Join(mainBuf, "\n")), sections
}

// matchHeader reports whether the line opens one of the known sections.
// Matching is case-sensitive against "<HeaderName>:" at the start of the line.
func matchHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	for _, header := range sectionHeaders {
		if strings.HasPrefix(trimmed, header+":") {
			return header, true
		}
	}
	return "", false
}
