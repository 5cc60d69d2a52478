package eventcontext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suto6/whatsevent/internal/domain"
)

func TestBuild_SectionExtraction(t *testing.T) {
	in := Input{
		Name:      "Hack4Bengal 2023",
		Organizer: "Bengal Developer Community",
		Time:      "June 15, 2023 at 10:00 AM",
		Contact:   "1234567890",
		Details:   "Intro line\nParking Information:\nFree lot on site\nVenue Address:\n123 Main St",
	}

	out := Build(in)

	assert.Contains(t, out, "Event Details:\nIntro line")
	assert.Contains(t, out, "Parking Information:\nFree lot on site")
	assert.Contains(t, out, "Venue Address:\n123 Main St")

	// Output order is fixed by the section enumeration, not input order.
	venueIdx := strings.Index(out, "Venue Address:")
	parkingIdx := strings.Index(out, "Parking Information:")
	assert.Less(t, venueIdx, parkingIdx)

	detailsIdx := strings.Index(out, "Event Details:")
	assert.Less(t, detailsIdx, venueIdx)
}

func TestBuild_Idempotent(t *testing.T) {
	in := Input{
		Name:      "GopherCon",
		Organizer: "Gophers United",
		Time:      "March 3, 2024 at 09:00",
		Contact:   "5551234",
		Details:   "Main details\nFood & Refreshments:\nLunch provided",
		FAQs: []domain.FAQ{
			{Question: "Is there parking?", Answer: "Yes, free parking."},
		},
	}

	first := Build(in)
	second := Build(in)

	assert.Equal(t, first, second)
}

func TestBuild_UnknownHeaderIsContent(t *testing.T) {
	in := Input{
		Name:    "Meetup",
		Details: "Dress Code:\nCasual",
	}

	out := Build(in)

	// "Dress Code" is not in the closed set, so it stays in the main block.
	assert.Contains(t, out, "Event Details:\nDress Code:\nCasual")
}

func TestBuild_EmptyDetails(t *testing.T) {
	out := Build(Input{Name: "Meetup", Organizer: "Org", Time: "tbd", Contact: "000"})

	assert.Contains(t, out, "Event Information:")
	assert.Contains(t, out, "Name: Meetup")
	assert.NotContains(t, out, "Event Details:")
}

func TestBuild_EmptySectionOmitted(t *testing.T) {
	in := Input{
		Name:    "Meetup",
		Details: "Intro\nParking Information:\n\n   \nVenue Address:\nSomewhere",
	}

	out := Build(in)

	assert.NotContains(t, out, "Parking Information:")
	assert.Contains(t, out, "Venue Address:\nSomewhere")
}

func TestBuild_FAQFiltering(t *testing.T) {
	in := Input{
		Name: "Meetup",
		FAQs: []domain.FAQ{
			{Question: "Q1?", Answer: "A1"},
			{Question: "", Answer: "orphan answer"},
			{Question: "orphan question", Answer: ""},
		},
	}

	out := Build(in)

	assert.Contains(t, out, "Frequently Asked Questions:")
	assert.Contains(t, out, "Q: Q1?\nA: A1")
	assert.NotContains(t, out, "orphan")
}

func TestBuild_FAQBlockOmittedWhenAllEmpty(t *testing.T) {
	in := Input{
		Name: "Meetup",
		FAQs: []domain.FAQ{{Question: "", Answer: ""}},
	}

	out := Build(in)

	assert.NotContains(t, out, "Frequently Asked Questions:")
}

func TestForEvent_PrefersStoredContext(t *testing.T) {
	e := &domain.Event{
		Name:    "Meetup",
		Details: "Some details",
		Context: "precomputed context block",
	}

	assert.Equal(t, "precomputed context block", ForEvent(e))
}

func TestForEvent_DerivesWhenContextMissing(t *testing.T) {
	e := &domain.Event{
		Name:           "Meetup",
		Organizer:      "Org",
		Time:           "June 1",
		WhatsAppNumber: "999",
		Details:        "Some details",
	}

	out := ForEvent(e)

	assert.Contains(t, out, "Name: Meetup")
	assert.Contains(t, out, "Contact: 999")
	assert.Contains(t, out, "Some details")
}
