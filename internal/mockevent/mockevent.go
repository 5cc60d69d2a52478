package mockevent

import (
	"strings"
	"time"

	"github.com/suto6/whatsevent/internal/domain"
)

// Prefix marks demo event ids that short-circuit the event store.
const Prefix = "mock-"

// Is reports whether the id refers to the demo fixture.
func Is(eventID string) bool {
	return strings.HasPrefix(eventID, Prefix)
}

const fixtureContext = `Event Information:

Name: Hack4Bengal 2023
Organizer: Bengal Developer Community
Time: June 15, 2023 at 10:00 AM
Contact: 1234567890

Event Details:
Hack4Bengal is a 36-hour hackathon where developers, designers, and innovators come together to build amazing projects.

Venue Address:
TechHub Building, 123 Innovation Street, Kolkata, West Bengal 700001

Parking Information:
Free parking is available at the venue's north lot. Additional paid parking is available at the nearby City Center Mall for ₹50 per hour.

Accommodation Information:
Accommodation will be provided for all participants at the venue itself. Participants should bring their own toiletries.

Food & Refreshments:
Meals will be provided throughout the event including breakfast, lunch, and dinner. Snacks and beverages will be available 24/7.

Certificates & Rewards:
All participants who complete the hackathon will receive certificates. The winning teams will receive prizes worth ₹50,000.

Registration Information:
Registration is free but mandatory. Teams of 2-4 members can participate. The registration deadline is June 10, 2023.

Frequently Asked Questions:

Q: Can I participate alone?
A: No, you need to form a team of 2-4 members.

Q: Do I need to bring my own laptop?
A: Yes, all participants must bring their own laptops and chargers.

Q: Will there be internet connectivity?
A: Yes, high-speed Wi-Fi will be provided to all participants.
`

// Event returns the hardcoded demo event used for development and testing.
func Event(eventID string) *domain.Event {
	now := time.Now().UTC()

	return &domain.Event{
		ID:              eventID,
		Name:            "Hack4Bengal 2023",
		Organizer:       "Bengal Developer Community",
		Details:         "Hack4Bengal is a 36-hour hackathon where developers, designers, and innovators come together to build amazing projects. Teams of 2-4 members can participate. There will be prizes worth ₹50,000 for the winners.",
		StartTime:       "10:00 AM",
		EndTime:         "10:00 PM",
		Date:            "June 15, 2023",
		Time:            "June 15, 2023 at 10:00 AM",
		ContactNumber:   "1234567890",
		WhatsAppNumber:  "1234567890",
		ChatLink:        "/event/" + eventID,
		WhatsAppMessage: "/event/" + eventID,
		FAQs: []domain.FAQ{
			{Question: "Can I participate alone?", Answer: "No, you need to form a team of 2-4 members."},
			{Question: "Do I need to bring my own laptop?", Answer: "Yes, all participants must bring their own laptops and chargers."},
			{Question: "Will there be internet connectivity?", Answer: "Yes, high-speed Wi-Fi will be provided to all participants."},
		},
		Context:   fixtureContext,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
