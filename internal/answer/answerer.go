package answer

import "context"

// Replies used when the remote engine cannot produce an answer. The chat
// surface always answers something, so failures degrade to text.
const (
	errorReply = "Sorry, I encountered an error while processing your question. Please try again later."
	emptyReply = "Sorry, I could not generate a response."
)

// Answerer produces a natural-language answer to a question, constrained to
// the information in the supplied event context. Implementations never
// return an error: unanswerable input degrades to an apology string.
type Answerer interface {
	Answer(ctx context.Context, eventContext, question string) string

	// Source identifies the engine for logging and metrics.
	Source() string
}
