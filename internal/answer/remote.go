package answer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/suto6/whatsevent/internal/llm"
	"github.com/suto6/whatsevent/internal/metrics"
)

const systemPrompt = "You are a helpful event assistant that provides accurate information about events based only on the provided context."

const promptTemplate = `You are an AI event assistant for an event organizer. Your job is to answer questions about a specific event based ONLY on the information provided in the context below.

Event Information:
%s

User Question:
%q

Guidelines:
1. Answer in a helpful, friendly, and conversational tone
2. Be concise and direct - keep responses under 3 sentences when possible
3. If the exact information is not available in the context, politely say you don't have that specific information
4. Do not make up or assume any information that is not explicitly stated in the context
5. If asked about dates, times, locations, or prices, be very specific based on the context
6. If the user asks something completely unrelated to the event, politely redirect them to ask about the event

Your response:
`

// Remote answers questions by calling an external language model.
type Remote struct {
	client *llm.Client
	log    *zap.Logger
}

// NewRemote creates a remote answer engine backed by the given client.
func NewRemote(client *llm.Client, log *zap.Logger) *Remote {
	return &Remote{
		client: client,
		log:    log,
	}
}

func (r *Remote) Source() string {
	return "remote"
}

// Answer makes exactly one completion attempt. Transport and service errors
// are recovered here and converted to a user-facing apology; they never
// propagate to the caller.
func (r *Remote) Answer(ctx context.Context, eventContext, question string) string {
	messages := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: fmt.Sprintf(promptTemplate, eventContext, question)},
	}

	reply, err := r.client.ChatCompletion(ctx, messages)
	if err != nil {
		metrics.LLMFailures.Inc()
		r.log.Warn("Remote completion failed", zap.Error(err))
		return errorReply
	}
	if strings.TrimSpace(reply) == "" {
		return emptyReply
	}

	return reply
}
