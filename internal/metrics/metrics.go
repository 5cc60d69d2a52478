package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChatRequests counts chat answers served, labelled by the engine that
	// produced them (remote, heuristic).
	ChatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whatsevent_chat_requests_total",
		Help: "Number of chat requests answered, by answer engine.",
	}, []string{"source"})

	// LLMFailures counts remote completions that degraded to an apology.
	LLMFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "whatsevent_llm_failures_total",
		Help: "Number of failed calls to the remote language model.",
	})

	// EventsCreated counts successfully stored events.
	EventsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "whatsevent_events_created_total",
		Help: "Number of events created.",
	})
)
