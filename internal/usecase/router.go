package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ManideepMuddagowni/veronica/internal/domain"
)

const routerName = "Router"

// Router dispatches a query to the capability agent its classification names
// and wraps whatever comes back in a uniform response envelope. The agent
// binding is fixed at construction and read-only afterwards; the trace sink
// is caller-owned. Route never raises past its boundary: every failure state
// is folded into the envelope as human-readable text.
type Router struct {
	classifier *IntentClassifier
	agents     map[domain.Capability]domain.Agent
	trace      domain.TraceSink
}

// NewRouter binds capability agents to the classifier. A nil trace sink
// disables tracing.
func NewRouter(classifier *IntentClassifier, agents map[domain.Capability]domain.Agent, trace domain.TraceSink) *Router {
	if trace == nil {
		trace = domain.NopTrace{}
	}
	bound := make(map[domain.Capability]domain.Agent, len(agents))
	for capability, agent := range agents {
		bound[capability] = agent
	}
	return &Router{classifier: classifier, agents: bound, trace: trace}
}

// Route classifies the query, dispatches the head capability, and returns a
// single-response envelope. The query reaches the agent unmodified.
func (r *Router) Route(ctx context.Context, query string) domain.Envelope {
	classification := r.classifier.Classify(ctx, query)
	capabilities := classification.Capabilities
	if classification.Failed() {
		// Availability over precision: a misrouted query still gets an
		// answer. The reason stays in the log for observability.
		log.Printf("[router] classification fell back to %s: %s", domain.CapabilityShopping, classification.FallbackReason)
		capabilities = []domain.Capability{domain.CapabilityShopping}
	}

	selected := capabilities[0]
	agent, ok := r.agents[selected]
	if !ok {
		log.Printf("[router] no agent registered for capability %q", selected)
		return domain.TextEnvelope(routerName, fmt.Sprintf("Agent for capability %q not found.", selected))
	}

	r.trace.Record(domain.TraceEvent{Agent: agent.Name(), Query: query, At: time.Now()})

	content, err := agent.Run(ctx, query)
	if err != nil {
		// Well-behaved agents fold failures into their content; this is
		// the backstop for ones that do not.
		log.Printf("[router] agent %s failed: %v", agent.Name(), err)
		content = domain.TextContent(fmt.Sprintf("Agent %s failed: %v", agent.Name(), err))
	}

	r.trace.Record(domain.TraceEvent{Agent: agent.Name(), Query: query, Response: &content, At: time.Now()})

	return domain.Envelope{Responses: []domain.AgentResponse{{Agent: agent.Name(), Content: content}}}
}
