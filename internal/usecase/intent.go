package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/ManideepMuddagowni/veronica/internal/domain"
)

// Package-level compiled identifier patterns
var (
	// asinPattern matches a 10-character alphanumeric token on the
	// uppercased query
	asinPattern = regexp.MustCompile(`\b[A-Z0-9]{10}\b`)
	// eanPattern matches a 13-digit token
	eanPattern = regexp.MustCompile(`\b\d{13}\b`)
)

const intentSystemPrompt = `You are an intent classification agent that determines which downstream agent(s) should handle a product-related query.

Available agents:
- shopping: Handles product information queries (pricing, availability, specifications, comparisons, model numbers) and SEO content generation (product descriptions, meta titles, tags, categorization).
- web_shopping: Handles queries that require searching the web to retrieve missing or hard-to-find product data (rare products, unlisted SKUs, external reviews).

Classification Rules:
- If the query is about product information or SEO generation (product description, technical description, meta title, categorization), respond with: {"agents": ["shopping"]}
- If the query requires online product discovery or data not available internally, respond with: {"agents": ["web_shopping"]}
- If both SEO generation and external product lookup are needed, respond with: {"agents": ["shopping", "web_shopping"]}

Important:
- ONLY return a JSON object in this format: {"agents": ["shopping"]}
- Do NOT include any explanation, comments, markdown, or extra text.
- Use only the agent names listed above. No other agents are allowed.`

// IntentClassifier maps a free-text query to an ordered capability list.
// Identifier-bearing queries short-circuit to web_shopping without touching
// the model: catalog search does not resolve raw codes, and models are
// unreliable at recognizing them.
type IntentClassifier struct {
	chat        domain.ChatClient
	temperature float32
}

// NewIntentClassifier creates a classifier backed by the given chat client.
func NewIntentClassifier(chat domain.ChatClient, temperature float32) *IntentClassifier {
	return &IntentClassifier{chat: chat, temperature: temperature}
}

// Classify never fails outward. An unusable model reply yields a failed
// Classification with the reason recorded; the router collapses that to the
// default capability.
func (c *IntentClassifier) Classify(ctx context.Context, query string) domain.Classification {
	if asinPattern.MatchString(strings.ToUpper(query)) || eanPattern.MatchString(query) {
		return domain.Classification{Capabilities: []domain.Capability{domain.CapabilityWebShopping}}
	}

	raw, err := c.chat.Complete(ctx, intentSystemPrompt, "Product query: "+query, c.temperature)
	if err != nil {
		log.Printf("[intent] model call failed: %v", err)
		return domain.Classification{FallbackReason: fmt.Sprintf("model call failed: %v", err)}
	}

	return parseClassification(raw)
}

// parseClassification validates the model's raw reply against the strict
// {"agents": [...]} contract.
func parseClassification(raw string) domain.Classification {
	var reply struct {
		Agents []string `json:"agents"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &reply); err != nil {
		log.Printf("[intent] unparseable model reply: %v", err)
		return domain.Classification{FallbackReason: fmt.Sprintf("unparseable model reply: %v", err)}
	}
	if reply.Agents == nil {
		log.Printf("[intent] model reply missing agents key")
		return domain.Classification{FallbackReason: "model reply missing agents key"}
	}
	if len(reply.Agents) == 0 {
		log.Printf("[intent] model reply has empty agents list")
		return domain.Classification{FallbackReason: "model reply has empty agents list"}
	}

	capabilities := make([]domain.Capability, 0, len(reply.Agents))
	for _, tag := range reply.Agents {
		capability, err := domain.ParseCapability(tag)
		if err != nil {
			log.Printf("[intent] %v", err)
			return domain.Classification{FallbackReason: err.Error()}
		}
		capabilities = append(capabilities, capability)
	}

	return domain.Classification{Capabilities: capabilities}
}
