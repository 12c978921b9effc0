package domain

import (
	"encoding/json"
	"sort"
)

// Content is what a capability agent produced for one query: either free text
// or a list of product records. Exactly one side is populated.
type Content struct {
	Text    string
	Records []ProductRecord
}

// TextContent wraps a plain-text agent reply.
func TextContent(text string) Content {
	return Content{Text: text}
}

// RecordContent wraps a list of product records.
func RecordContent(records []ProductRecord) Content {
	return Content{Records: records}
}

// IsText reports whether the content is a textual reply.
func (c Content) IsText() bool {
	return c.Records == nil
}

// MarshalJSON emits a bare string for text content and an array for records,
// matching the wire shape chat clients render.
func (c Content) MarshalJSON() ([]byte, error) {
	if c.IsText() {
		return json.Marshal(c.Text)
	}
	return json.Marshal(c.Records)
}

// UnmarshalJSON accepts the string form, the array form, and a mapping form
// whose values may hold nested record lists. The mapping form shows up in
// payloads produced by older clients that grouped records under named keys.
func (c *Content) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*c = Content{Text: text}
		return nil
	}

	var records []ProductRecord
	if err := json.Unmarshal(data, &records); err == nil {
		*c = Content{Records: records}
		return nil
	}

	var grouped map[string]json.RawMessage
	if err := json.Unmarshal(data, &grouped); err != nil {
		return err
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	nested := []ProductRecord{}
	for _, key := range keys {
		var list []ProductRecord
		if err := json.Unmarshal(grouped[key], &list); err == nil {
			nested = append(nested, list...)
		}
	}
	*c = Content{Records: nested}
	return nil
}

// AgentResponse pairs an agent's display name with what it returned.
type AgentResponse struct {
	Agent   string  `json:"agent"`
	Content Content `json:"content"`
}

// Envelope is the uniform wrapper every routing call returns. It is always
// present, even on failure: errors surface as human-readable text content,
// never as a raised fault. Responses preserve dispatch order.
type Envelope struct {
	Responses []AgentResponse `json:"responses"`
}

// TextEnvelope builds a single-response envelope carrying a text message.
func TextEnvelope(agent, text string) Envelope {
	return Envelope{Responses: []AgentResponse{{Agent: agent, Content: TextContent(text)}}}
}

// Products collects every product record nested in any response's content
// into one flat list, in response order.
func (e Envelope) Products() []ProductRecord {
	var products []ProductRecord
	for _, resp := range e.Responses {
		products = append(products, resp.Content.Records...)
	}
	return products
}
