package domain

import "fmt"

// Capability identifies which downstream agent should process a query.
// The set is closed: agents are bound to capabilities at startup and the
// classifier may only emit tags from this vocabulary.
type Capability string

const (
	// CapabilityShopping handles catalog/price lookups and SEO generation.
	CapabilityShopping Capability = "shopping"
	// CapabilityWebShopping handles web discovery for identifiers and
	// unlisted items, enriched with shopping results.
	CapabilityWebShopping Capability = "web_shopping"
)

// ParseCapability validates a raw tag against the closed vocabulary.
func ParseCapability(tag string) (Capability, error) {
	switch Capability(tag) {
	case CapabilityShopping, CapabilityWebShopping:
		return Capability(tag), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCapability, tag)
}

// Classification is the outcome of intent classification. On success,
// Capabilities is a non-empty ordered list; the head tag is the one routed
// to. On failure Capabilities is empty and FallbackReason says why, so the
// distinction between "model disagreed" and "model output was garbage" stays
// inspectable. Collapsing a failure to the default capability happens at the
// router boundary, not here.
type Classification struct {
	Capabilities   []Capability
	FallbackReason string
}

// Failed reports whether classification produced no usable capability list.
func (c Classification) Failed() bool {
	return len(c.Capabilities) == 0
}
