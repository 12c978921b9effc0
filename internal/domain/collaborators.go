package domain

import "context"

// SearchClient defines the interface for the Serper search provider.
type SearchClient interface {
	SearchShopping(ctx context.Context, query string) (*SerperShoppingResponse, error)
	SearchWeb(ctx context.Context, query string) (*SerperSearchResponse, error)
}

// ChatClient defines the interface for a chat-completion language model.
// Responses are raw text; callers own any parsing of the reply.
type ChatClient interface {
	Complete(ctx context.Context, system, user string, temperature float32) (string, error)
}

// Agent is one capability handler. Run must not panic; internal failures are
// surfaced as explanatory text or error records inside the returned Content.
// A returned error is a last resort for agents that cannot even produce
// content, and the router folds it into a textual response.
type Agent interface {
	Name() string
	Run(ctx context.Context, query string) (Content, error)
}
