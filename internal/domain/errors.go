package domain

import "errors"

var (
	// ErrNoResults is returned when a search yields zero items
	ErrNoResults = errors.New("no search results found")

	// ErrSerperAPIFailure is returned when a Serper API request fails
	ErrSerperAPIFailure = errors.New("serper API request failed")

	// ErrLLMFailure is returned when a language-model call fails
	ErrLLMFailure = errors.New("language model request failed")

	// ErrUnknownCapability is returned for a tag outside the closed vocabulary
	ErrUnknownCapability = errors.New("unknown capability tag")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNoUsableRows is returned when no row in an uploaded table yields a query
	ErrNoUsableRows = errors.New("no row contains a usable Product Title, ASIN, or EAN")

	// ErrMissingColumns is returned when an uploaded table has none of the
	// identifier columns at all
	ErrMissingColumns = errors.New("file must contain at least one of: 'Product Title', 'ASIN', or 'EAN'")
)
