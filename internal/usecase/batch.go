package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/ManideepMuddagowni/veronica/internal/domain"
	"github.com/ManideepMuddagowni/veronica/internal/tabular"
)

// Identifier columns consulted for per-row query derivation, in precedence
// order: ASIN > EAN > Product Title.
const (
	ColumnProductTitle = "Product Title"
	ColumnASIN         = "ASIN"
	ColumnEAN          = "EAN"
)

// BatchConfig holds configuration for the batch runner
type BatchConfig struct {
	// SkipUnusableRows drops rows with no identifier or title silently,
	// matching the historical behavior. When false, such rows produce an
	// explicit skipped outcome instead.
	SkipUnusableRows bool
	// MaxRows caps the number of processed rows; 0 means unlimited.
	MaxRows int
}

// RowOutcome is the result of replaying one table row through the router.
type RowOutcome struct {
	Row        int             `json:"row"`
	Query      string          `json:"query,omitempty"`
	Skipped    bool            `json:"skipped,omitempty"`
	SkipReason string          `json:"skipReason,omitempty"`
	Envelope   domain.Envelope `json:"envelope"`
}

// SEOResult is the per-row output of the SEO metadata batch. SkipReason is
// set only for unusable rows surfaced in explicit-skip mode.
type SEOResult struct {
	ProductTitle string `json:"Product Title"`
	MetaTitle    string `json:"Meta Title"`
	Description  string `json:"Description"`
	Keywords     string `json:"Keywords"`
	Category     string `json:"Category"`
	SkipReason   string `json:"Skip Reason,omitempty"`
}

// BatchRunner replays the routing logic across the rows of an uploaded
// table, one row at a time, preserving input order.
type BatchRunner struct {
	router *Router
	config BatchConfig
}

// NewBatchRunner creates a batch runner over the given router.
func NewBatchRunner(router *Router, config BatchConfig) *BatchRunner {
	return &BatchRunner{router: router, config: config}
}

// DeriveQuery builds the lookup query for one row by identifier precedence.
// Returns ok=false when the row has no usable value.
func DeriveQuery(row tabular.Row) (string, bool) {
	if asin := row.Value(ColumnASIN); asin != "" {
		return IdentifierQuery(asin), true
	}
	if ean := row.Value(ColumnEAN); ean != "" {
		return IdentifierQuery(ean), true
	}
	if title := row.Value(ColumnProductTitle); title != "" {
		return TitleQuery(title), true
	}
	return "", false
}

// Run processes every row in order. A table that yields zero queries fails as
// a whole with ErrNoUsableRows; anything after that is per-row: an unusable
// row is skipped (silently or explicitly per config) and a failed lookup
// becomes that row's envelope, never the batch's error.
func (b *BatchRunner) Run(ctx context.Context, table *tabular.Table) ([]RowOutcome, error) {
	if table == nil || len(table.Rows) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	if b.config.MaxRows > 0 && len(table.Rows) > b.config.MaxRows {
		return nil, fmt.Errorf("%w: file has %d rows, limit is %d", domain.ErrInvalidRequest, len(table.Rows), b.config.MaxRows)
	}

	usable := 0
	for _, row := range table.Rows {
		if _, ok := DeriveQuery(row); ok {
			usable++
		}
	}
	if usable == 0 {
		return nil, domain.ErrNoUsableRows
	}

	var outcomes []RowOutcome
	for i, row := range table.Rows {
		query, ok := DeriveQuery(row)
		if !ok {
			if b.config.SkipUnusableRows {
				log.Printf("[batch] row %d skipped: no usable identifier or title", i+1)
				continue
			}
			outcomes = append(outcomes, RowOutcome{
				Row:        i + 1,
				Skipped:    true,
				SkipReason: "no usable Product Title, ASIN, or EAN",
			})
			continue
		}

		log.Printf("[batch] row %d/%d: %s", i+1, len(table.Rows), query)
		outcomes = append(outcomes, RowOutcome{
			Row:      i + 1,
			Query:    query,
			Envelope: b.router.Route(ctx, query),
		})
	}

	return outcomes, nil
}

// RunSEO mirrors the row loop with a generation query per row. The envelope's
// content is expected to be a JSON string with the four metadata keys; a row
// whose reply does not parse keeps blank fields and the batch continues. A
// table with no usable titles fails as a whole like Run.
func (b *BatchRunner) RunSEO(ctx context.Context, table *tabular.Table) ([]SEOResult, error) {
	if table == nil || len(table.Rows) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	if !table.HasColumn(ColumnProductTitle) {
		return nil, fmt.Errorf("%w: SEO batch needs a '%s' column", domain.ErrMissingColumns, ColumnProductTitle)
	}
	if b.config.MaxRows > 0 && len(table.Rows) > b.config.MaxRows {
		return nil, fmt.Errorf("%w: file has %d rows, limit is %d", domain.ErrInvalidRequest, len(table.Rows), b.config.MaxRows)
	}

	usable := 0
	for _, row := range table.Rows {
		if row.Value(ColumnProductTitle) != "" {
			usable++
		}
	}
	if usable == 0 {
		return nil, domain.ErrNoUsableRows
	}

	var results []SEOResult
	for i, row := range table.Rows {
		title := row.Value(ColumnProductTitle)
		if title == "" {
			if b.config.SkipUnusableRows {
				log.Printf("[batch] SEO row %d skipped: empty product title", i+1)
				continue
			}
			results = append(results, SEOResult{
				ProductTitle: title,
				SkipReason:   "no usable Product Title",
			})
			continue
		}

		envelope := b.router.Route(ctx, SEOQuery(title))
		results = append(results, parseSEOEnvelope(title, envelope))
	}

	return results, nil
}

// parseSEOEnvelope extracts the metadata fields from the first textual
// response, leaving them blank when the reply is not the expected JSON.
func parseSEOEnvelope(title string, envelope domain.Envelope) SEOResult {
	result := SEOResult{ProductTitle: title}

	for _, resp := range envelope.Responses {
		if !resp.Content.IsText() {
			continue
		}
		var fields struct {
			MetaTitle   string `json:"meta_title"`
			Description string `json:"description"`
			Keywords    string `json:"keywords"`
			Category    string `json:"category"`
		}
		if err := json.Unmarshal([]byte(resp.Content.Text), &fields); err != nil {
			log.Printf("[batch] SEO reply for %q not parseable: %v", title, err)
			continue
		}
		result.MetaTitle = fields.MetaTitle
		result.Description = fields.Description
		result.Keywords = fields.Keywords
		result.Category = fields.Category
		break
	}

	return result
}

// FlattenOutcomes extracts every product record nested in any outcome into
// one flat list for export, preserving row order.
func FlattenOutcomes(outcomes []RowOutcome) []domain.ProductRecord {
	var products []domain.ProductRecord
	for _, outcome := range outcomes {
		products = append(products, outcome.Envelope.Products()...)
	}
	return products
}
