package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ManideepMuddagowni/veronica/internal/domain"
	"github.com/ManideepMuddagowni/veronica/internal/infrastructure/serper"
)

const seoSystemPrompt = `You are an expert SEO content generator. You will be given a product name.

Your task is to generate STRICTLY and ONLY the following in raw JSON:

{
  "meta_title": "SEO optimized meta title",
  "description": "SEO-friendly technical description in 5 bullet points",
  "keywords": "comma-separated keywords",
  "category": "short category phrase"
}

DO NOT include commentary, markdown, or explanations. Only return valid JSON. Start directly with { and end with }.`

// ShoppingAgent answers catalog/price lookups via the shopping search index
// and SEO-generation requests via the language model. It never returns an
// error: failures become error records or explanatory text.
type ShoppingAgent struct {
	search      domain.SearchClient
	chat        domain.ChatClient
	country     string
	temperature float32
}

// NewShoppingAgent creates the shopping capability agent.
func NewShoppingAgent(search domain.SearchClient, chat domain.ChatClient, country string, seoTemperature float32) *ShoppingAgent {
	return &ShoppingAgent{search: search, chat: chat, country: country, temperature: seoTemperature}
}

// Name returns the agent's display name.
func (a *ShoppingAgent) Name() string { return "ShoppingAgent" }

// Run handles one query.
func (a *ShoppingAgent) Run(ctx context.Context, query string) (domain.Content, error) {
	if isSEOQuery(query) {
		return a.generateSEO(ctx, query), nil
	}

	productName := querySubject(query)
	if len(productName) < 3 {
		return domain.RecordContent([]domain.ProductRecord{
			domain.ErrorRecord("Product title not valid for shopping search."),
		}), nil
	}

	resp, err := a.search.SearchShopping(ctx, productName)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			return domain.RecordContent([]domain.ProductRecord{
				domain.ErrorRecord("No shopping results found."),
			}), nil
		}
		return domain.RecordContent([]domain.ProductRecord{
			domain.ErrorRecord(fmt.Sprintf("Serper shopping search failed: %v", err)),
		}), nil
	}

	records := make([]domain.ProductRecord, 0, len(resp.Shopping))
	for _, item := range resp.Shopping {
		records = append(records, serper.MapShoppingItem(item, a.country))
	}
	return domain.RecordContent(records), nil
}

// generateSEO produces the raw JSON metadata string for an SEO query. The
// reply is passed through as text; parsing happens at the consumer, which
// tolerates garbage per row.
func (a *ShoppingAgent) generateSEO(ctx context.Context, query string) domain.Content {
	productName := seoSubject(query)
	if productName == "" {
		return domain.TextContent("SEO generation needs a product name.")
	}

	raw, err := a.chat.Complete(ctx, seoSystemPrompt, "Product Title: "+productName, a.temperature)
	if err != nil {
		log.Printf("[shopping] SEO generation failed for %q: %v", productName, err)
		return domain.TextContent(fmt.Sprintf("SEO generation failed: %v", err))
	}
	return domain.TextContent(raw)
}

// WebShoppingAgent resolves identifier codes and unlisted items: a web search
// seeds a record from the top organic hit, the derived title drives a
// shopping search, and the shopping hits are enriched with the source page
// link. Each degradation step returns the partial record with a Note instead
// of failing.
type WebShoppingAgent struct {
	search  domain.SearchClient
	country string
}

// NewWebShoppingAgent creates the web_shopping capability agent.
func NewWebShoppingAgent(search domain.SearchClient, country string) *WebShoppingAgent {
	return &WebShoppingAgent{search: search, country: country}
}

// Name returns the agent's display name.
func (a *WebShoppingAgent) Name() string { return "WebShoppingAgent" }

// Run handles one query.
func (a *WebShoppingAgent) Run(ctx context.Context, query string) (domain.Content, error) {
	code := querySubject(query)

	webResp, err := a.search.SearchWeb(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			return domain.RecordContent([]domain.ProductRecord{
				domain.ErrorRecord("No results found for the code."),
			}), nil
		}
		return domain.RecordContent([]domain.ProductRecord{
			domain.ErrorRecord(fmt.Sprintf("Serper web search failed: %v", err)),
		}), nil
	}

	if len(webResp.Organic) == 0 {
		return domain.RecordContent([]domain.ProductRecord{
			domain.ErrorRecord("No results found for the code."),
		}), nil
	}

	seed := serper.MapOrganicResult(code, webResp.Organic[0], a.country)

	if len(seed.Title) < 3 {
		seed.Note = "No valid product title found for shopping search. Showing web search result only."
		return domain.RecordContent([]domain.ProductRecord{seed}), nil
	}

	shopResp, err := a.search.SearchShopping(ctx, seed.Title)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			seed.Note = "No shopping results found."
		} else {
			seed.Note = fmt.Sprintf("Serper shopping search failed: %v", err)
		}
		return domain.RecordContent([]domain.ProductRecord{seed}), nil
	}

	records := make([]domain.ProductRecord, 0, len(shopResp.Shopping))
	for _, item := range shopResp.Shopping {
		record := serper.MapShoppingItem(item, a.country)
		record.PageLink = seed.Link
		records = append(records, record)
	}
	return domain.RecordContent(records), nil
}
