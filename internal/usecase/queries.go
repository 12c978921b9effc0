package usecase

import "strings"

// Query phrasings shared by the batch runner and the agents. The agents strip
// these prefixes back off to recover the bare subject, so free-text chat and
// batch-derived queries take the same path.
const (
	identifierQueryPrefix = "Find product info for identifier:"
	titleQueryPrefix      = "Find product info for product title:"
	seoQueryPrefix        = "Generate SEO content for the following product:"
	seoQuerySuffix        = "Return JSON with keys: meta_title, description, keywords, category."
)

// IdentifierQuery builds the lookup query for an ASIN or EAN code.
func IdentifierQuery(code string) string {
	return identifierQueryPrefix + " " + code
}

// TitleQuery builds the lookup query for a product title.
func TitleQuery(title string) string {
	return titleQueryPrefix + " " + title
}

// SEOQuery builds the metadata-generation query for a product name.
func SEOQuery(productName string) string {
	return seoQueryPrefix + "\n" + productName + "\n" + seoQuerySuffix
}

// querySubject strips the known query prefixes, returning the bare
// identifier, title, or original text. Matching is case-insensitive.
func querySubject(query string) string {
	trimmed := strings.TrimSpace(query)
	lower := strings.ToLower(trimmed)
	for _, prefix := range []string{identifierQueryPrefix, titleQueryPrefix} {
		if strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return strings.TrimSpace(trimmed[len(prefix):])
		}
	}
	return trimmed
}

// isSEOQuery reports whether the query asks for SEO metadata generation.
func isSEOQuery(query string) bool {
	lower := strings.ToLower(query)
	return strings.Contains(lower, "generate seo") || strings.Contains(lower, "seo content")
}

// seoSubject recovers the product name from an SEO generation query: the text
// between the request prefix and the JSON instruction suffix.
func seoSubject(query string) string {
	subject := strings.TrimSpace(query)
	lower := strings.ToLower(subject)
	if idx := strings.Index(lower, strings.ToLower(seoQueryPrefix)); idx >= 0 {
		subject = subject[idx+len(seoQueryPrefix):]
		lower = strings.ToLower(subject)
	}
	if idx := strings.Index(lower, "return json"); idx >= 0 {
		subject = subject[:idx]
	}
	return strings.TrimSpace(subject)
}
