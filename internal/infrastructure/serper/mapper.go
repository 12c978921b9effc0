package serper

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/ManideepMuddagowni/veronica/internal/domain"
)

// Input type tags recorded on each mapped record
const (
	InputTypeProductName = "Product Name"
	InputTypeASIN        = "ASIN"
	InputTypeEAN         = "EAN"
)

// MapShoppingItem converts a raw Serper shopping item to our domain
// ProductRecord model. Serper's shopping endpoint carries no EAN or spec
// sheet, so those fields get stable placeholders.
func MapShoppingItem(item domain.SerperShoppingItem, country string) domain.ProductRecord {
	record := domain.ProductRecord{
		Title:          item.Title,
		Source:         item.Source,
		Link:           item.Link,
		Price:          item.Price,
		ImageURL:       item.ImageURL,
		ProductID:      item.ProductID,
		Category:       item.Category,
		Description:    item.Description,
		ProductCode:    productCode(item.Title),
		TechnicalSpecs: "Specs not available in Serper shopping API.",
		InputType:      InputTypeProductName,
		Country:        strings.ToUpper(country),
	}

	if record.Price == "" {
		record.Price = "N/A"
	}
	if record.ImageURL == "" {
		record.ImageURL = item.Thumbnail
	}
	if record.Category == "" {
		record.Category = "General"
	}
	if record.Description == "" {
		record.Description = item.Title
	}
	if item.Rating > 0 {
		record.Rating = strconv.FormatFloat(item.Rating, 'f', -1, 64)
	} else {
		record.Rating = "N/A"
	}
	if item.RatingCount > 0 {
		record.RatingCount = strconv.Itoa(item.RatingCount)
	} else {
		record.RatingCount = "N/A"
	}
	if item.Position > 0 {
		record.Position = strconv.Itoa(item.Position)
	}

	return record
}

// MapOrganicResult converts the top organic web hit for an ASIN/EAN code into
// a seed ProductRecord. Web search only yields title/snippet/link; everything
// price-shaped is filled by a follow-up shopping search.
func MapOrganicResult(code string, result domain.SerperOrganicResult, country string) domain.ProductRecord {
	return domain.ProductRecord{
		Title:          result.Title,
		EAN:            code,
		ProductCode:    productCode(result.Title),
		Category:       "Unknown",
		Price:          "Not available",
		Description:    result.Snippet,
		Link:           result.Link,
		TechnicalSpecs: "Not available in web search.",
		InputType:      DetectCodeType(code),
		Country:        strings.ToUpper(country),
	}
}

// DetectCodeType tags an identifier as EAN (8 or 13 digits) or ASIN.
func DetectCodeType(code string) string {
	if len(code) == 8 || len(code) == 13 {
		return InputTypeEAN
	}
	return InputTypeASIN
}

// productCode derives a stable synthetic code from a product title, capped at
// 20 digits. Serper has no native product code field.
func productCode(title string) string {
	h := fnv.New64a()
	h.Write([]byte(title))
	code := fmt.Sprintf("%d", h.Sum64())
	if len(code) > 20 {
		code = code[:20]
	}
	return code
}
