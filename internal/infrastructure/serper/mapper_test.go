package serper

import (
	"testing"

	"github.com/ManideepMuddagowni/veronica/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapShoppingItem(t *testing.T) {
	t.Run("maps all provided fields", func(t *testing.T) {
		item := domain.SerperShoppingItem{
			Title:       "BenQ PD2705Q Monitor",
			Source:      "Amazon",
			Link:        "https://amazon.com/dp/B087GLPJGJ",
			Price:       "$299.00",
			Rating:      4.5,
			RatingCount: 1234,
			ImageURL:    "https://img.example.com/1.jpg",
			ProductID:   "123456",
			Position:    2,
		}

		record := MapShoppingItem(item, "us")

		assert.Equal(t, "BenQ PD2705Q Monitor", record.Title)
		assert.Equal(t, "Amazon", record.Source)
		assert.Equal(t, "$299.00", record.Price)
		assert.Equal(t, "4.5", record.Rating)
		assert.Equal(t, "1234", record.RatingCount)
		assert.Equal(t, "https://img.example.com/1.jpg", record.ImageURL)
		assert.Equal(t, "2", record.Position)
		assert.Equal(t, "General", record.Category)
		assert.Equal(t, "BenQ PD2705Q Monitor", record.Description, "description falls back to title")
		assert.Equal(t, InputTypeProductName, record.InputType)
		assert.Equal(t, "US", record.Country)
		assert.NotEmpty(t, record.ProductCode)
	})

	t.Run("fills placeholders for missing fields", func(t *testing.T) {
		record := MapShoppingItem(domain.SerperShoppingItem{Title: "Widget", Thumbnail: "thumb.jpg"}, "de")

		assert.Equal(t, "N/A", record.Price)
		assert.Equal(t, "N/A", record.Rating)
		assert.Equal(t, "N/A", record.RatingCount)
		assert.Equal(t, "thumb.jpg", record.ImageURL, "image falls back to thumbnail")
		assert.Equal(t, "DE", record.Country)
	})

	t.Run("product code is stable and bounded", func(t *testing.T) {
		a := MapShoppingItem(domain.SerperShoppingItem{Title: "Same Title"}, "us")
		b := MapShoppingItem(domain.SerperShoppingItem{Title: "Same Title"}, "us")

		assert.Equal(t, a.ProductCode, b.ProductCode)
		assert.LessOrEqual(t, len(a.ProductCode), 20)
	})
}

func TestMapOrganicResult(t *testing.T) {
	result := domain.SerperOrganicResult{
		Title:   "LEGO 42115 Technic Lamborghini",
		Link:    "https://example.com/lego",
		Snippet: "1:8 scale model building kit",
	}

	record := MapOrganicResult("4006381333931", result, "us")

	assert.Equal(t, "LEGO 42115 Technic Lamborghini", record.Title)
	assert.Equal(t, "4006381333931", record.EAN)
	assert.Equal(t, "Unknown", record.Category)
	assert.Equal(t, "Not available", record.Price)
	assert.Equal(t, "1:8 scale model building kit", record.Description)
	assert.Equal(t, "https://example.com/lego", record.Link)
	assert.Equal(t, InputTypeEAN, record.InputType)
}

func TestDetectCodeType(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"4006381333931", InputTypeEAN}, // 13 digits
		{"40063813", InputTypeEAN},      // 8 digits
		{"B087GLPJGJ", InputTypeASIN},   // 10 chars
		{"B000123456X", InputTypeASIN},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectCodeType(tt.code))
		})
	}
}
