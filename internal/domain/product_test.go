package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAndSetValue(t *testing.T) {
	var r ProductRecord

	r.SetValue("Product Title", "Widget")
	r.SetValue("Price", "$9.99")
	r.SetValue("Warranty", "2 years")

	assert.Equal(t, "Widget", r.Title)
	assert.Equal(t, "$9.99", r.Price)
	assert.Equal(t, "2 years", r.Extra["Warranty"])

	assert.Equal(t, "Widget", r.Value("Product Title"))
	assert.Equal(t, "2 years", r.Value("Warranty"))
	assert.Equal(t, "", r.Value("No Such Column"))
}

func TestUnionColumns(t *testing.T) {
	t.Run("union of heterogeneous key sets", func(t *testing.T) {
		a := ProductRecord{Title: "Widget", Price: "$9.99"}
		b := ProductRecord{Title: "Gadget", Rating: "4.2"}
		b.SetValue("Warranty", "2 years")
		b.SetValue("Battery", "AA")

		columns := UnionColumns([]ProductRecord{a, b})

		// Well-known columns first in canonical order, extras sorted after.
		assert.Equal(t, []string{"Product Title", "Price", "Rating", "Battery", "Warranty"}, columns)
	})

	t.Run("empty fields contribute no columns", func(t *testing.T) {
		columns := UnionColumns([]ProductRecord{{Title: "Widget"}})
		assert.Equal(t, []string{"Product Title"}, columns)
	})

	t.Run("no records", func(t *testing.T) {
		assert.Empty(t, UnionColumns(nil))
	})
}

func TestProductRecordJSONRoundTrip(t *testing.T) {
	r := ProductRecord{Title: "Widget", Price: "$9.99", InputType: "Product Name"}
	r.SetValue("Warranty", "2 years")

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded ProductRecord
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "Widget", decoded.Title)
	assert.Equal(t, "$9.99", decoded.Price)
	assert.Equal(t, "Product Name", decoded.InputType)
	assert.Equal(t, "2 years", decoded.Extra["Warranty"])
}

func TestFromMap(t *testing.T) {
	r := FromMap(map[string]any{
		"Product Title": "Widget",
		"Position":      float64(3),
		"Rating":        4.5,
		"Custom":        true,
	})

	assert.Equal(t, "Widget", r.Title)
	assert.Equal(t, "3", r.Position, "integral JSON numbers stay unpadded")
	assert.Equal(t, "4.5", r.Rating)
	assert.Equal(t, "true", r.Extra["Custom"])
}

func TestErrorRecord(t *testing.T) {
	r := ErrorRecord("boom")
	assert.Equal(t, "boom", r.Err)
	assert.Equal(t, "boom", r.Value("Error"))
}
