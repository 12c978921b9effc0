package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ProductRecord is a semi-structured description of one product listing.
// The well-known fields cover everything the search providers return today;
// anything else lands in Extra. Consumers must tolerate empty fields and must
// not assume a fixed column set.
type ProductRecord struct {
	Title          string
	Source         string
	Link           string
	Price          string
	Rating         string
	RatingCount    string
	ImageURL       string
	ProductID      string
	Position       string
	Category       string
	Description    string
	EAN            string
	ProductCode    string
	TechnicalSpecs string
	InputType      string
	Country        string
	PageLink       string
	Note           string
	Err            string

	// Extra holds fields outside the well-known set, keyed by column name.
	Extra map[string]string
}

// wellKnownColumns fixes the canonical column order for tabular export.
// Names match the headers the search mappers and export files use.
var wellKnownColumns = []struct {
	name string
	get  func(*ProductRecord) string
	set  func(*ProductRecord, string)
}{
	{"Product Title", func(r *ProductRecord) string { return r.Title }, func(r *ProductRecord, v string) { r.Title = v }},
	{"Source", func(r *ProductRecord) string { return r.Source }, func(r *ProductRecord, v string) { r.Source = v }},
	{"Link", func(r *ProductRecord) string { return r.Link }, func(r *ProductRecord, v string) { r.Link = v }},
	{"Price", func(r *ProductRecord) string { return r.Price }, func(r *ProductRecord, v string) { r.Price = v }},
	{"Rating", func(r *ProductRecord) string { return r.Rating }, func(r *ProductRecord, v string) { r.Rating = v }},
	{"Rating Count", func(r *ProductRecord) string { return r.RatingCount }, func(r *ProductRecord, v string) { r.RatingCount = v }},
	{"Image URL", func(r *ProductRecord) string { return r.ImageURL }, func(r *ProductRecord, v string) { r.ImageURL = v }},
	{"Product ID", func(r *ProductRecord) string { return r.ProductID }, func(r *ProductRecord, v string) { r.ProductID = v }},
	{"Position", func(r *ProductRecord) string { return r.Position }, func(r *ProductRecord, v string) { r.Position = v }},
	{"Category", func(r *ProductRecord) string { return r.Category }, func(r *ProductRecord, v string) { r.Category = v }},
	{"Description", func(r *ProductRecord) string { return r.Description }, func(r *ProductRecord, v string) { r.Description = v }},
	{"EAN", func(r *ProductRecord) string { return r.EAN }, func(r *ProductRecord, v string) { r.EAN = v }},
	{"Product Code", func(r *ProductRecord) string { return r.ProductCode }, func(r *ProductRecord, v string) { r.ProductCode = v }},
	{"technical specs", func(r *ProductRecord) string { return r.TechnicalSpecs }, func(r *ProductRecord, v string) { r.TechnicalSpecs = v }},
	{"Input Type", func(r *ProductRecord) string { return r.InputType }, func(r *ProductRecord, v string) { r.InputType = v }},
	{"Country", func(r *ProductRecord) string { return r.Country }, func(r *ProductRecord, v string) { r.Country = v }},
	{"Product Page Link", func(r *ProductRecord) string { return r.PageLink }, func(r *ProductRecord, v string) { r.PageLink = v }},
	{"Note", func(r *ProductRecord) string { return r.Note }, func(r *ProductRecord, v string) { r.Note = v }},
	{"Error", func(r *ProductRecord) string { return r.Err }, func(r *ProductRecord, v string) { r.Err = v }},
}

// Value returns the field stored under the given column name, falling back to
// Extra for columns outside the well-known set. Missing columns yield "".
func (r *ProductRecord) Value(column string) string {
	for _, col := range wellKnownColumns {
		if col.name == column {
			return col.get(r)
		}
	}
	return r.Extra[column]
}

// SetValue stores a field under the given column name, routing unknown
// columns into Extra.
func (r *ProductRecord) SetValue(column, value string) {
	for _, col := range wellKnownColumns {
		if col.name == column {
			col.set(r, value)
			return
		}
	}
	if r.Extra == nil {
		r.Extra = make(map[string]string)
	}
	r.Extra[column] = value
}

// ErrorRecord builds a record carrying only an explanatory error message.
func ErrorRecord(msg string) ProductRecord {
	return ProductRecord{Err: msg}
}

// FromMap builds a ProductRecord from an arbitrary string-keyed mapping,
// stringifying non-string values. Used when re-ingesting exported products.
func FromMap(fields map[string]any) ProductRecord {
	var r ProductRecord
	for key, value := range fields {
		switch v := value.(type) {
		case nil:
			r.SetValue(key, "")
		case string:
			r.SetValue(key, v)
		case float64:
			// JSON numbers decode as float64; keep integers unpadded.
			if v == float64(int64(v)) {
				r.SetValue(key, fmt.Sprintf("%d", int64(v)))
			} else {
				r.SetValue(key, fmt.Sprintf("%g", v))
			}
		default:
			r.SetValue(key, fmt.Sprint(v))
		}
	}
	return r
}

// MarshalJSON renders the record as a flat object containing every non-empty
// column, the same shape the export files use.
func (r ProductRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(wellKnownColumns)+len(r.Extra))
	for _, col := range wellKnownColumns {
		if v := col.get(&r); v != "" {
			out[col.name] = v
		}
	}
	for k, v := range r.Extra {
		out[k] = v
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the flat-object form produced by MarshalJSON.
func (r *ProductRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = FromMap(fields)
	return nil
}

// UnionColumns returns the union of columns present (non-empty in at least
// one record): well-known columns first in canonical order, then extra
// columns sorted by name. Absent columns render as empty cells downstream.
func UnionColumns(records []ProductRecord) []string {
	var columns []string
	for _, col := range wellKnownColumns {
		for i := range records {
			if col.get(&records[i]) != "" {
				columns = append(columns, col.name)
				break
			}
		}
	}
	extraSeen := make(map[string]bool)
	var extras []string
	for i := range records {
		for k := range records[i].Extra {
			if !extraSeen[k] {
				extraSeen[k] = true
				extras = append(extras, k)
			}
		}
	}
	sort.Strings(extras)
	return append(columns, extras...)
}
