package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ManideepMuddagowni/veronica/internal/domain"
	"github.com/ManideepMuddagowni/veronica/internal/export"
	"github.com/ManideepMuddagowni/veronica/internal/tabular"
	"github.com/ManideepMuddagowni/veronica/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	router *usecase.Router
	batch  *usecase.BatchRunner
}

// NewHandler creates a new HTTP handler
func NewHandler(router *usecase.Router, batch *usecase.BatchRunner) *Handler {
	return &Handler{router: router, batch: batch}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "veronica",
		"version": "1.0.0",
	})
}

// chatRequest is the body of a single-query chat call
type chatRequest struct {
	Query string `json:"query" binding:"required"`
}

// Chat routes one free-text product query and returns the response envelope
// plus the flattened product list for rendering and download.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	envelope := h.router.Route(c.Request.Context(), req.Query)
	products := envelope.Products()

	c.JSON(http.StatusOK, gin.H{
		"envelope": envelope,
		"products": products,
	})
}

// BatchLookup processes an uploaded CSV/XLSX of product rows through the
// router, one row at a time, and returns outcomes plus the flattened list.
func (h *Handler) BatchLookup(c *gin.Context) {
	table, ok := h.readUpload(c)
	if !ok {
		return
	}

	// Upfront validation before any row processing: documented column
	// names, checked case-sensitively.
	if !table.HasAnyColumn(usecase.ColumnProductTitle, usecase.ColumnASIN, usecase.ColumnEAN) {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingColumns.Error()})
		return
	}

	outcomes, err := h.batch.Run(c.Request.Context(), table)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	products := usecase.FlattenOutcomes(outcomes)
	c.JSON(http.StatusOK, gin.H{
		"rows":     len(table.Rows),
		"outcomes": outcomes,
		"products": products,
	})
}

// BatchSEO generates SEO metadata for each product title in an uploaded file.
func (h *Handler) BatchSEO(c *gin.Context) {
	table, ok := h.readUpload(c)
	if !ok {
		return
	}

	results, err := h.batch.RunSEO(c.Request.Context(), table)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rows":    len(table.Rows),
		"results": results,
	})
}

// exportRequest carries the flattened product list to materialize
type exportRequest struct {
	Products []domain.ProductRecord `json:"products" binding:"required"`
}

// exportFormats maps the URL format parameter to builder and content type
var exportFormats = map[string]struct {
	build       func([]domain.ProductRecord) ([]byte, error)
	contentType string
	filename    string
}{
	"csv":  {export.BuildCSV, "text/csv", "products.csv"},
	"xlsx": {export.BuildXLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "products.xlsx"},
	"json": {export.BuildJSON, "application/json", "products.json"},
}

// Export renders a posted product list as a downloadable CSV, XLSX, or JSON
// file. All three formats derive from the same flattened list.
func (h *Handler) Export(c *gin.Context) {
	format, ok := exportFormats[c.Param("format")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be one of: csv, xlsx, json"})
		return
	}

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "products list is required"})
		return
	}

	data, err := format.build(req.Products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+format.filename+`"`)
	c.Data(http.StatusOK, format.contentType, data)
}

// readUpload pulls the multipart "file" field and parses it into a table.
func (h *Handler) readUpload(c *gin.Context) (*tabular.Table, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return nil, false
	}
	defer file.Close()

	table, err := tabular.Read(fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file: " + err.Error()})
		return nil, false
	}

	return table, true
}
