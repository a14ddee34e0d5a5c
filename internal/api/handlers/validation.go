package handlers

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"

	"fuelprice-validation/internal/api/models"
	"fuelprice-validation/internal/config"
	"fuelprice-validation/internal/data"
	"fuelprice-validation/internal/report"
	"fuelprice-validation/internal/validation"

	"github.com/gin-gonic/gin"
)

// SourceFactory builds a data source able to open the given URIs.
type SourceFactory func(c *gin.Context, uris []string) (data.Source, error)

// ValidationHandler runs dataset validations and serves stored reports
type ValidationHandler struct {
	cfg       *config.Config
	store     *report.Store
	newSource SourceFactory
}

// NewValidationHandler creates a new validation handler. A nil factory uses
// local files, and S3 when a dataset path is an s3:// URI.
func NewValidationHandler(cfg *config.Config, store *report.Store, newSource SourceFactory) *ValidationHandler {
	if newSource == nil {
		newSource = func(c *gin.Context, uris []string) (data.Source, error) {
			return data.NewSource(c.Request.Context(), uris...)
		}
	}
	return &ValidationHandler{cfg: cfg, store: store, newSource: newSource}
}

// RunValidation handles POST /api/v1/validations
func (h *ValidationHandler) RunValidation(c *gin.Context) {
	var req models.ValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	ds, err := h.cfg.ForDataset(req.Dataset)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	name := req.Dataset
	if name == "" {
		name = ds.Dir
	}

	src, err := h.newSource(c, ds.URIs())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "SOURCE_ERROR", err.Error())
		return
	}

	rep, err := validation.Run(c.Request.Context(), src, ds.Inputs())
	if err != nil {
		log.Printf("validation of %s failed: %v", name, err)
		if errors.Is(err, fs.ErrNotExist) {
			writeError(c, http.StatusNotFound, "DATASET_NOT_FOUND", err.Error())
			return
		}
		writeError(c, http.StatusUnprocessableEntity, "INVALID_DATASET", err.Error())
		return
	}

	stored := h.store.Put(name, rep)
	c.JSON(http.StatusCreated, toResponse(stored))
}

// GetValidation handles GET /api/v1/validations/:id
func (h *ValidationHandler) GetValidation(c *gin.Context) {
	stored, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toResponse(stored))
}

// DownloadCSV handles GET /api/v1/validations/:id/report.csv
func (h *ValidationHandler) DownloadCSV(c *gin.Context) {
	stored, ok := h.lookup(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "missing-"+stored.ID+".csv"))
	if err := report.WriteCSV(c.Writer, stored.Report); err != nil {
		log.Printf("error writing csv for %s: %v", stored.ID, err)
	}
}

// DownloadXLSX handles GET /api/v1/validations/:id/report.xlsx
func (h *ValidationHandler) DownloadXLSX(c *gin.Context) {
	stored, ok := h.lookup(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "missing-"+stored.ID+".xlsx"))
	if err := report.WriteXLSX(c.Writer, stored.Report); err != nil {
		log.Printf("error writing xlsx for %s: %v", stored.ID, err)
	}
}

func (h *ValidationHandler) lookup(c *gin.Context) (*report.Stored, bool) {
	id := c.Param("id")
	stored, ok := h.store.Get(id)
	if !ok {
		writeError(c, http.StatusNotFound, "REPORT_NOT_FOUND", fmt.Sprintf("no validation report with id %q", id))
		return nil, false
	}
	return stored, true
}

func toResponse(s *report.Stored) models.ValidationResponse {
	return models.ValidationResponse{
		ID:          s.ID,
		Dataset:     s.Dataset,
		CreatedAt:   s.CreatedAt,
		Summary:     s.Report.Summary,
		Misses:      s.Report.Misses,
		Lines:       s.Report.Lines(),
		ExportLines: s.Report.ExportLines,
		Ignored:     s.Report.Ignored,
	}
}

func writeError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: msg,
		},
	})
}
