package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fuelprice-validation/internal/api/models"
	"fuelprice-validation/internal/config"
	"fuelprice-validation/internal/report"

	"github.com/gin-gonic/gin"
)

func writeDataset(t *testing.T, root, name string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"ok_unleaded95.json": `{"historik":[{"dato":"2022-01-01"},{"dato":"2022-01-03"}]}`,
		"ok_diesel.json":     `{"historik":[{"dato":"2022-01-02"}]}`,
		"ok_octane100.json":  `{"historik":[]}`,
		"dynamo_s3_export.json": `{"Item":{"PK":{"S":"X#Unleaded95"},"SK":{"S":"Y#2022-01-01"}}}` + "\n" +
			`{"Item":{"PK":{"S":"X#Diesel"},"SK":{"S":"Y#2022-01-02"}}}` + "\n" +
			`{"Item":{"PK":{"S":"X#Kerosene"},"SK":{"S":"Y#2022-01-02"}}}` + "\n",
	}
	for n, body := range files {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func newRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	writeDataset(t, root, "2022-04-30")

	cfg := config.Default()
	cfg.DatasetsRoot = root
	cfg.Dataset.Dir = filepath.Join(root, "2022-04-30")

	store := report.NewStore(time.Hour)
	t.Cleanup(store.Close)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), NewValidationHandler(cfg, store, nil))
	return r, root
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, w.Body.String())
	}
	return v
}

func TestRunValidationDefaultDataset(t *testing.T) {
	r, _ := newRouter(t)

	w := do(r, http.MethodPost, "/api/v1/validations", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
	resp := decode[models.ValidationResponse](t, w)
	if resp.ID == "" {
		t.Fatal("missing id")
	}
	if len(resp.Lines) != 1 || resp.Lines[0] != "UNLEADED95 ok date 2022-01-03 not found in ddb" {
		t.Errorf("unexpected lines: %q", resp.Lines)
	}
	if resp.ExportLines != 3 || resp.Ignored != 1 {
		t.Errorf("export_lines=%d ignored=%d", resp.ExportLines, resp.Ignored)
	}
	if len(resp.Summary) != 3 {
		t.Errorf("summary rows = %d", len(resp.Summary))
	}

	w = do(r, http.MethodGet, "/api/v1/validations/"+resp.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: unexpected status: %d body=%s", w.Code, w.Body.String())
	}
	got := decode[models.ValidationResponse](t, w)
	if got.ID != resp.ID || len(got.Misses) != 1 {
		t.Errorf("stored report = %+v", got)
	}
}

func TestRunValidationNamedDataset(t *testing.T) {
	r, root := newRouter(t)
	writeDataset(t, root, "2022-05-31")

	w := do(r, http.MethodPost, "/api/v1/validations", `{"dataset":"2022-05-31"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}
	if resp := decode[models.ValidationResponse](t, w); resp.Dataset != "2022-05-31" {
		t.Errorf("dataset = %q", resp.Dataset)
	}
}

func TestRunValidationErrors(t *testing.T) {
	r, root := newRouter(t)

	bad := filepath.Join(root, "broken")
	writeDataset(t, root, "broken")
	if err := os.WriteFile(filepath.Join(bad, "ok_diesel.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"unknown dataset", `{"dataset":"1999-01-01"}`, http.StatusNotFound, "DATASET_NOT_FOUND"},
		{"traversal", `{"dataset":"../etc"}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"bad json", `{"dataset":`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"broken dataset", `{"dataset":"broken"}`, http.StatusUnprocessableEntity, "INVALID_DATASET"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/v1/validations", tt.body)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d body=%s", w.Code, tt.status, w.Body.String())
			}
			if resp := decode[models.ErrorResponse](t, w); resp.Error.Code != tt.code {
				t.Errorf("code = %s, want %s", resp.Error.Code, tt.code)
			}
		})
	}
}

func TestGetValidationNotFound(t *testing.T) {
	r, _ := newRouter(t)
	w := do(r, http.MethodGet, "/api/v1/validations/does-not-exist", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", w.Code)
	}
}

func TestDownloads(t *testing.T) {
	r, _ := newRouter(t)
	resp := decode[models.ValidationResponse](t, do(r, http.MethodPost, "/api/v1/validations", ""))

	w := do(r, http.MethodGet, "/api/v1/validations/"+resp.ID+"/report.csv", "")
	if w.Code != http.StatusOK {
		t.Fatalf("csv: unexpected status: %d", w.Code)
	}
	want := "fuel_type,label,date\nUnleaded95,UNLEADED95,2022-01-03\n"
	if w.Body.String() != want {
		t.Errorf("csv body = %q, want %q", w.Body.String(), want)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, resp.ID+".csv") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	w = do(r, http.MethodGet, "/api/v1/validations/"+resp.ID+"/report.xlsx", "")
	if w.Code != http.StatusOK {
		t.Fatalf("xlsx: unexpected status: %d", w.Code)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Error("xlsx body is not a zip archive")
	}
}

func TestListFuelTypes(t *testing.T) {
	r, _ := newRouter(t)
	w := do(r, http.MethodGet, "/api/v1/fuel-types", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	resp := decode[struct {
		FuelTypes []models.FuelTypeInfo `json:"fuel_types"`
	}](t, w)
	if len(resp.FuelTypes) != 3 {
		t.Fatalf("fuel types = %+v", resp.FuelTypes)
	}
	if resp.FuelTypes[1].Label != "DIESEL" || resp.FuelTypes[1].OkItemNumber != 231 {
		t.Errorf("diesel = %+v", resp.FuelTypes[1])
	}
}
