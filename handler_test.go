package midgard

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHandlerServesCompiledPage(t *testing.T) {
	app := New(demoDocument(), WithStylesheet("/dist/site.css"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Expected HTML content type, got %q", ct)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<!doctype html>") {
		t.Error("Expected full HTML document")
	}
	if !strings.Contains(body, "<title>Acme</title>") {
		t.Error("Expected brand title")
	}
	if !strings.Contains(body, `href="/dist/site.css"`) {
		t.Error("Expected linked stylesheet")
	}
}

func TestHandlerInvalidDocumentReturns500(t *testing.T) {
	t.Setenv("MIDGARD_DEV", "")

	app := New(Document{Sections: []Section{Hero{Title: "Hi"}}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "meta.brand") {
		t.Error("Expected violation detail hidden outside dev mode")
	}
}

func TestHandlerShowsViolationInDevMode(t *testing.T) {
	t.Setenv("MIDGARD_DEV", "1")

	app := New(Document{Sections: []Section{Hero{Title: "Hi"}}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "meta.brand") {
		t.Error("Expected violation detail in dev mode")
	}
}

func TestExportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site", "index.html")

	if err := ExportFile(demoDocument(), path); err != nil {
		t.Fatalf("ExportFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading exported file failed: %v", err)
	}

	if !strings.Contains(string(data), "<!doctype html>") {
		t.Error("Expected full HTML document")
	}
	if !strings.Contains(string(data), "Ship landing pages from data") {
		t.Error("Expected hero content")
	}
}

func TestExportInvalidDocumentFails(t *testing.T) {
	err := Export(Document{}, io.Discard)
	if err == nil {
		t.Fatal("Expected SchemaViolation, got nil")
	}
}
