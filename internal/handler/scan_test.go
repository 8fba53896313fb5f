package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBatchCheck(t *testing.T) {
	router := newTestRouter(stubLookup{})

	payload, _ := json.Marshal([]string{"Water", "Fragrance"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ingredients/batch-check", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Success bool `json:"success"`
		Results []struct {
			Ingredient  string `json:"ingredient"`
			SafetyScore int    `json:"safety_score"`
		} `json:"results"`
		AverageScore float64 `json:"average_score"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(body.Results))
	}
	if body.Results[0].SafetyScore != 8 {
		t.Errorf("water score = %d, want 8", body.Results[0].SafetyScore)
	}
	if body.Results[1].SafetyScore != 4 {
		t.Errorf("fragrance score = %d, want 4", body.Results[1].SafetyScore)
	}
	if body.AverageScore != 6.0 {
		t.Errorf("average = %v, want 6.0", body.AverageScore)
	}
}

func TestBatchCheckRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(stubLookup{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ingredients/batch-check", bytes.NewReader([]byte(`{"nope": 1}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestExtractText(t *testing.T) {
	router := newTestRouter(stubLookup{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "label.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("fake image bytes")); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ocr/extract-text", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Success     bool     `json:"success"`
		Filename    string   `json:"filename"`
		Ingredients []string `json:"ingredients"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Filename != "label.jpg" {
		t.Errorf("Filename = %q", body.Filename)
	}
	if len(body.Ingredients) == 0 {
		t.Error("stub extractor returned no ingredients")
	}
}

func TestExtractTextRequiresFile(t *testing.T) {
	router := newTestRouter(stubLookup{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ocr/extract-text", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
