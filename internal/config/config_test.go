package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
scraper:
  base_url: "https://reviews.example"
  max_pages: 3
  products:
    - id: "B000A"
      name: "Cleanser"
data:
  dir: "testdata/reviews"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Scraper.MaxPages != 3 {
		t.Errorf("MaxPages = %d, want 3", cfg.Scraper.MaxPages)
	}
	if len(cfg.Scraper.Products) != 1 || cfg.Scraper.Products[0].ID != "B000A" {
		t.Errorf("Products = %+v", cfg.Scraper.Products)
	}
	if cfg.ResultsPath() != filepath.Join("testdata/reviews", "sentiment_results.csv") {
		t.Errorf("ResultsPath = %q", cfg.ResultsPath())
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "server: {}\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("default Port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.ProductAPI.BaseURL == "" || cfg.ProductAPI.UniversalURL == "" {
		t.Error("product API defaults not applied")
	}
	if cfg.Scraper.MaxPages != 2 {
		t.Errorf("default MaxPages = %d, want 2", cfg.Scraper.MaxPages)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"9000\"\n")

	t.Setenv("PORT", "7777")
	t.Setenv("DATA_DIR", "/tmp/elsewhere")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "7777" {
		t.Errorf("Port = %q, want env override 7777", cfg.Server.Port)
	}
	if cfg.Data.Dir != "/tmp/elsewhere" {
		t.Errorf("Data.Dir = %q, want env override", cfg.Data.Dir)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
