package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/reviews"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	ProductAPI struct {
		BaseURL      string `yaml:"base_url"`
		UniversalURL string `yaml:"universal_url"`
	} `yaml:"product_api"`
	Scraper struct {
		BaseURL  string            `yaml:"base_url"`
		MaxPages int               `yaml:"max_pages"`
		Products []reviews.Product `yaml:"products"`
	} `yaml:"scraper"`
	Data struct {
		Dir         string `yaml:"dir"`
		ResultsFile string `yaml:"results_file"`
	} `yaml:"data"`
}

// LoadConfig reads configuration from the specified YAML file. Select fields
// can be overridden through environment variables (PORT, DATA_DIR).
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		config.Server.Port = port
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		config.Data.Dir = dir
	}
	config.applyDefaults()

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8000"
	}
	if c.ProductAPI.BaseURL == "" {
		c.ProductAPI.BaseURL = "https://world.openbeautyfacts.org/api/v2"
	}
	if c.ProductAPI.UniversalURL == "" {
		c.ProductAPI.UniversalURL = "https://world.openfoodfacts.org/api/v2"
	}
	if c.Scraper.MaxPages <= 0 {
		c.Scraper.MaxPages = 2
	}
	if c.Data.Dir == "" {
		c.Data.Dir = "data/reviews"
	}
}

// ResultsPath is the location of the computed sentiment results file.
func (c *Config) ResultsPath() string {
	name := c.Data.ResultsFile
	if name == "" {
		name = "sentiment_results.csv"
	}
	return filepath.Join(c.Data.Dir, name)
}
