package web

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content/*.yaml
var contentFS embed.FS

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Service is one offering on the services page.
type Service struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
}

// PricingTier is one package on the pricing page.
type PricingTier struct {
	Name        string   `yaml:"name"`
	Price       string   `yaml:"price"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Highlighted bool     `yaml:"highlighted"`
}

// Content is the static page copy that doesn't live in the backend.
type Content struct {
	Services []Service     `yaml:"services"`
	Pricing  []PricingTier `yaml:"pricing"`
}

// LoadContent parses the embedded page content.
func LoadContent() (*Content, error) {
	var content Content

	data, err := contentFS.ReadFile("content/services.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read services content: %w", err)
	}
	if err := yaml.Unmarshal(data, &content.Services); err != nil {
		return nil, fmt.Errorf("failed to parse services content: %w", err)
	}

	data, err = contentFS.ReadFile("content/pricing.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing content: %w", err)
	}
	if err := yaml.Unmarshal(data, &content.Pricing); err != nil {
		return nil, fmt.Errorf("failed to parse pricing content: %w", err)
	}

	return &content, nil
}
