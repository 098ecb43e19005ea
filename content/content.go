// Package content defines the site copy and loads it from embedded YAML.
// Everything drawn on the page comes from here; layout and animation never
// hardcode copy.
package content

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// NavItem is one navigation link targeting a section by name
type NavItem struct {
	Label   string `yaml:"label"`
	Section string `yaml:"section"`
}

// Hero is the banner copy at the top of the page
type Hero struct {
	Kicker   string `yaml:"kicker"`
	Headline string `yaml:"headline"`
	Subline  string `yaml:"subline"`
	CTA      string `yaml:"cta"`
}

// Service is one offering card
type Service struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Stat is one entry in the statistics strip
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Project is one portfolio row
type Project struct {
	Name    string `yaml:"name"`
	Client  string `yaml:"client"`
	Summary string `yaml:"summary"`
}

// About is the company blurb
type About struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
}

// Contact is the form section copy
type Contact struct {
	Heading      string `yaml:"heading"`
	Subline      string `yaml:"subline"`
	SubmitLabel  string `yaml:"submit_label"`
	Confirmation string `yaml:"confirmation"`
}

// Footer is the closing strip
type Footer struct {
	Tagline string   `yaml:"tagline"`
	Links   []string `yaml:"links"`
	Legal   string   `yaml:"legal"`
}

// Site is the complete page content
type Site struct {
	Brand     string    `yaml:"brand"`
	Nav       []NavItem `yaml:"nav"`
	Hero      Hero      `yaml:"hero"`
	Services  []Service `yaml:"services"`
	Stats     []Stat    `yaml:"stats"`
	Portfolio []Project `yaml:"portfolio"`
	About     About     `yaml:"about"`
	Contact   Contact   `yaml:"contact"`
	Footer    Footer    `yaml:"footer"`
}

// Parse decodes and validates site content from YAML
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Load returns the embedded site content
func Load() (*Site, error) {
	return Parse(siteYAML)
}

// Validate checks the invariants the layout relies on
func (s *Site) Validate() error {
	if s.Brand == "" {
		return fmt.Errorf("site content: brand is required")
	}
	if s.Hero.Headline == "" {
		return fmt.Errorf("site content: hero headline is required")
	}
	if len(s.Services) == 0 {
		return fmt.Errorf("site content: at least one service is required")
	}
	if len(s.Stats) == 0 {
		return fmt.Errorf("site content: at least one stat is required")
	}
	for i, n := range s.Nav {
		if n.Label == "" || n.Section == "" {
			return fmt.Errorf("site content: nav item %d needs label and section", i)
		}
	}
	return nil
}
