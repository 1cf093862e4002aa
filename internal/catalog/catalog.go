// Package catalog holds the area/question configuration consumed by
// the scoring and report pipeline. The built-in catalog covers the
// three launch areas; deployments can override it with a JSON file.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/alopes/diagnostico-juridico/internal/diagnostic"
)

type Catalog struct {
	areas []diagnostic.LegalArea
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{areas: []diagnostic.LegalArea{
		trabalhistaArea(),
		consumidorArea(),
		previdenciarioArea(),
	}}
}

// Load reads a catalog override from path. A missing file falls back
// to the built-in catalog, mirroring how deployments start before any
// customization exists.
func Load(path string) (*Catalog, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var areas []diagnostic.LegalArea
	if err := json.Unmarshal(blob, &areas); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c := &Catalog{areas: areas}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Areas returns all configured areas in catalog order.
func (c *Catalog) Areas() []diagnostic.LegalArea {
	return c.areas
}

// Area returns the area with the given id.
func (c *Catalog) Area(id string) (diagnostic.LegalArea, bool) {
	for _, a := range c.areas {
		if a.ID == id {
			return a, true
		}
	}
	return diagnostic.LegalArea{}, false
}

func (c *Catalog) validate() error {
	for _, a := range c.areas {
		if a.ID == "" || a.Name == "" {
			return fmt.Errorf("catalog area missing id or name")
		}
		seen := map[string]bool{}
		for _, q := range a.Questions {
			if q.ID == "" {
				return fmt.Errorf("area %s: question missing id", a.ID)
			}
			if seen[q.ID] {
				return fmt.Errorf("area %s: duplicate question id %s", a.ID, q.ID)
			}
			seen[q.ID] = true
			choice := q.Type == diagnostic.QuestionSingleChoice || q.Type == diagnostic.QuestionMultiChoice
			if choice && len(q.Options) == 0 {
				return fmt.Errorf("area %s: question %s is choice-typed but has no options", a.ID, q.ID)
			}
			if !choice && len(q.Options) > 0 {
				return fmt.Errorf("area %s: question %s is free-text but has options", a.ID, q.ID)
			}
		}
	}
	return nil
}
