package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alopes/diagnostico-juridico/internal/diagnostic"
)

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()
	if len(c.Areas()) != 3 {
		t.Fatalf("areas = %d, want 3", len(c.Areas()))
	}
	for _, a := range c.Areas() {
		var narratives, lawyers int
		for _, q := range a.Questions {
			if q.Type == diagnostic.QuestionFreeText {
				narratives++
				if q.Weight != 0 {
					t.Errorf("area %s: narrative question %s has weight %v, want 0", a.ID, q.ID, q.Weight)
				}
			}
			if strings.HasSuffix(q.ID, "_lawyer") {
				lawyers++
			}
			choice := q.Type == diagnostic.QuestionSingleChoice || q.Type == diagnostic.QuestionMultiChoice
			if choice && len(q.Options) == 0 {
				t.Errorf("area %s: question %s has no options", a.ID, q.ID)
			}
		}
		if narratives != 1 {
			t.Errorf("area %s: %d narrative questions, want 1", a.ID, narratives)
		}
		if lawyers != 1 {
			t.Errorf("area %s: %d lawyer questions, want 1", a.ID, lawyers)
		}
	}
}

func TestAreaLookup(t *testing.T) {
	c := Default()
	a, ok := c.Area("trabalhista")
	if !ok {
		t.Fatal("trabalhista area missing")
	}
	if _, ok := a.Question("trab_1"); !ok {
		t.Fatal("trab_1 missing from trabalhista")
	}
	if _, ok := c.Area("tributario"); ok {
		t.Fatal("unexpected area match")
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c.Areas()) != 3 {
		t.Fatalf("expected built-in catalog, got %d areas", len(c.Areas()))
	}
}

func TestLoadOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	blob := `[{"id":"familia","name":"Família","questions":[
		{"id":"fam_1","text":"Pergunta","type":"radio","weight":1,
		 "options":[{"label":"Sim","value":"sim","points":10}]}]}]`
	if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := c.Area("familia"); !ok {
		t.Fatal("familia area missing after override load")
	}
}

func TestLoadRejectsInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	// Choice question without options.
	blob := `[{"id":"x","name":"X","questions":[{"id":"q1","text":"t","type":"radio","weight":1}]}]`
	if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}
