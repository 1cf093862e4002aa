// Package analysis produces the diagnostic report text. A remote
// generator can enrich the report; the deterministic composer is the
// authoritative fallback, so report generation as a whole never fails.
package analysis

import (
	"context"
	"log"
	"strings"

	"github.com/alopes/diagnostico-juridico/internal/diagnostic"
	"github.com/alopes/diagnostico-juridico/internal/report"
)

// Input carries everything a generator needs to write a report.
type Input struct {
	Area        diagnostic.LegalArea
	Responses   []diagnostic.Response
	TotalPoints float64
	Urgency     diagnostic.UrgencyLevel
}

// Generator writes a full report from questionnaire data.
type Generator interface {
	Generate(ctx context.Context, in Input) (string, error)
}

// Service fronts an optional remote generator with the local
// composer. Remote failures are logged and absorbed.
type Service struct {
	remote Generator
}

// NewService wires the remote generator; pass nil to run fully local.
func NewService(remote Generator) *Service {
	return &Service{remote: remote}
}

// Generate returns the report text. The result always contains the
// full section structure: either the remote generator succeeded with
// a non-blank report, or the composer built one locally.
func (s *Service) Generate(ctx context.Context, in Input) string {
	if s.remote != nil {
		text, err := s.remote.Generate(ctx, in)
		if err != nil {
			log.Printf("analysis: remote generation failed, using local composer: %v", err)
		} else if strings.TrimSpace(text) == "" {
			log.Printf("analysis: remote generation returned empty report, using local composer")
		} else {
			return text
		}
	}
	return report.Compose(in.Area, in.Responses, in.TotalPoints, in.Urgency)
}
