// render-report composes a diagnostic report offline from a saved
// questionnaire submission, without the HTTP server or any network
// dependency. Useful for inspecting composer output and for batch
// PDF generation.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/alopes/diagnostico-juridico/internal/catalog"
	"github.com/alopes/diagnostico-juridico/internal/diagnostic"
	"github.com/alopes/diagnostico-juridico/internal/render"
	"github.com/alopes/diagnostico-juridico/internal/report"
)

type submission struct {
	AreaID    string                `json:"area_id"`
	Responses []diagnostic.Response `json:"responses"`
}

func main() {
	var (
		inputPath   = flag.String("input", "", "Path to submission JSON ({area_id, responses})")
		outputPath  = flag.String("output", "", "Path to write report text (defaults to stdout)")
		htmlPath    = flag.String("html-output", "", "Optional path to write resolved HTML")
		pdfPath     = flag.String("pdf-output", "", "Optional path to write PDF (requires a local Chromium)")
		catalogPath = flag.String("catalog", "", "Optional JSON catalog override")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input")
	}

	in, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	var sub submission
	if err := json.Unmarshal(in, &sub); err != nil {
		log.Fatalf("decode input JSON: %v", err)
	}

	cat := catalog.Default()
	if *catalogPath != "" {
		if cat, err = catalog.Load(*catalogPath); err != nil {
			log.Fatalf("load catalog: %v", err)
		}
	}
	area, ok := cat.Area(sub.AreaID)
	if !ok {
		log.Fatalf("unknown area: %s", sub.AreaID)
	}

	responses := diagnostic.Deduplicate(sub.Responses)
	score := diagnostic.CalculateScore(area.Questions, responses)
	text := report.Compose(area, responses, score.TotalPoints, score.Urgency)

	if err := writeText(*outputPath, text); err != nil {
		log.Fatalf("write report: %v", err)
	}

	if *htmlPath != "" {
		html, err := render.ReportHTML(text, nil)
		if err != nil {
			log.Fatalf("render html: %v", err)
		}
		if err := os.WriteFile(*htmlPath, []byte(html), 0o644); err != nil {
			log.Fatalf("write html: %v", err)
		}
	}

	if *pdfPath != "" {
		pdf, err := render.NewChromiumPDFRenderer().Render(context.Background(), text, nil)
		if err != nil {
			log.Fatalf("render pdf: %v", err)
		}
		if err := os.WriteFile(*pdfPath, pdf, 0o644); err != nil {
			log.Fatalf("write pdf: %v", err)
		}
	}
}

func writeText(path, text string) error {
	if path == "" {
		_, err := fmt.Print(text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}
