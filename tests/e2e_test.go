//go:build integration

package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alopes/diagnostico-juridico/internal/analysis"
	"github.com/alopes/diagnostico-juridico/internal/catalog"
	"github.com/alopes/diagnostico-juridico/internal/server"
	"github.com/alopes/diagnostico-juridico/internal/store"
)

// startServer brings up the full HTTP stack on a real listener with a
// fresh SQLite database and the local composer (no remote generator).
func startServer(t *testing.T) string {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "e2e.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	handler := server.NewServer(catalog.Default(), st, analysis.NewService(nil))
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := &http.Server{Handler: handler}
	go srv.Serve(ln)
	t.Cleanup(func() { srv.Close() })
	return "http://" + ln.Addr().String()
}

func postJSON(t *testing.T, url string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", &buf)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestQuestionnaireFlowEndToEnd(t *testing.T) {
	base := startServer(t)
	today := time.Now().UTC()

	// An active placement for slot 1; slots 2-4 stay vacant.
	status := postJSON(t, base+"/api/announcements", map[string]any{
		"image_url":  "https://cdn.example/parceiro.png",
		"position":   1,
		"valid_from": today.AddDate(0, 0, -7).Format(time.RFC3339),
		"valid_to":   today.AddDate(0, 0, 7).Format(time.RFC3339),
	}, nil)
	if status != 201 {
		t.Fatalf("create announcement status = %d", status)
	}

	var result struct {
		ID          string  `json:"id"`
		TotalPoints float64 `json:"total_points"`
		Urgency     string  `json:"urgency_level"`
		Report      string  `json:"report"`
		Segments    []struct {
			Kind         string          `json:"kind"`
			Slot         int             `json:"slot"`
			Announcement json.RawMessage `json:"announcement"`
		} `json:"segments"`
	}
	status = postJSON(t, base+"/api/analyze", map[string]any{
		"area_id": "trabalhista",
		"responses": []map[string]any{
			{"question_id": "trab_1", "answer": "sim_nada"},
			{"question_id": "trab_3", "answer": "sem_registro"},
			{"question_id": "trab_4", "answer": "sim_evidencias"},
			{"question_id": "trab_2", "answer": "frequente"},
			{"question_id": "trab_narrative", "answer": "trabalhei três anos sem registro e fui demitido sem receber nada"},
		},
		"full_name": "Maria da Silva",
		"email":     "maria@example.com",
		"whatsapp":  "11987654321",
	}, &result)
	if status != 200 {
		t.Fatalf("analyze status = %d", status)
	}

	// 20 + 20 + 20 + 18 = 78 points, high urgency.
	if result.TotalPoints != 78 || result.Urgency != "high" {
		t.Fatalf("score = %v/%s, want 78/high", result.TotalPoints, result.Urgency)
	}
	for _, want := range []string{
		"SUMÁRIO EXECUTIVO",
		"direito às verbas rescisórias (art. 477 da CLT)",
		"CHANCES DE ÊXITO: ALTA",
		"⚠️ URGENTE",
	} {
		if !strings.Contains(result.Report, want) {
			t.Errorf("report missing %q", want)
		}
	}

	filled, vacant := 0, 0
	for _, seg := range result.Segments {
		if seg.Kind != "ad_slot" {
			continue
		}
		if len(seg.Announcement) > 0 && string(seg.Announcement) != "null" {
			if seg.Slot != 1 {
				t.Errorf("slot %d unexpectedly filled", seg.Slot)
			}
			filled++
		} else {
			vacant++
		}
	}
	if filled != 1 || vacant != 3 {
		t.Fatalf("slots filled/vacant = %d/%d, want 1/3", filled, vacant)
	}

	// The diagnostic is retrievable with the stored report.
	resp, err := http.Get(fmt.Sprintf("%s/api/diagnostics/%s", base, result.ID))
	if err != nil {
		t.Fatalf("get diagnostic: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("get diagnostic status = %d", resp.StatusCode)
	}
	var rec struct {
		AreaID string `json:"area_id"`
		Report string `json:"report"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatal(err)
	}
	if rec.AreaID != "trabalhista" || rec.Report != result.Report {
		t.Fatal("stored diagnostic does not match analyze response")
	}
}
