// Package server exposes the questionnaire engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/alopes/diagnostico-juridico/internal/analysis"
	"github.com/alopes/diagnostico-juridico/internal/catalog"
	"github.com/alopes/diagnostico-juridico/internal/diagnostic"
	"github.com/alopes/diagnostico-juridico/internal/render"
	"github.com/alopes/diagnostico-juridico/internal/store"
)

// ReportPDFRenderer prints a raw report, with slots resolved against
// the active announcements, as PDF bytes.
type ReportPDFRenderer interface {
	Render(ctx context.Context, report string, active []render.Announcement) ([]byte, error)
}

type Server struct {
	catalog  *catalog.Catalog
	store    *store.Store
	analysis *analysis.Service
	pdf      ReportPDFRenderer
}

func NewServer(c *catalog.Catalog, st *store.Store, svc *analysis.Service) http.Handler {
	return newServer(c, st, svc, render.NewChromiumPDFRenderer())
}

func newServer(c *catalog.Catalog, st *store.Store, svc *analysis.Service, pdf ReportPDFRenderer) http.Handler {
	s := &Server{catalog: c, store: st, analysis: svc, pdf: pdf}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/areas", s.handleAreas)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/diagnostics", s.handleDiagnostics)
	mux.HandleFunc("/api/diagnostics/", s.handleDiagnostic)
	mux.HandleFunc("/api/announcements", s.handleAnnouncements)
	mux.HandleFunc("/api/announcements/", s.handleAnnouncement)
	mux.HandleFunc("/api/announcements/active", s.handleActiveAnnouncements)
	mux.HandleFunc("/api/referrals", s.handleReferrals)
	mux.HandleFunc("/api/report-pdf", s.handleReportPDF)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

// --- areas ---

func (s *Server) handleAreas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, 200, map[string]any{"areas": s.catalog.Areas()})
}

// --- analyze ---

type analyzeRequest struct {
	AreaID    string                `json:"area_id"`
	Responses []diagnostic.Response `json:"responses"`
	FullName  string                `json:"full_name"`
	Email     string                `json:"email"`
	Whatsapp  string                `json:"whatsapp"`
}

type analyzeResponse struct {
	ID           string                  `json:"id"`
	TotalPoints  float64                 `json:"total_points"`
	Urgency      diagnostic.UrgencyLevel `json:"urgency_level"`
	UrgencyLabel string                  `json:"urgency_label"`
	Report       string                  `json:"report"`
	Segments     []render.Segment        `json:"segments"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid JSON body")
		return
	}
	area, ok := s.catalog.Area(req.AreaID)
	if !ok {
		writeError(w, 404, "unknown area: "+req.AreaID)
		return
	}
	if len(req.Responses) == 0 {
		writeError(w, 400, "no responses provided")
		return
	}
	if req.Email != "" && !diagnostic.ValidEmail(req.Email) {
		writeError(w, 400, "invalid email")
		return
	}
	if req.Whatsapp != "" && !diagnostic.ValidWhatsApp(req.Whatsapp) {
		writeError(w, 400, "invalid whatsapp number")
		return
	}

	// Re-answered questions keep only the latest answer.
	responses := diagnostic.Deduplicate(req.Responses)
	score := diagnostic.CalculateScore(area.Questions, responses)

	text := s.analysis.Generate(r.Context(), analysis.Input{
		Area:        area,
		Responses:   responses,
		TotalPoints: score.TotalPoints,
		Urgency:     score.Urgency,
	})

	active, err := s.store.ActiveAnnouncements(time.Now())
	if err != nil {
		log.Printf("analyze: active announcements: %v", err)
		active = nil
	}

	rec := store.DiagnosticRecord{
		ID:          store.NewID(),
		AreaID:      area.ID,
		FullName:    strings.TrimSpace(req.FullName),
		Email:       strings.TrimSpace(req.Email),
		Whatsapp:    diagnostic.FormatWhatsApp(req.Whatsapp),
		Responses:   responses,
		TotalPoints: score.TotalPoints,
		Urgency:     score.Urgency,
		Report:      text,
	}
	if err := s.store.SaveDiagnostic(rec); err != nil {
		log.Printf("analyze: save diagnostic: %v", err)
		writeError(w, 500, "failed to persist diagnostic")
		return
	}

	writeJSON(w, 200, analyzeResponse{
		ID:           rec.ID,
		TotalPoints:  score.TotalPoints,
		Urgency:      score.Urgency,
		UrgencyLabel: diagnostic.UrgencyLabel(score.Urgency),
		Report:       text,
		Segments:     render.Resolve(text, active),
	})
}

// --- diagnostics ---

func (s *Server) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	list, err := s.store.ListDiagnostics()
	if err != nil {
		log.Printf("list diagnostics: %v", err)
		writeError(w, 500, "failed to list diagnostics")
		return
	}
	writeJSON(w, 200, map[string]any{"diagnostics": list})
}

func (s *Server) handleDiagnostic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/diagnostics/")
	if id == "" {
		writeError(w, 400, "missing diagnostic id")
		return
	}
	rec, err := s.store.GetDiagnostic(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, 404, "diagnostic not found")
		return
	}
	if err != nil {
		log.Printf("get diagnostic: %v", err)
		writeError(w, 500, "failed to load diagnostic")
		return
	}
	writeJSON(w, 200, rec)
}

// --- announcements ---

func (s *Server) handleAnnouncements(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.store.ListAnnouncements()
		if err != nil {
			log.Printf("list announcements: %v", err)
			writeError(w, 500, "failed to list announcements")
			return
		}
		writeJSON(w, 200, map[string]any{"announcements": list})
	case http.MethodPost:
		var a render.Announcement
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			writeError(w, 400, "invalid JSON body")
			return
		}
		if a.ImageURL == "" {
			writeError(w, 400, "image_url is required")
			return
		}
		if a.ValidTo.Before(a.ValidFrom) {
			writeError(w, 400, "valid_to precedes valid_from")
			return
		}
		if a.ID == "" {
			a.ID = store.NewID()
		}
		if err := s.store.SaveAnnouncement(a); err != nil {
			writeError(w, 400, err.Error())
			return
		}
		writeJSON(w, 201, a)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleAnnouncement(w http.ResponseWriter, r *http.Request) {
	// The exact "/api/announcements/active" registration wins over this
	// subtree, so "active" never arrives here as an id.
	id := strings.TrimPrefix(r.URL.Path, "/api/announcements/")
	if id == "" {
		writeError(w, 400, "missing announcement id")
		return
	}
	switch r.Method {
	case http.MethodGet:
		a, err := s.store.GetAnnouncement(id)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, 404, "announcement not found")
			return
		}
		if err != nil {
			writeError(w, 500, "failed to load announcement")
			return
		}
		writeJSON(w, 200, a)
	case http.MethodDelete:
		err := s.store.DeleteAnnouncement(id)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, 404, "announcement not found")
			return
		}
		if err != nil {
			writeError(w, 500, "failed to delete announcement")
			return
		}
		writeJSON(w, 200, map[string]any{"deleted": id})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleActiveAnnouncements(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	active, err := s.store.ActiveAnnouncements(time.Now())
	if err != nil {
		log.Printf("active announcements: %v", err)
		writeError(w, 500, "failed to load active announcements")
		return
	}
	writeJSON(w, 200, map[string]any{"announcements": active})
}

// --- referrals ---

func (s *Server) handleReferrals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.store.ListReferrals()
		if err != nil {
			writeError(w, 500, "failed to list referrals")
			return
		}
		writeJSON(w, 200, map[string]any{"referrals": list})
	case http.MethodPost:
		var rec store.ReferralRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			writeError(w, 400, "invalid JSON body")
			return
		}
		if strings.TrimSpace(rec.ReferrerName) == "" || strings.TrimSpace(rec.ReferredName) == "" {
			writeError(w, 400, "referrer_name and referred_name are required")
			return
		}
		if rec.ReferredWhatsapp != "" && !diagnostic.ValidWhatsApp(rec.ReferredWhatsapp) {
			writeError(w, 400, "invalid referred whatsapp number")
			return
		}
		rec.ID = store.NewID()
		rec.ReferrerWhatsapp = diagnostic.FormatWhatsApp(rec.ReferrerWhatsapp)
		rec.ReferredWhatsapp = diagnostic.FormatWhatsApp(rec.ReferredWhatsapp)
		if err := s.store.SaveReferral(rec); err != nil {
			writeError(w, 500, "failed to save referral")
			return
		}
		writeJSON(w, 201, rec)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// --- PDF export ---

type reportPDFRequest struct {
	DiagnosticID string `json:"diagnostic_id"`
	Report       string `json:"report"`
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req reportPDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid JSON body")
		return
	}
	text := req.Report
	if text == "" && req.DiagnosticID != "" {
		rec, err := s.store.GetDiagnostic(req.DiagnosticID)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, 404, "diagnostic not found")
			return
		}
		if err != nil {
			writeError(w, 500, "failed to load diagnostic")
			return
		}
		text = rec.Report
	}
	if strings.TrimSpace(text) == "" {
		writeError(w, 400, "report or diagnostic_id is required")
		return
	}

	active, err := s.store.ActiveAnnouncements(time.Now())
	if err != nil {
		log.Printf("report-pdf: active announcements: %v", err)
		active = nil
	}
	pdf, err := s.pdf.Render(r.Context(), text, active)
	if err != nil {
		log.Printf("report-pdf: render: %v", err)
		writeError(w, 500, "failed to render PDF")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="diagnostico-juridico.pdf"`)
	w.WriteHeader(200)
	_, _ = w.Write(pdf)
}
