// Package store persists diagnostics, announcements, and referrals in
// SQLite. Dates inside announcement validity windows are stored as
// ISO day strings so range filters work with plain string comparison.
package store

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/alopes/diagnostico-juridico/internal/diagnostic"
	"github.com/alopes/diagnostico-juridico/internal/render"
)

const schema = `
CREATE TABLE IF NOT EXISTS announcements (
	id            TEXT PRIMARY KEY,
	image_url     TEXT NOT NULL,
	website_url   TEXT NOT NULL DEFAULT '',
	facebook_url  TEXT NOT NULL DEFAULT '',
	instagram_url TEXT NOT NULL DEFAULT '',
	position      INTEGER NOT NULL,
	valid_from    TEXT NOT NULL,
	valid_to      TEXT NOT NULL,
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS diagnostics (
	id           TEXT PRIMARY KEY,
	area_id      TEXT NOT NULL,
	full_name    TEXT NOT NULL DEFAULT '',
	email        TEXT NOT NULL DEFAULT '',
	whatsapp     TEXT NOT NULL DEFAULT '',
	responses    TEXT NOT NULL DEFAULT '[]',
	total_points REAL NOT NULL DEFAULT 0,
	urgency      TEXT NOT NULL DEFAULT 'low',
	report       TEXT NOT NULL DEFAULT '',
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS referrals (
	id                TEXT PRIMARY KEY,
	referrer_name     TEXT NOT NULL,
	referrer_email    TEXT NOT NULL DEFAULT '',
	referrer_whatsapp TEXT NOT NULL DEFAULT '',
	referred_name     TEXT NOT NULL,
	referred_whatsapp TEXT NOT NULL DEFAULT '',
	created_at        TEXT NOT NULL
);
`

// ErrNotFound is returned for lookups of ids that do not exist.
var ErrNotFound = errors.New("store: not found")

// DiagnosticRecord is one completed questionnaire with its computed
// score and generated report.
type DiagnosticRecord struct {
	ID          string                  `json:"id"`
	AreaID      string                  `json:"area_id"`
	FullName    string                  `json:"full_name"`
	Email       string                  `json:"email"`
	Whatsapp    string                  `json:"whatsapp"`
	Responses   []diagnostic.Response   `json:"responses"`
	TotalPoints float64                 `json:"total_points"`
	Urgency     diagnostic.UrgencyLevel `json:"urgency_level"`
	Report      string                  `json:"report"`
	CreatedAt   time.Time               `json:"created_at"`
}

// ReferralRecord tracks one indicate-a-friend submission.
type ReferralRecord struct {
	ID               string    `json:"id"`
	ReferrerName     string    `json:"referrer_name"`
	ReferrerEmail    string    `json:"referrer_email"`
	ReferrerWhatsapp string    `json:"referrer_whatsapp"`
	ReferredName     string    `json:"referred_name"`
	ReferredWhatsapp string    `json:"referred_whatsapp"`
	CreatedAt        time.Time `json:"created_at"`
}

type Store struct {
	db *sqlx.DB
}

func Open(dbPath string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// NewID returns a random 16-byte hex identifier.
func NewID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("store: id generation: %v", err))
	}
	return hex.EncodeToString(buf)
}

// --- announcements ---

const dayFormat = "2006-01-02"

// SaveAnnouncement inserts or replaces a placement. Position must be
// one of the four report slots.
func (s *Store) SaveAnnouncement(a render.Announcement) error {
	if a.Position < 1 || a.Position > 4 {
		return fmt.Errorf("store: announcement position %d out of range 1..4", a.Position)
	}
	if a.ID == "" {
		return errors.New("store: announcement missing id")
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO announcements
		(id, image_url, website_url, facebook_url, instagram_url, position, valid_from, valid_to, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			image_url = excluded.image_url,
			website_url = excluded.website_url,
			facebook_url = excluded.facebook_url,
			instagram_url = excluded.instagram_url,
			position = excluded.position,
			valid_from = excluded.valid_from,
			valid_to = excluded.valid_to,
			updated_at = excluded.updated_at`,
		a.ID, a.ImageURL, a.WebsiteURL, a.FacebookURL, a.InstagramURL, a.Position,
		a.ValidFrom.Format(dayFormat), a.ValidTo.Format(dayFormat), now, now)
	if err != nil {
		return fmt.Errorf("save announcement: %w", err)
	}
	return nil
}

func (s *Store) DeleteAnnouncement(id string) error {
	res, err := s.db.Exec("DELETE FROM announcements WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetAnnouncement(id string) (render.Announcement, error) {
	rows, err := s.db.Query(announcementColumns+" WHERE id = ?", id)
	if err != nil {
		return render.Announcement{}, fmt.Errorf("get announcement: %w", err)
	}
	defer rows.Close()
	list, err := scanAnnouncements(rows)
	if err != nil {
		return render.Announcement{}, err
	}
	if len(list) == 0 {
		return render.Announcement{}, ErrNotFound
	}
	return list[0], nil
}

func (s *Store) ListAnnouncements() ([]render.Announcement, error) {
	rows, err := s.db.Query(announcementColumns + " ORDER BY position, valid_from")
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()
	return scanAnnouncements(rows)
}

// ActiveAnnouncements returns the placements whose validity window
// contains day, ordered by position. When several share a position the
// earliest valid_from wins; resolution uses the first per slot.
func (s *Store) ActiveAnnouncements(day time.Time) ([]render.Announcement, error) {
	d := day.Format(dayFormat)
	rows, err := s.db.Query(announcementColumns+
		" WHERE valid_from <= ? AND valid_to >= ? ORDER BY position, valid_from", d, d)
	if err != nil {
		return nil, fmt.Errorf("active announcements: %w", err)
	}
	defer rows.Close()
	return scanAnnouncements(rows)
}

const announcementColumns = "SELECT id, image_url, website_url, facebook_url, instagram_url, position, valid_from, valid_to FROM announcements"

func scanAnnouncements(rows *sql.Rows) ([]render.Announcement, error) {
	var out []render.Announcement
	for rows.Next() {
		var a render.Announcement
		var from, to string
		if err := rows.Scan(&a.ID, &a.ImageURL, &a.WebsiteURL, &a.FacebookURL, &a.InstagramURL, &a.Position, &from, &to); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		a.ValidFrom, _ = time.Parse(dayFormat, from)
		a.ValidTo, _ = time.Parse(dayFormat, to)
		out = append(out, a)
	}
	return out, rows.Err()
}

// --- diagnostics ---

func (s *Store) SaveDiagnostic(rec DiagnosticRecord) error {
	if rec.ID == "" {
		return errors.New("store: diagnostic missing id")
	}
	responses, err := json.Marshal(rec.Responses)
	if err != nil {
		return fmt.Errorf("marshal responses: %w", err)
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err = s.db.Exec(`INSERT INTO diagnostics
		(id, area_id, full_name, email, whatsapp, responses, total_points, urgency, report, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.AreaID, rec.FullName, rec.Email, rec.Whatsapp, string(responses),
		rec.TotalPoints, string(rec.Urgency), rec.Report, createdAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save diagnostic: %w", err)
	}
	return nil
}

func (s *Store) GetDiagnostic(id string) (DiagnosticRecord, error) {
	rows, err := s.db.Query(diagnosticColumns+" WHERE id = ?", id)
	if err != nil {
		return DiagnosticRecord{}, fmt.Errorf("get diagnostic: %w", err)
	}
	defer rows.Close()
	list, err := scanDiagnostics(rows)
	if err != nil {
		return DiagnosticRecord{}, err
	}
	if len(list) == 0 {
		return DiagnosticRecord{}, ErrNotFound
	}
	return list[0], nil
}

func (s *Store) ListDiagnostics() ([]DiagnosticRecord, error) {
	rows, err := s.db.Query(diagnosticColumns + " ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list diagnostics: %w", err)
	}
	defer rows.Close()
	return scanDiagnostics(rows)
}

const diagnosticColumns = "SELECT id, area_id, full_name, email, whatsapp, responses, total_points, urgency, report, created_at FROM diagnostics"

func scanDiagnostics(rows *sql.Rows) ([]DiagnosticRecord, error) {
	var out []DiagnosticRecord
	for rows.Next() {
		var rec DiagnosticRecord
		var responses, urgency, createdAt string
		if err := rows.Scan(&rec.ID, &rec.AreaID, &rec.FullName, &rec.Email, &rec.Whatsapp,
			&responses, &rec.TotalPoints, &urgency, &rec.Report, &createdAt); err != nil {
			return nil, fmt.Errorf("scan diagnostic: %w", err)
		}
		_ = json.Unmarshal([]byte(responses), &rec.Responses)
		rec.Urgency = diagnostic.UrgencyLevel(urgency)
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// --- referrals ---

func (s *Store) SaveReferral(rec ReferralRecord) error {
	if rec.ID == "" {
		return errors.New("store: referral missing id")
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`INSERT INTO referrals
		(id, referrer_name, referrer_email, referrer_whatsapp, referred_name, referred_whatsapp, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.ReferrerName, rec.ReferrerEmail, rec.ReferrerWhatsapp,
		rec.ReferredName, rec.ReferredWhatsapp, createdAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save referral: %w", err)
	}
	return nil
}

func (s *Store) ListReferrals() ([]ReferralRecord, error) {
	rows, err := s.db.Query("SELECT id, referrer_name, referrer_email, referrer_whatsapp, referred_name, referred_whatsapp, created_at FROM referrals ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list referrals: %w", err)
	}
	defer rows.Close()
	var out []ReferralRecord
	for rows.Next() {
		var rec ReferralRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.ReferrerName, &rec.ReferrerEmail, &rec.ReferrerWhatsapp,
			&rec.ReferredName, &rec.ReferredWhatsapp, &createdAt); err != nil {
			return nil, fmt.Errorf("scan referral: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}
