package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

var (
	// ErrDuplicateLead signals that a lead id already exists in the archive.
	ErrDuplicateLead = errors.New("duplicate lead")
	// ErrInvalidLead wraps every form validation failure.
	ErrInvalidLead = errors.New("invalid lead")
)

// Lead is one quote request submitted through the form.
type Lead struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Phone      string
	Service    string
	Location   string
	Message    string
	SourcePath string
	CreatedAt  time.Time
}

// LeadStore persists accepted leads.
type LeadStore interface {
	SaveLead(ctx context.Context, lead Lead) error
}

// Byte limits per form field. They match the leads column widths; the
// message column is TEXT and gets a soft cap.
var fieldLimits = map[string]int{
	"name":     200,
	"email":    320,
	"phone":    64,
	"service":  200,
	"location": 200,
	"message":  2000,
	"source":   512,
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// ParseLead validates submitted form values. The honeypot is checked by the
// caller before this runs.
func ParseLead(form url.Values) (Lead, error) {
	field := func(name string) string {
		return truncate(strings.TrimSpace(form.Get(name)), fieldLimits[name])
	}

	lead := Lead{
		Name:       field("name"),
		Email:      field("email"),
		Phone:      field("phone"),
		Service:    field("service"),
		Location:   field("location"),
		Message:    field("message"),
		SourcePath: field("source"),
	}

	var missing []string
	if lead.Name == "" {
		missing = append(missing, "name")
	}
	if lead.Email == "" {
		missing = append(missing, "email")
	}
	if lead.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return lead, fmt.Errorf("%w: missing %s", ErrInvalidLead, strings.Join(missing, ", "))
	}

	addr, err := mail.ParseAddress(lead.Email)
	if err != nil || addr.Address != lead.Email {
		return lead, fmt.Errorf("%w: malformed email address", ErrInvalidLead)
	}

	digits := 0
	for _, r := range lead.Phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 7 {
		return lead, fmt.Errorf("%w: phone number needs at least 7 digits", ErrInvalidLead)
	}
	return lead, nil
}

// IsBot reports whether the honeypot field was filled in.
func IsBot(form url.Values) bool {
	return strings.TrimSpace(form.Get("botcheck")) != ""
}

// MySQLLeadStore archives leads in the leads table.
type MySQLLeadStore struct {
	db *sql.DB
}

func NewMySQLLeadStore(db *sql.DB) *MySQLLeadStore {
	return &MySQLLeadStore{db: db}
}

func (s *MySQLLeadStore) SaveLead(ctx context.Context, lead Lead) error {
	const insert = `INSERT INTO leads (id, name, email, phone, service, location, message, source_path, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, insert,
		lead.ID.String(), lead.Name, lead.Email, lead.Phone,
		lead.Service, lead.Location, lead.Message, lead.SourcePath, lead.CreatedAt.UTC())
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrDuplicateLead
		}
		return err
	}
	return nil
}

// RecentLeads returns the newest leads first.
func (s *MySQLLeadStore) RecentLeads(ctx context.Context, limit int) ([]Lead, error) {
	const query = `SELECT id, name, email, phone, service, location, message, source_path, created_at
FROM leads ORDER BY created_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Lead
	for rows.Next() {
		var (
			l  Lead
			id string
		)
		if err := rows.Scan(&id, &l.Name, &l.Email, &l.Phone, &l.Service, &l.Location, &l.Message, &l.SourcePath, &l.CreatedAt); err != nil {
			return nil, err
		}
		if l.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("lead id %q: %w", id, err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// LogLeadStore is used when no database is configured.
type LogLeadStore struct{}

func (LogLeadStore) SaveLead(_ context.Context, lead Lead) error {
	log.Printf("lead %s: %s <%s> wants %q in %q", lead.ID, lead.Name, lead.Email, lead.Service, lead.Location)
	return nil
}
