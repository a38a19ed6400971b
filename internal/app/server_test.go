package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func serve(t *testing.T, srv *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func document(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatalf("parse response: %v", err)
	}
	return doc
}

func TestServerServiceInCityPage(t *testing.T) {
	srv := NewServer(newTestRenderer(t), nil)

	rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/florida/miami/pool-cleaning", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}

	doc := document(t, rec)
	if got, want := strings.TrimSpace(doc.Find("h1").First().Text()), "Pool Cleaning in Miami, FL"; got != want {
		t.Fatalf("h1 = %q, want %q", got, want)
	}
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	if canonical != "https://poolquotesnow.com/florida/miami/pool-cleaning" {
		t.Fatalf("canonical = %q", canonical)
	}
	if src, _ := doc.Find(`input[name="source"]`).Attr("value"); src != "/florida/miami/pool-cleaning" {
		t.Fatalf("form source = %q", src)
	}
	if doc.Find(`script[type="application/ld+json"]`).Length() != 1 {
		t.Fatal("expected one JSON-LD script")
	}
}

func TestServerTrailingSlashAndHead(t *testing.T) {
	srv := NewServer(newTestRenderer(t), nil)

	if rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/florida/", nil)); rec.Code != http.StatusOK {
		t.Fatalf("GET /florida/ status = %d", rec.Code)
	}
	if rec := serve(t, srv, httptest.NewRequest(http.MethodHead, "/services", nil)); rec.Code != http.StatusOK {
		t.Fatalf("HEAD /services status = %d", rec.Code)
	}
}

func TestServerUnknownPathsRenderNotFound(t *testing.T) {
	srv := NewServer(newTestRenderer(t), nil)

	for _, path := range []string{"/florida/atlantis", "/nowhere", "/florida/miami/pool-painting", "/a/b/c/d", "/blog/florida/missing"} {
		rec := serve(t, srv, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("GET %s status = %d, want 404", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "<h1>") {
			t.Fatalf("GET %s did not render the not found page", path)
		}
	}
}

func TestServerRejectsPostToPages(t *testing.T) {
	srv := NewServer(newTestRenderer(t), nil)

	rec := serve(t, srv, httptest.NewRequest(http.MethodPost, "/florida", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("Allow = %q", allow)
	}
}

func TestServerSitemapAndRobots(t *testing.T) {
	srv := NewServer(newTestRenderer(t), nil)

	rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("sitemap status = %d", rec.Code)
	}
	if got := strings.Count(rec.Body.String(), "<url>"); got != 607 {
		t.Fatalf("sitemap has %d urls, want 607", got)
	}

	rec = serve(t, srv, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	if !strings.Contains(rec.Body.String(), "Sitemap: https://poolquotesnow.com/sitemap.xml") {
		t.Fatalf("robots.txt missing sitemap line:\n%s", rec.Body.String())
	}
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contact-us", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validLeadForm() url.Values {
	return url.Values{
		"name":     {"Dana Reyes"},
		"email":    {"dana@example.com"},
		"phone":    {"(305) 555-0142"},
		"service":  {"Pool Cleaning"},
		"location": {"Miami, FL"},
		"message":  {"Weekly service please"},
		"source":   {"/florida/miami/pool-cleaning"},
	}
}

func TestContactStoresValidLead(t *testing.T) {
	store := &memoryLeadStore{}
	srv := NewServer(newTestRenderer(t), store)

	rec := serve(t, srv, postForm(validLeadForm()))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/thank-you" {
		t.Fatalf("Location = %q", loc)
	}
	if len(store.leads) != 1 {
		t.Fatalf("stored %d leads, want 1", len(store.leads))
	}
	lead := store.leads[0]
	if lead.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("lead id was not assigned")
	}
	if lead.SourcePath != "/florida/miami/pool-cleaning" || lead.CreatedAt.IsZero() {
		t.Fatalf("unexpected lead: %+v", lead)
	}
}

func TestContactHoneypotDropsLead(t *testing.T) {
	store := &memoryLeadStore{}
	srv := NewServer(newTestRenderer(t), store)

	form := validLeadForm()
	form.Set("botcheck", "on")
	rec := serve(t, srv, postForm(form))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if len(store.leads) != 0 {
		t.Fatalf("bot submission was stored: %+v", store.leads)
	}
}

func TestContactInvalidLeadRerendersForm(t *testing.T) {
	store := &memoryLeadStore{}
	srv := NewServer(newTestRenderer(t), store)

	form := validLeadForm()
	form.Set("email", "not-an-address")
	rec := serve(t, srv, postForm(form))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	doc := document(t, rec)
	if msg := doc.Find(".error").Text(); !strings.Contains(msg, "malformed email") {
		t.Fatalf("error message = %q", msg)
	}
	if name, _ := doc.Find(`input[name="name"]`).Attr("value"); name != "Dana Reyes" {
		t.Fatalf("name not preserved: %q", name)
	}
	if len(store.leads) != 0 {
		t.Fatal("invalid lead was stored")
	}
}

func TestContactStoreFailure(t *testing.T) {
	store := &memoryLeadStore{err: errors.New("connection refused")}
	srv := NewServer(newTestRenderer(t), store)

	rec := serve(t, srv, postForm(validLeadForm()))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestRelayFormPostsExternally(t *testing.T) {
	r := newTestRendererWith(t, Config{
		BaseURL:        "https://poolquotesnow.com",
		RelayEndpoint:  "https://relay.example.com/submit",
		RelayAccessKey: "public-key",
	})
	srv := NewServer(r, nil)

	doc := document(t, serve(t, srv, httptest.NewRequest(http.MethodGet, "/texas", nil)))
	if action, _ := doc.Find("form").Attr("action"); action != "https://relay.example.com/submit" {
		t.Fatalf("form action = %q", action)
	}
	if key, _ := doc.Find(`input[name="access_key"]`).Attr("value"); key != "public-key" {
		t.Fatalf("access key = %q", key)
	}
	if redirect, _ := doc.Find(`input[name="redirect"]`).Attr("value"); redirect != "https://poolquotesnow.com/thank-you" {
		t.Fatalf("relay redirect = %q, want the site's absolute thank-you URL", redirect)
	}

	local := NewServer(newTestRenderer(t), nil)
	doc = document(t, serve(t, local, httptest.NewRequest(http.MethodGet, "/texas", nil)))
	if doc.Find(`input[name="access_key"]`).Length() != 0 {
		t.Fatal("local form should not carry a relay access key")
	}
}

func TestThankYouHasNoForm(t *testing.T) {
	srv := NewServer(newTestRenderer(t), nil)
	doc := document(t, serve(t, srv, httptest.NewRequest(http.MethodGet, "/thank-you", nil)))
	if doc.Find("form").Length() != 0 {
		t.Fatal("thank-you page should not render the lead form")
	}
}
