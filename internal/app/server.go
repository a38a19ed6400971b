package app

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"poolquotes/internal/catalog"
	"poolquotes/internal/routes"
	"poolquotes/internal/seo"
)

// Server wires handlers, the renderer and the lead archive together.
type Server struct {
	renderer    *Renderer
	leads       LeadStore
	mux         *http.ServeMux
	renderGroup singleflight.Group
	started     time.Time

	mu    sync.RWMutex
	pages map[string][]byte

	sitemap func() ([]byte, error)
}

// NewServer constructs an HTTP handler serving every site page.
func NewServer(renderer *Renderer, leads LeadStore) *Server {
	if leads == nil {
		leads = LogLeadStore{}
	}
	srv := &Server{
		renderer: renderer,
		leads:    leads,
		mux:      http.NewServeMux(),
		started:  time.Now(),
		pages:    make(map[string][]byte),
	}
	srv.sitemap = sync.OnceValues(srv.buildSitemap)

	srv.mux.HandleFunc("/", srv.handlePage)
	srv.mux.HandleFunc("/contact-us", srv.handleContact)
	srv.mux.HandleFunc("/sitemap.xml", srv.handleSitemap)
	srv.mux.HandleFunc("/robots.txt", srv.handleRobots)

	return srv
}

// ServeHTTP satisfies http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	key, ok := routes.Parse(r.URL.Path)
	if !ok {
		s.notFound(w)
		return
	}
	s.servePage(w, key)
}

func (s *Server) servePage(w http.ResponseWriter, key routes.Key) {
	body, err := s.page(key)
	if errors.Is(err, catalog.ErrNotFound) {
		s.notFound(w)
		return
	}
	if err != nil {
		log.Printf("render page %s: %v", key.Path(), err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, body)
}

// page renders a key at most once per process; concurrent first requests
// for the same path share one render.
func (s *Server) page(key routes.Key) ([]byte, error) {
	path := key.Path()
	s.mu.RLock()
	body, ok := s.pages[path]
	s.mu.RUnlock()
	if ok {
		return body, nil
	}

	result, err, _ := s.renderGroup.Do(path, func() (interface{}, error) {
		body, err := s.renderer.Render(key)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.pages[path] = body
		s.mu.Unlock()
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (s *Server) notFound(w http.ResponseWriter) {
	body, err := s.renderer.RenderNotFound()
	if err != nil {
		log.Printf("render not found: %v", err)
		http.NotFound(w, nil)
		return
	}
	writeHTML(w, http.StatusNotFound, body)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		s.servePage(w, routes.Key{Kind: routes.Contact})
	case http.MethodPost:
		s.submitLead(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

const thankYouPath = "/thank-you"

func (s *Server) submitLead(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	if IsBot(r.PostForm) {
		http.Redirect(w, r, thankYouPath, http.StatusSeeOther)
		return
	}

	lead, err := ParseLead(r.PostForm)
	if err != nil {
		msg := "Please check the form: " + strings.TrimPrefix(err.Error(), ErrInvalidLead.Error()+": ")
		body, renderErr := s.renderer.RenderContact(lead, msg)
		if renderErr != nil {
			log.Printf("render contact form: %v", renderErr)
			http.Error(w, msg, http.StatusUnprocessableEntity)
			return
		}
		writeHTML(w, http.StatusUnprocessableEntity, body)
		return
	}

	lead.ID = uuid.New()
	lead.CreatedAt = time.Now()
	if err := s.leads.SaveLead(r.Context(), lead); err != nil {
		log.Printf("save lead %s: %v", lead.ID, err)
		body, renderErr := s.renderer.RenderContact(lead, "We could not save your request. Please try again in a moment.")
		if renderErr != nil {
			http.Error(w, "failed to save request", http.StatusInternalServerError)
			return
		}
		writeHTML(w, http.StatusInternalServerError, body)
		return
	}
	http.Redirect(w, r, thankYouPath, http.StatusSeeOther)
}

func (s *Server) buildSitemap() ([]byte, error) {
	site := s.renderer.Site()
	var buf bytes.Buffer
	if _, err := seo.WriteSitemap(&buf, routes.Site(site.Catalog, site.Articles), site.BaseURL, s.started); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	body, err := s.sitemap()
	if err != nil {
		log.Printf("build sitemap: %v", err)
		http.Error(w, "failed to build sitemap", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(body)
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(seo.Robots(s.renderer.Site().BaseURL)))
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
