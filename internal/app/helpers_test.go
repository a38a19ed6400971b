package app

import (
	"context"
	"sync"
	"testing"

	"poolquotes/internal/seo"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	return newTestRendererWith(t, Config{BaseURL: seo.DefaultBaseURL})
}

func newTestRendererWith(t *testing.T, cfg Config) *Renderer {
	t.Helper()
	site, err := LoadSite(cfg)
	if err != nil {
		t.Fatalf("LoadSite() error: %v", err)
	}
	r, err := NewRenderer(site)
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}
	return r
}

type memoryLeadStore struct {
	mu    sync.Mutex
	leads []Lead
	err   error
}

func (m *memoryLeadStore) SaveLead(_ context.Context, lead Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.leads = append(m.leads, lead)
	return nil
}
