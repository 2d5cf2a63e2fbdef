package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/signforge/signforge-backend/internal/pricing"
	"github.com/signforge/signforge-backend/pkg/config"
	"github.com/signforge/signforge-backend/pkg/db/models"
	pkgerrors "github.com/signforge/signforge-backend/pkg/errors"
)

type stubCatalog struct {
	materials map[string]*models.Material
}

func (s *stubCatalog) FindMaterial(_ context.Context, nameOrAlias string) (*models.Material, error) {
	if m, ok := s.materials[nameOrAlias]; ok {
		return m, nil
	}
	return nil, pkgerrors.Newf(pkgerrors.CodeUnprocessable, "material %q not found", nameOrAlias)
}

func (s *stubCatalog) FindHardwareItems(_ context.Context, _ []string) ([]models.HardwareItem, error) {
	return nil, nil
}

func (s *stubCatalog) SettingNum(_ context.Context, _ string, fallback float64) float64 {
	return fallback
}

func (s *stubCatalog) GetProduct(_ context.Context, sku string) (*models.Product, error) {
	return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "product %q not found", sku)
}

func (s *stubCatalog) ListMaterials(_ context.Context) ([]models.Material, error) {
	var out []models.Material
	for _, m := range s.materials {
		out = append(out, *m)
	}
	return out, nil
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

type memoryStore struct {
	data map[string]string
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return "", redis.Nil
}

func (m *memoryStore) SetNX(_ context.Context, key string, value any, _ time.Duration) (bool, error) {
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	str, _ := value.(string)
	m.data[key] = str
	return true, nil
}

func (m *memoryStore) IdempotencyKey(scope, id string) string {
	return fmt.Sprintf("test:%s:%s", scope, id)
}

func (m *memoryStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cat := &stubCatalog{materials: map[string]*models.Material{
		"13oz-banner": {Name: "13oz Scrim Banner", UnitCost: 0.50, Family: models.MaterialFamilyRoll},
	}}
	engine, err := pricing.NewEngine(cat)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	return NewRouter(Deps{
		Config: &config.Config{
			App:   config.AppConfig{Env: "test"},
			Quote: config.QuoteConfig{IdempotencyTTL: time.Hour, MaxQuantity: 10000},
		},
		DB:          stubPinger{},
		Catalog:     cat,
		Engine:      engine,
		Idempotency: &memoryStore{data: map[string]string{}},
	})
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Errorf("%s returned %d", path, resp.Code)
		}
	}
}

func TestRouterMaterials(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/materials", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 {
		t.Fatalf("expected one material, got %d", len(envelope.Data))
	}
}

func TestRouterQuoteIdempotentReplay(t *testing.T) {
	router := newTestRouter(t)
	body := `{"category":"banners","width_in":36,"height_in":72,"quantity":1,"material":"13oz-banner"}`

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "quote-1")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp
	}

	first := send()
	if first.Code != http.StatusOK {
		t.Fatalf("first request status %d: %s", first.Code, first.Body.String())
	}
	second := send()
	if second.Code != http.StatusOK {
		t.Fatalf("replay status %d", second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replay body differs:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
