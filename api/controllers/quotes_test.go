package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/signforge/signforge-backend/internal/pricing"
	"github.com/signforge/signforge-backend/pkg/config"
	"github.com/signforge/signforge-backend/pkg/db/models"
	"github.com/signforge/signforge-backend/pkg/enums"
	pkgerrors "github.com/signforge/signforge-backend/pkg/errors"
	"github.com/signforge/signforge-backend/pkg/types"
)

type stubCatalogService struct {
	materials map[string]*models.Material
	products  map[string]*models.Product
	hardware  []models.HardwareItem
}

func (s *stubCatalogService) FindMaterial(_ context.Context, nameOrAlias string) (*models.Material, error) {
	if m, ok := s.materials[nameOrAlias]; ok {
		return m, nil
	}
	return nil, pkgerrors.Newf(pkgerrors.CodeUnprocessable, "material %q not found", nameOrAlias)
}

func (s *stubCatalogService) FindHardwareItems(_ context.Context, slugs []string) ([]models.HardwareItem, error) {
	var out []models.HardwareItem
	for _, slug := range slugs {
		for _, item := range s.hardware {
			if item.Slug == slug {
				out = append(out, item)
			}
		}
	}
	return out, nil
}

func (s *stubCatalogService) SettingNum(_ context.Context, _ string, fallback float64) float64 {
	return fallback
}

func (s *stubCatalogService) GetProduct(_ context.Context, sku string) (*models.Product, error) {
	if p, ok := s.products[sku]; ok {
		return p, nil
	}
	return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "product %q not found", sku)
}

func (s *stubCatalogService) ListMaterials(_ context.Context) ([]models.Material, error) {
	var out []models.Material
	for _, m := range s.materials {
		out = append(out, *m)
	}
	return out, nil
}

func quoteTestConfig() *config.Config {
	return &config.Config{
		App:   config.AppConfig{Env: "test"},
		Quote: config.QuoteConfig{MaxQuantity: 10000},
	}
}

func newQuoteHandler(t *testing.T, cat *stubCatalogService) http.HandlerFunc {
	t.Helper()
	engine, err := pricing.NewEngine(cat)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return QuoteCreate(engine, cat, quoteTestConfig(), nil, nil)
}

func bannerCatalog() *stubCatalogService {
	return &stubCatalogService{
		materials: map[string]*models.Material{
			"13oz-banner": {Name: "13oz Scrim Banner", UnitCost: 0.50, Family: models.MaterialFamilyRoll},
		},
	}
}

func postQuote(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func TestQuoteCreateAdHocBanner(t *testing.T) {
	handler := newQuoteHandler(t, bannerCatalog())

	resp := postQuote(t, handler, `{
		"category": "banners",
		"width_in": 36,
		"height_in": 72,
		"quantity": 1,
		"material": "13oz-banner",
		"options": {"grommets": true, "hems": true}
	}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data quoteResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Template != string(enums.TemplateBanner) {
		t.Errorf("template = %q", envelope.Data.Template)
	}
	if envelope.Data.TotalCents != 3999 {
		t.Errorf("total = %d, want 3999", envelope.Data.TotalCents)
	}
	if envelope.Data.UnitCents != 3999 {
		t.Errorf("unit = %d, want 3999", envelope.Data.UnitCents)
	}
	if envelope.Data.Currency != string(enums.CurrencyUSD) {
		t.Errorf("currency = %q", envelope.Data.Currency)
	}
}

func TestQuoteCreateFromProductSKU(t *testing.T) {
	cat := bannerCatalog()
	size := "3.5x2"
	cat.products = map[string]*models.Product{
		"BC-STD": {
			SKU:         "BC-STD",
			Category:    enums.ProductCategoryBusinessCards,
			PricingUnit: enums.PricingUnitFixedTable,
			SizeLabel:   &size,
			FixedPrices: types.FixedPriceTable{"3.5x2": {"500": 4900}},
			MinQuantity: 100,
		},
	}
	handler := newQuoteHandler(t, cat)

	resp := postQuote(t, handler, `{"sku": "BC-STD", "quantity": 500}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data quoteResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Template != string(enums.TemplateOutsourced) {
		t.Errorf("template = %q", envelope.Data.Template)
	}
	if envelope.Data.TotalCents != 4900 {
		t.Errorf("total = %d, want 4900", envelope.Data.TotalCents)
	}
}

func TestQuoteCreateBelowProductMinimum(t *testing.T) {
	cat := bannerCatalog()
	cat.products = map[string]*models.Product{
		"BC-STD": {
			SKU:         "BC-STD",
			Category:    enums.ProductCategoryBusinessCards,
			PricingUnit: enums.PricingUnitFixedTable,
			MinQuantity: 100,
		},
	}
	handler := newQuoteHandler(t, cat)

	resp := postQuote(t, handler, `{"sku": "BC-STD", "quantity": 50}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestQuoteCreateUnknownMaterial(t *testing.T) {
	handler := newQuoteHandler(t, bannerCatalog())

	resp := postQuote(t, handler, `{
		"category": "banners",
		"width_in": 36,
		"height_in": 72,
		"quantity": 1,
		"material": "retired-material"
	}`)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(envelope.Error.Message, "retired-material") {
		t.Errorf("message should name the material, got %q", envelope.Error.Message)
	}
}

func TestQuoteCreateInvalidCategory(t *testing.T) {
	handler := newQuoteHandler(t, bannerCatalog())

	resp := postQuote(t, handler, `{"category": "furniture", "quantity": 1}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestQuoteCreateMissingQuantity(t *testing.T) {
	handler := newQuoteHandler(t, bannerCatalog())

	resp := postQuote(t, handler, `{"category": "banners"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestQuoteCreateQuantityCap(t *testing.T) {
	handler := newQuoteHandler(t, bannerCatalog())

	resp := postQuote(t, handler, `{"category": "banners", "quantity": 999999}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
