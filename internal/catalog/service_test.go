package catalog

import (
	"context"
	"errors"
	"io"
	"testing"

	"gorm.io/gorm"

	"github.com/signforge/signforge-backend/pkg/db/models"
	pkgerrors "github.com/signforge/signforge-backend/pkg/errors"
	"github.com/signforge/signforge-backend/pkg/logger"
)

type stubStore struct {
	materials map[string]*models.Material
	searched  []string
	settings  map[string]string
	products  map[string]*models.Product
	hardware  []models.HardwareItem

	settingErr error
}

func (s *stubStore) FindMaterialByName(_ context.Context, name string) (*models.Material, error) {
	if m, ok := s.materials[name]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubStore) SearchMaterial(_ context.Context, term string) (*models.Material, error) {
	s.searched = append(s.searched, term)
	for _, m := range s.materials {
		if m.Name == term+" Roll" {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubStore) ListMaterials(_ context.Context) ([]models.Material, error) {
	var out []models.Material
	for _, m := range s.materials {
		out = append(out, *m)
	}
	return out, nil
}

func (s *stubStore) FindHardwareBySlugs(_ context.Context, slugs []string) ([]models.HardwareItem, error) {
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

func (s *stubStore) GetSetting(_ context.Context, key string) (*models.Setting, error) {
	if s.settingErr != nil {
		return nil, s.settingErr
	}
	if value, ok := s.settings[key]; ok {
		return &models.Setting{Key: key, Value: value}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubStore) GetProductBySKU(_ context.Context, sku string) (*models.Product, error) {
	if p, ok := s.products[sku]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestService(t *testing.T, repo *stubStore) Service {
	t.Helper()
	log := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	svc, err := NewService(repo, log)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestFindMaterialAlias(t *testing.T) {
	repo := &stubStore{materials: map[string]*models.Material{
		"White Adhesive Vinyl": {Name: "White Adhesive Vinyl", UnitCost: 0.42},
	}}
	svc := newTestService(t, repo)

	material, err := svc.FindMaterial(context.Background(), "white-vinyl")
	if err != nil {
		t.Fatalf("FindMaterial: %v", err)
	}
	if material.Name != "White Adhesive Vinyl" {
		t.Errorf("resolved %q", material.Name)
	}
	if len(repo.searched) != 0 {
		t.Errorf("alias hit should not fall through to search, searched %v", repo.searched)
	}
}

func TestFindMaterialExactName(t *testing.T) {
	repo := &stubStore{materials: map[string]*models.Material{
		"13oz Scrim Banner": {Name: "13oz Scrim Banner", UnitCost: 0.32},
	}}
	svc := newTestService(t, repo)

	material, err := svc.FindMaterial(context.Background(), "13oz Scrim Banner")
	if err != nil {
		t.Fatalf("FindMaterial: %v", err)
	}
	if material.UnitCost != 0.32 {
		t.Errorf("unit cost = %v", material.UnitCost)
	}
}

func TestFindMaterialFallsBackToSearch(t *testing.T) {
	repo := &stubStore{materials: map[string]*models.Material{
		"Matte Canvas Roll": {Name: "Matte Canvas Roll", UnitCost: 1.35},
	}}
	svc := newTestService(t, repo)

	material, err := svc.FindMaterial(context.Background(), "Matte Canvas")
	if err != nil {
		t.Fatalf("FindMaterial: %v", err)
	}
	if material.Name != "Matte Canvas Roll" {
		t.Errorf("resolved %q", material.Name)
	}
	if len(repo.searched) != 1 {
		t.Errorf("expected one search, got %v", repo.searched)
	}
}

func TestFindMaterialNotFound(t *testing.T) {
	svc := newTestService(t, &stubStore{})

	_, err := svc.FindMaterial(context.Background(), "unobtainium")
	if err == nil {
		t.Fatal("expected error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnprocessable {
		t.Fatalf("expected unprocessable, got %v", err)
	}
}

func TestFindMaterialEmpty(t *testing.T) {
	svc := newTestService(t, &stubStore{})

	_, err := svc.FindMaterial(context.Background(), "")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnprocessable {
		t.Fatalf("expected unprocessable, got %v", err)
	}
}

func TestSettingNum(t *testing.T) {
	repo := &stubStore{settings: map[string]string{
		"ink_cost_per_sqft": "0.04",
		"broken":            "not-a-number",
	}}
	svc := newTestService(t, repo)
	ctx := context.Background()

	if got := svc.SettingNum(ctx, "ink_cost_per_sqft", 0.035); got != 0.04 {
		t.Errorf("parsed setting = %v, want 0.04", got)
	}
	if got := svc.SettingNum(ctx, "missing", 0.035); got != 0.035 {
		t.Errorf("missing setting = %v, want fallback", got)
	}
	if got := svc.SettingNum(ctx, "broken", 0.035); got != 0.035 {
		t.Errorf("malformed setting = %v, want fallback", got)
	}

	repo.settingErr = errors.New("connection reset")
	if got := svc.SettingNum(ctx, "ink_cost_per_sqft", 0.035); got != 0.035 {
		t.Errorf("db error = %v, want fallback", got)
	}
}

func TestGetProduct(t *testing.T) {
	repo := &stubStore{products: map[string]*models.Product{
		"BANNER-CUSTOM": {SKU: "BANNER-CUSTOM", Title: "Custom Banner"},
	}}
	svc := newTestService(t, repo)

	product, err := svc.GetProduct(context.Background(), "BANNER-CUSTOM")
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if product.Title != "Custom Banner" {
		t.Errorf("title = %q", product.Title)
	}

	_, err = svc.GetProduct(context.Background(), "GONE")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFindHardwareItems(t *testing.T) {
	repo := &stubStore{hardware: []models.HardwareItem{
		{Slug: "banner-stand-x", WholesaleCents: 1850},
	}}
	svc := newTestService(t, repo)

	items, err := svc.FindHardwareItems(context.Background(), []string{"banner-stand-x", "missing"})
	if err != nil {
		t.Fatalf("FindHardwareItems: %v", err)
	}
	if len(items) != 1 || items[0].Slug != "banner-stand-x" {
		t.Errorf("items = %+v", items)
	}
}
