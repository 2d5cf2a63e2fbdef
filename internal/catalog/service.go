package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/signforge/signforge-backend/pkg/db/models"
	pkgerrors "github.com/signforge/signforge-backend/pkg/errors"
	"github.com/signforge/signforge-backend/pkg/logger"
)

// materialAliases maps configurator slugs to catalog display names. Aliases
// resolve before any database search, so a rename in the catalog only needs an
// update here.
var materialAliases = map[string]string{
	"white-vinyl":    "White Adhesive Vinyl",
	"clear-vinyl":    "Clear Adhesive Vinyl",
	"holographic":    "Holographic Adhesive Vinyl",
	"glitter":        "Glitter Adhesive Vinyl",
	"window-perf":    "Perforated Window Film",
	"print-vinyl":    "Calendered Print Vinyl",
	"cut-vinyl":      "Oracal 651 Cut Vinyl",
	"transfer-tape":  "Transfer Tape",
	"gloss-laminate": "Gloss Laminate",
	"matte-laminate": "Matte Laminate",
	"13oz-banner":    "13oz Scrim Banner",
	"18oz-banner":    "18oz Blockout Banner",
	"mesh-banner":    "Mesh Banner",
	"coroplast-4mm":  "4mm Coroplast",
	"acm-3mm":        "3mm ACM Panel",
	"gloss-text":     "100lb Gloss Text",
	"gloss-cover":    "14pt Gloss Cover",
	"ncr-2part":      "NCR 2-Part Carbonless",
	"matte-canvas":   "Matte Canvas Roll",
}

// Service exposes read operations over the material, hardware, setting, and
// product catalogs. It satisfies the pricing engine's catalog contract.
type Service interface {
	FindMaterial(ctx context.Context, nameOrAlias string) (*models.Material, error)
	FindHardwareItems(ctx context.Context, slugs []string) ([]models.HardwareItem, error)
	SettingNum(ctx context.Context, key string, fallback float64) float64
	GetProduct(ctx context.Context, sku string) (*models.Product, error)
	ListMaterials(ctx context.Context) ([]models.Material, error)
}

type store interface {
	FindMaterialByName(ctx context.Context, name string) (*models.Material, error)
	SearchMaterial(ctx context.Context, term string) (*models.Material, error)
	ListMaterials(ctx context.Context) ([]models.Material, error)
	FindHardwareBySlugs(ctx context.Context, slugs []string) ([]models.HardwareItem, error)
	GetSetting(ctx context.Context, key string) (*models.Setting, error)
	GetProductBySKU(ctx context.Context, sku string) (*models.Product, error)
}

type service struct {
	repo store
	log  *logger.Logger
}

// NewService constructs a catalog service instance.
func NewService(repo store, log *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, log: log}, nil
}

// FindMaterial resolves a display name or configurator alias to an active
// material: alias table first, then exact name, then a case-insensitive
// substring search. A miss is a client-correctable 422, never a silent
// default.
func (s *service) FindMaterial(ctx context.Context, nameOrAlias string) (*models.Material, error) {
	if nameOrAlias == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnprocessable, "material is required")
	}

	name := nameOrAlias
	if display, ok := materialAliases[nameOrAlias]; ok {
		name = display
	}

	material, err := s.repo.FindMaterialByName(ctx, name)
	if err == nil {
		return material, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "material lookup failed")
	}

	material, err = s.repo.SearchMaterial(ctx, name)
	if err == nil {
		return material, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "material search failed")
	}

	return nil, pkgerrors.Newf(pkgerrors.CodeUnprocessable, "material %q not found", nameOrAlias)
}

// FindHardwareItems returns the active hardware rows for the slugs. Misses
// are omitted, not errors; the caller decides whether a partial result is
// acceptable.
func (s *service) FindHardwareItems(ctx context.Context, slugs []string) ([]models.HardwareItem, error) {
	items, err := s.repo.FindHardwareBySlugs(ctx, slugs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hardware lookup failed")
	}
	return items, nil
}

// SettingNum returns the parsed numeric setting. Any failure, missing row,
// database error, or a malformed value, degrades to the fallback so a bad
// settings row cannot take quoting down.
func (s *service) SettingNum(ctx context.Context, key string, fallback float64) float64 {
	setting, err := s.repo.GetSetting(ctx, key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn(s.log.WithField(ctx, "setting_key", key), "setting lookup failed, using fallback")
		}
		return fallback
	}
	value, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil {
		s.log.Warn(s.log.WithField(ctx, "setting_key", key), "setting is not numeric, using fallback")
		return fallback
	}
	return value
}

// GetProduct loads an active product by SKU.
func (s *service) GetProduct(ctx context.Context, sku string) (*models.Product, error) {
	product, err := s.repo.GetProductBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "product %q not found", sku)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "product lookup failed")
	}
	return product, nil
}

// ListMaterials returns the active materials.
func (s *service) ListMaterials(ctx context.Context) ([]models.Material, error) {
	materials, err := s.repo.ListMaterials(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "material list failed")
	}
	return materials, nil
}
