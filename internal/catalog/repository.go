package catalog

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/signforge/signforge-backend/pkg/db/models"
)

// Repository wires together catalog persistence: materials, hardware,
// settings, and product listings.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindMaterialByName loads an active material by exact name.
func (r *Repository) FindMaterialByName(ctx context.Context, name string) (*models.Material, error) {
	var material models.Material
	err := r.db.WithContext(ctx).
		Where("name = ? AND is_active", name).
		First(&material).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// SearchMaterial returns the first active material whose name contains the
// term, case-insensitively. Ordered by name so repeated calls resolve the
// same row.
func (r *Repository) SearchMaterial(ctx context.Context, term string) (*models.Material, error) {
	var material models.Material
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? AND is_active", "%"+strings.TrimSpace(term)+"%").
		Order("name ASC").
		First(&material).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// ListMaterials returns all active materials ordered by name.
func (r *Repository) ListMaterials(ctx context.Context) ([]models.Material, error) {
	var materials []models.Material
	err := r.db.WithContext(ctx).
		Where("is_active").
		Order("name ASC").
		Find(&materials).Error
	if err != nil {
		return nil, err
	}
	return materials, nil
}

// FindHardwareBySlugs loads the active hardware rows matching the slugs.
// Unknown or inactive slugs are simply absent from the result.
func (r *Repository) FindHardwareBySlugs(ctx context.Context, slugs []string) ([]models.HardwareItem, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	var items []models.HardwareItem
	err := r.db.WithContext(ctx).
		Where("slug IN ? AND is_active", slugs).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetSetting loads a single settings row by key.
func (r *Repository) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting
	if err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetProductBySKU loads an active product listing.
func (r *Repository) GetProductBySKU(ctx context.Context, sku string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("sku = ? AND is_active", sku).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}
