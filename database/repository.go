package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository implements Store on top of GORM.
type Repository struct {
	db *Database
}

// NewRepository creates a new repository
func NewRepository(db *Database) *Repository {
	return &Repository{db: db}
}

// InitSchema performs auto-migration of the countries and news tables
func (r *Repository) InitSchema() error {
	if err := r.db.db.AutoMigrate(&Country{}, &NewsItem{}); err != nil {
		return WrapStoreError("InitSchema", err)
	}
	return nil
}

func (r *Repository) GetAllCountries(ctx context.Context) ([]Country, error) {
	var list []Country
	if err := r.db.db.WithContext(ctx).Order("code ASC").Find(&list).Error; err != nil {
		return nil, WrapStoreError("GetAllCountries", err)
	}
	return list, nil
}

func (r *Repository) GetCountryByCode(ctx context.Context, code string) (*Country, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var c Country
	err := r.db.db.WithContext(ctx).Where("code = ?", code).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewNotFoundError("country", code)
	}
	if err != nil {
		return nil, WrapStoreError("GetCountryByCode", err)
	}
	return &c, nil
}

func (r *Repository) UpdateCountry(ctx context.Context, code string, update CountryUpdate) (*Country, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if update.Empty() {
		return r.GetCountryByCode(ctx, code)
	}

	res := r.db.db.WithContext(ctx).Model(&Country{}).Where("code = ?", code).Updates(update.columns())
	if res.Error != nil {
		return nil, WrapStoreError("UpdateCountry", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, NewNotFoundError("country", code)
	}
	return r.GetCountryByCode(ctx, code)
}

// GetLatestNews returns up to limit items, newest first.
func (r *Repository) GetLatestNews(ctx context.Context, limit int) ([]NewsItem, error) {
	q := r.db.db.WithContext(ctx).Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var items []NewsItem
	if err := q.Find(&items).Error; err != nil {
		return nil, WrapStoreError("GetLatestNews", err)
	}
	return items, nil
}

func (r *Repository) AddNewsItem(ctx context.Context, item *NewsItem) error {
	if item == nil {
		return NewValidationError("item", "must not be nil")
	}
	if err := r.db.db.WithContext(ctx).Create(item).Error; err != nil {
		return WrapStoreError("AddNewsItem", err)
	}
	return nil
}

// SeedCountries inserts countries, leaving existing rows untouched.
func (r *Repository) SeedCountries(ctx context.Context, list []Country) error {
	if len(list) == 0 {
		return nil
	}
	err := r.db.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(list, 100).Error
	if err != nil {
		return WrapStoreError("SeedCountries", err)
	}
	return nil
}
