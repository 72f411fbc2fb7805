package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "gametrade/internal/models/db_models"
)

type CatalogRepository interface {
	ListGames(ctx context.Context) ([]dbm.Game, error)
	CreateGame(ctx context.Context, game *dbm.Game) error
	ListServiceTypes(ctx context.Context) ([]dbm.ServiceType, error)
	CreateServiceType(ctx context.Context, st *dbm.ServiceType) error
	ListCategories(ctx context.Context) ([]dbm.Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*dbm.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*dbm.Category, error)
	CreateCategory(ctx context.Context, category *dbm.Category) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListGames(ctx context.Context) ([]dbm.Game, error) {
	var games []dbm.Game
	err := r.db.WithContext(ctx).Order("name ASC").Find(&games).Error
	return games, err
}

func (r *catalogRepository) CreateGame(ctx context.Context, game *dbm.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *catalogRepository) ListServiceTypes(ctx context.Context) ([]dbm.ServiceType, error) {
	var types []dbm.ServiceType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error
	return types, err
}

func (r *catalogRepository) CreateServiceType(ctx context.Context, st *dbm.ServiceType) error {
	return r.db.WithContext(ctx).Create(st).Error
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]dbm.Category, error) {
	var categories []dbm.Category
	err := r.db.WithContext(ctx).Preload("Games").Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *catalogRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*dbm.Category, error) {
	var category dbm.Category
	err := r.db.WithContext(ctx).Preload("Games").Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) GetCategoryByName(ctx context.Context, name string) (*dbm.Category, error) {
	var category dbm.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category *dbm.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}
