package services

import (
	"context"

	"github.com/google/uuid"

	dbm "gametrade/internal/models/db_models"
	rqm "gametrade/internal/models/request_models"
	"gametrade/internal/repositories"
	"gametrade/pkg/utils"
)

type CatalogServiceInterface interface {
	ListGames(ctx context.Context) ([]dbm.Game, error)
	CreateGame(ctx context.Context, request rqm.CreateGameRequest) (*dbm.Game, error)
	ListServiceTypes(ctx context.Context) ([]dbm.ServiceType, error)
	CreateServiceType(ctx context.Context, request rqm.CreateServiceTypeRequest) (*dbm.ServiceType, error)
	ListCategories(ctx context.Context) ([]dbm.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*dbm.Category, error)
	CreateCategory(ctx context.Context, request rqm.CreateCategoryRequest) (*dbm.Category, error)
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogServiceInterface {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) ListGames(ctx context.Context) ([]dbm.Game, error) {
	games, err := s.catalogRepo.ListGames(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return games, nil
}

func (s *CatalogService) CreateGame(ctx context.Context, request rqm.CreateGameRequest) (*dbm.Game, error) {
	game := &dbm.Game{
		Name:     request.Name,
		Slug:     request.Slug,
		ImageURL: request.ImageURL,
	}

	if request.CategoryID != "" {
		categoryID, err := uuid.Parse(request.CategoryID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		category, err := s.catalogRepo.GetCategoryByID(ctx, categoryID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if category == nil {
			return nil, utils.ErrCategoryNotFound
		}
		game.CategoryID = &categoryID
	}

	if err := s.catalogRepo.CreateGame(ctx, game); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return game, nil
}

func (s *CatalogService) ListServiceTypes(ctx context.Context) ([]dbm.ServiceType, error) {
	types, err := s.catalogRepo.ListServiceTypes(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return types, nil
}

func (s *CatalogService) CreateServiceType(ctx context.Context, request rqm.CreateServiceTypeRequest) (*dbm.ServiceType, error) {
	st := &dbm.ServiceType{Name: request.Name}
	if err := s.catalogRepo.CreateServiceType(ctx, st); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return st, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]dbm.Category, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return categories, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id uuid.UUID) (*dbm.Category, error) {
	category, err := s.catalogRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}
	return category, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, request rqm.CreateCategoryRequest) (*dbm.Category, error) {
	existing, err := s.catalogRepo.GetCategoryByName(ctx, request.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrCategoryExists
	}

	category := &dbm.Category{
		Name:        request.Name,
		Description: request.Description,
	}
	if err := s.catalogRepo.CreateCategory(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return category, nil
}
