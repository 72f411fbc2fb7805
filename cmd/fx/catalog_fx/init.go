package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gametrade/internal/api/controllers"
	"gametrade/internal/repositories"
	"gametrade/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepository,
	provideCatalogService,
	provideCatalogController,
)

func provideCatalogRepository(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func provideCatalogService(catalogRepo repositories.CatalogRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(catalogRepo)
}

func provideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}
