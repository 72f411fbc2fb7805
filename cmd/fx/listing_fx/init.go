package listing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gametrade/internal/api/controllers"
	"gametrade/internal/repositories"
	"gametrade/internal/services"
)

var Module = fx.Provide(
	provideListingRepository,
	provideListingService,
	provideListingController,
)

func provideListingRepository(db *gorm.DB) repositories.ListingRepository {
	return repositories.NewListingRepository(db)
}

func provideListingService(listingRepo repositories.ListingRepository) services.ListingServiceInterface {
	return services.NewListingService(listingRepo)
}

func provideListingController(listingService services.ListingServiceInterface) *controllers.ListingController {
	return controllers.NewListingController(listingService)
}
