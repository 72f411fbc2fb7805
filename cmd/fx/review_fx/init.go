package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gametrade/internal/api/controllers"
	"gametrade/internal/repositories"
	"gametrade/internal/services"
)

var Module = fx.Provide(
	provideReviewRepository,
	provideReviewService,
	provideReviewController,
)

func provideReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	txnRepo repositories.TransactionRepository,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, txnRepo)
}

func provideReviewController(reviewService services.ReviewServiceInterface) *controllers.ReviewController {
	return controllers.NewReviewController(reviewService)
}
