package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gametrade/internal/api/controllers"
	"gametrade/internal/repositories"
	"gametrade/internal/services"
)

var Module = fx.Provide(
	provideUserRepository,
	provideAccountService,
	provideAccountController,
)

func provideUserRepository(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository) services.AccountServiceInterface {
	return services.NewAccountService(userRepo)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
