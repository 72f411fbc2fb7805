package message_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gametrade/internal/api/controllers"
	"gametrade/internal/repositories"
	"gametrade/internal/services"
)

var Module = fx.Provide(
	provideMessageRepository,
	provideMessageService,
	provideMessageController,
)

func provideMessageRepository(db *gorm.DB) repositories.MessageRepository {
	return repositories.NewMessageRepository(db)
}

func provideMessageService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
) services.MessageServiceInterface {
	return services.NewMessageService(messageRepo, userRepo)
}

func provideMessageController(messageService services.MessageServiceInterface) *controllers.MessageController {
	return controllers.NewMessageController(messageService)
}
