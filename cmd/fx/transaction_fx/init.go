package transaction_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gametrade/internal/api/controllers"
	"gametrade/internal/gateway"
	"gametrade/internal/repositories"
	"gametrade/internal/services"
	mem "gametrade/pkg/memcache"
)

var Module = fx.Provide(
	provideTransactionRepository,
	provideTransactionService,
	provideTransactionController,
	provideWebhookController,
)

func provideTransactionRepository(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func provideTransactionService(
	txnRepo repositories.TransactionRepository,
	gw gateway.PaymentGateway,
	seen mem.SeenEventStore,
) services.TransactionServiceInterface {
	return services.NewTransactionService(txnRepo, gw, seen)
}

func provideTransactionController(transactionService services.TransactionServiceInterface) *controllers.TransactionController {
	return controllers.NewTransactionController(transactionService)
}

func provideWebhookController(
	gw gateway.PaymentGateway,
	transactionService services.TransactionServiceInterface,
) *controllers.WebhookController {
	return controllers.NewWebhookController(gw, transactionService)
}
