package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"gametrade/cmd/fx/account_fx"
	"gametrade/cmd/fx/catalog_fx"
	"gametrade/cmd/fx/db_fx"
	"gametrade/cmd/fx/listing_fx"
	"gametrade/cmd/fx/message_fx"
	"gametrade/cmd/fx/payment_fx"
	"gametrade/cmd/fx/review_fx"
	"gametrade/cmd/fx/transaction_fx"
	"gametrade/internal/api/controllers"
	"gametrade/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		listing_fx.Module,
		payment_fx.Module,
		transaction_fx.Module,
		review_fx.Module,
		message_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	listingController *controllers.ListingController,
	transactionController *controllers.TransactionController,
	webhookController *controllers.WebhookController,
	reviewController *controllers.ReviewController,
	messageController *controllers.MessageController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		catalogController,
		listingController,
		transactionController,
		webhookController,
		reviewController,
		messageController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	listingController *controllers.ListingController,
	transactionController *controllers.TransactionController,
	webhookController *controllers.WebhookController,
	reviewController *controllers.ReviewController,
	messageController *controllers.MessageController) {

	auth := r.Group("/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)

	users := r.Group("/users")
	users.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)
	users.GET("/:id", accountController.GetProfile)
	users.GET("/:id/reviews", reviewController.ListUserReviews)

	categories := r.Group("/categories")
	categories.GET("", catalogController.ListCategories)
	categories.GET("/:id", catalogController.GetCategory)
	categories.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("moderator"), catalogController.CreateCategory)

	games := r.Group("/games")
	games.GET("", catalogController.ListGames)
	games.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("moderator"), catalogController.CreateGame)

	serviceTypes := r.Group("/servicetypes")
	serviceTypes.GET("", catalogController.ListServiceTypes)
	serviceTypes.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("moderator"), catalogController.CreateServiceType)

	listings := r.Group("/listings")
	listings.GET("", listingController.ListListings)
	listings.GET("/:id", listingController.GetListing)
	listings.POST("", middleware.JWTAuthMiddleware(), listingController.CreateListing)
	listings.PATCH("/:id/status", middleware.JWTAuthMiddleware(), listingController.UpdateStatus)

	transactions := r.Group("/transactions", middleware.JWTAuthMiddleware())
	transactions.POST("", transactionController.CreateTransaction)
	transactions.GET("", transactionController.ListTransactions)
	transactions.GET("/:id", transactionController.GetTransaction)
	transactions.PATCH("/:id/status", transactionController.UpdateStatus)

	// Unauthenticated but signature-verified; the handler reads the raw body.
	r.POST("/webhook/stripe", webhookController.HandleStripeWebhook)

	reviews := r.Group("/reviews", middleware.JWTAuthMiddleware())
	reviews.POST("", reviewController.CreateReview)

	messages := r.Group("/messages", middleware.JWTAuthMiddleware())
	messages.POST("", messageController.SendMessage)
	messages.GET("/:userId", messageController.Conversation)
}
