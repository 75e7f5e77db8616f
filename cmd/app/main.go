package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"kampadmin/cmd/fx/auth_fx"
	"kampadmin/cmd/fx/controllers_fx"
	"kampadmin/cmd/fx/customer_fx"
	"kampadmin/cmd/fx/db_fx"
	"kampadmin/cmd/fx/finance_fx"
	"kampadmin/cmd/fx/partnership_fx"
	"kampadmin/cmd/fx/user_fx"
	"kampadmin/internal/api/controllers"
	"kampadmin/internal/models/db_models"
	"kampadmin/internal/repositories"
	"kampadmin/internal/services"
	"kampadmin/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		auth_fx.Module,
		customer_fx.Module,
		finance_fx.Module,
		partnership_fx.Module,
		user_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedAdmins),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func SeedAdmins(userRepo repositories.UserRepository) error {
	return services.SeedProtectedAdmins(context.Background(), userRepo)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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
	authMiddleware *middleware.AuthMiddleware,
	authController *controllers.AuthController,
	customerController *controllers.CustomerController,
	financeController *controllers.FinanceController,
	partnershipController *controllers.PartnershipController,
	userController *controllers.UserController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authMiddleware,
		authController, customerController, financeController,
		partnershipController, userController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authMiddleware *middleware.AuthMiddleware,
	authController *controllers.AuthController,
	customerController *controllers.CustomerController,
	financeController *controllers.FinanceController,
	partnershipController *controllers.PartnershipController,
	userController *controllers.UserController,
	healthController *controllers.HealthController) {

	r.GET("/", healthController.Root)

	api := r.Group("/api")
	api.GET("/health", healthController.Health)
	api.POST("/login", authController.Login)
	api.GET("/me", authMiddleware.RequireAuth(), authController.Me)

	customers := api.Group("/customers",
		authMiddleware.RequireAuth(),
		authMiddleware.RequirePermission(db_models.PermManageCustomers))
	customers.POST("", customerController.CreateCustomer)
	customers.GET("", customerController.ListCustomers)
	customers.DELETE("/:id", customerController.DeleteCustomer)

	api.GET("/financials",
		authMiddleware.RequireAuth(),
		authMiddleware.RequirePermission(db_models.PermViewFinancials),
		financeController.GetFinancials)

	codes := api.Group("/partnership-codes",
		authMiddleware.RequireAuth(),
		authMiddleware.RequirePermission(db_models.PermManagePartnershipCodes))
	codes.POST("", partnershipController.CreateCode)
	codes.GET("", partnershipController.ListCodes)
	codes.DELETE("/:id", partnershipController.DeactivateCode)

	api.GET("/partnership-stats",
		authMiddleware.RequireAuth(),
		authMiddleware.RequirePermission(db_models.PermViewPartnershipStats),
		partnershipController.GetStats)

	users := api.Group("/users",
		authMiddleware.RequireAuth(),
		authMiddleware.RequirePermission(db_models.PermManageAccess))
	users.POST("", userController.CreateUser)
	users.GET("", userController.ListUsers)
	users.PUT("/:id", userController.UpdateUser)
	users.DELETE("/:id", userController.DeactivateUser)
}
