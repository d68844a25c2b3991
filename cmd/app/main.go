package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"bukutamu/cmd/fx/auth_fx"
	"bukutamu/cmd/fx/controllers_fx"
	"bukutamu/cmd/fx/db_fx"
	"bukutamu/cmd/fx/guest_fx"
	"bukutamu/cmd/fx/recipient_fx"
	"bukutamu/cmd/fx/visitlog_fx"
	"bukutamu/cmd/fx/whatsapp_fx"
	"bukutamu/internal/api/controllers"
	"bukutamu/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		guest_fx.Module,
		recipient_fx.Module,
		visitlog_fx.Module,
		whatsapp_fx.Module,
		auth_fx.Module,
		controllers_fx.Module,

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
	guestsController *controllers.GuestsController,
	recipientsController *controllers.RecipientsController,
	visitsController *controllers.VisitsController,
	whatsappController *controllers.WhatsAppController,
	authController *controllers.AuthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, guestsController, recipientsController, visitsController, whatsappController, authController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	guestsController *controllers.GuestsController,
	recipientsController *controllers.RecipientsController,
	visitsController *controllers.VisitsController,
	whatsappController *controllers.WhatsAppController,
	authController *controllers.AuthController) {

	r.POST("/auth/login", authController.Login)

	guestsGroup := r.Group("/guests")
	guestsGroup.POST("", guestsController.Register)
	guestsGroup.GET("", guestsController.GetGuests)
	guestsGroup.GET("/:id/qrcode", guestsController.RenderQRCode)
	guestsGroup.POST("/verify", guestsController.Verify)

	recipientsGroup := r.Group("/recipients")
	recipientsGroup.GET("", recipientsController.List)

	// Directory management is the admin area; everything else stays open for
	// the visitor form and the reception desk.
	adminRecipients := recipientsGroup.Group("")
	adminRecipients.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminRecipients.POST("", recipientsController.Create)
	adminRecipients.PUT("/:id", recipientsController.Update)
	adminRecipients.DELETE("/:id", recipientsController.Delete)

	r.GET("/schedule", visitsController.Schedule)
	r.GET("/history", visitsController.History)

	r.POST("/notify", whatsappController.Send)
}
