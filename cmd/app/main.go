package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"yatra/cmd/fx/genai_fx"
	"yatra/cmd/fx/itinerary_fx"
	"yatra/cmd/fx/rates_fx"
	"yatra/cmd/fx/storage_fx"
	"yatra/internal/api/controllers"
	"yatra/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		genai_fx.Module,
		rates_fx.Module,
		storage_fx.Module,
		itinerary_fx.Module,

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
	itineraryController *controllers.ItineraryController,
	preferencesController *controllers.PreferencesController,
	ratesController *controllers.RatesController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, preferencesController, ratesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	preferencesController *controllers.PreferencesController,
	ratesController *controllers.RatesController) {

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.POST("/generate", itineraryController.GenerateHandler)
	itineraryGroup.GET("/current", itineraryController.CurrentHandler)
	itineraryGroup.DELETE("/current", itineraryController.ClearHandler)
	itineraryGroup.GET("/budget", itineraryController.BudgetHandler)
	itineraryGroup.GET("/export", itineraryController.ExportJSONHandler)
	itineraryGroup.GET("/export/pdf", itineraryController.ExportPDFHandler)

	r.GET("/preferences", preferencesController.GetPreferencesHandler)
	r.PUT("/preferences", preferencesController.SavePreferencesHandler)
	r.GET("/plans", preferencesController.ListPlansHandler)
	r.POST("/plans", preferencesController.SavePlanHandler)

	ratesGroup := r.Group("/rates")
	ratesGroup.GET("", ratesController.TableHandler)
	ratesGroup.GET("/convert", ratesController.ConvertHandler)
	ratesGroup.POST("/refresh", ratesController.RefreshHandler)
}
