package routes

import (
	"github.com/Panupong-xD/SodiumTracker/controllers"
	"github.com/Panupong-xD/SodiumTracker/middlewares"
	"github.com/Panupong-xD/SodiumTracker/services"
	"github.com/Panupong-xD/SodiumTracker/storage"
	"github.com/Panupong-xD/SodiumTracker/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Store       *storage.Store
	Hub         *services.RealtimeHub
	Log         *zap.Logger
	JWTSecret   []byte
	PairingCode string
	Uploader    *utils.ImageUploader
}

func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(deps.Log), gin.Recovery())

	profileSvc := services.NewProfileService(deps.Store)
	catalogSvc := services.NewCatalogService(deps.Store)
	consumptionSvc := services.NewConsumptionService(deps.Store, catalogSvc)

	session := controllers.NewSessionController(deps.JWTSecret, deps.PairingCode)
	profile := controllers.NewProfileController(profileSvc)
	food := controllers.NewFoodController(catalogSvc)
	consumption := controllers.NewConsumptionController(consumptionSvc, deps.Hub)
	dashboard := controllers.NewDashboardController(consumptionSvc)
	realtime := controllers.NewRealtimeController(deps.Hub, consumptionSvc)
	images := controllers.NewImageUploadController(deps.Uploader)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.POST("/session/pair", session.Pair)

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(deps.JWTSecret))
	{
		api.GET("/profile", profile.GetProfile)
		api.PUT("/profile", profile.UpdateProfile)

		api.GET("/foods", food.ListFoods)
		api.POST("/foods", food.AddFood)
		api.DELETE("/foods/:id", food.DeleteFood)
		api.POST("/foods/:id/favorite", food.ToggleFavorite)

		api.POST("/consumption", consumption.LogConsumption)
		api.DELETE("/consumption/:id", consumption.DeleteConsumption)
		api.DELETE("/consumption", consumption.ClearHistory)
		api.GET("/history", consumption.GetHistory)

		api.GET("/dashboard/summary", dashboard.GetSummary)
		api.GET("/dashboard/chart", dashboard.GetChart)

		api.POST("/images", images.UploadImage)
		api.GET("/ws", realtime.SummaryWS)
	}

	return r
}
