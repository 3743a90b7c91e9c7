package routes

import (
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/configs"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/controllers"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/middlewares"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/repository"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/services"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// one bus per process, passed by reference to whoever publishes
	bus := services.NewInvalidationBus()

	// Repositories
	munRepo := repository.NewMunicipalityRepository(db)
	dishRepo := repository.NewDishRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	linkRepo := repository.NewDishRestaurantRepository(db)
	curatorRepo := repository.NewCuratorRepository(db)

	// Services
	munSvc := services.NewMunicipalityService(munRepo)
	dishSvc := services.NewDishService(dishRepo, munRepo, bus)
	restSvc := services.NewRestaurantService(restRepo, munRepo, bus)
	linkSvc := services.NewLinkService(linkRepo, bus)
	rankSvc := services.NewRankService(dishRepo, restRepo, bus)
	authSvc := services.NewAuthService(curatorRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	munCtrl := controllers.NewMunicipalityController(munSvc)
	dishCtrl := controllers.NewDishController(dishSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	linkCtrl := controllers.NewLinkController(linkSvc)
	curationCtrl := controllers.NewCurationController(rankSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	// Realtime invalidation feed
	hub := ws.NewUpdatesHub(bus)
	r.GET("/ws/updates", hub.Handle)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}

	// Public browsing
	r.GET("/municipalities", munCtrl.List)
	r.GET("/municipalities/:slug/dishes", dishCtrl.List)
	r.GET("/municipalities/:slug/restaurants", restCtrl.List)
	r.GET("/dishes/:id", dishCtrl.Detail)
	r.GET("/dishes/:id/restaurants", linkCtrl.RestaurantsForDish)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/dishes", linkCtrl.DishesForRestaurant)

	// Curation (curator only)
	curation := r.Group("/curation", middlewares.AuthMiddleware("curator"))
	{
		curation.POST("/dishes", dishCtrl.Create)
		curation.PATCH("/dishes/:id", dishCtrl.Update)
		curation.DELETE("/dishes/:id", dishCtrl.Delete)
		curation.PATCH("/dishes/:id/rank", curationCtrl.SetDishRank)

		curation.POST("/restaurants", restCtrl.Create)
		curation.PATCH("/restaurants/:id", restCtrl.Update)
		curation.DELETE("/restaurants/:id", restCtrl.Delete)
		curation.PATCH("/restaurants/:id/rank", curationCtrl.SetRestaurantRank)

		curation.POST("/links", linkCtrl.Create)
		curation.POST("/links/bulk", linkCtrl.Bulk)
		curation.DELETE("/links/:dishId/:restaurantId", linkCtrl.Delete)
	}
}
