package main

import (
	"log"

	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/configs"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/entity"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/middlewares"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// join table (many2many Dish<->Restaurant carries price note + availability);
	// configured after the migration so dish_restaurants keeps its metadata columns
	if err := db.SetupJoinTable(&entity.Dish{}, "Restaurants", &entity.DishRestaurant{}); err != nil {
		log.Fatalf("setup join table failed: %v", err)
	}

	if err := configs.SeedCurator(); err != nil {
		log.Fatalf("seed curator failed: %v", err)
	}
	if err := configs.SeedMunicipalities(); err != nil {
		log.Fatalf("seed municipalities failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	port := cfg.Port
	log.Println("listening on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
