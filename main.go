package main

import (
	"os"

	"go-restaurant-backend/config"
	"go-restaurant-backend/database"
	"go-restaurant-backend/router"
	"go-restaurant-backend/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	utils.InitLogger()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		// Keep serving so /test can report what is wrong.
		utils.ErrorLogger.Errorf("database connection failed, running without storage: %v", err)
	}
	store := database.NewStore(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(store)

	utils.InfoLogger.Printf("listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
