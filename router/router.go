package router

import (
	controller "go-restaurant-backend/controllers"
	"go-restaurant-backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter(store controller.DocumentStore) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddlewares())

	ctl := controller.New(store)

	r.GET("/", ctl.Root())
	r.GET("/test", ctl.TestDatabase())

	api := r.Group("/api")
	{
		api.GET("/menu", ctl.ListMenu())
		api.POST("/reservations", ctl.CreateReservation())
		api.POST("/contact", ctl.CreateContactMessage())
	}

	return r
}
