package controller

import (
	"context"
	"net/http"
	"time"

	"go-restaurant-backend/models"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) CreateReservation() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var reservation models.Reservation
		if err := c.ShouldBindJSON(&reservation); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be valid JSON"})
			return
		}

		if violations := reservation.Validate(); len(violations) > 0 {
			abortWithValidationErrors(c, violations)
			return
		}

		id, err := ctl.store.CreateDocument(ctx, models.ReservationCollection, reservation)
		if err != nil {
			abortWithStoreError(c, err, "error occurred while creating the reservation")
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "success": true})
	}
}
