package controller

import (
	"context"
	"net/http"
	"time"

	"go-restaurant-backend/models"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) CreateContactMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var message models.ContactMessage
		if err := c.ShouldBindJSON(&message); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be valid JSON"})
			return
		}

		if violations := message.Validate(); len(violations) > 0 {
			abortWithValidationErrors(c, violations)
			return
		}

		id, err := ctl.store.CreateDocument(ctx, models.ContactMessageCollection, message)
		if err != nil {
			abortWithStoreError(c, err, "error occurred while saving the message")
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "success": true})
	}
}
