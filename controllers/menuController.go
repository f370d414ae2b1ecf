package controller

import (
	"context"
	"net/http"
	"time"

	"go-restaurant-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// ListMenu returns every menu item, optionally narrowed to one category via
// the category query parameter. An empty result is not an error.
func (ctl *Controller) ListMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{}
		if category := c.Query("category"); category != "" {
			filter["category"] = category
		}

		docs, err := ctl.store.GetDocuments(ctx, models.MenuItemCollection, filter)
		if err != nil {
			abortWithStoreError(c, err, "error occurred while listing the menu items")
			return
		}

		items := make([]gin.H, 0, len(docs))
		for _, doc := range docs {
			items = append(items, publicDocument(doc))
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}
