package controller

import (
	"errors"
	"fmt"
	"net/http"

	"go-restaurant-backend/database"
	"go-restaurant-backend/models"
	"go-restaurant-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// abortWithStoreError logs the raw store failure and answers with one of a
// small closed set of user-safe messages. The underlying error text never
// reaches the client.
func abortWithStoreError(c *gin.Context, err error, safeMessage string) {
	utils.ErrorLogger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)

	if errors.Is(err, database.ErrStorageUnavailable) {
		safeMessage = "storage unavailable"
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": safeMessage})
}

func abortWithValidationErrors(c *gin.Context, violations []models.FieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":  "validation failed",
		"fields": violations,
	})
}

// publicDocument reshapes a stored document for the API: the internal _id is
// dropped and re-exposed as a public id string.
func publicDocument(doc map[string]interface{}) gin.H {
	out := gin.H{}
	for key, value := range doc {
		if key == "_id" {
			continue
		}
		out[key] = value
	}

	if raw, ok := doc["_id"]; ok {
		switch id := raw.(type) {
		case primitive.ObjectID:
			out["id"] = id.Hex()
		case string:
			out["id"] = id
		default:
			out["id"] = fmt.Sprintf("%v", raw)
		}
	}
	return out
}
