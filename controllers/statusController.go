package controller

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

func (ctl *Controller) Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Pappa Ji Ka Dosa API running"})
	}
}

// TestDatabase reports a best-effort snapshot of the storage layer. Every
// internal failure is rendered as an inline status string; this endpoint
// never answers with an error status, since its whole point is to stay
// readable while the system is partially broken.
func (ctl *Controller) TestDatabase() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		status := gin.H{
			"backend":           "running",
			"database":          "not available",
			"connection_status": "not connected",
			"collections":       []string{},
		}

		if ctl.store.Connected() {
			status["database"] = "available"
			status["connection_status"] = "connected"

			names, err := ctl.store.ListCollectionNames(ctx)
			if err != nil {
				status["database"] = "connected but error: " + clip(err.Error(), 50)
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				status["collections"] = names
				status["database"] = "connected and working"
			}
		}

		status["database_url"] = envStatus("DATABASE_URL")
		status["database_name"] = envStatus("DATABASE_NAME")

		c.JSON(http.StatusOK, status)
	}
}

func envStatus(key string) string {
	if os.Getenv(key) == "" {
		return "not set"
	}
	return "set"
}

// clip shortens s to at most n characters without splitting a rune.
func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
