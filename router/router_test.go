package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-restaurant-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

type stubStore struct{}

func (stubStore) CreateDocument(context.Context, string, interface{}) (string, error) {
	return "stub-id", nil
}

func (stubStore) GetDocuments(context.Context, string, bson.M) ([]bson.M, error) {
	return nil, nil
}

func (stubStore) ListCollectionNames(context.Context) ([]string, error) {
	return nil, nil
}

func (stubStore) Connected() bool { return true }

func TestSetupRouterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	r := SetupRouter(stubStore{})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/test", http.StatusOK},
		{http.MethodGet, "/api/menu", http.StatusOK},
		{http.MethodOptions, "/api/reservations", http.StatusNoContent},
	}
	for _, tt := range tests {
		req, err := http.NewRequest(tt.method, tt.path, nil)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, tt.want, w.Code, "%s %s", tt.method, tt.path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	}
}
