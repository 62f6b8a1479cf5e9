package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mhvocab/api/internal/config"
	"github.com/mhvocab/api/internal/middleware"
	"github.com/mhvocab/api/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		AppEnv:    "development",
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique shared-cache name so gorm's connection pool sees one database
	dsn := "file:" + uuid.New().String() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Document{},
		&model.Collection{},
		&model.Word{},
	))

	return db
}

// newTestRouter wires the full API surface the way cmd/server does.
func newTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	authHandler := NewAuthHandler(db, cfg)
	documentHandler := NewDocumentHandler(db)
	collectionHandler := NewCollectionHandler(db)
	wordHandler := NewWordHandler(db, nil)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/current-user", middleware.AuthMiddleware(cfg.JWTSecret), authHandler.Me)

		api.GET("/documents/:userId", documentHandler.List)
		api.POST("/documents/create-document", documentHandler.Create)

		api.GET("/collections/:documentId", collectionHandler.List)
		api.POST("/collections/create-collection", collectionHandler.Create)

		api.GET("/words/:collectionId", wordHandler.List)
		api.POST("/words/create-word", wordHandler.Create)
	}
	return r
}

func doJSON(r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonUnmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func tokenCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.TokenCookieName {
			return cookie
		}
	}
	t.Fatal("no token cookie set")
	return nil
}
