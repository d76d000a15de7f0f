package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blog_platform_api/internal/domain/post/model"
	"blog_platform_api/internal/domain/post/repository"
	"blog_platform_api/internal/domain/post/service"
	"blog_platform_api/internal/pkg/clerk"
	"blog_platform_api/internal/pkg/config"
	"blog_platform_api/internal/pkg/middleware"
	"blog_platform_api/pkg/logger"
	"blog_platform_api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init(false)
}

// identityStub 模拟外部身份服务，valid-token 对应 user_1
func identityStub(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sessions/verify":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["token"] != "valid-token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(clerk.Session{ID: "sess_1", UserID: "user_1", Status: "active"})
		case "/users/user_1":
			_ = json.NewEncoder(w).Encode(clerk.User{
				ID:        "user_1",
				FirstName: "Jane",
				LastName:  "Doe",
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Post{}))

	stub := identityStub(t)
	client := clerk.NewClient(config.ClerkConfig{
		APIKey:  "sk_test",
		BaseURL: stub.URL,
		Timeout: 2 * time.Second,
	})

	h := NewPostHandler(service.NewPostService(repository.NewPostRepository(db)))

	router := gin.New()
	router.GET("/api/posts/read", h.Read)
	router.GET("/api/posts/read_one", h.ReadOne)

	protected := router.Group("/api/posts")
	protected.Use(middleware.RequireAuth(client))
	{
		protected.POST("/create", h.Create)
		protected.POST("/update", h.Update)
		protected.POST("/delete", h.Delete)
	}
	return router, db
}

func doJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

func TestPostRead(t *testing.T) {
	t.Run("Empty table returns empty records", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doJSON(router, http.MethodGet, "/api/posts/read", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"records": []}`, w.Body.String())
	})

	t.Run("Posts listed newest first with decoded tags", func(t *testing.T) {
		router, db := setupRouter(t)

		db.Create(&model.Post{Title: "First", Content: "a", Tags: `["go","web"]`})
		db.Create(&model.Post{Title: "Second", Content: "b", Tags: "legacy, tags"})

		w := doJSON(router, http.MethodGet, "/api/posts/read", "", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Records []model.PostResponse `json:"records"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Records, 2)
		assert.Equal(t, "Second", body.Records[0].Title)
		assert.Equal(t, []string{"legacy", "tags"}, body.Records[0].Tags)
		assert.Equal(t, []string{"go", "web"}, body.Records[1].Tags)
	})
}

func TestPostReadOne(t *testing.T) {
	router, db := setupRouter(t)
	db.Create(&model.Post{Title: "Hello", Content: "World"})

	t.Run("Found", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/posts/read_one?id=1", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var body model.PostResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Hello", body.Title)
	})

	t.Run("Missing id parameter", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/posts/read_one", "", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.MsgMissingID, message(t, w))
	})

	t.Run("Unknown id", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/posts/read_one?id=999", "", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, response.MsgPostNotFound, message(t, w))
	})
}

func TestPostCreate(t *testing.T) {
	t.Run("Unauthenticated is rejected", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doJSON(router, http.MethodPost, "/api/posts/create", `{"title":"T","content":"C"}`, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, response.MsgUnauthorized, message(t, w))
	})

	t.Run("Invalid token is rejected", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doJSON(router, http.MethodPost, "/api/posts/create", `{"title":"T","content":"C"}`, "bad-token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Created with author from identity", func(t *testing.T) {
		router, db := setupRouter(t)

		w := doJSON(router, http.MethodPost, "/api/posts/create",
			`{"title":"T","content":"C","tags":["go","api"]}`, "valid-token")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, response.MsgPostCreated, message(t, w))

		var post model.Post
		require.NoError(t, db.First(&post).Error)
		assert.Equal(t, "Jane Doe", post.Author)
		assert.JSONEq(t, `["go","api"]`, post.Tags)
	})

	t.Run("Legacy comma tags accepted", func(t *testing.T) {
		router, db := setupRouter(t)

		w := doJSON(router, http.MethodPost, "/api/posts/create",
			`{"title":"T","content":"C","tags":"go, api"}`, "valid-token")

		assert.Equal(t, http.StatusCreated, w.Code)

		var post model.Post
		require.NoError(t, db.First(&post).Error)
		assert.Equal(t, "go, api", post.Tags)
	})

	t.Run("Incomplete data", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doJSON(router, http.MethodPost, "/api/posts/create", `{"title":"only"}`, "valid-token")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.MsgPostDataIncomplete, message(t, w))
	})
}

func TestPostUpdate(t *testing.T) {
	t.Run("Partial update keeps other fields", func(t *testing.T) {
		router, db := setupRouter(t)
		db.Create(&model.Post{Title: "Old", Content: "Body", Author: "Jane Doe"})

		w := doJSON(router, http.MethodPost, "/api/posts/update",
			`{"id":1,"title":"New"}`, "valid-token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, response.MsgPostUpdated, message(t, w))

		var post model.Post
		require.NoError(t, db.First(&post).Error)
		assert.Equal(t, "New", post.Title)
		assert.Equal(t, "Body", post.Content)
		assert.Equal(t, "Jane Doe", post.Author)
	})

	t.Run("Missing id", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doJSON(router, http.MethodPost, "/api/posts/update", `{"title":"New"}`, "valid-token")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.MsgPostUpdateNoID, message(t, w))
	})

	t.Run("Unknown id", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doJSON(router, http.MethodPost, "/api/posts/update", `{"id":999,"title":"New"}`, "valid-token")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, response.MsgPostNotFound, message(t, w))
	})
}

func TestPostDelete(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		router, db := setupRouter(t)
		db.Create(&model.Post{Title: "T", Content: "C"})

		w := doJSON(router, http.MethodPost, "/api/posts/delete", `{"id":1}`, "valid-token")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, response.MsgPostDeleted, message(t, w))

		var count int64
		db.Model(&model.Post{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Unknown id", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doJSON(router, http.MethodPost, "/api/posts/delete", `{"id":999}`, "valid-token")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, response.MsgPostNotFound, message(t, w))
	})

	t.Run("Missing id", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := doJSON(router, http.MethodPost, "/api/posts/delete", `{}`, "valid-token")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.MsgPostDeleteNoID, message(t, w))
	})
}
