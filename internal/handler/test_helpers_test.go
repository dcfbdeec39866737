package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"recipe-api/internal/config"
	"recipe-api/internal/models"
	"recipe-api/internal/repository"
	"recipe-api/internal/router"
	"recipe-api/internal/service"
	"recipe-api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// jsonBody 请求体简写
type jsonBody = map[string]interface{}

// envelope 统一响应格式
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// apiEnv 端到端测试环境：完整路由 + 内存数据库
type apiEnv struct {
	router            *gin.Engine
	cfg               *config.Config
	userService       *service.UserService
	tokenService      *service.TokenService
	tagService        *service.TagService
	ingredientService *service.IngredientService
	recipeService     *service.RecipeService
}

func setupAPI(t *testing.T) *apiEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:recipeapi_api_%d?mode=memory&cache=shared", seq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:     "test-secret",
			Algorithm:     "HS256",
			ExpireMinutes: 60,
		},
		Upload: config.UploadConfig{
			Path:      t.TempDir(),
			URLPrefix: "/uploads",
		},
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Algorithm, time.Hour)

	log := logrus.New()
	log.SetOutput(io.Discard)

	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)

	return &apiEnv{
		router:            router.SetupRouter(cfg, jwtManager, log, db, nil),
		cfg:               cfg,
		userService:       service.NewUserService(userRepo, cfg),
		tokenService:      service.NewTokenService(repository.NewTokenRepository(db), jwtManager),
		tagService:        service.NewTagService(tagRepo),
		ingredientService: service.NewIngredientService(ingredientRepo),
		recipeService:     service.NewRecipeService(repository.NewRecipeRepository(db), tagRepo, ingredientRepo, cfg),
	}
}

// createUser 直接通过service创建用户
func (e *apiEnv) createUser(t *testing.T, email, password string) *models.User {
	t.Helper()

	user, err := e.userService.CreateUser(email, password, "Test Name")
	require.NoError(t, err)
	return user
}

// token 为用户签发令牌
func (e *apiEnv) token(t *testing.T, user *models.User) string {
	t.Helper()

	key, err := e.tokenService.Issue(user)
	require.NoError(t, err)
	return key
}

// doJSON 发送JSON请求，token为空时不带认证头
func (e *apiEnv) doJSON(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// doMultipart 发送multipart文件上传请求
func (e *apiEnv) doMultipart(t *testing.T, path, field, filename string, content []byte, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decodeEnvelope 解析统一响应
func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// decodeData 解析data字段
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// pngPayload 生成一个最小的有效PNG
func pngPayload(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	return buf.Bytes()
}
