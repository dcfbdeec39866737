package service

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"recipe-api/internal/config"
	"recipe-api/internal/models"
	"recipe-api/internal/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// setupTestDB 为每个测试创建独立的内存数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:recipeapi_svc_%d?mode=memory&cache=shared", seq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	return db
}

// newTestConfig 构造测试配置
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
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
}

// newTestJWTManager 构造测试用JWT管理器
func newTestJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(
		cfg.JWT.SecretKey,
		cfg.JWT.Algorithm,
		time.Duration(cfg.JWT.ExpireMinutes)*time.Minute,
	)
}
