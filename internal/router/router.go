package router

import (
	"recipe-api/internal/config"
	"recipe-api/internal/handler"
	"recipe-api/internal/middleware"
	"recipe-api/internal/repository"
	"recipe-api/internal/service"
	"recipe-api/internal/utils"
	"recipe-api/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 不支持的请求方法返回405而非404
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		utils.MethodNotAllowed(c, "不支持的请求方法")
	})

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "菜谱管理系统 API",
			"version": "1.0.0",
		})
	})

	// 上传目录静态服务
	r.Static(cfg.Upload.URLPrefix, cfg.Upload.Path)

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	// 初始化Service
	userService := service.NewUserService(userRepo, cfg)
	tokenService := service.NewTokenService(tokenRepo, jwtManager)
	tagService := service.NewTagService(tagRepo)
	ingredientService := service.NewIngredientService(ingredientRepo)
	recipeService := service.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, cfg)

	// 初始化Handler
	userHandler := handler.NewUserHandler(userService, tokenService)
	tagHandler := handler.NewTagHandler(tagService)
	ingredientHandler := handler.NewIngredientHandler(ingredientService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	adminHandler := handler.NewAdminHandler(userService)

	// 凭证类接口限流，未配置Redis时为空实现
	var limiter *redis_limiter.RedisLimiter
	if redisClient != nil {
		limiter = redis_limiter.NewRedisLimiter(
			redisClient,
			cfg.Redis.RateLimit,
			"ratelimit:credentials:",
			cfg.Redis.GetRateWindow(),
		)
	}
	rateLimited := middleware.RateLimitMiddleware(limiter)

	// API路由组
	api := r.Group("/api")
	{
		// 公开路由
		user := api.Group("/user")
		{
			user.POST("/create", rateLimited, userHandler.Create)
			user.POST("/token", rateLimited, userHandler.Token)
		}

		// 认证路由
		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(tokenService))
		{
			// 用户信息
			authorized.GET("/user/me", userHandler.GetMe)
			authorized.PATCH("/user/me", userHandler.UpdateMe)
			authorized.POST("/user/logout", userHandler.Logout)

			// 菜谱资源
			recipe := authorized.Group("/recipe")
			{
				// 标签和食材只有name一个可写字段，PATCH与PUT共用处理器
				recipe.GET("/tags", tagHandler.List)
				recipe.POST("/tags", tagHandler.Create)
				recipe.PUT("/tags/:id", tagHandler.Update)
				recipe.PATCH("/tags/:id", tagHandler.Update)
				recipe.DELETE("/tags/:id", tagHandler.Delete)

				recipe.GET("/ingredients", ingredientHandler.List)
				recipe.POST("/ingredients", ingredientHandler.Create)
				recipe.PUT("/ingredients/:id", ingredientHandler.Update)
				recipe.PATCH("/ingredients/:id", ingredientHandler.Update)
				recipe.DELETE("/ingredients/:id", ingredientHandler.Delete)

				recipe.GET("/recipes", recipeHandler.List)
				recipe.POST("/recipes", recipeHandler.Create)
				recipe.GET("/recipes/:id", recipeHandler.Get)
				recipe.PUT("/recipes/:id", recipeHandler.Update)
				recipe.PATCH("/recipes/:id", recipeHandler.Patch)
				recipe.DELETE("/recipes/:id", recipeHandler.Delete)
				recipe.POST("/recipes/:id/upload-image", recipeHandler.UploadImage)
			}

			// 管理员接口
			adminGroup := authorized.Group("/admin")
			adminGroup.Use(middleware.AdminMiddleware())
			{
				adminGroup.GET("/users", adminHandler.ListUsers)
			}
		}
	}

	return r
}
