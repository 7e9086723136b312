package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saylani-welfare/backend/config"
	"saylani-welfare/backend/internal/api/handler"
	"saylani-welfare/backend/internal/api/middleware"
	"saylani-welfare/backend/internal/model"
	"saylani-welfare/backend/pkg/jwt"
	"saylani-welfare/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// ── API ──
	api := r.Group("/api")
	{
		// 认证模块（无需认证；登录接口限流）
		api.POST("/auth/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)

		// 需要认证的路由
		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 用户管理模块（管理员）
			users := authorized.Group("/users")
			users.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				users.GET("", h.User.ListUsers)
				users.POST("", h.User.CreateUser)
				users.PUT("/:id", h.User.UpdateUser)
				users.DELETE("/:id", h.User.DeleteUser)
			}

			// 受助人模块
			beneficiaries := authorized.Group("/beneficiaries")
			{
				beneficiaries.POST("", middleware.RoleAuth(model.RoleReceptionist, model.RoleAdmin), h.Beneficiary.Register)
				beneficiaries.GET("", middleware.RoleAuth(model.RoleAdmin, model.RoleReceptionist), h.Beneficiary.List)
				beneficiaries.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Beneficiary.Edit)
				beneficiaries.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Beneficiary.Delete)
			}

			// 搜索
			authorized.GET("/search",
				middleware.RoleAuth(model.RoleAdmin, model.RoleReceptionist, model.RoleDepartmentStaff),
				h.Beneficiary.Search,
			)

			// 案件 Token 模块
			tokens := authorized.Group("/tokens")
			{
				tokens.GET("/:id", h.Token.GetToken)
				tokens.PATCH("/:id", middleware.RoleAuth(model.RoleDepartmentStaff, model.RoleAdmin), h.Token.UpdateToken)
			}

			// 仪表盘（管理员）
			authorized.GET("/dashboard", middleware.RoleAuth(model.RoleAdmin), h.Dashboard.GetStats)

			// 导出（管理员）
			authorized.GET("/export/beneficiaries", middleware.RoleAuth(model.RoleAdmin), h.Export.ExportBeneficiaries)
		}
	}

	return r
}
