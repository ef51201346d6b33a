package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shift-checkin/config"
	"shift-checkin/internal/api/handler"
	"shift-checkin/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 可为 nil（未启用 Redis），此时扫码接口不限流
func Setup(cfg *config.Config, h *handler.Handler, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── 看板 ──
	r.GET("/", h.Checkin.Dashboard)

	// ── 班前设置 ──
	r.GET("/settings", h.Settings.GetSettings)
	r.POST("/settings", h.Settings.UpdateSettings)

	// ── 角色预分配 ──
	r.GET("/assign_roles", h.Assignment.GetAssignments)
	r.POST("/assign_roles", h.Assignment.AssignRoles)
	r.POST("/assign_role", h.Assignment.AssignRole)

	// ── 花名册 ──
	r.GET("/associates", h.Roster.ListAssociates)
	r.POST("/associates/import", h.Roster.ImportAssociates)
	r.GET("/add_associate", h.Roster.AddAssociateForm)
	r.POST("/add_associate", h.Roster.AddAssociate)

	// ── 扫码与在岗管理（限流） ──
	window := time.Duration(cfg.Server.RateLimit.WindowSeconds) * time.Second
	scan := r.Group("", middleware.RateLimit(limiter, cfg.Server.RateLimit.Limit, window))
	{
		scan.POST("/checkin", h.Checkin.CheckIn)
		scan.POST("/remove", h.Checkin.Remove)
		scan.POST("/reassign_role", h.Checkin.ReassignRole)
	}
	r.POST("/reset", h.Checkin.Reset)

	// ── 导出 ──
	r.GET("/export/board", h.Export.ExportBoard)

	return r
}
