package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/config"
	"github.com/Yarmin007/HK-Pulse-sub000/internal/roster"
	"github.com/Yarmin007/HK-Pulse-sub000/internal/store"
)

// Handler V1 API 处理器
type Handler struct {
	store    *store.Store
	engine   *roster.Engine
	cfg      *config.AppConfig
	previews *pendingImportStore
}

// NewHandler 创建 V1 API 处理器
func NewHandler(st *store.Store, engine *roster.Engine, cfg *config.AppConfig) *Handler {
	return &Handler{
		store:    st,
		engine:   engine,
		cfg:      cfg,
		previews: newPendingImportStore(),
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	// 有数据的日期
	router.GET("/days", h.ListDays)

	// 花名册查询与手工修改
	router.GET("/roster/:date", h.GetRoster)
	router.PATCH("/roster/:date/:villa", h.UpdateRoom)

	// 导入：预览 → 确认提交
	router.POST("/import", h.Import)
	router.POST("/import/approve", h.Approve)
	router.GET("/imports", h.ListImports)

	// 日滚动
	router.POST("/rollover", h.RollOver)
}
