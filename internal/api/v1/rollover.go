package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/roster"
)

// RollOverRequest 日滚动请求
type RollOverRequest struct {
	TargetDate string `json:"targetDate" binding:"required"` // 目标日期 YYYY-MM-DD
	Confirm    bool   `json:"confirm"`                       // 必须显式确认，滚动会覆盖目标日期已有数据
}

// RollOver 从最近的历史日期滚动生成目标日期的花名册
// POST /api/rollover
func (h *Handler) RollOver(c *gin.Context) {
	var req RollOverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetDate 缺失"})
		return
	}

	if !req.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "滚动会覆盖目标日期已有数据，需要显式确认 (confirm: true)"})
		return
	}

	targetDate, err := time.ParseInLocation(time.DateOnly, req.TargetDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "targetDate 格式错误，应为 YYYY-MM-DD"})
		return
	}

	if err := h.engine.RollOver(targetDate); err != nil {
		if errors.Is(err, roster.ErrNoHistory) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"targetDate": req.TargetDate})
}
