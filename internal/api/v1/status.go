package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/model"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized    bool   `json:"initialized"`    // 是否已有数据
	LatestDate     string `json:"latestDate"`     // 最近的有数据日期
	VillaCount     int    `json:"villaCount"`     // 物业固定房间数
	Occupied       int    `json:"occupied"`       // 最近日期的在住房间数
	Arriving       int    `json:"arriving"`       // 当日入住房间数
	Departing      int    `json:"departing"`      // 当日离店房间数
	Vacant         int    `json:"vacant"`         // 空房数
	LastImportTime string `json:"lastImportTime"` // 最后导入时间
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		VillaCount: h.cfg.Property.VillaCount,
	}

	latest, err := h.store.LatestDay()
	if err != nil || latest == "" {
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.Initialized = true
	resp.LatestDate = latest

	if date, err := time.ParseInLocation(time.DateOnly, latest, time.UTC); err == nil {
		if day, err := h.engine.FetchDay(date); err == nil {
			for _, r := range day {
				switch r.Status {
				case model.StatusOccupied, model.StatusDepartingArriving:
					resp.Occupied++
				case model.StatusArriving:
					resp.Arriving++
				case model.StatusDeparting:
					resp.Departing++
				case model.StatusVacant:
					resp.Vacant++
				}
			}
		}
	}

	if t, err := h.store.LastImportTime(); err == nil {
		resp.LastImportTime = t
	}

	c.JSON(http.StatusOK, resp)
}

// ListDays 列出有数据的日期
// GET /api/days
func (h *Handler) ListDays(c *gin.Context) {
	days, err := h.store.ListDays()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}
