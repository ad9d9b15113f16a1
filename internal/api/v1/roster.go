package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/model"
)

// GetRoster 查询某天的完整花名册
// GET /api/roster/:date
func (h *Handler) GetRoster(c *gin.Context) {
	date, err := time.ParseInLocation(time.DateOnly, c.Param("date"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "日期格式错误，应为 YYYY-MM-DD"})
		return
	}

	records, err := h.engine.FetchDay(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    c.Param("date"),
		"records": records,
	})
}

// UpdateRoomRequest 单房间手工修改请求，仅更新出现的字段
type UpdateRoomRequest struct {
	Status             *string `json:"status"`
	GuestDisplayName   *string `json:"guestDisplayName"`
	AdultCount         *int    `json:"adultCount"`
	ChildCount         *int    `json:"childCount"`
	AttendantCode      *string `json:"attendantCode"`
	MealPlanCode       *string `json:"mealPlanCode"`
	StayDateRangeLabel *string `json:"stayDateRangeLabel"`
	DailyNotes         *string `json:"dailyNotes"`
	PreferenceNotes    *string `json:"preferenceNotes"`
}

// UpdateRoom 手工修改某天单个房间的记录
// PATCH /api/roster/:date/:villa
func (h *Handler) UpdateRoom(c *gin.Context) {
	date, err := time.ParseInLocation(time.DateOnly, c.Param("date"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "日期格式错误，应为 YYYY-MM-DD"})
		return
	}

	villa := c.Param("villa")
	if n, err := strconv.Atoi(villa); err != nil || n < 1 || n > h.engine.VillaCount() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的房间号"})
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
		return
	}

	day, err := h.engine.FetchDay(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var record *model.GuestStayRecord
	for _, r := range day {
		if r.RoomNumber == villa {
			record = r
			break
		}
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "房间不存在"})
		return
	}

	applyRoomPatch(record, &req)

	if !record.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的房间状态"})
		return
	}
	if record.AdultCount < 0 || record.ChildCount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "入住人数不能为负数"})
		return
	}

	if record.Status == model.StatusVacant {
		// 空房不允许携带客人信息
		record.GuestDisplayName = ""
		record.AdultCount = 0
		record.ChildCount = 0
	}

	if err := h.engine.UpdateRoom(date, record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": record})
}

func applyRoomPatch(record *model.GuestStayRecord, req *UpdateRoomRequest) {
	if req.Status != nil {
		record.Status = model.RoomStatus(*req.Status)
	}
	if req.GuestDisplayName != nil {
		record.GuestDisplayName = *req.GuestDisplayName
	}
	if req.AdultCount != nil {
		record.AdultCount = *req.AdultCount
	}
	if req.ChildCount != nil {
		record.ChildCount = *req.ChildCount
	}
	if req.AttendantCode != nil {
		record.AttendantCode = *req.AttendantCode
	}
	if req.MealPlanCode != nil {
		record.MealPlanCode = *req.MealPlanCode
	}
	if req.StayDateRangeLabel != nil {
		record.StayDateRangeLabel = *req.StayDateRangeLabel
	}
	if req.DailyNotes != nil {
		record.DailyNotes = *req.DailyNotes
	}
	if req.PreferenceNotes != nil {
		record.PreferenceNotes = *req.PreferenceNotes
	}
}
