package model

import (
	"strconv"
	"time"
)

// RoomStatus 客房当日状态
type RoomStatus string

const (
	StatusVacant             RoomStatus = "VACANT"              // 空房
	StatusArriving           RoomStatus = "ARRIVING"            // 当日入住
	StatusOccupied           RoomStatus = "OCCUPIED"            // 在住
	StatusDeparting          RoomStatus = "DEPARTING"           // 当日离店
	StatusDepartingArriving  RoomStatus = "DEPARTING_ARRIVING"  // 当日离店并入住（换客）
	StatusTransitMaintenance RoomStatus = "TRANSIT_MAINTENANCE" // 维护中转
	StatusHoldUnserviceable  RoomStatus = "HOLD_UNSERVICEABLE"  // 停用封存
)

// Valid 判断是否为已定义的状态枚举值
func (s RoomStatus) Valid() bool {
	switch s {
	case StatusVacant, StatusArriving, StatusOccupied, StatusDeparting,
		StatusDepartingArriving, StatusTransitMaintenance, StatusHoldUnserviceable:
		return true
	}
	return false
}

// GuestStayRecord 入住记录，每房每日一条
// 逻辑主键为 (reportDate, roomNumber)，按天整体替换，不做跨天更新
type GuestStayRecord struct {
	ReportDate         time.Time  `json:"reportDate"`         // 记录所属日期
	RoomNumber         string     `json:"roomNumber"`         // 别墅/房间号
	Status             RoomStatus `json:"status"`             // 当日状态
	GuestDisplayName   string     `json:"guestDisplayName"`   // 规范化后的客人姓名，多客人以 " & " 连接
	AdultCount         int        `json:"adultCount"`         // 成人数
	ChildCount         int        `json:"childCount"`         // 儿童数
	AttendantCode      string     `json:"attendantCode"`      // 管家/服务代码
	MealPlanCode       string     `json:"mealPlanCode"`       // 餐饮计划代码
	StayDateRangeLabel string     `json:"stayDateRangeLabel"` // 入住-离店日期标签
	DailyNotes         string     `json:"dailyNotes"`         // 当日备注，每次滚动后清空
	PreferenceNotes    string     `json:"preferenceNotes"`    // 客人偏好备注，跨天保留
}

// NewVacantRecord 创建指定日期的空房记录
func NewVacantRecord(reportDate time.Time, roomNumber string) *GuestStayRecord {
	return &GuestStayRecord{
		ReportDate: reportDate,
		RoomNumber: roomNumber,
		Status:     StatusVacant,
	}
}

// MaterializeDay 将某天的记录补齐为完整的 1..N 房间集合
// 缺失的房间补为空房，输入中多余的房号保留在末尾
func MaterializeDay(reportDate time.Time, villaCount int, records []*GuestStayRecord) []*GuestStayRecord {
	byRoom := make(map[string]*GuestStayRecord, len(records))
	for _, r := range records {
		byRoom[r.RoomNumber] = r
	}

	out := make([]*GuestStayRecord, 0, villaCount)
	seen := make(map[string]bool, villaCount)
	for i := 1; i <= villaCount; i++ {
		room := strconv.Itoa(i)
		seen[room] = true
		if r, ok := byRoom[room]; ok {
			out = append(out, r)
		} else {
			out = append(out, NewVacantRecord(reportDate, room))
		}
	}

	// 超出固定房号范围的记录不丢弃
	for _, r := range records {
		if !seen[r.RoomNumber] {
			out = append(out, r)
			seen[r.RoomNumber] = true
		}
	}

	return out
}
