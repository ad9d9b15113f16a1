package parser

import "fmt"

// HeaderMap 表头列映射，一次导入产生一次，解析完即丢弃
// 列索引 -1 表示该列不存在
type HeaderMap struct {
	HeaderRow   int  `json:"headerRow"`   // 表头所在行索引
	FixedLayout bool `json:"fixedLayout"` // 是否命中已知固定版式报表

	Villa         int `json:"villa"`         // 别墅号列
	Name          int `json:"name"`          // 客人姓名列
	Gem           int `json:"gem"`           // 管家/服务代码列
	MealPlan      int `json:"mealPlan"`      // 餐饮计划列
	Adults        int `json:"adults"`        // 成人数列
	Children      int `json:"children"`      // 儿童数列
	ArrivalDate   int `json:"arrivalDate"`   // 入住日期列
	DepartureDate int `json:"departureDate"` // 离店日期列
}

// DetectionError 表头识别失败
type DetectionError struct {
	ScannedRows int // 实际扫描的行数
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("未找到表头：前 %d 行中没有 \"Villa\" 列", e.ScannedRows)
}

// EmptyResultError 表头已识别但未解析出任何有效数据行
type EmptyResultError struct {
	HeaderRow int // 使用的表头行索引，用于排查误识别
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("未解析出任何入住记录（表头行索引 %d）", e.HeaderRow)
}
