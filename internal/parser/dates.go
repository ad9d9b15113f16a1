package parser

import (
	"strconv"
	"strings"
	"time"
)

// excelEpochOffsetDays Excel 日期序列号与 Unix 纪元之间的偏移天数
// 序列号转日期的唯一入口，1900 纪元换算只在这里出现
const excelEpochOffsetDays = 25569

// literalDateLayouts 物业系统导出中出现过的字面日期格式，按序尝试
var literalDateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"2006-01-02",
}

// ParseFlexibleDate 解析单元格中的日期
// 兼容两种表示：Excel 日期序列号，或字面日期字符串；结果截断到当天零点 (UTC)
func ParseFlexibleDate(cell string) (time.Time, bool) {
	text := strings.TrimSpace(cell)
	if text == "" {
		return time.Time{}, false
	}

	// 序列号形式
	if serial, err := strconv.ParseFloat(text, 64); err == nil {
		days := int(serial) - excelEpochOffsetDays
		t := time.Unix(int64(days)*86400, 0).UTC()
		return Midnight(t), true
	}

	// 字面形式
	for _, layout := range literalDateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return Midnight(t.UTC()), true
		}
	}

	return time.Time{}, false
}

// Midnight 截断到当天零点
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
