package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/model"
)

// ParseRows 解析表头之后的所有数据行，产出按房号合并后的入住记录
// 同一别墅号的多行合并为一条：姓名以 " & " 连接，成人/儿童数相加
func ParseRows(grid Grid, hm *HeaderMap, reportDate time.Time) ([]*model.GuestStayRecord, error) {
	reportDate = Midnight(reportDate)

	var records []*model.GuestStayRecord
	byVilla := make(map[string]*model.GuestStayRecord)

	for rowIdx := hm.HeaderRow + 1; rowIdx < len(grid); rowIdx++ {
		villa, ok := normalizeVillaCell(grid.Cell(rowIdx, hm.Villa))
		if !ok {
			continue
		}

		name := NormalizeGuestName(grid.Cell(rowIdx, hm.Name))
		adults := parseCount(grid.Cell(rowIdx, hm.Adults))
		children := parseCount(grid.Cell(rowIdx, hm.Children))
		arrivalCell := strings.TrimSpace(grid.Cell(rowIdx, hm.ArrivalDate))
		departureCell := strings.TrimSpace(grid.Cell(rowIdx, hm.DepartureDate))

		if existing, ok := byVilla[villa]; ok {
			mergeRecord(existing, name, adults, children)
			continue
		}

		record := &model.GuestStayRecord{
			ReportDate:         reportDate,
			RoomNumber:         villa,
			Status:             deriveStatus(arrivalCell, departureCell, reportDate),
			GuestDisplayName:   name,
			AdultCount:         adults,
			ChildCount:         children,
			AttendantCode:      strings.TrimSpace(grid.Cell(rowIdx, hm.Gem)),
			MealPlanCode:       strings.TrimSpace(grid.Cell(rowIdx, hm.MealPlan)),
			StayDateRangeLabel: stayRangeLabel(arrivalCell, departureCell),
		}
		byVilla[villa] = record
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, &EmptyResultError{HeaderRow: hm.HeaderRow}
	}

	return records, nil
}

// normalizeVillaCell 校验并规范化别墅号单元格
// 空白、非数字、或含 "NO" 的单元格视为页脚/重复表头残留，整行跳过
func normalizeVillaCell(cell string) (string, bool) {
	text := strings.TrimSpace(cell)
	if text == "" {
		return "", false
	}
	if strings.Contains(strings.ToUpper(text), "NO") {
		return "", false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return "", false
	}
	return strconv.Itoa(int(v)), true
}

// deriveStatus 根据入住/离店日期与报表日期的关系推导当日状态
// 任一日期缺失时默认在住
func deriveStatus(arrivalCell, departureCell string, reportDate time.Time) model.RoomStatus {
	if arrivalCell == "" || departureCell == "" {
		return model.StatusOccupied
	}

	arrival, arrOK := ParseFlexibleDate(arrivalCell)
	departure, depOK := ParseFlexibleDate(departureCell)
	if !arrOK || !depOK {
		return model.StatusOccupied
	}

	arrivesToday := arrival.Equal(reportDate)
	departsToday := departure.Equal(reportDate)

	switch {
	case arrivesToday && departsToday:
		return model.StatusDepartingArriving
	case arrivesToday:
		return model.StatusArriving
	case departsToday:
		return model.StatusDeparting
	default:
		return model.StatusOccupied
	}
}

// mergeRecord 合并同一别墅的后续行（常见于一房两名客人）
func mergeRecord(existing *model.GuestStayRecord, name string, adults, children int) {
	if name != "" && !containsName(existing.GuestDisplayName, name) {
		if existing.GuestDisplayName == "" {
			existing.GuestDisplayName = name
		} else {
			existing.GuestDisplayName += " & " + name
		}
	}
	existing.AdultCount += adults
	existing.ChildCount += children
}

// containsName 判断姓名是否已经出现在 " & " 连接串中
func containsName(joined, name string) bool {
	for _, part := range strings.Split(joined, " & ") {
		if part == name {
			return true
		}
	}
	return false
}

// parseCount 宽松解析人数，解析失败按 0 处理
func parseCount(cell string) int {
	text := strings.TrimSpace(cell)
	if text == "" {
		return 0
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v < 0 {
		return 0
	}
	return int(v)
}

// stayRangeLabel 生成入住-离店日期标签
// 能解析则用统一格式，否则保留原始单元格内容
func stayRangeLabel(arrivalCell, departureCell string) string {
	if arrivalCell == "" && departureCell == "" {
		return ""
	}

	label := func(cell string) string {
		if t, ok := ParseFlexibleDate(cell); ok {
			return t.Format("02 Jan")
		}
		return cell
	}

	return label(arrivalCell) + " - " + label(departureCell)
}
