package parser

import (
	"strings"
)

// headerScanLimit 表头只在前 30 行内查找，整表扫描容易被数据行误判
const headerScanLimit = 30

// fixedLayoutMarker 已知固定版式报表的标志串
const fixedLayoutMarker = "OCCUPANCY REPORT"

// columnRule 列识别规则：谓词命中则把该列索引写入映射
// 规则按序匹配，单列只取第一条命中的规则
type columnRule struct {
	field string
	match func(cell string) bool
	apply func(hm *HeaderMap, col int)
}

// columnRules 表头列识别规则表
var columnRules = []columnRule{
	{
		field: "villa",
		match: func(c string) bool { return strings.Contains(c, "VILLA") },
		apply: func(hm *HeaderMap, col int) { hm.Villa = col },
	},
	{
		field: "gem",
		match: func(c string) bool { return strings.Contains(c, "GEM") },
		apply: func(hm *HeaderMap, col int) { hm.Gem = col },
	},
	{
		field: "arrivalDate",
		match: func(c string) bool { return strings.Contains(c, "ARR") && strings.Contains(c, "DATE") },
		apply: func(hm *HeaderMap, col int) { hm.ArrivalDate = col },
	},
	{
		field: "departureDate",
		match: func(c string) bool { return strings.Contains(c, "DEP") && strings.Contains(c, "DATE") },
		apply: func(hm *HeaderMap, col int) { hm.DepartureDate = col },
	},
	{
		field: "name",
		match: func(c string) bool { return strings.Contains(c, "NAME") },
		apply: func(hm *HeaderMap, col int) { hm.Name = col },
	},
	{
		field: "mealPlan",
		match: func(c string) bool { return strings.Contains(c, "MEAL") || strings.Contains(c, "PLAN") },
		apply: func(hm *HeaderMap, col int) { hm.MealPlan = col },
	},
	{
		field: "adults",
		match: func(c string) bool { return strings.Contains(c, "ADULT") || c == "AD" },
		apply: func(hm *HeaderMap, col int) { hm.Adults = col },
	},
	{
		field: "children",
		match: func(c string) bool { return strings.Contains(c, "CHILD") || c == "CH" },
		apply: func(hm *HeaderMap, col int) { hm.Children = col },
	},
}

// fixedLayoutMap 固定版式报表的硬编码列映射
// 该版式没有可识别的表头行，只能按位置取列
func fixedLayoutMap(headerRow int) *HeaderMap {
	hm := newHeaderMap(headerRow)
	hm.FixedLayout = true
	hm.Villa = 0
	hm.Gem = 1
	hm.MealPlan = 2
	hm.Name = 3
	hm.Adults = 6
	hm.Children = 7
	hm.ArrivalDate = 19
	hm.DepartureDate = 25
	return hm
}

func newHeaderMap(headerRow int) *HeaderMap {
	return &HeaderMap{
		HeaderRow:     headerRow,
		Villa:         -1,
		Name:          -1,
		Gem:           -1,
		MealPlan:      -1,
		Adults:        -1,
		Children:      -1,
		ArrivalDate:   -1,
		DepartureDate: -1,
	}
}

// DetectHeader 在前 30 行内识别表头并生成列映射
// 找不到表头但命中固定版式标志时，退回硬编码列映射；两者都未命中则报错
func DetectHeader(grid Grid) (*HeaderMap, error) {
	scanLimit := len(grid)
	if scanLimit > headerScanLimit {
		scanLimit = headerScanLimit
	}

	fixedLayout := false
	markerRow := 0

	for rowIdx := 0; rowIdx < scanLimit; rowIdx++ {
		joined := strings.ToUpper(strings.Join(grid[rowIdx], " "))

		if strings.Contains(joined, fixedLayoutMarker) {
			fixedLayout = true
			markerRow = rowIdx
		}

		// 表头行特征：同行出现 VILLA 且出现 GEM/NAME/NO. 之一
		if strings.Contains(joined, "VILLA") &&
			(strings.Contains(joined, "GEM") || strings.Contains(joined, "NAME") || strings.Contains(joined, "NO.")) {
			return classifyHeaderRow(grid[rowIdx], rowIdx), nil
		}
	}

	if fixedLayout {
		return fixedLayoutMap(markerRow), nil
	}

	return nil, &DetectionError{ScannedRows: scanLimit}
}

// classifyHeaderRow 按规则表逐列归类表头单元格
func classifyHeaderRow(cells []string, rowIdx int) *HeaderMap {
	hm := newHeaderMap(rowIdx)

	assigned := make(map[string]bool, len(columnRules))
	for col, cell := range cells {
		normalized := strings.ToUpper(strings.TrimSpace(cell))
		if normalized == "" {
			continue
		}
		for _, rule := range columnRules {
			if assigned[rule.field] {
				continue
			}
			if rule.match(normalized) {
				rule.apply(hm, col)
				assigned[rule.field] = true
				break
			}
		}
	}

	return hm
}
