package parser

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/model"
)

func testHeaderMap() *HeaderMap {
	hm := newHeaderMap(0)
	hm.Villa = 0
	hm.Gem = 1
	hm.MealPlan = 2
	hm.Name = 3
	hm.Adults = 4
	hm.Children = 5
	hm.ArrivalDate = 6
	hm.DepartureDate = 7
	return hm
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// serialOf 计算某天对应的 Excel 日期序列号文本
func serialOf(t time.Time) string {
	return strconv.FormatInt(t.Unix()/86400+excelEpochOffsetDays, 10)
}

func TestParseRows_StatusDerivation(t *testing.T) {
	t.Parallel()

	reportDate := date(2026, time.February, 15)

	cases := []struct {
		name      string
		arrival   string
		departure string
		want      model.RoomStatus
	}{
		{"arriving", "15/02/2026", "20/02/2026", model.StatusArriving},
		{"departing", "10/02/2026", "15/02/2026", model.StatusDeparting},
		{"turnover", "15/02/2026", "15/02/2026", model.StatusDepartingArriving},
		{"occupied", "10/02/2026", "20/02/2026", model.StatusOccupied},
		{"missing dates", "", "", model.StatusOccupied},
		{"unparseable dates", "soon", "later", model.StatusOccupied},
	}

	for _, tc := range cases {
		grid := Grid{
			{"Villa", "Gem", "Meal", "Name", "Ad", "Ch", "Arr", "Dep"},
			{"3", "G07", "FB", "Doe, Jane", "2", "1", tc.arrival, tc.departure},
		}
		records, err := ParseRows(grid, testHeaderMap(), reportDate)
		if err != nil {
			t.Fatalf("%s: parse rows: %v", tc.name, err)
		}
		if len(records) != 1 {
			t.Fatalf("%s: record count: got=%d want=1", tc.name, len(records))
		}
		if records[0].Status != tc.want {
			t.Fatalf("%s: status: got=%s want=%s", tc.name, records[0].Status, tc.want)
		}
	}
}

func TestParseRows_SerialDates(t *testing.T) {
	t.Parallel()

	reportDate := date(2026, time.February, 15)
	arrival := serialOf(date(2026, time.February, 15))
	departure := serialOf(date(2026, time.February, 20))

	grid := Grid{
		{},
		{"12", "G01", "BB", "Smith, John", "2", "0", arrival, departure},
	}

	records, err := ParseRows(grid, testHeaderMap(), reportDate)
	if err != nil {
		t.Fatalf("parse rows: %v", err)
	}
	if records[0].Status != model.StatusArriving {
		t.Fatalf("status: got=%s want=%s", records[0].Status, model.StatusArriving)
	}
	if records[0].StayDateRangeLabel != "15 Feb - 20 Feb" {
		t.Fatalf("stay range label: got=%q", records[0].StayDateRangeLabel)
	}
}

func TestParseRows_MultiRowMerge(t *testing.T) {
	t.Parallel()

	reportDate := date(2026, time.February, 15)
	grid := Grid{
		{},
		{"12", "G01", "BB", "Smith, John", "1", "0", "10/02/2026", "20/02/2026"},
		{"12", "", "", "Smith, Jane", "1", "0", "", ""},
	}

	records, err := ParseRows(grid, testHeaderMap(), reportDate)
	if err != nil {
		t.Fatalf("parse rows: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count: got=%d want=1", len(records))
	}

	r := records[0]
	if r.RoomNumber != "12" {
		t.Fatalf("room number: got=%s want=12", r.RoomNumber)
	}
	if r.GuestDisplayName != "Smith, John & Smith, Jane" {
		t.Fatalf("merged name: got=%q", r.GuestDisplayName)
	}
	if r.AdultCount != 2 || r.ChildCount != 0 {
		t.Fatalf("merged counts: adults=%d children=%d", r.AdultCount, r.ChildCount)
	}
}

func TestParseRows_MergeSkipsDuplicateName(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{},
		{"8", "", "", "Lee, Ana", "1", "0", "", ""},
		{"8", "", "", "Lee, Ana", "1", "0", "", ""},
	}

	records, err := ParseRows(grid, testHeaderMap(), date(2026, time.February, 15))
	if err != nil {
		t.Fatalf("parse rows: %v", err)
	}
	if got := records[0].GuestDisplayName; got != "Lee, Ana" {
		t.Fatalf("name: got=%q want=%q", got, "Lee, Ana")
	}
	if records[0].AdultCount != 2 {
		t.Fatalf("adults: got=%d want=2", records[0].AdultCount)
	}
}

func TestParseRows_SkipRules(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{},
		{"", "", "", "blank villa", "1", "0", "", ""},
		{"VILLA NO.", "", "", "repeated header", "", "", "", ""},
		{"Total", "", "", "footer", "", "", "", ""},
		{"007", "G09", "HB", "Kim, Sun", "2", "1", "", ""},
	}

	records, err := ParseRows(grid, testHeaderMap(), date(2026, time.February, 15))
	if err != nil {
		t.Fatalf("parse rows: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count: got=%d want=1", len(records))
	}
	// 前导零被规范化
	if records[0].RoomNumber != "7" {
		t.Fatalf("room number: got=%s want=7", records[0].RoomNumber)
	}
}

func TestParseRows_EmptyResult(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{"VILLA", "GUEST NAME"},
		{"", "nobody"},
		{"footer", ""},
	}

	hm := testHeaderMap()
	_, err := ParseRows(grid, hm, date(2026, time.February, 15))
	if err == nil {
		t.Fatalf("expected empty result failure")
	}
	var ee *EmptyResultError
	if !errors.As(err, &ee) {
		t.Fatalf("expected EmptyResultError, got %T: %v", err, err)
	}
	if ee.HeaderRow != hm.HeaderRow {
		t.Fatalf("header row in error: got=%d want=%d", ee.HeaderRow, hm.HeaderRow)
	}
}

func TestParseRows_LenientCounts(t *testing.T) {
	t.Parallel()

	grid := Grid{
		{},
		{"5", "", "", "Ray, Tom", "n/a", "", "", ""},
	}

	records, err := ParseRows(grid, testHeaderMap(), date(2026, time.February, 15))
	if err != nil {
		t.Fatalf("parse rows: %v", err)
	}
	if records[0].AdultCount != 0 || records[0].ChildCount != 0 {
		t.Fatalf("counts: adults=%d children=%d want zero", records[0].AdultCount, records[0].ChildCount)
	}
}
