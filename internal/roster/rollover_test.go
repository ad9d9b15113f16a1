package roster

import (
	"errors"
	"testing"
	"time"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(d time.Time, room string, status model.RoomStatus, name string) *model.GuestStayRecord {
	r := model.NewVacantRecord(d, room)
	r.Status = status
	r.GuestDisplayName = name
	if status != model.StatusVacant {
		r.AdultCount = 2
	}
	return r
}

func dayByRoom(t *testing.T, s Rosters, d time.Time) map[string]*model.GuestStayRecord {
	t.Helper()
	day, err := s.FetchDay(d)
	if err != nil {
		t.Fatalf("fetch day: %v", err)
	}
	out := make(map[string]*model.GuestStayRecord, len(day))
	for _, r := range day {
		out[r.RoomNumber] = r
	}
	return out
}

func TestRollOver_StatusTransitions(t *testing.T) {
	t.Parallel()

	store := NewMemoryRosters(10)
	engine := NewEngine(store, 10)
	source := date(2026, time.February, 14)
	target := date(2026, time.February, 15)

	departing := record(source, "1", model.StatusDeparting, "A")
	departing.PreferenceNotes = "nuts allergy"
	departing.DailyNotes = "late checkout"
	departing.MealPlanCode = "FB"

	arriving := record(source, "2", model.StatusArriving, "B")
	arriving.DailyNotes = "meet at jetty"

	occupied := record(source, "3", model.StatusOccupied, "C")
	occupied.PreferenceNotes = "prefers high floor"

	turnover := record(source, "4", model.StatusDepartingArriving, "D")
	maintenance := record(source, "5", model.StatusTransitMaintenance, "")
	maintenance.AdultCount = 0

	if err := store.ReplaceDay(source, []*model.GuestStayRecord{departing, arriving, occupied, turnover, maintenance}); err != nil {
		t.Fatalf("seed source day: %v", err)
	}

	if err := engine.RollOver(target); err != nil {
		t.Fatalf("roll over: %v", err)
	}

	next := dayByRoom(t, store, target)

	// 离店 → 空房，全部清空（含偏好备注）
	r1 := next["1"]
	if r1.Status != model.StatusVacant || r1.GuestDisplayName != "" || r1.AdultCount != 0 ||
		r1.PreferenceNotes != "" || r1.DailyNotes != "" || r1.MealPlanCode != "" {
		t.Fatalf("departing room not fully vacated: %+v", r1)
	}

	// 入住 → 在住，其余字段保留，当日备注清空
	r2 := next["2"]
	if r2.Status != model.StatusOccupied || r2.GuestDisplayName != "B" {
		t.Fatalf("arriving room: got status=%s name=%q", r2.Status, r2.GuestDisplayName)
	}
	if r2.DailyNotes != "" {
		t.Fatalf("daily notes not cleared: %q", r2.DailyNotes)
	}

	// 在住 → 在住，偏好备注原样保留
	r3 := next["3"]
	if r3.Status != model.StatusOccupied || r3.PreferenceNotes != "prefers high floor" {
		t.Fatalf("occupied room: got status=%s prefs=%q", r3.Status, r3.PreferenceNotes)
	}

	// 换客 → 在住
	if next["4"].Status != model.StatusOccupied {
		t.Fatalf("turnover room: got=%s want=%s", next["4"].Status, model.StatusOccupied)
	}

	// 维护状态保持
	if next["5"].Status != model.StatusTransitMaintenance {
		t.Fatalf("maintenance room: got=%s", next["5"].Status)
	}

	// 无数据房间补为空房，完整覆盖 1..N
	if len(next) != 10 {
		t.Fatalf("day size: got=%d want=10", len(next))
	}
	if next["9"].Status != model.StatusVacant {
		t.Fatalf("absent room should be vacant: got=%s", next["9"].Status)
	}
}

func TestRollOver_NoHistory(t *testing.T) {
	t.Parallel()

	engine := NewEngine(NewMemoryRosters(5), 5)
	err := engine.RollOver(date(2026, time.February, 15))
	if !errors.Is(err, ErrNoHistory) {
		t.Fatalf("expected ErrNoHistory, got %v", err)
	}
}

func TestRollOver_UsesMostRecentPriorDay(t *testing.T) {
	t.Parallel()

	store := NewMemoryRosters(5)
	engine := NewEngine(store, 5)

	old := date(2026, time.February, 10)
	recent := date(2026, time.February, 13)
	target := date(2026, time.February, 15)

	_ = store.ReplaceDay(old, []*model.GuestStayRecord{record(old, "1", model.StatusOccupied, "Old Guest")})
	_ = store.ReplaceDay(recent, []*model.GuestStayRecord{record(recent, "1", model.StatusOccupied, "New Guest")})

	if err := engine.RollOver(target); err != nil {
		t.Fatalf("roll over: %v", err)
	}

	next := dayByRoom(t, store, target)
	if got := next["1"].GuestDisplayName; got != "New Guest" {
		t.Fatalf("rolled from wrong day: got=%q want=%q", got, "New Guest")
	}
}

func TestRollOver_OverwritesExistingTargetDay(t *testing.T) {
	t.Parallel()

	store := NewMemoryRosters(5)
	engine := NewEngine(store, 5)

	source := date(2026, time.February, 14)
	target := date(2026, time.February, 15)

	_ = store.ReplaceDay(source, []*model.GuestStayRecord{record(source, "1", model.StatusOccupied, "Keeper")})
	_ = store.ReplaceDay(target, []*model.GuestStayRecord{record(target, "2", model.StatusOccupied, "Stale Partial")})

	if err := engine.RollOver(target); err != nil {
		t.Fatalf("roll over: %v", err)
	}

	next := dayByRoom(t, store, target)
	if next["1"].GuestDisplayName != "Keeper" {
		t.Fatalf("room 1: got=%q", next["1"].GuestDisplayName)
	}
	// 目标日期原有数据被整体覆盖
	if next["2"].Status != model.StatusVacant {
		t.Fatalf("room 2 should be overwritten to vacant: got=%s", next["2"].Status)
	}
}
