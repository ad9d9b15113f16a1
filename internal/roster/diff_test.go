package roster

import (
	"testing"
	"time"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/model"
)

func TestDiff_Classification(t *testing.T) {
	t.Parallel()

	d := date(2026, time.February, 15)

	stored := []*model.GuestStayRecord{
		record(d, "1", model.StatusVacant, ""),          // 将有新客
		record(d, "2", model.StatusOccupied, "Stays"),   // 不变
		record(d, "3", model.StatusOccupied, "Leaves"),  // 将变空房
		record(d, "4", model.StatusOccupied, "Renamed"), // 姓名变化
		record(d, "5", model.StatusArriving, "Settles"), // 状态变化
	}
	parsed := []*model.GuestStayRecord{
		record(d, "1", model.StatusArriving, "Fresh"),
		record(d, "2", model.StatusOccupied, " Stays "), // 姓名比对忽略首尾空格
		record(d, "3", model.StatusVacant, ""),
		record(d, "4", model.StatusOccupied, "Renamed Jr."),
		record(d, "5", model.StatusOccupied, "Settles"),
	}

	changes := Diff(stored, parsed)
	if len(changes) != 4 {
		t.Fatalf("change count: got=%d want=4", len(changes))
	}

	want := map[string]model.ChangeType{
		"1": model.ChangeNew,
		"3": model.ChangeDeparture,
		"4": model.ChangeModified,
		"5": model.ChangeModified,
	}
	for _, ch := range changes {
		if ch.ChangeType != want[ch.RoomNumber] {
			t.Fatalf("room %s: got=%s want=%s", ch.RoomNumber, ch.ChangeType, want[ch.RoomNumber])
		}
	}
}

func TestDiff_MissingStoredRoomDefaultsVacant(t *testing.T) {
	t.Parallel()

	d := date(2026, time.February, 15)
	parsed := []*model.GuestStayRecord{record(d, "7", model.StatusOccupied, "Walk-in")}

	changes := Diff(nil, parsed)
	if len(changes) != 1 {
		t.Fatalf("change count: got=%d want=1", len(changes))
	}
	if changes[0].ChangeType != model.ChangeNew {
		t.Fatalf("change type: got=%s want=%s", changes[0].ChangeType, model.ChangeNew)
	}
	if changes[0].Before.Status != model.StatusVacant {
		t.Fatalf("before status: got=%s want=%s", changes[0].Before.Status, model.StatusVacant)
	}
}

func TestDiff_SnapshotContents(t *testing.T) {
	t.Parallel()

	d := date(2026, time.February, 15)
	stored := []*model.GuestStayRecord{record(d, "2", model.StatusOccupied, "Before Guest")}
	parsed := []*model.GuestStayRecord{record(d, "2", model.StatusDeparting, "Before Guest")}

	changes := Diff(stored, parsed)
	if len(changes) != 1 {
		t.Fatalf("change count: got=%d want=1", len(changes))
	}
	ch := changes[0]
	if ch.Before.Status != model.StatusOccupied || ch.After.Status != model.StatusDeparting {
		t.Fatalf("snapshot statuses: before=%s after=%s", ch.Before.Status, ch.After.Status)
	}
	if ch.Before.GuestDisplayName != "Before Guest" || ch.After.GuestDisplayName != "Before Guest" {
		t.Fatalf("snapshot names: before=%q after=%q", ch.Before.GuestDisplayName, ch.After.GuestDisplayName)
	}
}
