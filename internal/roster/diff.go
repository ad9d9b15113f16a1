package roster

import (
	"strings"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/model"
)

// Diff 比对新解析的导入与当前存储的同日花名册，逐房分类
// 只比较状态与客人姓名（去首尾空格）；其余字段不参与比对
// 返回值仅含有变化的房间，顺序与 parsed 一致
func Diff(stored, parsed []*model.GuestStayRecord) []model.ChangeEntry {
	storedByRoom := make(map[string]*model.GuestStayRecord, len(stored))
	for _, r := range stored {
		storedByRoom[r.RoomNumber] = r
	}

	var changes []model.ChangeEntry
	for _, after := range parsed {
		before, ok := storedByRoom[after.RoomNumber]
		if !ok {
			before = model.NewVacantRecord(after.ReportDate, after.RoomNumber)
		}

		entry := model.ChangeEntry{
			RoomNumber: after.RoomNumber,
			ChangeType: classify(before, after),
			Before:     snapshot(before),
			After:      snapshot(after),
		}
		if entry.ChangeType == model.ChangeUnchanged {
			continue
		}
		changes = append(changes, entry)
	}

	return changes
}

func classify(before, after *model.GuestStayRecord) model.ChangeType {
	sameStatus := before.Status == after.Status
	sameName := strings.TrimSpace(before.GuestDisplayName) == strings.TrimSpace(after.GuestDisplayName)

	switch {
	case sameStatus && sameName:
		return model.ChangeUnchanged
	case before.Status == model.StatusVacant && after.Status != model.StatusVacant:
		return model.ChangeNew
	case before.Status != model.StatusVacant && after.Status == model.StatusVacant:
		return model.ChangeDeparture
	default:
		return model.ChangeModified
	}
}

func snapshot(r *model.GuestStayRecord) model.RoomSnapshot {
	return model.RoomSnapshot{
		Status:           r.Status,
		GuestDisplayName: strings.TrimSpace(r.GuestDisplayName),
	}
}
