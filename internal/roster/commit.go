package roster

import (
	"fmt"
	"time"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/model"
)

// Preview 解析结果与存储态的比对：只读，不写库
// 返回待提交的完整记录集（经房间补齐）与变更列表
func (e *Engine) Preview(date time.Time, parsed []*model.GuestStayRecord) ([]*model.GuestStayRecord, []model.ChangeEntry, error) {
	stored, err := e.store.FetchDay(date)
	if err != nil {
		return nil, nil, fmt.Errorf("读取当日花名册失败: %w", err)
	}

	changes := Diff(stored, parsed)
	pending := model.MaterializeDay(date, e.villaCount, parsed)
	return pending, changes, nil
}

// Approve 操作员确认后提交待写入记录
// 提交前把存储态的偏好备注并入待写入记录（导入不产出偏好字段，直接覆盖会抹掉手工维护的标注），
// 随后整体替换该天；导入未覆盖的房间写为空房，但其偏好备注同样保留
func (e *Engine) Approve(date time.Time, pending []*model.GuestStayRecord) error {
	stored, err := e.store.FetchDay(date)
	if err != nil {
		return fmt.Errorf("读取当日花名册失败: %w", err)
	}

	storedByRoom := make(map[string]*model.GuestStayRecord, len(stored))
	for _, r := range stored {
		storedByRoom[r.RoomNumber] = r
	}

	pending = model.MaterializeDay(date, e.villaCount, pending)
	for _, r := range pending {
		if r.PreferenceNotes != "" {
			continue
		}
		if prev, ok := storedByRoom[r.RoomNumber]; ok {
			r.PreferenceNotes = prev.PreferenceNotes
		}
	}

	if err := e.store.ReplaceDay(date, pending); err != nil {
		return fmt.Errorf("提交 %s 花名册失败: %w", date.Format(time.DateOnly), err)
	}
	return nil
}

// UpdateRoom 手工修改某天单个房间的记录
// 读出整天、替换目标房间后整体写回，沿用按天整体替换的唯一写入原语
func (e *Engine) UpdateRoom(date time.Time, record *model.GuestStayRecord) error {
	if !record.Status.Valid() {
		return fmt.Errorf("无效的房间状态: %q", record.Status)
	}
	if record.AdultCount < 0 || record.ChildCount < 0 {
		return fmt.Errorf("入住人数不能为负数")
	}

	day, err := e.store.FetchDay(date)
	if err != nil {
		return fmt.Errorf("读取当日花名册失败: %w", err)
	}

	found := false
	for i, r := range day {
		if r.RoomNumber == record.RoomNumber {
			day[i] = record
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("房间号 %s 不在当前物业范围内", record.RoomNumber)
	}

	if err := e.store.ReplaceDay(date, day); err != nil {
		return fmt.Errorf("提交 %s 花名册失败: %w", date.Format(time.DateOnly), err)
	}
	return nil
}
