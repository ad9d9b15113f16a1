package roster

import (
	"fmt"
	"time"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/model"
)

// RollOver 从最近的历史日期推导 targetDate 的起始花名册并写入
// 这是硬覆盖：targetDate 已有的记录（含手工修改）会被整体替换，调用方需先获得操作员确认
func (e *Engine) RollOver(targetDate time.Time) error {
	// 定位最近的有数据的历史日期
	// 每房每日一条记录，limit 取房间总数即可覆盖完整的一天
	prior, err := e.store.FetchBefore(targetDate, e.villaCount)
	if err != nil {
		return fmt.Errorf("查询历史数据失败: %w", err)
	}
	if len(prior) == 0 {
		return ErrNoHistory
	}

	sourceDate := prior[0].ReportDate
	var sourceDay []*model.GuestStayRecord
	for _, r := range prior {
		if r.ReportDate.Equal(sourceDate) {
			sourceDay = append(sourceDay, r)
		}
	}

	sourceDay = model.MaterializeDay(sourceDate, e.villaCount, sourceDay)

	next := make([]*model.GuestStayRecord, 0, len(sourceDay))
	for _, r := range sourceDay {
		next = append(next, rollForward(r, targetDate))
	}

	if err := e.store.ReplaceDay(targetDate, next); err != nil {
		return fmt.Errorf("写入 %s 花名册失败: %w", targetDate.Format(time.DateOnly), err)
	}
	return nil
}

// rollForward 按状态迁移表把一条记录推到下一天
//
//	DEPARTING            -> VACANT（全部清空，含偏好备注：新客不继承旧客偏好）
//	ARRIVING             -> OCCUPIED
//	DEPARTING_ARRIVING   -> OCCUPIED（换客完成，新客在住）
//	其余状态              -> 原样保留（维护/封存状态由操作员手工解除）
//
// 当日备注与具体某天绑定，任何分支都清空
func rollForward(r *model.GuestStayRecord, targetDate time.Time) *model.GuestStayRecord {
	switch r.Status {
	case model.StatusDeparting:
		return model.NewVacantRecord(targetDate, r.RoomNumber)

	case model.StatusArriving, model.StatusDepartingArriving:
		next := *r
		next.ReportDate = targetDate
		next.Status = model.StatusOccupied
		next.DailyNotes = ""
		return &next

	default:
		next := *r
		next.ReportDate = targetDate
		next.DailyNotes = ""
		return &next
	}
}
