package roster

import (
	"errors"
	"time"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/model"
)

// ErrNoHistory 滚动时没有任何历史数据可用
var ErrNoHistory = errors.New("没有可供滚动的历史数据")

// Rosters 花名册存储契约
// 一天的记录只能整体替换；FetchDay 始终返回补齐后的完整 1..N 房间集合
type Rosters interface {
	// FetchDay 读取某天的完整花名册
	FetchDay(date time.Time) ([]*model.GuestStayRecord, error)
	// FetchBefore 读取早于 date 的记录，按日期倒序，最多 limit 条
	FetchBefore(date time.Time, limit int) ([]*model.GuestStayRecord, error)
	// ReplaceDay 整体替换某天的记录（先删后插）
	ReplaceDay(date time.Time, records []*model.GuestStayRecord) error
}

// Engine 花名册引擎：滚动、比对、确认提交
type Engine struct {
	store      Rosters
	villaCount int
}

// NewEngine 创建花名册引擎
func NewEngine(store Rosters, villaCount int) *Engine {
	return &Engine{
		store:      store,
		villaCount: villaCount,
	}
}

// VillaCount 物业固定房间数
func (e *Engine) VillaCount() int {
	return e.villaCount
}

// FetchDay 读取某天的完整花名册
func (e *Engine) FetchDay(date time.Time) ([]*model.GuestStayRecord, error) {
	return e.store.FetchDay(date)
}
