package roster

import (
	"sort"
	"sync"
	"time"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/model"
)

// MemoryRosters 内存花名册存储，用于测试与离线试算
type MemoryRosters struct {
	days       map[string][]*model.GuestStayRecord
	villaCount int
	mu         sync.RWMutex
}

// NewMemoryRosters 创建内存花名册存储
func NewMemoryRosters(villaCount int) *MemoryRosters {
	return &MemoryRosters{
		days:       make(map[string][]*model.GuestStayRecord),
		villaCount: villaCount,
	}
}

// FetchDay 读取某天的完整花名册
func (s *MemoryRosters) FetchDay(date time.Time) ([]*model.GuestStayRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.MaterializeDay(date, s.villaCount, s.days[dayKey(date)]), nil
}

// FetchBefore 读取早于 date 的记录，按日期倒序
func (s *MemoryRosters) FetchBefore(date time.Time, limit int) ([]*model.GuestStayRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target := dayKey(date)
	var keys []string
	for k := range s.days {
		if k < target {
			keys = append(keys, k)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	var out []*model.GuestStayRecord
	for _, k := range keys {
		for _, r := range s.days[k] {
			if len(out) >= limit {
				return out, nil
			}
			out = append(out, r)
		}
	}
	return out, nil
}

// ReplaceDay 整体替换某天的记录
func (s *MemoryRosters) ReplaceDay(date time.Time, records []*model.GuestStayRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]*model.GuestStayRecord, 0, len(records))
	for _, r := range records {
		c := *r
		copied = append(copied, &c)
	}
	s.days[dayKey(date)] = copied
	return nil
}

func dayKey(date time.Time) string {
	return date.Format(time.DateOnly)
}
