package v1

import (
	"sync"
	"time"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/model"
)

// pendingTTL 预览结果的保留时长，过期未确认需要重新导入
const pendingTTL = 30 * time.Minute

type pendingImport struct {
	reportDate time.Time
	records    []*model.GuestStayRecord
	expiresAt  time.Time
}

// pendingImportStore 预览结果暂存：importId -> 待提交记录集
// 只存在于内存，进程重启后未确认的预览作废
type pendingImportStore struct {
	mu    sync.Mutex
	items map[string]pendingImport
}

func newPendingImportStore() *pendingImportStore {
	return &pendingImportStore{
		items: make(map[string]pendingImport),
	}
}

func (s *pendingImportStore) put(importID string, reportDate time.Time, records []*model.GuestStayRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	s.items[importID] = pendingImport{
		reportDate: reportDate,
		records:    records,
		expiresAt:  time.Now().Add(pendingTTL),
	}
}

func (s *pendingImportStore) get(importID string) (pendingImport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, ok := s.items[importID]
	if !ok {
		return pendingImport{}, false
	}
	if time.Now().After(v.expiresAt) {
		delete(s.items, importID)
		return pendingImport{}, false
	}
	return v, true
}

func (s *pendingImportStore) delete(importID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, importID)
}

func (s *pendingImportStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}
