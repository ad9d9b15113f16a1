package store

import "fmt"

// CreateImportLog 创建导入日志
func (s *Store) CreateImportLog(id, filename, reportDate string, totalRows, parsedRooms, changedRooms int) error {
	_, err := s.db.Exec(`
		INSERT INTO import_logs (id, filename, report_date, total_rows, parsed_rooms, changed_rooms, status)
		VALUES (?, ?, ?, ?, ?, ?, 'previewed')
	`, id, filename, reportDate, totalRows, parsedRooms, changedRooms)
	if err != nil {
		return fmt.Errorf("failed to create import log: %w", err)
	}
	return nil
}

// FinishImportLog 更新导入日志的最终状态
func (s *Store) FinishImportLog(id, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}

// ImportLogEntry 导入日志条目
type ImportLogEntry struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	ReportDate   string `json:"reportDate"`
	TotalRows    int    `json:"totalRows"`
	ParsedRooms  int    `json:"parsedRooms"`
	ChangedRooms int    `json:"changedRooms"`
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// ListImportLogs 列出最近的导入日志
func (s *Store) ListImportLogs(limit int) ([]ImportLogEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, filename, report_date, total_rows, parsed_rooms, changed_rooms,
			status, error_message, created_at
		FROM import_logs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query import logs: %w", err)
	}
	defer rows.Close()

	var out []ImportLogEntry
	for rows.Next() {
		var it ImportLogEntry
		if err := rows.Scan(&it.ID, &it.Filename, &it.ReportDate, &it.TotalRows,
			&it.ParsedRooms, &it.ChangedRooms, &it.Status, &it.ErrorMessage, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import log: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate import logs: %w", err)
	}
	return out, nil
}

// LastImportTime 最近一次导入时间，没有导入记录时返回空串
func (s *Store) LastImportTime() (string, error) {
	var t string
	err := s.db.QueryRow(`SELECT IFNULL(MAX(created_at), '') FROM import_logs`).Scan(&t)
	if err != nil {
		return "", fmt.Errorf("failed to query last import time: %w", err)
	}
	return t, nil
}
