package store

import "fmt"

// DayStat 有数据的日期统计
type DayStat struct {
	Date      string `json:"date"`
	Occupied  int    `json:"occupied"`
	Arriving  int    `json:"arriving"`
	Departing int    `json:"departing"`
	Vacant    int    `json:"vacant"`
	Total     int    `json:"total"`
}

// ListDays 列出当前数据库中存在数据的日期（倒序），附带各状态房间数
func (s *Store) ListDays() ([]DayStat, error) {
	rows, err := s.db.Query(`
		SELECT
			report_date,
			SUM(CASE WHEN status IN ('OCCUPIED', 'DEPARTING_ARRIVING') THEN 1 ELSE 0 END) AS occupied,
			SUM(CASE WHEN status = 'ARRIVING' THEN 1 ELSE 0 END) AS arriving,
			SUM(CASE WHEN status = 'DEPARTING' THEN 1 ELSE 0 END) AS departing,
			SUM(CASE WHEN status = 'VACANT' THEN 1 ELSE 0 END) AS vacant,
			COUNT(1) AS total
		FROM guest_stay_records
		GROUP BY report_date
		ORDER BY report_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query available days failed: %w", err)
	}
	defer rows.Close()

	var out []DayStat
	for rows.Next() {
		var it DayStat
		if err := rows.Scan(&it.Date, &it.Occupied, &it.Arriving, &it.Departing, &it.Vacant, &it.Total); err != nil {
			return nil, fmt.Errorf("scan available days failed: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate available days failed: %w", err)
	}
	return out, nil
}

// LatestDay 最近的有数据日期，没有任何数据时返回空串
func (s *Store) LatestDay() (string, error) {
	var date string
	err := s.db.QueryRow(`SELECT IFNULL(MAX(report_date), '') FROM guest_stay_records`).Scan(&date)
	if err != nil {
		return "", fmt.Errorf("query latest day failed: %w", err)
	}
	return date, nil
}
