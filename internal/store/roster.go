package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Yarmin007/HK-Pulse-sub000/internal/model"
)

// FetchDay 读取某天的完整花名册
// 始终返回补齐后的 1..N 房间集合，没有数据的房间为空房
func (s *Store) FetchDay(date time.Time) ([]*model.GuestStayRecord, error) {
	rows, err := s.db.Query(`
		SELECT report_date, room_number, status, guest_display_name,
			adult_count, child_count, attendant_code, meal_plan_code,
			stay_date_range, daily_notes, preference_notes
		FROM guest_stay_records
		WHERE report_date = ?
		ORDER BY CAST(room_number AS INTEGER)
	`, dateKey(date))
	if err != nil {
		return nil, fmt.Errorf("failed to query day: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}

	return model.MaterializeDay(midnight(date), s.villaCount, records), nil
}

// FetchBefore 读取早于 date 的记录，按日期倒序、房号升序，最多 limit 条
func (s *Store) FetchBefore(date time.Time, limit int) ([]*model.GuestStayRecord, error) {
	rows, err := s.db.Query(`
		SELECT report_date, room_number, status, guest_display_name,
			adult_count, child_count, attendant_code, meal_plan_code,
			stay_date_range, daily_notes, preference_notes
		FROM guest_stay_records
		WHERE report_date < ?
		ORDER BY report_date DESC, CAST(room_number AS INTEGER)
		LIMIT ?
	`, dateKey(date), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query prior days: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ReplaceDay 整体替换某天的记录：同一事务内先删后插
// 事务消除了删除成功、插入失败时整天数据丢失的窗口
func (s *Store) ReplaceDay(date time.Time, records []*model.GuestStayRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM guest_stay_records WHERE report_date = ?`, dateKey(date)); err != nil {
		return fmt.Errorf("failed to delete day: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO guest_stay_records (
			report_date, room_number, status, guest_display_name,
			adult_count, child_count, attendant_code, meal_plan_code,
			stay_date_range, daily_notes, preference_notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			dateKey(date), r.RoomNumber, string(r.Status), r.GuestDisplayName,
			r.AdultCount, r.ChildCount, r.AttendantCode, r.MealPlanCode,
			r.StayDateRangeLabel, r.DailyNotes, r.PreferenceNotes,
		)
		if err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func scanRecord(sc interface{ Scan(dest ...any) error }) (*model.GuestStayRecord, error) {
	var r model.GuestStayRecord
	var reportDate, status string
	err := sc.Scan(
		&reportDate, &r.RoomNumber, &status, &r.GuestDisplayName,
		&r.AdultCount, &r.ChildCount, &r.AttendantCode, &r.MealPlanCode,
		&r.StayDateRangeLabel, &r.DailyNotes, &r.PreferenceNotes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan record: %w", err)
	}

	t, err := time.ParseInLocation(time.DateOnly, reportDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report date %q: %w", reportDate, err)
	}
	r.ReportDate = t
	r.Status = model.RoomStatus(status)
	return &r, nil
}

func scanRecords(rows *sql.Rows) ([]*model.GuestStayRecord, error) {
	var out []*model.GuestStayRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return out, nil
}

func dateKey(date time.Time) string {
	return date.Format(time.DateOnly)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
