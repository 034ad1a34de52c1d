package storage

import (
	"fmt"
)

// ZoneStats represents trigger statistics grouped by zone
type ZoneStats struct {
	Zone         string
	Total        int
	SuccessCount int
	FailureCount int
	LastFired    string
}

// DailyStats represents trigger statistics for a single day
type DailyStats struct {
	Date         string
	Total        int
	SuccessCount int
	FailureCount int
}

// OverallStats represents overall trigger statistics
type OverallStats struct {
	Total         int
	SuccessCount  int
	FailureCount  int
	AvgDurationMs float64
}

// GetZoneStats retrieves statistics grouped by zone for the last N days
func (db *DB) GetZoneStats(days int) ([]ZoneStats, error) {
	query := `
		SELECT
			zone,
			COUNT(*) as total,
			SUM(CASE WHEN success = 1 THEN 1 ELSE 0 END) as success_count,
			SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END) as failure_count,
			MAX(timestamp) as last_fired
		FROM triggers
		WHERE timestamp >= datetime('now', '-' || ? || ' days')
		GROUP BY zone
		ORDER BY total DESC
	`

	rows, err := db.conn.Query(query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query zone stats: %w", err)
	}
	defer rows.Close()

	var stats []ZoneStats
	for rows.Next() {
		var s ZoneStats
		err := rows.Scan(&s.Zone, &s.Total, &s.SuccessCount, &s.FailureCount, &s.LastFired)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// GetDailyStats retrieves statistics grouped by date for the last N days
func (db *DB) GetDailyStats(days int) ([]DailyStats, error) {
	query := `
		SELECT
			DATE(timestamp) as date,
			COUNT(*) as total,
			SUM(CASE WHEN success = 1 THEN 1 ELSE 0 END) as success_count,
			SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END) as failure_count
		FROM triggers
		WHERE timestamp >= datetime('now', '-' || ? || ' days')
		GROUP BY DATE(timestamp)
		ORDER BY date DESC
	`

	rows, err := db.conn.Query(query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}
	defer rows.Close()

	var stats []DailyStats
	for rows.Next() {
		var s DailyStats
		err := rows.Scan(&s.Date, &s.Total, &s.SuccessCount, &s.FailureCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// GetOverallStats retrieves overall statistics for the last N days
func (db *DB) GetOverallStats(days int) (*OverallStats, error) {
	query := `
		SELECT
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN success = 1 THEN 1 ELSE 0 END), 0) as success_count,
			COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0) as failure_count,
			COALESCE(AVG(duration_ms), 0) as avg_duration_ms
		FROM triggers
		WHERE timestamp >= datetime('now', '-' || ? || ' days')
	`

	var stats OverallStats
	err := db.conn.QueryRow(query, days).Scan(
		&stats.Total,
		&stats.SuccessCount,
		&stats.FailureCount,
		&stats.AvgDurationMs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query overall stats: %w", err)
	}

	return &stats, nil
}
