package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNoSnapshot is returned when no nightly snapshot has been persisted yet.
var ErrNoSnapshot = errors.New("no analytics snapshot")

// SnapshotRepository handles PostgreSQL operations for analytics snapshots
// and roster counts. It uses database/sql with the pq driver.
type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// RosterCounts aggregates the students table.
type RosterCounts struct {
	Total        int
	ByStatus     map[string]int
	ByDepartment map[int64]int
}

func (r *SnapshotRepository) RosterCounts(ctx context.Context) (*RosterCounts, error) {
	out := &RosterCounts{
		ByStatus:     map[string]int{},
		ByDepartment: map[int64]int{},
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT status, department_id, COUNT(*)
		FROM students
		GROUP BY status, department_id
	`)
	if err != nil {
		return nil, fmt.Errorf("roster counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var depID int64
		var n int
		if err := rows.Scan(&status, &depID, &n); err != nil {
			return nil, err
		}
		out.Total += n
		out.ByStatus[status] += n
		out.ByDepartment[depID] += n
	}
	return out, rows.Err()
}

// Save persists a snapshot row with the aggregates as JSONB.
func (r *SnapshotRepository) Save(ctx context.Context, agg *Aggregates) error {
	data, err := json.Marshal(agg)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO analytics_snapshots (id, data, generated_at)
		VALUES ($1, $2, $3)
	`, uuid.New().String(), data, agg.GeneratedAt)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// Latest returns the newest snapshot.
func (r *SnapshotRepository) Latest(ctx context.Context) (*Aggregates, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT data
		FROM analytics_snapshots
		ORDER BY generated_at DESC
		LIMIT 1
	`).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}

	var agg Aggregates
	if err := json.Unmarshal(data, &agg); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &agg, nil
}
