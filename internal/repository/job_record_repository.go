package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"career-intel/internal/database"
	"career-intel/internal/domain/profile"
)

// JobRecordRepository is the corpus store. Ingestion appends records; the
// training pipeline reads the whole corpus back. Records are immutable
// once ingested.
type JobRecordRepository interface {
	InsertBatch(ctx context.Context, records []profile.JobRecord, source string) (int, error)
	ListAll(ctx context.Context) ([]profile.JobRecord, error)
	Count(ctx context.Context) (int, error)
}

type jobRecordRepository struct {
	db database.DB
}

func NewJobRecordRepository(db database.DB) JobRecordRepository {
	return &jobRecordRepository{db: db}
}

func (r *jobRecordRepository) InsertBatch(ctx context.Context, records []profile.JobRecord, source string) (int, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("nil db")
	}

	inserted := 0
	for _, rec := range records {
		title := strings.TrimSpace(rec.Title)
		if title == "" {
			continue
		}
		skills := rec.Skills
		if skills == nil {
			skills = []string{}
		}
		n, err := r.db.Exec(ctx,
			`INSERT INTO job_records (id, title, skills, salary, experience, source) VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), title, skills, rec.Salary, rec.Experience, nullableText(source),
		)
		if err != nil {
			return inserted, fmt.Errorf("insert job record %q: %w", title, err)
		}
		inserted += int(n)
	}
	return inserted, nil
}

func (r *jobRecordRepository) ListAll(ctx context.Context) ([]profile.JobRecord, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("nil db")
	}

	rows, err := r.db.Query(ctx,
		`SELECT title, skills, salary, experience FROM job_records ORDER BY ingested_at, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []profile.JobRecord
	for rows.Next() {
		var rec profile.JobRecord
		if err := rows.Scan(&rec.Title, &rec.Skills, &rec.Salary, &rec.Experience); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *jobRecordRepository) Count(ctx context.Context) (int, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("nil db")
	}
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_records`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func nullableText(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
