package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jobdeck/jobdeck/internal/dataset"
	"github.com/jobdeck/jobdeck/internal/model"
)

// GetDataset returns the cached cleaned dataset for key, or (nil, nil)
// when the cache holds nothing current for it. A row stored under the same
// path with a different modification signature is stale and reported as a
// miss.
func (s *SQLiteStore) GetDataset(ctx context.Context, key dataset.Key) (*dataset.Dataset, error) {
	var id int64
	var rawCount int
	err := s.db.QueryRowContext(ctx,
		`SELECT id, raw_count FROM datasets WHERE path = ? AND mod_time = ? AND size = ?`,
		key.Path, key.ModTime.UnixNano(), key.Size).Scan(&id, &rawCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying dataset: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT title, company, location, sector, size, revenue,
		        rating, salary_estimate, salary_min, salary_max, avg_salary
		 FROM jobs WHERE dataset_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("querying jobs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ds := &dataset.Dataset{RawCount: rawCount}
	for rows.Next() {
		var r model.JobRecord
		var salaryMin, salaryMax, avgSalary sql.NullFloat64
		if err := rows.Scan(&r.Title, &r.Company, &r.Location, &r.Sector, &r.Size,
			&r.Revenue, &r.Rating, &r.SalaryEstimate,
			&salaryMin, &salaryMax, &avgSalary); err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		r.SalaryMin = fromNullFloat(salaryMin)
		r.SalaryMax = fromNullFloat(salaryMax)
		r.AvgSalary = fromNullFloat(avgSalary)
		ds.Records = append(ds.Records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating jobs: %w", err)
	}

	return ds, nil
}

// SaveDataset stores the cleaned dataset under key, replacing any previous
// version cached for the same path.
func (s *SQLiteStore) SaveDataset(ctx context.Context, key dataset.Key, ds *dataset.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM jobs WHERE dataset_id IN (SELECT id FROM datasets WHERE path = ?)`,
		key.Path); err != nil {
		return fmt.Errorf("clearing stale jobs: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM datasets WHERE path = ?`, key.Path); err != nil {
		return fmt.Errorf("clearing stale dataset: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO datasets (path, mod_time, size, raw_count) VALUES (?, ?, ?, ?)`,
		key.Path, key.ModTime.UnixNano(), key.Size, ds.RawCount)
	if err != nil {
		return fmt.Errorf("inserting dataset: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading dataset id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO jobs (dataset_id, seq, title, company, location, sector, size,
		                   revenue, rating, salary_estimate, salary_min, salary_max, avg_salary)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing job insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for seq, r := range ds.Records {
		if _, err := stmt.ExecContext(ctx, id, seq,
			r.Title, r.Company, r.Location, r.Sector, r.Size,
			r.Revenue, r.Rating, r.SalaryEstimate,
			toNullFloat(r.SalaryMin), toNullFloat(r.SalaryMax), toNullFloat(r.AvgSalary)); err != nil {
			return fmt.Errorf("inserting job %d: %w", seq, err)
		}
	}

	return tx.Commit()
}

// InvalidateDataset removes the cached dataset for path, if any.
func (s *SQLiteStore) InvalidateDataset(ctx context.Context, path string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM jobs WHERE dataset_id IN (SELECT id FROM datasets WHERE path = ?)`,
		path); err != nil {
		return fmt.Errorf("deleting jobs: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM datasets WHERE path = ?`, path); err != nil {
		return fmt.Errorf("deleting dataset: %w", err)
	}

	return tx.Commit()
}

// Missing numerics are stored as NULL; NaN itself is not representable in
// SQLite REAL columns through the driver.
func toNullFloat(v float64) sql.NullFloat64 {
	if model.IsMissing(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func fromNullFloat(v sql.NullFloat64) float64 {
	if !v.Valid {
		return model.Missing()
	}
	return v.Float64
}
