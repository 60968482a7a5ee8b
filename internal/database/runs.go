package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/lapwatch/internal/config"
	"github.com/akyairhashvil/lapwatch/internal/models"
)

// SaveRun stores a run and its laps in one transaction and returns the new
// run ID. A blank label becomes "Run <id>", which stays unique after deletes.
func (d *Database) SaveRun(ctx context.Context, label string, elapsed time.Duration, laps []models.RunLap) (int64, error) {
	var runID int64
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		label = strings.TrimSpace(label)
		res, err := tx.ExecContext(ctx,
			"INSERT INTO runs (label, elapsed_ms, saved_at) VALUES (?, ?, ?)",
			label, elapsed.Milliseconds(), time.Now().UTC())
		if err != nil {
			return err
		}
		runID, err = res.LastInsertId()
		if err != nil {
			return err
		}
		if label == "" {
			if _, err := tx.ExecContext(ctx, "UPDATE runs SET label = ? WHERE id = ?",
				fmt.Sprintf("%s %d", config.DefaultRunLabel, runID), runID); err != nil {
				return err
			}
		}
		stmt, err := tx.PrepareContext(ctx, "INSERT INTO run_laps (run_id, lap_number, split_ms, cumulative_ms) VALUES (?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, lap := range laps {
			if _, err := stmt.ExecContext(ctx, runID, lap.Number, lap.Split.Milliseconds(), lap.Cumulative.Milliseconds()); err != nil {
				return fmt.Errorf("insert lap %d: %w", lap.Number, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, wrapRunErr("save", 0, err)
	}
	return runID, nil
}

// GetRuns returns all saved runs, newest first, with their laps.
func (d *Database) GetRuns(ctx context.Context) ([]models.Run, error) {
	rows, err := d.DB.QueryContext(ctx, "SELECT id, label, elapsed_ms, saved_at FROM runs ORDER BY id DESC")
	if err != nil {
		return nil, wrapRunErr("list", 0, err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, wrapRunErr("list", 0, err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapRunErr("list", 0, err)
	}
	rows.Close()

	for i := range runs {
		laps, err := d.getRunLaps(ctx, runs[i].ID)
		if err != nil {
			return nil, wrapRunErr("list", runs[i].ID, err)
		}
		runs[i].Laps = laps
	}
	return runs, nil
}

// GetRun returns one run with its laps.
func (d *Database) GetRun(ctx context.Context, id int64) (models.Run, error) {
	row := d.DB.QueryRowContext(ctx, "SELECT id, label, elapsed_ms, saved_at FROM runs WHERE id = ?", id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Run{}, wrapRunErr("get", id, ErrRunNotFound)
	}
	if err != nil {
		return models.Run{}, wrapRunErr("get", id, err)
	}
	r.Laps, err = d.getRunLaps(ctx, id)
	if err != nil {
		return models.Run{}, wrapRunErr("get", id, err)
	}
	return r, nil
}

// DeleteRun removes a run and its laps.
func (d *Database) DeleteRun(ctx context.Context, id int64) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM run_laps WHERE run_id = ?", id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrRunNotFound
		}
		return nil
	})
	return wrapRunErr("delete", id, err)
}

func (d *Database) getRunLaps(ctx context.Context, runID int64) ([]models.RunLap, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT lap_number, split_ms, cumulative_ms
		FROM run_laps
		WHERE run_id = ?
		ORDER BY lap_number DESC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var laps []models.RunLap
	for rows.Next() {
		var lap models.RunLap
		var splitMs, cumulativeMs int64
		if err := rows.Scan(&lap.Number, &splitMs, &cumulativeMs); err != nil {
			return nil, err
		}
		lap.Split = time.Duration(splitMs) * time.Millisecond
		lap.Cumulative = time.Duration(cumulativeMs) * time.Millisecond
		laps = append(laps, lap)
	}
	return laps, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (models.Run, error) {
	var r models.Run
	var elapsedMs int64
	if err := s.Scan(&r.ID, &r.Label, &elapsedMs, &r.SavedAt); err != nil {
		return models.Run{}, err
	}
	r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
	return r, nil
}
