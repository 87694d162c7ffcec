package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/domain/repository"
	"github.com/bnema/gridterm/internal/logging"
)

const (
	upsertLayoutSQL = `
INSERT INTO layouts (id, name, version, workspace_count, pane_count, layout_json, saved_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    id = excluded.id,
    version = excluded.version,
    workspace_count = excluded.workspace_count,
    pane_count = excluded.pane_count,
    layout_json = excluded.layout_json,
    saved_at = excluded.saved_at`
	getLayoutSQL    = `SELECT layout_json FROM layouts WHERE name = ?`
	listLayoutsSQL  = `SELECT name, layout_json FROM layouts ORDER BY saved_at DESC, name`
	deleteLayoutSQL = `DELETE FROM layouts WHERE name = ?`
)

type layoutRepo struct {
	db *sql.DB
}

// NewLayoutRepository creates a layout repository over an open database.
func NewLayoutRepository(db *sql.DB) repository.LayoutRepository {
	return &layoutRepo{db: db}
}

// Save creates or replaces the layout stored under snap.Name.
func (r *layoutRepo) Save(ctx context.Context, snap *entity.LayoutSnapshot) error {
	log := logging.FromContext(ctx)
	if snap == nil {
		return errors.New("layout snapshot cannot be nil")
	}
	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now()
	}

	layoutJSON, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal layout %q: %w", snap.Name, err)
	}

	log.Debug().
		Str("name", snap.Name).
		Int("workspace_count", len(snap.Workspaces)).
		Int("pane_count", snap.PaneCount()).
		Msg("saving layout snapshot")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin layout transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Debug().Err(rollbackErr).Msg("layout rollback reported non-terminal error")
		}
	}()

	if _, err := tx.ExecContext(ctx, upsertLayoutSQL,
		string(snap.ID),
		snap.Name,
		snap.Version,
		len(snap.Workspaces),
		snap.PaneCount(),
		string(layoutJSON),
		snap.SavedAt.UnixNano(),
	); err != nil {
		return fmt.Errorf("upsert layout %q: %w", snap.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit layout transaction: %w", err)
	}
	return nil
}

// FindByName returns the layout saved under name.
func (r *layoutRepo) FindByName(ctx context.Context, name string) (*entity.LayoutSnapshot, error) {
	var raw string
	if err := r.db.QueryRowContext(ctx, getLayoutSQL, name).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", repository.ErrLayoutNotFound, name)
		}
		return nil, err
	}

	var snap entity.LayoutSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("name", name).Msg("failed to unmarshal layout")
		return nil, fmt.Errorf("%w: %s: %w", entity.ErrInvalidSnapshot, name, err)
	}
	return &snap, nil
}

// List returns every decodable layout, most recently saved first.
func (r *layoutRepo) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, listLayoutsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*entity.LayoutSnapshot
	for rows.Next() {
		var name, raw string
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, err
		}
		var snap entity.LayoutSnapshot
		if err := json.Unmarshal([]byte(raw), &snap); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("name", name).Msg("skipping corrupted layout")
			continue
		}
		snaps = append(snaps, &snap)
	}
	return snaps, rows.Err()
}

// Delete removes the layout saved under name.
func (r *layoutRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, deleteLayoutSQL, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", repository.ErrLayoutNotFound, name)
	}
	logging.FromContext(ctx).Debug().Str("name", name).Msg("deleted layout")
	return nil
}
