// Package store keeps a SQLite history of calculated motor designs.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"outrunner/model"
)

var ErrNotFound = errors.New("design not found")

// Record is one stored design together with the inputs that produced it.
type Record struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"createdAt"`
	Params    model.Params      `json:"params"`
	Design    model.MotorDesign `json:"design"`
}

type row struct {
	ID          string  `db:"id"`
	CreatedAt   int64   `db:"created_at"`
	SlotCount   int     `db:"slot_count"`
	PoleCount   int     `db:"pole_count"`
	TargetKV    float64 `db:"target_kv"`
	EstimatedKV float64 `db:"estimated_kv"`
	Efficiency  float64 `db:"efficiency"`
	ParamsJSON  string  `db:"params_json"`
	DesignJSON  string  `db:"design_json"`
}

// DB wraps a SQLite connection.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the history database at path.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS designs (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		slot_count INTEGER NOT NULL,
		pole_count INTEGER NOT NULL,
		target_kv REAL NOT NULL,
		estimated_kv REAL NOT NULL,
		efficiency REAL NOT NULL,
		params_json TEXT NOT NULL,
		design_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_designs_created ON designs(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Save stores a design under a new id.
func (db *DB) Save(ctx context.Context, params model.Params, design model.MotorDesign) (Record, error) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return Record{}, fmt.Errorf("marshal params: %w", err)
	}
	designJSON, err := json.Marshal(design)
	if err != nil {
		return Record{}, fmt.Errorf("marshal design: %w", err)
	}

	rec := Record{
		ID:        uuid.NewString(),
		CreatedAt: design.Timestamp,
		Params:    params,
		Design:    design,
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err = db.conn.NamedExecContext(ctx, `
		INSERT INTO designs (id, created_at, slot_count, pole_count, target_kv, estimated_kv, efficiency, params_json, design_json)
		VALUES (:id, :created_at, :slot_count, :pole_count, :target_kv, :estimated_kv, :efficiency, :params_json, :design_json)`,
		row{
			ID:          rec.ID,
			CreatedAt:   rec.CreatedAt.UnixNano(),
			SlotCount:   design.SlotCount,
			PoleCount:   design.PoleCount,
			TargetKV:    design.TargetKV,
			EstimatedKV: design.EstimatedKV,
			Efficiency:  design.Efficiency,
			ParamsJSON:  string(paramsJSON),
			DesignJSON:  string(designJSON),
		})
	if err != nil {
		return Record{}, fmt.Errorf("insert design: %w", err)
	}

	log.WithFields(log.Fields{
		"id":    rec.ID,
		"slots": design.SlotCount,
		"poles": design.PoleCount,
	}).Info("design saved")
	return rec, nil
}

// Get loads one design by id.
func (db *DB) Get(ctx context.Context, id string) (Record, error) {
	var r row
	err := db.conn.GetContext(ctx, &r, `SELECT * FROM designs WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get design %s: %w", id, err)
	}
	return r.record()
}

// List returns up to limit designs, newest first.
func (db *DB) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []row
	err := db.conn.SelectContext(ctx, &rows, `SELECT * FROM designs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for _, r := range rows {
		rec, err := r.record()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r row) record() (Record, error) {
	rec := Record{
		ID:        r.ID,
		CreatedAt: time.Unix(0, r.CreatedAt).UTC(),
	}
	if err := json.Unmarshal([]byte(r.ParamsJSON), &rec.Params); err != nil {
		return Record{}, fmt.Errorf("decode params %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.DesignJSON), &rec.Design); err != nil {
		return Record{}, fmt.Errorf("decode design %s: %w", r.ID, err)
	}
	return rec, nil
}
