package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore mirrors session state into a single jsonb table.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// ConnectPostgres opens a pool against DATABASE_URL-style dsn and
// initializes the schema.
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func initSchema(ctx context.Context, db *pgxpool.Pool) error {
	schemaSQL := `
		CREATE TABLE IF NOT EXISTS menu_sessions (
			session_id VARCHAR(64) PRIMARY KEY,
			state JSONB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := db.Exec(ctx, schemaSQL)
	return err
}

func (s *PostgresStore) Load(ctx context.Context, sessionID string) (*State, error) {
	var raw []byte
	err := s.db.QueryRow(ctx,
		`SELECT state FROM menu_sessions WHERE session_id = $1`,
		sessionID,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *PostgresStore) Save(ctx context.Context, sessionID string, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO menu_sessions (session_id, state, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (session_id)
		DO UPDATE SET state = EXCLUDED.state, updated_at = CURRENT_TIMESTAMP
	`, sessionID, raw)
	return err
}

func (s *PostgresStore) Clear(ctx context.Context, sessionID string) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM menu_sessions WHERE session_id = $1`,
		sessionID,
	)
	return err
}
