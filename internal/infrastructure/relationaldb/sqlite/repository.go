// Package sqlite provides a SQLite implementation of the ParadigmStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/klisis/internal/domain/entities"
	"github.com/ersonp/klisis/internal/infrastructure/config"
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Repository implements ports.ParadigmStore using SQLite.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// A single connection keeps ":memory:" databases visible across calls.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Built paradigms, one row per declined noun
	CREATE TABLE IF NOT EXISTS paradigms (
		id TEXT PRIMARY KEY,
		nominative TEXT NOT NULL,
		genitive TEXT NOT NULL,
		gender TEXT NOT NULL,
		class TEXT NOT NULL,
		stem TEXT NOT NULL,
		forms TEXT NOT NULL,
		forms_with_article TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_paradigms_nominative ON paradigms(nominative);
	CREATE INDEX IF NOT EXISTS idx_paradigms_class ON paradigms(class);
	CREATE INDEX IF NOT EXISTS idx_paradigms_created ON paradigms(created_at);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Save stores a built noun.
func (r *Repository) Save(ctx context.Context, noun *entities.Noun) (*entities.Paradigm, error) {
	return r.insert(ctx, r.db, noun)
}

// SaveBatch stores several built nouns in one transaction.
// Nothing is stored if any insert fails.
func (r *Repository) SaveBatch(ctx context.Context, nouns []*entities.Noun) ([]*entities.Paradigm, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	saved := make([]*entities.Paradigm, 0, len(nouns))
	for _, noun := range nouns {
		p, err := r.insert(ctx, tx, noun)
		if err != nil {
			return nil, err
		}
		saved = append(saved, p)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing paradigms: %w", err)
	}
	return saved, nil
}

func (r *Repository) insert(ctx context.Context, q querier, noun *entities.Noun) (*entities.Paradigm, error) {
	if !noun.Built() {
		return nil, fmt.Errorf("saving paradigm for %s: paradigm not built", noun.Nominative)
	}

	forms, err := json.Marshal(noun.Forms)
	if err != nil {
		return nil, fmt.Errorf("marshaling forms: %w", err)
	}
	withArticle, err := json.Marshal(noun.FormsWithArticle)
	if err != nil {
		return nil, fmt.Errorf("marshaling forms with article: %w", err)
	}

	p := &entities.Paradigm{
		ID:        generateUUID(),
		Noun:      *noun,
		CreatedAt: timeNow(),
	}

	query := `
		INSERT INTO paradigms (id, nominative, genitive, gender, class, stem, forms, forms_with_article, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = q.ExecContext(ctx, query,
		p.ID,
		p.Nominative,
		p.Genitive,
		string(p.Gender),
		string(p.Class),
		p.Stem,
		string(forms),
		string(withArticle),
		p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("saving paradigm: %w", err)
	}
	return p, nil
}

const selectParadigm = `
	SELECT id, nominative, genitive, gender, class, stem, forms, forms_with_article, created_at
	FROM paradigms
`

// FindByID finds a paradigm by its ID.
func (r *Repository) FindByID(ctx context.Context, id string) (*entities.Paradigm, error) {
	row := r.db.QueryRowContext(ctx, selectParadigm+` WHERE id = ?`, id)

	p, err := scanParadigm(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FindByNominative finds paradigms for a nominative, newest first.
func (r *Repository) FindByNominative(ctx context.Context, nominative string) ([]*entities.Paradigm, error) {
	query := selectParadigm + `
		WHERE nominative = ?
		ORDER BY created_at DESC, rowid DESC
	`
	return r.query(ctx, query, nominative)
}

// List lists paradigms newest first with pagination.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*entities.Paradigm, error) {
	query := selectParadigm + `
		ORDER BY created_at DESC, rowid DESC
		LIMIT ? OFFSET ?
	`
	return r.query(ctx, query, limit, offset)
}

// ListByClass lists paradigms of one declension class, newest first.
func (r *Repository) ListByClass(ctx context.Context, class entities.DeclensionClass, limit int) ([]*entities.Paradigm, error) {
	query := selectParadigm + `
		WHERE class = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`
	return r.query(ctx, query, string(class), limit)
}

// Count returns the number of stored paradigms.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM paradigms`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting paradigms: %w", err)
	}
	return count, nil
}

// Delete deletes a paradigm by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM paradigms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting paradigm: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("paradigm not found: %s", id)
	}
	return nil
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]*entities.Paradigm, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying paradigms: %w", err)
	}
	defer rows.Close()

	result := make([]*entities.Paradigm, 0, 16)
	for rows.Next() {
		p, err := scanParadigm(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanParadigm is a helper to scan a paradigm row.
func scanParadigm(s scanner) (*entities.Paradigm, error) {
	var p entities.Paradigm
	var gender, class, forms, withArticle string

	err := s.Scan(
		&p.ID,
		&p.Nominative,
		&p.Genitive,
		&gender,
		&class,
		&p.Stem,
		&forms,
		&withArticle,
		&p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning paradigm: %w", err)
	}

	p.Gender = entities.Gender(gender)
	p.Class = entities.DeclensionClass(class)

	if err := json.Unmarshal([]byte(forms), &p.Forms); err != nil {
		return nil, fmt.Errorf("unmarshaling forms: %w", err)
	}
	if err := json.Unmarshal([]byte(withArticle), &p.FormsWithArticle); err != nil {
		return nil, fmt.Errorf("unmarshaling forms with article: %w", err)
	}

	return &p, nil
}
