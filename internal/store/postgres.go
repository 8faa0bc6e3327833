package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/fundlens/readiness-cli/internal/db"
	"github.com/fundlens/readiness-cli/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32
	MinConns int32
}

// preparedStatements lists queries to prepare on each new connection
// for faster execution of the most frequently used store operations.
var preparedStatements = map[string]string{
	"insert_assessment": `INSERT INTO assessments (id, owner_id, catalog_version, answers, result, overall_score, risk_level, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
	"get_assessment":    `SELECT id, owner_id, answers, result, created_at FROM assessments WHERE id = $1`,
}

// assessmentColumns is the COPY column list used for bulk saves.
var assessmentColumns = []string{
	"id", "owner_id", "catalog_version", "answers", "result",
	"overall_score", "risk_level", "created_at",
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	// Pool sizing with sensible defaults.
	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	// Prepare frequently-used statements on each new connection.
	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, stmt := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, stmt); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}

	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS assessments (
	id              TEXT PRIMARY KEY,
	owner_id        TEXT NOT NULL,
	catalog_version TEXT NOT NULL DEFAULT '',
	answers         JSONB NOT NULL,
	result          JSONB,
	overall_score   DOUBLE PRECISION NOT NULL DEFAULT 0,
	risk_level      TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_assessments_owner ON assessments(owner_id);
CREATE INDEX IF NOT EXISTS idx_assessments_risk_level ON assessments(risk_level);
CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) SaveAssessment(ctx context.Context, a *model.Assessment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	answersJSON, resultJSON, err := marshalAssessment(a)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO assessments (id, owner_id, catalog_version, answers, result, overall_score, risk_level, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.OwnerID, catalogVersion(a), answersJSON, nullString(resultJSON),
		overallScore(a), riskLevel(a), a.CreatedAt,
	)
	return eris.Wrapf(err, "postgres: insert assessment %s", a.ID)
}

// SaveAssessments bulk-inserts via the COPY protocol.
func (s *PostgresStore) SaveAssessments(ctx context.Context, as []model.Assessment) error {
	if len(as) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(as))
	for i := range as {
		a := &as[i]
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = time.Now().UTC()
		}
		answersJSON, resultJSON, err := marshalAssessment(a)
		if err != nil {
			return err
		}
		rows = append(rows, []any{
			a.ID, a.OwnerID, catalogVersion(a), answersJSON, nullString(resultJSON),
			overallScore(a), riskLevel(a), a.CreatedAt,
		})
	}

	n, err := db.CopyFrom(ctx, s.pool, "assessments", assessmentColumns, rows)
	if err != nil {
		return eris.Wrap(err, "postgres: bulk save assessments")
	}
	if n != int64(len(rows)) {
		return eris.Errorf("postgres: bulk save wrote %d of %d rows", n, len(rows))
	}
	return nil
}

func (s *PostgresStore) GetAssessment(ctx context.Context, id string) (*model.Assessment, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, owner_id, answers, result, created_at FROM assessments WHERE id = $1`,
		id,
	)

	a, err := scanPgAssessment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, eris.Errorf("postgres: assessment not found: %s", id)
		}
		return nil, eris.Wrapf(err, "postgres: get assessment %s", id)
	}
	return a, nil
}

func (s *PostgresStore) ListAssessments(ctx context.Context, filter Filter) ([]model.Assessment, error) {
	query := `SELECT id, owner_id, answers, result, created_at FROM assessments WHERE 1=1`
	var args []any
	argNum := 1

	if filter.OwnerID != "" {
		query += fmt.Sprintf(" AND owner_id = $%d", argNum)
		args = append(args, filter.OwnerID)
		argNum++
	}
	if filter.RiskLevel != "" {
		query += fmt.Sprintf(" AND risk_level = $%d", argNum)
		args = append(args, string(filter.RiskLevel))
		argNum++
	}
	if filter.MinScore > 0 {
		query += fmt.Sprintf(" AND overall_score >= $%d", argNum)
		args = append(args, filter.MinScore)
		argNum++
	}
	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(" LIMIT $%d", argNum)
	args = append(args, limit)
	argNum++

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argNum)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list assessments")
	}
	defer rows.Close()

	var assessments []model.Assessment
	for rows.Next() {
		a, err := scanPgAssessment(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan assessment")
		}
		assessments = append(assessments, *a)
	}
	return assessments, eris.Wrap(rows.Err(), "postgres: list assessments iterate")
}

func nullString(ns sql.NullString) any {
	if !ns.Valid {
		return nil
	}
	return ns.String
}

func scanPgAssessment(row pgx.Row) (*model.Assessment, error) {
	var a model.Assessment
	var answersJSON string
	var resultJSON *string

	if err := row.Scan(&a.ID, &a.OwnerID, &answersJSON, &resultJSON, &a.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(answersJSON), &a.Answers); err != nil {
		return nil, eris.Wrap(err, "store: unmarshal answers")
	}
	if resultJSON != nil {
		a.Result = &model.AssessmentResult{}
		if err := json.Unmarshal([]byte(*resultJSON), a.Result); err != nil {
			return nil, eris.Wrap(err, "store: unmarshal result")
		}
	}
	return &a, nil
}
