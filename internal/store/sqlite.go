package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/fundlens/readiness-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS assessments (
	id              TEXT PRIMARY KEY,
	owner_id        TEXT NOT NULL,
	catalog_version TEXT NOT NULL DEFAULT '',
	answers         TEXT NOT NULL,
	result          TEXT,
	overall_score   REAL NOT NULL DEFAULT 0,
	risk_level      TEXT NOT NULL DEFAULT '',
	created_at      DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_assessments_owner ON assessments(owner_id);
CREATE INDEX IF NOT EXISTS idx_assessments_risk_level ON assessments(risk_level);
CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveAssessment(ctx context.Context, a *model.Assessment) error {
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

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessments (id, owner_id, catalog_version, answers, result, overall_score, risk_level, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.OwnerID, catalogVersion(a), answersJSON, resultJSON,
		overallScore(a), riskLevel(a), a.CreatedAt,
	)
	return eris.Wrapf(err, "sqlite: insert assessment %s", a.ID)
}

func (s *SQLiteStore) SaveAssessments(ctx context.Context, as []model.Assessment) error {
	if len(as) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback() //nolint:errcheck

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
		_, err = tx.ExecContext(ctx,
			`INSERT INTO assessments (id, owner_id, catalog_version, answers, result, overall_score, risk_level, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.OwnerID, catalogVersion(a), answersJSON, resultJSON,
			overallScore(a), riskLevel(a), a.CreatedAt,
		)
		if err != nil {
			return eris.Wrapf(err, "sqlite: insert assessment %s", a.ID)
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit assessments")
}

func (s *SQLiteStore) GetAssessment(ctx context.Context, id string) (*model.Assessment, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, answers, result, created_at FROM assessments WHERE id = ?`,
		id,
	)
	return scanAssessment(row)
}

func (s *SQLiteStore) ListAssessments(ctx context.Context, filter Filter) ([]model.Assessment, error) {
	query := `SELECT id, owner_id, answers, result, created_at FROM assessments WHERE 1=1`
	var args []any

	if filter.OwnerID != "" {
		query += ` AND owner_id = ?`
		args = append(args, filter.OwnerID)
	}
	if filter.RiskLevel != "" {
		query += ` AND risk_level = ?`
		args = append(args, string(filter.RiskLevel))
	}
	if filter.MinScore > 0 {
		query += ` AND overall_score >= ?`
		args = append(args, filter.MinScore)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list assessments")
	}
	defer rows.Close()

	var assessments []model.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, *a)
	}
	return assessments, eris.Wrap(rows.Err(), "sqlite: list assessments iterate")
}

// helpers

func marshalAssessment(a *model.Assessment) (string, sql.NullString, error) {
	answersJSON, err := json.Marshal(a.Answers)
	if err != nil {
		return "", sql.NullString{}, eris.Wrap(err, "store: marshal answers")
	}
	var resultJSON sql.NullString
	if a.Result != nil {
		data, err := json.Marshal(a.Result)
		if err != nil {
			return "", sql.NullString{}, eris.Wrap(err, "store: marshal result")
		}
		resultJSON = sql.NullString{String: string(data), Valid: true}
	}
	return string(answersJSON), resultJSON, nil
}

func catalogVersion(a *model.Assessment) string {
	if a.Result == nil {
		return ""
	}
	return a.Result.CatalogVersion
}

func overallScore(a *model.Assessment) float64 {
	if a.Result == nil {
		return 0
	}
	return a.Result.OverallScore
}

func riskLevel(a *model.Assessment) string {
	if a.Result == nil {
		return ""
	}
	return string(a.Result.RiskLevel)
}

type scannable interface {
	Scan(dest ...any) error
}

func scanAssessment(row scannable) (*model.Assessment, error) {
	var a model.Assessment
	var answersJSON string
	var resultJSON sql.NullString

	err := row.Scan(&a.ID, &a.OwnerID, &answersJSON, &resultJSON, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.New("assessment not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "store: scan assessment")
	}

	if err := json.Unmarshal([]byte(answersJSON), &a.Answers); err != nil {
		return nil, eris.Wrap(err, "store: unmarshal answers")
	}
	if resultJSON.Valid {
		a.Result = &model.AssessmentResult{}
		if err := json.Unmarshal([]byte(resultJSON.String), a.Result); err != nil {
			return nil, eris.Wrap(err, "store: unmarshal result")
		}
	}
	return &a, nil
}
