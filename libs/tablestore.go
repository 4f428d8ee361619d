package libs

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrEntityExists   = errors.New("entity already exists")
	ErrETagMismatch   = errors.New("entity etag mismatch")
)

// ETagAny makes UpdateEntity replace the row regardless of its current etag.
const ETagAny = "*"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{2,62}$`)

type Entity struct {
	PartitionKey string
	RowKey       string
	ETag         string
	Timestamp    time.Time
	Data         json.RawMessage
}

// Filter narrows QueryEntities; empty fields match everything. Property/Value
// compare a top-level string property of the entity data.
type Filter struct {
	PartitionKey string
	RowKey       string
	Property     string
	Value        string
}

type TableStore interface {
	AddEntity(ctx context.Context, table string, entity Entity) (Entity, error)
	GetEntity(ctx context.Context, table, partitionKey, rowKey string) (Entity, error)
	UpdateEntity(ctx context.Context, table string, entity Entity, ifMatch string) (Entity, error)
	DeleteEntity(ctx context.Context, table, partitionKey, rowKey string) error
	QueryEntities(ctx context.Context, table string, filter Filter) ([]Entity, error)
}

func ValidateTableName(table string) error {
	if !tableNamePattern.MatchString(table) {
		return errors.Errorf("invalid table name %q", table)
	}
	return nil
}

// PgTableStore keeps every logical table in its own Postgres table with a
// JSONB payload column. Tables are created on first use.
type PgTableStore struct {
	pool    *pgxpool.Pool
	created sync.Map
}

func NewPgTableStore(pool *pgxpool.Pool) *PgTableStore {
	return &PgTableStore{pool: pool}
}

func (s *PgTableStore) ensureTable(ctx context.Context, table string) (string, error) {
	if err := ValidateTableName(table); err != nil {
		return "", err
	}

	ident := pgx.Identifier{table}.Sanitize()
	if _, ok := s.created.Load(table); ok {
		return ident, nil
	}

	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		partition_key TEXT NOT NULL,
		row_key TEXT NOT NULL,
		etag TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		data JSONB NOT NULL,
		PRIMARY KEY (partition_key, row_key)
	)`, ident)
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return "", errors.Wrapf(err, "create table %s", table)
	}

	s.created.Store(table, struct{}{})
	return ident, nil
}

func (s *PgTableStore) AddEntity(ctx context.Context, table string, entity Entity) (Entity, error) {
	ident, err := s.ensureTable(ctx, table)
	if err != nil {
		return Entity{}, err
	}

	entity.ETag = uuid.NewString()
	query := fmt.Sprintf(
		"INSERT INTO %s (partition_key, row_key, etag, data) VALUES ($1, $2, $3, $4) RETURNING updated_at",
		ident,
	)
	err = s.pool.QueryRow(ctx, query, entity.PartitionKey, entity.RowKey, entity.ETag, []byte(entity.Data)).
		Scan(&entity.Timestamp)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Entity{}, errors.Wrapf(ErrEntityExists, "%s/%s/%s", table, entity.PartitionKey, entity.RowKey)
		}
		return Entity{}, errors.Wrapf(err, "insert into %s", table)
	}

	return entity, nil
}

func (s *PgTableStore) GetEntity(ctx context.Context, table, partitionKey, rowKey string) (Entity, error) {
	ident, err := s.ensureTable(ctx, table)
	if err != nil {
		return Entity{}, err
	}

	query := fmt.Sprintf(
		"SELECT partition_key, row_key, etag, updated_at, data FROM %s WHERE partition_key = $1 AND row_key = $2",
		ident,
	)
	entity, err := scanEntity(s.pool.QueryRow(ctx, query, partitionKey, rowKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entity{}, errors.Wrapf(ErrEntityNotFound, "%s/%s/%s", table, partitionKey, rowKey)
		}
		return Entity{}, errors.Wrapf(err, "select from %s", table)
	}

	return entity, nil
}

func (s *PgTableStore) UpdateEntity(ctx context.Context, table string, entity Entity, ifMatch string) (Entity, error) {
	ident, err := s.ensureTable(ctx, table)
	if err != nil {
		return Entity{}, err
	}

	newETag := uuid.NewString()
	args := []any{entity.PartitionKey, entity.RowKey, newETag, []byte(entity.Data)}
	query := fmt.Sprintf(
		"UPDATE %s SET etag = $3, data = $4, updated_at = now() WHERE partition_key = $1 AND row_key = $2",
		ident,
	)
	if ifMatch != "" && ifMatch != ETagAny {
		query += " AND etag = $5"
		args = append(args, ifMatch)
	}
	query += " RETURNING updated_at"

	err = s.pool.QueryRow(ctx, query, args...).Scan(&entity.Timestamp)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return Entity{}, errors.Wrapf(err, "update %s", table)
		}
		if _, getErr := s.GetEntity(ctx, table, entity.PartitionKey, entity.RowKey); getErr != nil {
			return Entity{}, getErr
		}
		return Entity{}, errors.Wrapf(ErrETagMismatch, "%s/%s/%s", table, entity.PartitionKey, entity.RowKey)
	}

	entity.ETag = newETag
	return entity, nil
}

func (s *PgTableStore) DeleteEntity(ctx context.Context, table, partitionKey, rowKey string) error {
	ident, err := s.ensureTable(ctx, table)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE partition_key = $1 AND row_key = $2", ident)
	tag, err := s.pool.Exec(ctx, query, partitionKey, rowKey)
	if err != nil {
		return errors.Wrapf(err, "delete from %s", table)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(ErrEntityNotFound, "%s/%s/%s", table, partitionKey, rowKey)
	}

	return nil
}

func (s *PgTableStore) QueryEntities(ctx context.Context, table string, filter Filter) ([]Entity, error) {
	ident, err := s.ensureTable(ctx, table)
	if err != nil {
		return nil, err
	}

	var conditions []string
	var args []any
	if filter.PartitionKey != "" {
		args = append(args, filter.PartitionKey)
		conditions = append(conditions, fmt.Sprintf("partition_key = $%d", len(args)))
	}
	if filter.RowKey != "" {
		args = append(args, filter.RowKey)
		conditions = append(conditions, fmt.Sprintf("row_key = $%d", len(args)))
	}
	if filter.Property != "" {
		args = append(args, filter.Property, filter.Value)
		conditions = append(conditions, fmt.Sprintf("data->>$%d = $%d", len(args)-1, len(args)))
	}

	query := fmt.Sprintf("SELECT partition_key, row_key, etag, updated_at, data FROM %s", ident)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY partition_key, row_key"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "query %s", table)
	}
	defer rows.Close()

	entities := []Entity{}
	for rows.Next() {
		entity, err := scanEntity(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "scan %s", table)
		}
		entities = append(entities, entity)
	}

	return entities, errors.Wrapf(rows.Err(), "iterate %s", table)
}

func scanEntity(row pgx.Row) (Entity, error) {
	var entity Entity
	var data []byte
	if err := row.Scan(&entity.PartitionKey, &entity.RowKey, &entity.ETag, &entity.Timestamp, &data); err != nil {
		return Entity{}, err
	}
	entity.Data = json.RawMessage(data)
	return entity, nil
}
