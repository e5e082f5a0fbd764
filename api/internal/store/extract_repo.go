package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrNotFound = sql.ErrNoRows

// ExtractRepo — кэш сырого вывода движков извлечения по ключу
// (image_hash, engine, model, kind). Результаты проверки сюда не попадают.
type ExtractRepo struct{ DB *sql.DB }

func NewExtractRepo(db *sql.DB) *ExtractRepo { return &ExtractRepo{DB: db} }

func (r *ExtractRepo) EnsureSchema(ctx context.Context) error {
	const q = `
create table if not exists extractions (
  id         bigserial primary key,
  created_at timestamptz not null default now(),
  image_hash text not null,
  engine     text not null,
  model      text not null,
  kind       text not null,
  raw_text   text not null,
  unique (image_hash, engine, model, kind)
)`
	_, err := r.DB.ExecContext(ctx, q)
	return err
}

// FindByHash достаёт свежую запись по ключу. Если maxAge > 0 — проверяет возраст.
func (r *ExtractRepo) FindByHash(ctx context.Context, imageHash, engine, model, kind string, maxAge time.Duration) (string, error) {
	const q = `
select raw_text, created_at
from extractions
where image_hash = $1 and engine = $2 and model = $3 and kind = $4
order by created_at desc
limit 1`
	var (
		raw string
		ts  time.Time
	)
	if err := r.DB.QueryRowContext(ctx, q, imageHash, engine, model, kind).Scan(&raw, &ts); err != nil {
		return "", err
	}
	if maxAge > 0 && time.Since(ts) > maxAge {
		return "", ErrNotFound
	}
	return raw, nil
}

func (r *ExtractRepo) Upsert(ctx context.Context, imageHash, engine, model, kind, raw string) error {
	const q = `
insert into extractions (image_hash, engine, model, kind, raw_text)
values ($1,$2,$3,$4,$5)
on conflict (image_hash, engine, model, kind) do update
set raw_text = excluded.raw_text,
    created_at = now()`
	_, err := r.DB.ExecContext(ctx, q, imageHash, engine, model, kind, raw)
	return err
}

// PurgeOlderThan удаляет очень старые записи, чтобы не раздувать БД.
func (r *ExtractRepo) PurgeOlderThan(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, errors.New("olderThan must be > 0")
	}
	cutoff := time.Now().Add(-olderThan)
	res, err := r.DB.ExecContext(ctx, `delete from extractions where created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	aff, _ := res.RowsAffected()
	return aff, nil
}
