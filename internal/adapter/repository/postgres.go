// Package repository provides the two Store implementations behind the
// content API: Postgres for hosted deployments and a JSON document on disk
// for local ones.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Bhaskar0624/FUTURE-FS-01/internal/domain"
)

// PostgresStore keeps one table per list section plus the profile
// singleton. Reads order by sort_order ascending, ties broken by insertion
// order (created_at uses clock_timestamp, see the migrations).
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	snap.Normalize()

	err := s.pool.QueryRow(ctx, `
		SELECT id, name, title, email, location, status, bio, long_bio,
		       github_url, linkedin_url, twitter_url, seo_title, seo_description,
		       resume_url, created_at
		FROM profile LIMIT 1`).Scan(
		&snap.Profile.ID, &snap.Profile.Name, &snap.Profile.Title,
		&snap.Profile.Email, &snap.Profile.Location, &snap.Profile.Status,
		&snap.Profile.Bio, &snap.Profile.LongBio, &snap.Profile.GithubURL,
		&snap.Profile.LinkedinURL, &snap.Profile.TwitterURL,
		&snap.Profile.SEOTitle, &snap.Profile.SEODescription,
		&snap.Profile.ResumeURL, &snap.Profile.CreatedAt)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return domain.Snapshot{}, wrapPgErr(err)
	}

	if snap.Projects, err = scanRows(ctx, s.pool, `
		SELECT id, title, description, category, tags, github_url, image_url, sort_order, created_at
		FROM projects ORDER BY sort_order, created_at, id`,
		func(r pgx.Rows) (domain.Project, error) {
			var p domain.Project
			err := r.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Tags,
				&p.GithubURL, &p.ImageURL, &p.SortOrder, &p.CreatedAt)
			return p, err
		}); err != nil {
		return domain.Snapshot{}, err
	}

	if snap.Experiences, err = scanRows(ctx, s.pool, `
		SELECT id, role, company, period, description, sort_order, created_at
		FROM experiences ORDER BY sort_order, created_at, id`,
		func(r pgx.Rows) (domain.Experience, error) {
			var e domain.Experience
			err := r.Scan(&e.ID, &e.Role, &e.Company, &e.Period, &e.Description,
				&e.SortOrder, &e.CreatedAt)
			return e, err
		}); err != nil {
		return domain.Snapshot{}, err
	}

	if snap.Skills, err = scanRows(ctx, s.pool, `
		SELECT id, category, items, sort_order, created_at
		FROM skills ORDER BY sort_order, created_at, id`,
		func(r pgx.Rows) (domain.SkillCategory, error) {
			var c domain.SkillCategory
			err := r.Scan(&c.ID, &c.Category, &c.Items, &c.SortOrder, &c.CreatedAt)
			return c, err
		}); err != nil {
		return domain.Snapshot{}, err
	}

	if snap.Certificates, err = scanRows(ctx, s.pool, `
		SELECT id, title, issuer, date, url, sort_order, created_at
		FROM certificates ORDER BY sort_order, created_at, id`,
		func(r pgx.Rows) (domain.Certificate, error) {
			var c domain.Certificate
			err := r.Scan(&c.ID, &c.Title, &c.Issuer, &c.Date, &c.URL,
				&c.SortOrder, &c.CreatedAt)
			return c, err
		}); err != nil {
		return domain.Snapshot{}, err
	}

	if snap.Journey, err = scanRows(ctx, s.pool, `
		SELECT id, year, title, description, sort_order, created_at
		FROM journey ORDER BY sort_order, created_at, id`,
		func(r pgx.Rows) (domain.JourneyEntry, error) {
			var j domain.JourneyEntry
			err := r.Scan(&j.ID, &j.Year, &j.Title, &j.Description,
				&j.SortOrder, &j.CreatedAt)
			return j, err
		}); err != nil {
		return domain.Snapshot{}, err
	}

	return snap, nil
}

func (s *PostgresStore) UpdateProfile(ctx context.Context, fields map[string]any) error {
	var id string
	err := s.pool.QueryRow(ctx, `SELECT id FROM profile ORDER BY created_at LIMIT 1`).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	if err != nil {
		return wrapPgErr(err)
	}

	set := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for _, col := range domain.ProfileFields {
		if v, ok := fields[col]; ok {
			args = append(args, v)
			set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
		}
	}
	if len(set) == 0 {
		return nil
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE profile SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))
	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return wrapPgErr(err)
	}
	return nil
}

// ReplaceCollection deletes the section's rows and inserts the supplied
// ones in a single transaction. The contract only requires the bare
// delete-all-then-insert-all (with its observable empty window); wrapping
// it in a transaction is the recommended hardening Postgres makes free.
func (s *PostgresStore) ReplaceCollection(ctx context.Context, section domain.Section, items any) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return wrapPgErr(err)
	}
	defer tx.Rollback(ctx)

	// section comes out of domain.ParseSection, never raw caller input
	if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s", section)); err != nil {
		return wrapPgErr(err)
	}

	switch rows := items.(type) {
	case []domain.Project:
		for _, r := range rows {
			tags := r.Tags
			if tags == nil {
				tags = []string{}
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO projects (title, description, category, tags, github_url, image_url, sort_order)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				r.Title, r.Description, r.Category, tags, r.GithubURL, r.ImageURL, r.SortOrder); err != nil {
				return wrapPgErr(err)
			}
		}
	case []domain.Experience:
		for _, r := range rows {
			if _, err := tx.Exec(ctx, `
				INSERT INTO experiences (role, company, period, description, sort_order)
				VALUES ($1, $2, $3, $4, $5)`,
				r.Role, r.Company, r.Period, r.Description, r.SortOrder); err != nil {
				return wrapPgErr(err)
			}
		}
	case []domain.SkillCategory:
		for _, r := range rows {
			items := r.Items
			if items == nil {
				items = []string{}
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO skills (category, items, sort_order)
				VALUES ($1, $2, $3)`,
				r.Category, items, r.SortOrder); err != nil {
				return wrapPgErr(err)
			}
		}
	case []domain.Certificate:
		for _, r := range rows {
			if _, err := tx.Exec(ctx, `
				INSERT INTO certificates (title, issuer, date, url, sort_order)
				VALUES ($1, $2, $3, $4, $5)`,
				r.Title, r.Issuer, r.Date, r.URL, r.SortOrder); err != nil {
				return wrapPgErr(err)
			}
		}
	case []domain.JourneyEntry:
		for _, r := range rows {
			if _, err := tx.Exec(ctx, `
				INSERT INTO journey (year, title, description, sort_order)
				VALUES ($1, $2, $3, $4)`,
				r.Year, r.Title, r.Description, r.SortOrder); err != nil {
				return wrapPgErr(err)
			}
		}
	default:
		return fmt.Errorf("%w: section %s has no collection type", domain.ErrValidation, section)
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapPgErr(err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return wrapPgErr(err)
	}
	return nil
}

func scanRows[T any](ctx context.Context, pool *pgxpool.Pool, query string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, wrapPgErr(err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, wrapPgErr(err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr(err)
	}
	return out, nil
}

// wrapPgErr folds database errors into the storage failure bucket, keeping
// the driver message for operator diagnosis.
func wrapPgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.UndefinedTable {
			return fmt.Errorf("%w: schema missing, run migrations: %s", domain.ErrStorage, pgErr.Message)
		}
		if pgerrcode.IsConnectionException(pgErr.Code) {
			return fmt.Errorf("%w: database unreachable: %s", domain.ErrStorage, pgErr.Message)
		}
		return fmt.Errorf("%w: %s", domain.ErrStorage, pgErr.Message)
	}
	return fmt.Errorf("%w: %v", domain.ErrStorage, err)
}
