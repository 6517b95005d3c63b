package logos

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool and pgx.Tx the repository uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const logoColumns = `id, name, image_url, dark_mode_url, alt_text, display_order, is_active`

type PostgresRepository struct {
	db Querier
}

func NewPostgresRepository(db Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Logo, error) {
	items, err := r.query(ctx, `SELECT `+logoColumns+` FROM company_logos ORDER BY display_order, id`)
	return items, persistence("list", err)
}

func (r *PostgresRepository) ListActive(ctx context.Context) ([]Logo, error) {
	items, err := r.query(ctx, `SELECT `+logoColumns+` FROM company_logos WHERE is_active = TRUE ORDER BY display_order, id`)
	return items, persistence("list active", err)
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (Logo, bool, error) {
	row := r.db.QueryRow(ctx, `SELECT `+logoColumns+` FROM company_logos WHERE id = $1`, id)
	return scanOne("get", row)
}

func (r *PostgresRepository) Create(ctx context.Context, item Logo) (Logo, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO company_logos (name, image_url, dark_mode_url, alt_text, display_order, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+logoColumns,
		item.Name, item.ImageURL, item.DarkModeURL, item.AltText, item.DisplayOrder, item.IsActive,
	)
	created, err := scanLogo(row)
	if err != nil {
		return Logo{}, persistence("create", err)
	}
	return created, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, patch Patch) (Logo, bool, error) {
	if patch.Empty() {
		return r.Get(ctx, id)
	}

	sets, args := updateAssignments(patch)
	args = append(args, id)
	sql := fmt.Sprintf(`UPDATE company_logos SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), logoColumns)

	return scanOne("update", r.db.QueryRow(ctx, sql, args...))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM company_logos WHERE id = $1`, id)
	if err != nil {
		return false, persistence("delete", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) query(ctx context.Context, sql string, args ...any) ([]Logo, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Logo, 0)
	for rows.Next() {
		l, err := scanLogo(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// updateAssignments builds the SET list for a patch, numbering
// placeholders from $1.
func updateAssignments(p Patch) ([]string, []any) {
	var sets []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.ImageURL != nil {
		add("image_url", *p.ImageURL)
	}
	if p.ClearDarkModeURL {
		sets = append(sets, "dark_mode_url = NULL")
	} else if p.DarkModeURL != nil {
		add("dark_mode_url", *p.DarkModeURL)
	}
	if p.ClearAltText {
		sets = append(sets, "alt_text = NULL")
	} else if p.AltText != nil {
		add("alt_text", *p.AltText)
	}
	if p.DisplayOrder != nil {
		add("display_order", *p.DisplayOrder)
	}
	if p.IsActive != nil {
		add("is_active", *p.IsActive)
	}
	return sets, args
}

func scanOne(op string, row pgx.Row) (Logo, bool, error) {
	l, err := scanLogo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Logo{}, false, nil
		}
		return Logo{}, false, persistence(op, err)
	}
	return l, true, nil
}

func scanLogo(row pgx.Row) (Logo, error) {
	var l Logo
	err := row.Scan(&l.ID, &l.Name, &l.ImageURL, &l.DarkModeURL, &l.AltText, &l.DisplayOrder, &l.IsActive)
	return l, err
}
