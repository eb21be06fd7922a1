package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/entity"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

const passColumns = `id, pass_id, category, cnic, name, designation, organization,
		area_allowed, date_of_entry, date_of_expiry, photo_url, author_id, created_at`

func (r *Repository) CreatePass(ctx context.Context, pass entity.Pass) error {
	sqlQuery :=
		`INSERT INTO passes
			(id, pass_id, category, cnic, name, designation, organization,
			area_allowed, date_of_entry, date_of_expiry, photo_url, author_id, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(ctx, sqlQuery,
		pass.ID,
		pass.PassID,
		pass.Category,
		pass.CNIC,
		pass.Name,
		pass.Designation,
		pass.Organization,
		pass.AreaAllowed,
		pass.DateOfEntry,
		pass.DateOfExpiry,
		pass.PhotoURL,
		pass.AuthorID,
		pass.CreatedAt,
	)

	if err != nil {
		return mapWriteError(err)
	}

	return nil
}

// CreatePasses inserts the whole batch in one transaction: either every pass
// is written or none is.
func (r *Repository) CreatePasses(ctx context.Context, passes ...entity.Pass) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx)

	sqlQuery :=
		`INSERT INTO passes
			(id, pass_id, category, cnic, name, designation, organization,
			area_allowed, date_of_entry, date_of_expiry, photo_url, author_id, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	for _, pass := range passes {
		_, err = tx.Exec(ctx, sqlQuery,
			pass.ID,
			pass.PassID,
			pass.Category,
			pass.CNIC,
			pass.Name,
			pass.Designation,
			pass.Organization,
			pass.AreaAllowed,
			pass.DateOfEntry,
			pass.DateOfExpiry,
			pass.PhotoURL,
			pass.AuthorID,
			pass.CreatedAt,
		)

		if err != nil {
			return mapWriteError(err)
		}
	}

	return tx.Commit(ctx)
}

func (r *Repository) PassByID(ctx context.Context, id uuid.UUID) (entity.Pass, error) {
	sqlQuery := `SELECT ` + passColumns + ` FROM passes WHERE id = $1`

	pass, err := scanPass(r.db.QueryRow(ctx, sqlQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Pass{}, entity.ErrNotFound
		}

		return entity.Pass{}, err
	}

	return pass, nil
}

func (r *Repository) PassByCNIC(ctx context.Context, cnic string) (entity.Pass, error) {
	sqlQuery := `SELECT ` + passColumns + ` FROM passes WHERE cnic = $1`

	pass, err := scanPass(r.db.QueryRow(ctx, sqlQuery, cnic))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Pass{}, entity.ErrNotFound
		}

		return entity.Pass{}, err
	}

	return pass, nil
}

func (r *Repository) PassesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Pass, error) {
	sqlQuery := `SELECT ` + passColumns + ` FROM passes WHERE id = ANY($1) ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, sqlQuery, uuidStrings(ids))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return collectPasses(rows, len(ids))
}

// PassIDsByCategory returns every stored pass_id value for the category as
// raw text. The caller filters out non-numeric legacy values, so a malformed
// row can never break allocation.
func (r *Repository) PassIDsByCategory(ctx context.Context, category entity.Category) ([]string, error) {
	sqlQuery := `SELECT pass_id FROM passes WHERE category = $1`

	rows, err := r.db.Query(ctx, sqlQuery, category)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var ids []string

	for rows.Next() {
		var id string

		err = rows.Scan(&id)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// PassKeys fetches the uniqueness triples of every persisted pass in a single
// round trip. Bulk imports seed their in-memory collision sets from this.
func (r *Repository) PassKeys(ctx context.Context) ([]entity.PassKey, error) {
	sqlQuery := `SELECT category, pass_id, cnic FROM passes`

	rows, err := r.db.Query(ctx, sqlQuery)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var keys []entity.PassKey

	for rows.Next() {
		var key entity.PassKey

		err = rows.Scan(&key.Category, &key.PassID, &key.CNIC)
		if err != nil {
			return nil, err
		}

		keys = append(keys, key)
	}

	return keys, rows.Err()
}

func (r *Repository) CNICExists(ctx context.Context, cnic string, excludeID uuid.UUID) (bool, error) {
	sqlQuery := `SELECT EXISTS (SELECT 1 FROM passes WHERE cnic = $1 AND id <> $2)`

	var exists bool

	err := r.db.QueryRow(ctx, sqlQuery, cnic, excludeID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) PassIDExists(
	ctx context.Context, category entity.Category, passID string, excludeID uuid.UUID) (bool, error) {
	sqlQuery := `SELECT EXISTS (SELECT 1 FROM passes WHERE category = $1 AND pass_id = $2 AND id <> $3)`

	var exists bool

	err := r.db.QueryRow(ctx, sqlQuery, category, passID, excludeID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) UpdatePass(ctx context.Context, pass entity.Pass) error {
	sqlQuery :=
		`UPDATE passes
		SET pass_id = $1, category = $2, cnic = $3, name = $4, designation = $5,
			organization = $6, area_allowed = $7, date_of_entry = $8, date_of_expiry = $9,
			photo_url = $10
		WHERE id = $11`

	tag, err := r.db.Exec(ctx, sqlQuery,
		pass.PassID,
		pass.Category,
		pass.CNIC,
		pass.Name,
		pass.Designation,
		pass.Organization,
		pass.AreaAllowed,
		pass.DateOfEntry,
		pass.DateOfExpiry,
		pass.PhotoURL,
		pass.ID,
	)

	if err != nil {
		return mapWriteError(err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) SetPhotoURL(ctx context.Context, id uuid.UUID, url string) error {
	sqlQuery := `UPDATE passes SET photo_url = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, sqlQuery, url, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) DeletePasses(ctx context.Context, ids []uuid.UUID) error {
	sqlQuery := `DELETE FROM passes WHERE id = ANY($1)`

	tag, err := r.db.Exec(ctx, sqlQuery, uuidStrings(ids))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) PassesListByFilter(ctx context.Context, filter entity.PassesFilter) ([]entity.Pass, int, error) {
	countStmt := applyPassesConditions(
		sq.Select("count(*)").From("passes").PlaceholderFormat(sq.Dollar), filter)

	sqlQuery, args, err := countStmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var count int

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	if count == 0 {
		return nil, 0, entity.ErrNotFound
	}

	stmt := applyPassesConditions(sq.Select(
		"id",
		"pass_id",
		"category",
		"cnic",
		"name",
		"designation",
		"organization",
		"area_allowed",
		"date_of_entry",
		"date_of_expiry",
		"photo_url",
		"author_id",
		"created_at",
	).From("passes").PlaceholderFormat(sq.Dollar), filter)

	stmt = stmt.
		OrderBy(fmt.Sprintf("%s %s", filter.SortBy, filter.OrderBy)).
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit)

	sqlQuery, args, err = stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	passes, err := collectPasses(rows, int(filter.Limit))
	if err != nil {
		return nil, 0, err
	}

	return passes, count, nil
}

func applyPassesConditions(stmt sq.SelectBuilder, filter entity.PassesFilter) sq.SelectBuilder {
	if filter.Category != "" {
		stmt = stmt.Where(sq.Eq{"category": filter.Category})
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		stmt = stmt.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"cnic": pattern},
			sq.ILike{"organization": pattern},
		})
	}

	return stmt
}

func (r *Repository) PassStats(ctx context.Context, now, expiringBefore time.Time) (entity.PassStats, error) {
	sqlQuery := `
		SELECT
			count(*),
			count(*) FILTER (WHERE category = 'cargo'),
			count(*) FILTER (WHERE category = 'landside'),
			count(*) FILTER (WHERE date_of_expiry >= $1 AND date_of_expiry <= $2),
			count(*) FILTER (WHERE photo_url = '')
		FROM passes`

	var stats entity.PassStats

	err := r.db.QueryRow(ctx, sqlQuery, now, expiringBefore).Scan(
		&stats.Total,
		&stats.Cargo,
		&stats.Landside,
		&stats.ExpiringSoon,
		&stats.WithoutPhoto,
	)

	if err != nil {
		return entity.PassStats{}, err
	}

	return stats, nil
}

func (r *Repository) PassesExpiringBetween(ctx context.Context, from, to time.Time) ([]entity.Pass, error) {
	sqlQuery := `SELECT ` + passColumns + ` FROM passes
		WHERE date_of_expiry >= $1 AND date_of_expiry <= $2
		ORDER BY date_of_expiry`

	rows, err := r.db.Query(ctx, sqlQuery, from, to)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return collectPasses(rows, 0)
}

func scanPass(row pgx.Row) (entity.Pass, error) {
	var pass entity.Pass

	err := row.Scan(
		&pass.ID,
		&pass.PassID,
		&pass.Category,
		&pass.CNIC,
		&pass.Name,
		&pass.Designation,
		&pass.Organization,
		&pass.AreaAllowed,
		&pass.DateOfEntry,
		&pass.DateOfExpiry,
		&pass.PhotoURL,
		&pass.AuthorID,
		&pass.CreatedAt,
	)

	if err != nil {
		return entity.Pass{}, err
	}

	return pass, nil
}

func collectPasses(rows pgx.Rows, sizeHint int) ([]entity.Pass, error) {
	passes := make([]entity.Pass, 0, sizeHint)

	for rows.Next() {
		pass, err := scanPass(rows)
		if err != nil {
			return nil, err
		}

		passes = append(passes, pass)
	}

	return passes, rows.Err()
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", entity.ErrAlreadyExists, pgErr.ConstraintName)
	}

	return err
}
