package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/lost-and-found/internal/model"
)

// ItemRepo persists lost-and-found listings in the 'items' table. The
// owner_id column is written exactly once, at creation; Update deliberately
// leaves it out of the SET list so ownership can never drift.
type ItemRepo struct{ DB *sql.DB }

func NewItemRepo(db *sql.DB) *ItemRepo { return &ItemRepo{DB: db} }

const itemColumns = "id,title,description,category,location,status,owner_id,created_at,updated_at"

// Create inserts a listing and fills in its generated ID.
func (r *ItemRepo) Create(ctx context.Context, it *model.Item) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO items (title, description, category, location, status, owner_id) VALUES (?,?,?,?,?,?)",
		it.Title, it.Description, it.Category, it.Location, it.Status, it.OwnerID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	it.ID = uint64(id)
	return nil
}

// GetByID fetches a listing by id; absent rows come back as sql.ErrNoRows.
func (r *ItemRepo) GetByID(ctx context.Context, id uint64) (model.Item, error) {
	var it model.Item
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE id=? LIMIT 1", id).
		Scan(&it.ID, &it.Title, &it.Description, &it.Category, &it.Location,
			&it.Status, &it.OwnerID, &it.CreatedAt, &it.UpdatedAt)
	return it, err
}

// GetOwnerID returns the recorded owner of a listing. This is the minimal
// read the ownership check needs before a delete.
func (r *ItemRepo) GetOwnerID(ctx context.Context, id uint64) (uint64, error) {
	var ownerID uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT owner_id FROM items WHERE id=? LIMIT 1", id).Scan(&ownerID)
	return ownerID, err
}

// Update rewrites the mutable columns of a listing. owner_id is not part of
// the statement. sql.ErrNoRows is returned when the id does not exist.
func (r *ItemRepo) Update(ctx context.Context, it *model.Item) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE items SET title=?, description=?, category=?, location=?, status=?, updated_at=NOW() WHERE id=?",
		it.Title, it.Description, it.Category, it.Location, it.Status, it.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a listing by id. sql.ErrNoRows is returned when nothing
// was deleted.
func (r *ItemRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM items WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListByOwner returns all listings created by the given user, newest first.
func (r *ItemRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Item, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE owner_id=? ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

// ItemSearchQuery defines filters & pagination for the public browse API.
type ItemSearchQuery struct {
	Category string
	Status   string
	Location string
	Text     string // matches title and description
	Page     int
	PageSize int
}

// Search returns the matching listings plus the total count for pagination.
// Filters combine with AND; text search is a case-insensitive LIKE over
// title and description.
func (r *ItemRepo) Search(ctx context.Context, q ItemSearchQuery) ([]model.Item, int64, error) {
	where := []string{}
	args := []any{}

	if q.Category != "" {
		where = append(where, "LOWER(category) = ?")
		args = append(args, strings.ToLower(q.Category))
	}
	if q.Status != "" {
		where = append(where, "status = ?")
		args = append(args, strings.ToUpper(q.Status))
	}
	if q.Location != "" {
		where = append(where, "LOWER(location) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Location)+"%")
	}
	if q.Text != "" {
		where = append(where, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)")
		needle := "%" + strings.ToLower(q.Text) + "%"
		args = append(args, needle, needle)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM items WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}
	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize

	dataSQL := "SELECT " + itemColumns + " FROM items WHERE " + cond +
		" ORDER BY created_at DESC LIMIT ? OFFSET ?"
	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.DB.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := collectItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func collectItems(rows *sql.Rows) ([]model.Item, error) {
	out := make([]model.Item, 0)
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.Category,
			&it.Location, &it.Status, &it.OwnerID, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
