package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/lost-and-found/internal/model"
)

// Login field names accepted by NewUserRepo. A deployment picks exactly one
// lookup key; supporting both at once would make usernames and emails
// ambiguous at login time.
const (
	LoginByUsername = "username"
	LoginByEmail    = "email"
)

// UserRepo persists accounts in the 'users' table. It stores only the hash
// the credential hasher produced; plaintext passwords never reach this
// layer.
type UserRepo struct {
	DB         *sql.DB
	loginField string
}

// NewUserRepo builds a UserRepo. loginField selects the unique column
// FindByLogin matches against; anything other than "email" falls back to
// username lookup.
func NewUserRepo(db *sql.DB, loginField string) *UserRepo {
	if loginField != LoginByEmail {
		loginField = LoginByUsername
	}
	return &UserRepo{DB: db, loginField: loginField}
}

// Create inserts a user and returns its ID. The email is optional and is
// stored as NULL when empty so the unique index only applies to real
// addresses. A duplicate username or email comes back as ErrUserExists.
func (r *UserRepo) Create(ctx context.Context, username, email, passwordHash string) (uint64, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash) VALUES (?,?,?)",
		username, sql.NullString{String: email, Valid: email != ""}, passwordHash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUserExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// FindByLogin fetches a user by the configured login column.
func (r *UserRepo) FindByLogin(ctx context.Context, login string) (model.User, error) {
	login = strings.ToLower(strings.TrimSpace(login))
	query := "SELECT id,username,email,password_hash,created_at,updated_at FROM users WHERE username=? LIMIT 1"
	if r.loginField == LoginByEmail {
		query = "SELECT id,username,email,password_hash,created_at,updated_at FROM users WHERE email=? LIMIT 1"
	}
	return scanUser(r.DB.QueryRowContext(ctx, query, login))
}

// FindByID fetches a user by id.
func (r *UserRepo) FindByID(ctx context.Context, id uint64) (model.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT id,username,email,password_hash,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id))
}

func scanUser(row *sql.Row) (model.User, error) {
	var (
		u     model.User
		email sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Username, &email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return model.User{}, err
	}
	if email.Valid {
		u.Email = email.String
	}
	return u, nil
}
