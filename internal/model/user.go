package model

import "time"

// User represents a registered account as stored in the `users` table.
// It is a plain data carrier: hashing lives in the auth package and
// persistence in the repository layer. The email is optional and unique
// only when present; an empty string means the account registered without
// one.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  Email        – optional unique email address ("" when absent).
//  PasswordHash – bcrypt hashed password, never the plaintext.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	Email        string    // users.email (nullable column)
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
