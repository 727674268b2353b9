package model

import (
	"time"

	"link/shared/statement"
)

const (
	EntityName = "credential"

	FieldID             = "passwordId"
	FieldUsername       = "username"
	FieldHash           = "hash"
	FieldSalt           = "salt"
	FieldAPIKey         = "apiKey"
	FieldExpirationDate = "expirationDate"
)

// Credential is the non-secret part of a password row. Hash, salt and API
// key are never selected.
type Credential struct {
	ID             int64      `db:"passwordid"`
	Username       *string    `db:"username"`
	ExpirationDate *time.Time `db:"expirationdate"`
}

// NewCredential is a password row as supplied by the caller. Hash and salt
// arrive already derived.
type NewCredential struct {
	Username       *string
	Hash           string
	Salt           string
	APIKey         *string
	ExpirationDate *time.Time
}

func (c NewCredential) Columns() ([]string, []any) {
	return []string{FieldUsername, FieldHash, FieldSalt, FieldAPIKey, FieldExpirationDate},
		[]any{
			statement.Nullable(c.Username),
			c.Hash,
			c.Salt,
			statement.Nullable(c.APIKey),
			statement.Nullable(c.ExpirationDate),
		}
}

type Patch struct {
	Username       *string
	Hash           *string
	Salt           *string
	APIKey         *string
	ExpirationDate *time.Time
}

func (p Patch) Candidates() ([]string, []any) {
	return []string{FieldUsername, FieldHash, FieldSalt, FieldAPIKey, FieldExpirationDate},
		[]any{
			statement.Optional(p.Username),
			statement.Optional(p.Hash),
			statement.Optional(p.Salt),
			statement.Optional(p.APIKey),
			statement.Optional(p.ExpirationDate),
		}
}
