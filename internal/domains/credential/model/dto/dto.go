package dto

import (
	"time"

	"link/internal/domains/credential/model"
)

// CreateCredentialRequest carries an already derived hash and salt. Nothing
// here hashes a plain password.
type CreateCredentialRequest struct {
	Username       *string    `json:"username"        validate:"omitempty,max=255"`
	Hash           string     `json:"hash"            validate:"required,notblank"`
	Salt           string     `json:"salt"            validate:"required,notblank"`
	APIKey         *string    `json:"api_key"         validate:"omitempty,max=255"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

func (c *CreateCredentialRequest) ToModel() model.NewCredential {
	return model.NewCredential{
		Username:       c.Username,
		Hash:           c.Hash,
		Salt:           c.Salt,
		APIKey:         c.APIKey,
		ExpirationDate: c.ExpirationDate,
	}
}

type UpdateCredentialRequest struct {
	Username       *string    `json:"username"        validate:"omitempty,max=255"`
	Hash           *string    `json:"hash"            validate:"omitempty,notblank"`
	Salt           *string    `json:"salt"            validate:"omitempty,notblank"`
	APIKey         *string    `json:"api_key"         validate:"omitempty,max=255"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

func (u *UpdateCredentialRequest) ToPatch() model.Patch {
	return model.Patch{
		Username:       u.Username,
		Hash:           u.Hash,
		Salt:           u.Salt,
		APIKey:         u.APIKey,
		ExpirationDate: u.ExpirationDate,
	}
}

type CredentialResponse struct {
	ID             int64      `json:"password_id"`
	Username       *string    `json:"username"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

func (r *CredentialResponse) FromModel(model model.Credential) {
	r.ID = model.ID
	r.Username = model.Username
	r.ExpirationDate = model.ExpirationDate
}
