package model

import "link/shared/statement"

const (
	EntityName = "company"

	FieldID         = "companyId"
	FieldName       = "companyName"
	FieldWebsite    = "companyWebsite"
	FieldPasswordID = "passwordId"
)

type Company struct {
	ID         int64   `db:"companyid"`
	Name       string  `db:"companyname"`
	Website    *string `db:"companywebsite"`
	PasswordID int64   `db:"passwordid"`
}

// Columns returns the insert columns and values of c.
func (c Company) Columns() ([]string, []any) {
	return []string{FieldName, FieldWebsite, FieldPasswordID},
		[]any{c.Name, statement.Nullable(c.Website), c.PasswordID}
}

// Patch holds the columns an update may change. Nil fields are left alone.
type Patch struct {
	Name       *string
	Website    *string
	PasswordID *int64
}

func (p Patch) Candidates() ([]string, []any) {
	return []string{FieldName, FieldWebsite, FieldPasswordID},
		[]any{statement.Optional(p.Name), statement.Optional(p.Website), statement.Optional(p.PasswordID)}
}
