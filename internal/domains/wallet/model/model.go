package model

import "link/shared/statement"

const (
	EntityName = "wallet"

	FieldID       = "linkWalletId"
	FieldMaxLimit = "maxLimit"
	FieldSpent    = "spent"
)

type Wallet struct {
	ID       int64   `db:"linkwalletid"`
	MaxLimit float64 `db:"maxlimit"`
	Spent    float64 `db:"spent"`
}

func (w Wallet) Columns() ([]string, []any) {
	return []string{FieldMaxLimit, FieldSpent}, []any{w.MaxLimit, w.Spent}
}

type Patch struct {
	MaxLimit *float64
	Spent    *float64
}

func (p Patch) Candidates() ([]string, []any) {
	return []string{FieldMaxLimit, FieldSpent},
		[]any{statement.Optional(p.MaxLimit), statement.Optional(p.Spent)}
}
