package model

import "link/shared/statement"

const (
	EntityName = "tempwifiaccess"

	FieldID           = "tempWifiAccessId"
	FieldWifiParamsID = "wifiParamsId"
)

type TempWifiAccess struct {
	ID           int64 `db:"tempwifiaccessid"`
	WifiParamsID int64 `db:"wifiparamsid"`
}

func (t TempWifiAccess) Columns() ([]string, []any) {
	return []string{FieldWifiParamsID}, []any{t.WifiParamsID}
}

type Patch struct {
	WifiParamsID *int64
}

func (p Patch) Candidates() ([]string, []any) {
	return []string{FieldWifiParamsID}, []any{statement.Optional(p.WifiParamsID)}
}
