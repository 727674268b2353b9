package model

import "link/shared/statement"

const (
	EntityName = "wifiparams"

	FieldID          = "wifiParamsId"
	FieldSSID        = "ssid"
	FieldNetworkType = "networkType"
	FieldPassword    = "password"
)

type WifiParams struct {
	ID          int64  `db:"wifiparamsid"`
	SSID        string `db:"ssid"`
	NetworkType string `db:"networktype"`
	Password    string `db:"password"`
}

func (w WifiParams) Columns() ([]string, []any) {
	return []string{FieldSSID, FieldNetworkType, FieldPassword},
		[]any{w.SSID, w.NetworkType, w.Password}
}

type Patch struct {
	SSID        *string
	NetworkType *string
	Password    *string
}

func (p Patch) Candidates() ([]string, []any) {
	return []string{FieldSSID, FieldNetworkType, FieldPassword},
		[]any{statement.Optional(p.SSID), statement.Optional(p.NetworkType), statement.Optional(p.Password)}
}
