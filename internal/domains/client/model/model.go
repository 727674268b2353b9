package model

import "link/shared/statement"

const (
	EntityName = "client"

	FieldID         = "clientId"
	FieldMacAddress = "macAddress"
)

type Client struct {
	ID         int64  `db:"clientid"`
	MacAddress string `db:"macaddress"`
}

func (c Client) Columns() ([]string, []any) {
	return []string{FieldMacAddress}, []any{c.MacAddress}
}

type Patch struct {
	MacAddress *string
}

func (p Patch) Candidates() ([]string, []any) {
	return []string{FieldMacAddress}, []any{statement.Optional(p.MacAddress)}
}
