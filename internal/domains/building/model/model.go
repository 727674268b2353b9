package model

import "link/shared/statement"

const (
	EntityName = "building"

	FieldID           = "buildingId"
	FieldLatitude     = "latitude"
	FieldLongitude    = "longitude"
	FieldBranchName   = "branchName"
	FieldCompanyID    = "companyId"
	FieldWifiParamsID = "wifiParamsId"
)

type Building struct {
	ID           int64   `db:"buildingid"`
	Latitude     *string `db:"latitude"`
	Longitude    *string `db:"longitude"`
	BranchName   string  `db:"branchname"`
	CompanyID    int64   `db:"companyid"`
	WifiParamsID *int64  `db:"wifiparamsid"`
}

func (b Building) Columns() ([]string, []any) {
	return []string{FieldLatitude, FieldLongitude, FieldBranchName, FieldCompanyID, FieldWifiParamsID},
		[]any{statement.Nullable(b.Latitude), statement.Nullable(b.Longitude), b.BranchName, b.CompanyID, statement.Nullable(b.WifiParamsID)}
}

// Patch holds the columns an update may change. The owning company is fixed.
type Patch struct {
	Latitude   *string
	Longitude  *string
	BranchName *string
}

func (p Patch) Candidates() ([]string, []any) {
	return []string{FieldLatitude, FieldLongitude, FieldBranchName},
		[]any{statement.Optional(p.Latitude), statement.Optional(p.Longitude), statement.Optional(p.BranchName)}
}
