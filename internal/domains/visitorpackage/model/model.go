package model

import (
	"time"

	"link/shared/statement"
)

const (
	EntityName = "visitorpackage"

	FieldID               = "visitorPackageId"
	FieldTempWifiAccessID = "tempWifiAccessId"
	FieldTPAID            = "tpaId"
	FieldLinkWalletID     = "linkWalletId"
	FieldEmployeeID       = "employeeId"
	FieldClientID         = "clientId"
	FieldStartTime        = "startTime"
	FieldEndTime          = "endTime"
)

// VisitorPackage bundles the wifi access, room access and wallet handed to a
// visiting client for one time window.
type VisitorPackage struct {
	ID               int64     `db:"visitorpackageid"`
	TempWifiAccessID *int64    `db:"tempwifiaccessid"`
	TPAID            *int64    `db:"tpaid"`
	LinkWalletID     *int64    `db:"linkwalletid"`
	EmployeeID       int64     `db:"employeeid"`
	ClientID         int64     `db:"clientid"`
	StartTime        time.Time `db:"starttime"`
	EndTime          time.Time `db:"endtime"`
}

func (v VisitorPackage) Columns() ([]string, []any) {
	return []string{
			FieldTempWifiAccessID, FieldTPAID, FieldLinkWalletID,
			FieldEmployeeID, FieldClientID, FieldStartTime, FieldEndTime,
		},
		[]any{
			statement.Nullable(v.TempWifiAccessID), statement.Nullable(v.TPAID), statement.Nullable(v.LinkWalletID),
			v.EmployeeID, v.ClientID, v.StartTime, v.EndTime,
		}
}

// Patch only moves the time window. The linked grants are fixed at creation.
type Patch struct {
	StartTime *time.Time
	EndTime   *time.Time
}

func (p Patch) Candidates() ([]string, []any) {
	return []string{FieldStartTime, FieldEndTime},
		[]any{statement.Optional(p.StartTime), statement.Optional(p.EndTime)}
}
