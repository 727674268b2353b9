package model

import "link/shared/statement"

const (
	EntityName = "employee"

	FieldID         = "employeeId"
	FieldFirstName  = "firstName"
	FieldSurname    = "surname"
	FieldTitle      = "title"
	FieldCellphone  = "cellphone"
	FieldEmail      = "email"
	FieldCompanyID  = "companyId"
	FieldBuildingID = "buildingId"
	FieldPasswordID = "passwordId"
)

type Employee struct {
	ID         int64   `db:"employeeid"`
	FirstName  string  `db:"firstname"`
	Surname    string  `db:"surname"`
	Title      *string `db:"title"`
	Cellphone  *string `db:"cellphone"`
	Email      *string `db:"email"`
	CompanyID  int64   `db:"companyid"`
	BuildingID int64   `db:"buildingid"`
	PasswordID int64   `db:"passwordid"`
}

func (e Employee) Columns() ([]string, []any) {
	return []string{FieldFirstName, FieldSurname, FieldTitle, FieldCellphone, FieldEmail, FieldCompanyID, FieldBuildingID, FieldPasswordID},
		[]any{
			e.FirstName,
			e.Surname,
			statement.Nullable(e.Title),
			statement.Nullable(e.Cellphone),
			statement.Nullable(e.Email),
			e.CompanyID,
			e.BuildingID,
			e.PasswordID,
		}
}

// Patch holds the columns an update may change. Moving an employee to
// another building is a Patch on BuildingID; the company stays fixed.
type Patch struct {
	FirstName  *string
	Surname    *string
	Title      *string
	Cellphone  *string
	Email      *string
	BuildingID *int64
}

func (p Patch) Candidates() ([]string, []any) {
	return []string{FieldFirstName, FieldSurname, FieldTitle, FieldCellphone, FieldEmail, FieldBuildingID},
		[]any{
			statement.Optional(p.FirstName),
			statement.Optional(p.Surname),
			statement.Optional(p.Title),
			statement.Optional(p.Cellphone),
			statement.Optional(p.Email),
			statement.Optional(p.BuildingID),
		}
}
