package dto

import (
	"link/internal/domains/employee/model"
	"link/shared"
)

type CreateEmployeeRequest struct {
	FirstName  string  `json:"first_name"  validate:"required,notblank,max=100"`
	Surname    string  `json:"surname"     validate:"required,notblank,max=100"`
	Title      *string `json:"title"       validate:"omitempty,max=100"`
	Cellphone  *string `json:"cellphone"   validate:"omitempty,e164"`
	Email      *string `json:"email"       validate:"omitempty,email,max=255"`
	CompanyID  int64   `json:"company_id"  validate:"required,gt=0"`
	BuildingID int64   `json:"building_id" validate:"required,gt=0"`
	PasswordID int64   `json:"password_id" validate:"required,gt=0"`
}

func (c *CreateEmployeeRequest) ToModel() model.Employee {
	return model.Employee{
		FirstName:  c.FirstName,
		Surname:    c.Surname,
		Title:      c.Title,
		Cellphone:  c.Cellphone,
		Email:      c.Email,
		CompanyID:  c.CompanyID,
		BuildingID: c.BuildingID,
		PasswordID: c.PasswordID,
	}
}

type UpdateEmployeeRequest struct {
	FirstName  *string `json:"first_name"  validate:"omitempty,max=100"`
	Surname    *string `json:"surname"     validate:"omitempty,max=100"`
	Title      *string `json:"title"       validate:"omitempty,max=100"`
	Cellphone  *string `json:"cellphone"   validate:"omitempty,e164"`
	Email      *string `json:"email"       validate:"omitempty,email,max=255"`
	BuildingID *int64  `json:"building_id" validate:"omitempty,gt=0"`
}

func (u *UpdateEmployeeRequest) ToPatch() model.Patch {
	return model.Patch{
		FirstName:  u.FirstName,
		Surname:    u.Surname,
		Title:      u.Title,
		Cellphone:  u.Cellphone,
		Email:      u.Email,
		BuildingID: u.BuildingID,
	}
}

type EmployeeResponse struct {
	ID         int64   `json:"employee_id"`
	FirstName  string  `json:"first_name"`
	Surname    string  `json:"surname"`
	Title      *string `json:"title"`
	Cellphone  *string `json:"cellphone"`
	Email      *string `json:"email"`
	CompanyID  int64   `json:"company_id"`
	BuildingID int64   `json:"building_id"`
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.Surname = model.Surname
	r.Title = model.Title
	r.Cellphone = model.Cellphone
	r.Email = model.Email
	r.CompanyID = model.CompanyID
	r.BuildingID = model.BuildingID
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		r.Employees[i].FromModel(mod)
	}
}
