package dto

import (
	"link/internal/domains/company/model"
	"link/shared"
)

type CreateCompanyRequest struct {
	Name       string  `json:"company_name"    validate:"required,notblank,max=255"`
	Website    *string `json:"company_website" validate:"omitempty,max=255"`
	PasswordID int64   `json:"password_id"     validate:"required,gt=0"`
}

func (c *CreateCompanyRequest) ToModel() model.Company {
	return model.Company{
		Name:       c.Name,
		Website:    c.Website,
		PasswordID: c.PasswordID,
	}
}

type UpdateCompanyRequest struct {
	Name       *string `json:"company_name"    validate:"omitempty,max=255"`
	Website    *string `json:"company_website" validate:"omitempty,max=255"`
	PasswordID *int64  `json:"password_id"     validate:"omitempty,gt=0"`
}

func (u *UpdateCompanyRequest) ToPatch() model.Patch {
	return model.Patch{
		Name:       u.Name,
		Website:    u.Website,
		PasswordID: u.PasswordID,
	}
}

type CompanyResponse struct {
	ID         int64   `json:"company_id"`
	Name       string  `json:"company_name"`
	Website    *string `json:"company_website"`
	PasswordID int64   `json:"password_id"`
}

func (r *CompanyResponse) FromModel(model model.Company) {
	r.ID = model.ID
	r.Name = model.Name
	r.Website = model.Website
	r.PasswordID = model.PasswordID
}

type GetCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetCompaniesResponse) FromModels(models []model.Company, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Companies = make([]CompanyResponse, len(models))
	for i, mod := range models {
		r.Companies[i].FromModel(mod)
	}
}
