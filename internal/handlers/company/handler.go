package company

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"link/infras/otel"
	"link/internal/domains/company/model"
	"link/internal/domains/company/model/dto"
	"link/internal/domains/company/service"
	"link/shared"
	"link/shared/constant"
	gDto "link/shared/dto"
	"link/shared/validator"
	"link/transport/http/response"
)

type Handler struct {
	service service.Company
	otel    otel.Otel
}

func New(service service.Company, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/companies", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCompany)
		routerGroup.Get("/", handler.GetCompanies)
		routerGroup.Get("/me", handler.GetMyCompany)
		routerGroup.Get("/{id}", handler.GetCompanyByID)
		routerGroup.Patch("/{id}", handler.UpdateCompany)
		routerGroup.Delete("/{id}", handler.DeleteCompany)
	})
}

// CreateCompany registers a company for an existing credential.
// @Summary Create a company
// @Tags Company
// @Accept json
// @Produce json
// @Param request body dto.CreateCompanyRequest true "Company"
// @Success 201 {object} gDto.Result[gDto.ID]
// @Failure 400 {object} gDto.Result[any]
// @Router /v1/companies [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCompany")
	defer scope.End()

	var req dto.CreateCompanyRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create company")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company created successfully")

	response.WithID(w, "Company created successfully", id)
}

// GetCompanies lists the companies visible to the caller.
// @Summary Get all companies
// @Tags Company
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param company_name query string false "Filter by name"
// @Success 200 {object} gDto.Result[dto.GetCompaniesResponse]
// @Router /v1/companies [get]
func (handler *Handler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanies")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name := r.URL.Query().Get("company_name"); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
		})
	}

	companies, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get companies")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Companies retrieved successfully", &companies)
}

// GetMyCompany returns the company bound to the calling credential.
// @Summary Get the caller's company
// @Tags Company
// @Produce json
// @Success 200 {object} gDto.Result[dto.CompanyResponse]
// @Failure 404 {object} gDto.Result[any]
// @Router /v1/companies/me [get]
func (handler *Handler) GetMyCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyCompany")
	defer scope.End()

	company, err := handler.service.Mine(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own company")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Company retrieved successfully", &company)
}

// GetCompanyByID returns one visible company.
// @Summary Get a company by ID
// @Tags Company
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} gDto.Result[dto.CompanyResponse]
// @Failure 404 {object} gDto.Result[any]
// @Router /v1/companies/{id} [get]
func (handler *Handler) GetCompanyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanyByID")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	company, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get company by ID")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Company retrieved successfully", &company)
}

// UpdateCompany patches the supplied fields.
// @Summary Update a company
// @Tags Company
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param request body dto.UpdateCompanyRequest true "Fields to change"
// @Success 200 {object} gDto.Result[any]
// @Failure 400 {object} gDto.Result[any]
// @Router /v1/companies/{id} [patch]
func (handler *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCompany")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateCompanyRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update company")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company updated successfully")

	response.WithMessage(w, http.StatusOK, "Company updated successfully")
}

// DeleteCompany removes a company.
// @Summary Delete a company
// @Tags Company
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} gDto.Result[any]
// @Failure 500 {object} gDto.Result[any]
// @Router /v1/companies/{id} [delete]
func (handler *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCompany")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete company")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company deleted successfully")

	response.WithMessage(w, http.StatusOK, "Company deleted successfully")
}
