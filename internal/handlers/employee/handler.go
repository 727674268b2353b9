package employee

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"link/infras/otel"
	"link/internal/domains/employee/model"
	"link/internal/domains/employee/model/dto"
	"link/internal/domains/employee/service"
	"link/shared"
	"link/shared/constant"
	gDto "link/shared/dto"
	"link/shared/validator"
	"link/transport/http/response"
)

type Handler struct {
	service service.Employee
	otel    otel.Otel
}

func New(service service.Employee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEmployee)
		routerGroup.Get("/", handler.GetEmployees)
		routerGroup.Get("/{id}", handler.GetEmployeeByID)
		routerGroup.Patch("/{id}", handler.UpdateEmployee)
		routerGroup.Delete("/{id}", handler.DeleteEmployee)
	})
}

// CreateEmployee adds an employee to one of the company's buildings.
// @Summary Create an employee
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} gDto.Result[gDto.ID]
// @Failure 400 {object} gDto.Result[any]
// @Router /v1/employees [post]
func (handler *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	var req dto.CreateEmployeeRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee created successfully")

	response.WithID(w, "Employee created successfully", id)
}

// GetEmployees lists visible employees.
// @Summary Get all employees
// @Tags Employee
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by first name or surname"
// @Param building_id query int false "Filter by building"
// @Success 200 {object} gDto.Result[dto.GetEmployeesResponse]
// @Router /v1/employees [get]
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name := r.URL.Query().Get("name"); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: model.FieldFirstName, Operator: gDto.FilterOperatorLike, Value: name, ArgName: "first_name"},
				gDto.Filter{Field: model.FieldSurname, Operator: gDto.FilterOperatorLike, Value: name, ArgName: "surname"},
			},
		})
	}

	if buildingID := shared.ConvertStringToInt64(r.URL.Query().Get("building_id")); buildingID != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBuildingID,
			Operator: gDto.FilterOperatorEq,
			Value:    *buildingID,
		})
	}

	employees, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Employees retrieved successfully", &employees)
}

// @Summary Get an employee by ID
// @Tags Employee
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} gDto.Result[dto.EmployeeResponse]
// @Failure 404 {object} gDto.Result[any]
// @Router /v1/employees/{id} [get]
func (handler *Handler) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeByID")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	employee, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee by ID")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Employee retrieved successfully", &employee)
}

// @Summary Update an employee
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} gDto.Result[any]
// @Router /v1/employees/{id} [patch]
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateEmployeeRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee updated successfully")

	response.WithMessage(w, http.StatusOK, "Employee updated successfully")
}

// @Summary Delete an employee
// @Tags Employee
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} gDto.Result[any]
// @Router /v1/employees/{id} [delete]
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee deleted successfully")

	response.WithMessage(w, http.StatusOK, "Employee deleted successfully")
}
