package building

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"link/infras/otel"
	"link/internal/domains/building/model"
	"link/internal/domains/building/model/dto"
	"link/internal/domains/building/service"
	"link/shared"
	"link/shared/constant"
	gDto "link/shared/dto"
	"link/shared/validator"
	"link/transport/http/response"
)

type Handler struct {
	service service.Building
	otel    otel.Otel
}

func New(service service.Building, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/buildings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBuilding)
		routerGroup.Get("/", handler.GetBuildings)
		routerGroup.Get("/{id}", handler.GetBuildingByID)
		routerGroup.Patch("/{id}", handler.UpdateBuilding)
		routerGroup.Delete("/{id}", handler.DeleteBuilding)
		routerGroup.Get("/{id}/wifi", handler.GetWifiParams)
		routerGroup.Patch("/{id}/wifi", handler.UpdateWifiParams)
	})
}

// CreateBuilding creates a building, with its wifi params when supplied.
// @Summary Create a building
// @Tags Building
// @Accept json
// @Produce json
// @Param request body dto.CreateBuildingRequest true "Building"
// @Success 201 {object} gDto.Result[gDto.ID]
// @Failure 400 {object} gDto.Result[any]
// @Router /v1/buildings [post]
func (handler *Handler) CreateBuilding(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBuilding")
	defer scope.End()

	var req dto.CreateBuildingRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create building")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Building created successfully")

	response.WithID(w, "Building created successfully", id)
}

// GetBuildings lists visible buildings.
// @Summary Get all buildings
// @Tags Building
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param branch_name query string false "Filter by branch name"
// @Param company_id query int false "Filter by company"
// @Success 200 {object} gDto.Result[dto.GetBuildingsResponse]
// @Router /v1/buildings [get]
func (handler *Handler) GetBuildings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBuildings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if branch := r.URL.Query().Get("branch_name"); branch != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBranchName,
			Operator: gDto.FilterOperatorLike,
			Value:    branch,
		})
	}

	if companyID := shared.ConvertStringToInt64(r.URL.Query().Get("company_id")); companyID != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCompanyID,
			Operator: gDto.FilterOperatorEq,
			Value:    *companyID,
		})
	}

	buildings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get buildings")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Buildings retrieved successfully", &buildings)
}

// @Summary Get a building by ID
// @Tags Building
// @Produce json
// @Param id path int true "Building ID"
// @Success 200 {object} gDto.Result[dto.BuildingResponse]
// @Failure 404 {object} gDto.Result[any]
// @Router /v1/buildings/{id} [get]
func (handler *Handler) GetBuildingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBuildingByID")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	building, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get building by ID")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Building retrieved successfully", &building)
}

// @Summary Update a building
// @Tags Building
// @Accept json
// @Produce json
// @Param id path int true "Building ID"
// @Param request body dto.UpdateBuildingRequest true "Fields to change"
// @Success 200 {object} gDto.Result[any]
// @Router /v1/buildings/{id} [patch]
func (handler *Handler) UpdateBuilding(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBuilding")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateBuildingRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update building")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Building updated successfully")

	response.WithMessage(w, http.StatusOK, "Building updated successfully")
}

// @Summary Delete a building
// @Tags Building
// @Produce json
// @Param id path int true "Building ID"
// @Success 200 {object} gDto.Result[any]
// @Router /v1/buildings/{id} [delete]
func (handler *Handler) DeleteBuilding(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBuilding")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete building")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Building deleted successfully")

	response.WithMessage(w, http.StatusOK, "Building deleted successfully")
}

// GetWifiParams returns the network the building hands to visitors.
// @Summary Get a building's wifi params
// @Tags Building
// @Produce json
// @Param id path int true "Building ID"
// @Success 200 {object} gDto.Result[dto.WifiParamsResponse]
// @Failure 404 {object} gDto.Result[any]
// @Router /v1/buildings/{id}/wifi [get]
func (handler *Handler) GetWifiParams(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWifiParams")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	params, err := handler.service.GetWifiParams(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get wifi params")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Wifi params retrieved successfully", &params)
}

// @Summary Update a building's wifi params
// @Tags Building
// @Accept json
// @Produce json
// @Param id path int true "Building ID"
// @Param request body dto.UpdateWifiParamsRequest true "Fields to change"
// @Success 200 {object} gDto.Result[any]
// @Router /v1/buildings/{id}/wifi [patch]
func (handler *Handler) UpdateWifiParams(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateWifiParams")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateWifiParamsRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateWifiParams(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update wifi params")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wifi params updated successfully")

	response.WithMessage(w, http.StatusOK, "Wifi params updated successfully")
}
