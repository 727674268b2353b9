package visitorpackage

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"link/infras/otel"
	"link/internal/domains/visitorpackage/model"
	"link/internal/domains/visitorpackage/model/dto"
	"link/internal/domains/visitorpackage/service"
	"link/shared"
	"link/shared/constant"
	gDto "link/shared/dto"
	"link/shared/validator"
	"link/transport/http/response"
)

type Handler struct {
	service service.VisitorPackage
	otel    otel.Otel
	now     func() time.Time
}

func New(service service.VisitorPackage, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
		now:     time.Now,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/visitor-packages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateVisitorPackage)
		routerGroup.Get("/", handler.GetVisitorPackages)
		routerGroup.Get("/{id}", handler.GetVisitorPackageByID)
		routerGroup.Patch("/{id}", handler.UpdateVisitorPackage)
		routerGroup.Delete("/{id}", handler.DeleteVisitorPackage)
		routerGroup.Patch("/{id}/rooms/{roomId}", handler.MoveRoom)
		routerGroup.Post("/{id}/spend", handler.Spend)
	})
}

// CreateVisitorPackage runs the whole provisioning workflow for one visitor
// device: client, wifi access, room grants, wallet and the package itself.
// @Summary Create a visitor package
// @Tags VisitorPackage
// @Accept json
// @Produce json
// @Param request body dto.CreateVisitorPackageRequest true "Visitor package"
// @Success 201 {object} gDto.Result[dto.CreatedVisitorPackage]
// @Failure 400 {object} gDto.Result[any]
// @Router /v1/visitor-packages [post]
func (handler *Handler) CreateVisitorPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVisitorPackage")
	defer scope.End()

	var req dto.CreateVisitorPackageRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	created, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create visitor package")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("visitor_package_id", created.VisitorPackageID)
	scope.AddEvent("Visitor package created successfully")

	response.WithData(w, http.StatusCreated, "Visitor package created successfully", &created)
}

// GetVisitorPackages lists visible packages. active=true keeps only the
// packages whose window contains the current time.
// @Summary Get all visitor packages
// @Tags VisitorPackage
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param employee_id query int false "Filter by host employee"
// @Param client_id query int false "Filter by client device"
// @Param active query bool false "Only packages valid now"
// @Success 200 {object} gDto.Result[dto.GetVisitorPackagesResponse]
// @Router /v1/visitor-packages [get]
func (handler *Handler) GetVisitorPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisitorPackages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if employeeID := shared.ConvertStringToInt64(query.Get("employee_id")); employeeID != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmployeeID,
			Operator: gDto.FilterOperatorEq,
			Value:    *employeeID,
		})
	}

	if clientID := shared.ConvertStringToInt64(query.Get("client_id")); clientID != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldClientID,
			Operator: gDto.FilterOperatorEq,
			Value:    *clientID,
		})
	}

	if active := shared.ConvertStringToBool(query.Get("active")); active != nil && *active {
		now := handler.now()

		filterGroup.Filters = append(filterGroup.Filters,
			gDto.Filter{Field: model.FieldStartTime, Operator: gDto.FilterOperatorLessEq, Value: now, ArgName: "now_start"},
			gDto.Filter{Field: model.FieldEndTime, Operator: gDto.FilterOperatorGreaterEq, Value: now, ArgName: "now_end"},
		)
	}

	packages, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get visitor packages")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Visitor packages retrieved successfully", &packages)
}

// @Summary Get a visitor package by ID
// @Tags VisitorPackage
// @Produce json
// @Param id path int true "Visitor package ID"
// @Success 200 {object} gDto.Result[dto.VisitorPackageResponse]
// @Failure 404 {object} gDto.Result[any]
// @Router /v1/visitor-packages/{id} [get]
func (handler *Handler) GetVisitorPackageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVisitorPackageByID")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	pkg, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get visitor package by ID")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Visitor package retrieved successfully", &pkg)
}

// UpdateVisitorPackage moves the validity window.
// @Summary Update a visitor package
// @Tags VisitorPackage
// @Accept json
// @Produce json
// @Param id path int true "Visitor package ID"
// @Param request body dto.UpdateVisitorPackageRequest true "Fields to change"
// @Success 200 {object} gDto.Result[any]
// @Failure 400 {object} gDto.Result[any]
// @Router /v1/visitor-packages/{id} [patch]
func (handler *Handler) UpdateVisitorPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVisitorPackage")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateVisitorPackageRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update visitor package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Visitor package updated successfully")

	response.WithMessage(w, http.StatusOK, "Visitor package updated successfully")
}

// @Summary Delete a visitor package
// @Tags VisitorPackage
// @Produce json
// @Param id path int true "Visitor package ID"
// @Success 200 {object} gDto.Result[any]
// @Router /v1/visitor-packages/{id} [delete]
func (handler *Handler) DeleteVisitorPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVisitorPackage")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete visitor package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Visitor package deleted successfully")

	response.WithMessage(w, http.StatusOK, "Visitor package deleted successfully")
}

// MoveRoom swaps one granted room for another in the same building.
// @Summary Move a room grant
// @Tags VisitorPackage
// @Accept json
// @Produce json
// @Param id path int true "Visitor package ID"
// @Param roomId path int true "Currently granted room"
// @Param request body dto.MoveRoomRequest true "Target room"
// @Success 200 {object} gDto.Result[any]
// @Failure 400 {object} gDto.Result[any]
// @Router /v1/visitor-packages/{id}/rooms/{roomId} [patch]
func (handler *Handler) MoveRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MoveRoom")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	fromRoomID, err := shared.URLParamID(r, constant.RequestParamRoomID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.MoveRoomRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.MoveRoom(ctx, id, fromRoomID, req.RoomID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to move room grant")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room grant moved successfully")

	response.WithMessage(w, http.StatusOK, "Room grant moved successfully")
}

// Spend charges the package wallet.
// @Summary Spend from the wallet
// @Tags VisitorPackage
// @Accept json
// @Produce json
// @Param id path int true "Visitor package ID"
// @Param request body dto.SpendRequest true "Amount"
// @Success 200 {object} gDto.Result[dto.WalletResponse]
// @Failure 400 {object} gDto.Result[any]
// @Router /v1/visitor-packages/{id}/spend [post]
func (handler *Handler) Spend(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Spend")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.SpendRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	wallet, err := handler.service.Spend(ctx, id, req.Amount)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to spend from wallet")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Wallet charged successfully", &wallet)
}
