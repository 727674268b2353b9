package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"link/infras/otel"
	"link/internal/domains/room/model"
	"link/internal/domains/room/model/dto"
	"link/internal/domains/room/service"
	"link/shared"
	"link/shared/constant"
	gDto "link/shared/dto"
	"link/shared/validator"
	"link/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
		routerGroup.Get("/{id}/access-points", handler.GetAccessPoints)
		routerGroup.Post("/{id}/access-points", handler.AddAccessPoint)
		routerGroup.Delete("/{id}/access-points/{accessPointId}", handler.RemoveAccessPoint)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a new room in one of the caller's buildings.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room"
// @Success 201 {object} gDto.Result[gDto.ID] "Room created successfully"
// @Failure 400 {object} gDto.Result[any]
// @Failure 500 {object} gDto.Result[any]
// @Router /v1/rooms [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	var req dto.CreateRoomRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	credential, _ := ctx.Value(constant.ContextKeyCredentialID).(int64)
	scope.SetAttribute("credential_id", credential)
	scope.AddEvent("Room created successfully")

	response.WithID(w, "Room created successfully", id)
}

// GetRooms retrieves all room items based on query parameters.
// @Summary Get all rooms
// @Description Retrieve all rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_name query string false "Filter by name"
// @Param building_id query int false "Filter by building"
// @Success 200 {object} gDto.Result[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} gDto.Result[any]
// @Failure 500 {object} gDto.Result[any]
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if name := r.URL.Query().Get("room_name"); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
		})
	}

	if buildingID := shared.ConvertStringToInt64(r.URL.Query().Get("building_id")); buildingID != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBuildingID,
			Operator: gDto.FilterOperatorEq,
			Value:    *buildingID,
		})
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithData(w, http.StatusOK, "Rooms retrieved successfully", &rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} gDto.Result[dto.RoomResponse] "Room details"
// @Failure 400 {object} gDto.Result[any]
// @Failure 404 {object} gDto.Result[any]
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithData(w, http.StatusOK, "Room retrieved successfully", &room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Tags Room
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} gDto.Result[any] "Room updated successfully"
// @Failure 400 {object} gDto.Result[any]
// @Router /v1/rooms/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateRoomRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room updated successfully")

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} gDto.Result[any] "Room deleted successfully"
// @Failure 500 {object} gDto.Result[any]
// @Router /v1/rooms/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deleted successfully")

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}

// GetAccessPoints lists the NFC readers mounted in a room.
// @Summary Get a room's access points
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} gDto.Result[[]dto.AccessPointResponse]
// @Failure 404 {object} gDto.Result[any]
// @Router /v1/rooms/{id}/access-points [get]
func (handler *Handler) GetAccessPoints(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccessPoints")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	accessPoints, err := handler.service.GetAccessPoints(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get access points")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Access points retrieved successfully", &accessPoints)
}

// AddAccessPoint registers a new reader in the room.
// @Summary Add an access point
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Success 201 {object} gDto.Result[gDto.ID]
// @Failure 404 {object} gDto.Result[any]
// @Router /v1/rooms/{id}/access-points [post]
func (handler *Handler) AddAccessPoint(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddAccessPoint")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	accessPointID, err := handler.service.AddAccessPoint(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add access point")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Access point added successfully")

	response.WithID(w, "Access point added successfully", accessPointID)
}

// @Summary Remove an access point
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Param accessPointId path int true "Access point ID"
// @Success 200 {object} gDto.Result[any]
// @Failure 404 {object} gDto.Result[any]
// @Router /v1/rooms/{id}/access-points/{accessPointId} [delete]
func (handler *Handler) RemoveAccessPoint(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveAccessPoint")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	accessPointID, err := shared.URLParamID(r, constant.RequestParamAccessPointID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.RemoveAccessPoint(ctx, id, accessPointID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove access point")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Access point removed successfully")

	response.WithMessage(w, http.StatusOK, "Access point removed successfully")
}
