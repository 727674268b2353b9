package credential

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"link/infras/otel"
	"link/internal/domains/credential/model/dto"
	"link/internal/domains/credential/service"
	"link/shared"
	"link/shared/constant"
	"link/shared/validator"
	"link/transport/http/response"
)

type Handler struct {
	service service.Credential
	otel    otel.Otel
}

func New(service service.Credential, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/credentials", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCredential)
		routerGroup.Get("/{id}", handler.GetCredentialByID)
		routerGroup.Patch("/{id}", handler.UpdateCredential)
		routerGroup.Delete("/{id}", handler.DeleteCredential)
	})
}

// CreateCredential stores a password row whose hash and salt the caller
// already derived. The row can then be bound to a company or an employee.
// @Summary Create a credential
// @Tags Credential
// @Accept json
// @Produce json
// @Param request body dto.CreateCredentialRequest true "Credential"
// @Success 201 {object} gDto.Result[gDto.ID]
// @Failure 400 {object} gDto.Result[any]
// @Router /v1/credentials [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateCredential(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCredential")
	defer scope.End()

	var req dto.CreateCredentialRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create credential")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Credential created successfully")

	response.WithID(w, "Credential created successfully", id)
}

// @Summary Get a credential by ID
// @Tags Credential
// @Produce json
// @Param id path int true "Credential ID"
// @Success 200 {object} gDto.Result[dto.CredentialResponse]
// @Failure 404 {object} gDto.Result[any]
// @Router /v1/credentials/{id} [get]
func (handler *Handler) GetCredentialByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCredentialByID")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	credential, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get credential by ID")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Credential retrieved successfully", &credential)
}

// @Summary Update a credential
// @Tags Credential
// @Accept json
// @Produce json
// @Param id path int true "Credential ID"
// @Param request body dto.UpdateCredentialRequest true "Fields to change"
// @Success 200 {object} gDto.Result[any]
// @Failure 400 {object} gDto.Result[any]
// @Router /v1/credentials/{id} [patch]
func (handler *Handler) UpdateCredential(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCredential")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateCredentialRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update credential")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Credential updated successfully")
}

// @Summary Delete a credential
// @Tags Credential
// @Produce json
// @Param id path int true "Credential ID"
// @Success 200 {object} gDto.Result[any]
// @Failure 500 {object} gDto.Result[any]
// @Router /v1/credentials/{id} [delete]
func (handler *Handler) DeleteCredential(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCredential")
	defer scope.End()

	id, err := shared.URLParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete credential")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Credential deleted successfully")
}
