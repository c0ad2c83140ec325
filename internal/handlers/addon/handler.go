package addon

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/addon/model"
	"hotel/internal/domains/addon/model/dto"
	"hotel/internal/domains/addon/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var sortableColumns = []string{
	model.FieldName,
	model.FieldPrice,
	constant.FieldCreatedAt,
}

type Handler struct {
	service service.Addon
	otel    otel.Otel
}

func New(service service.Addon, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/addons", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAddon)
		routerGroup.Get("/", handler.GetAddons)
		routerGroup.Get("/{id}", handler.GetAddon)
		routerGroup.Patch("/{id}", handler.UpdateAddon)
		routerGroup.Delete("/{id}", handler.DeleteAddon)
	})
}

// CreateAddon creates a new add-on.
// @Summary Create an add-on
// @Tags Addon
// @Accept json
// @Produce json
// @Param request body dto.CreateAddonRequest true "Create Addon Request"
// @Success 201 {object} response.Data[dto.AddonResponse]
// @Failure 400 {object} response.Error
// @Router /v1/addons [post]
// @Security BearerAuth
func (handler *Handler) CreateAddon(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAddon")
	defer scope.End()

	req := dto.CreateAddonRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	addon, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create addon")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, addon)
}

// GetAddons lists add-ons.
// @Summary List add-ons
// @Tags Addon
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param active query bool false "Defaults to true"
// @Param search query string false "Name"
// @Success 200 {object} response.Data[dto.GetAddonsResponse]
// @Router /v1/addons [get]
func (handler *Handler) GetAddons(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAddons")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)
	queryParams.RestrictSort(model.TableName, sortableColumns...)

	filter := dto.ListFilter{}
	filter.FromRequest(request)

	addons, err := handler.service.GetAll(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get addons")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, addons)
}

// GetAddon retrieves an add-on by its ID.
// @Summary Get an add-on
// @Tags Addon
// @Produce json
// @Param id path string true "Addon ID"
// @Success 200 {object} response.Data[dto.AddonResponse]
// @Failure 404 {object} response.Error
// @Router /v1/addons/{id} [get]
func (handler *Handler) GetAddon(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAddon")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	addon, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, addon)
}

// UpdateAddon edits an add-on.
// @Summary Update an add-on
// @Tags Addon
// @Accept json
// @Produce json
// @Param id path string true "Addon ID"
// @Param request body dto.UpdateAddonRequest true "Update Addon Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/addons/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAddon(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAddon")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateAddonRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("addon_id", id).Msg("failed to update addon")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Addon updated successfully")
}

// DeleteAddon removes an add-on.
// @Summary Delete an add-on
// @Tags Addon
// @Produce json
// @Param id path string true "Addon ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/addons/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAddon(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAddon")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("addon_id", id).Msg("failed to delete addon")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Addon deleted successfully")
}
