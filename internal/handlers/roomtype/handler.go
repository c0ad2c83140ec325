package roomtype

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/roomtype/model"
	"hotel/internal/domains/roomtype/model/dto"
	"hotel/internal/domains/roomtype/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamSlug = "slug"

var sortableColumns = []string{
	model.FieldName,
	model.FieldPricePerNight,
	model.FieldMaxGuests,
	constant.FieldCreatedAt,
}

type Handler struct {
	service service.RoomType
	otel    otel.Otel
}

func New(service service.RoomType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomType)
		routerGroup.Get("/", handler.GetRoomTypes)
		routerGroup.Get("/slug/{slug}", handler.GetRoomTypeBySlug)
		routerGroup.Get("/{id}", handler.GetRoomType)
		routerGroup.Patch("/{id}", handler.UpdateRoomType)
		routerGroup.Delete("/{id}", handler.DeleteRoomType)
		routerGroup.Post("/{id}/images", handler.UploadImage)
		routerGroup.Delete("/{id}/images", handler.DeleteImage)
	})
}

// CreateRoomType adds a sellable room type.
// @Summary Create a room type
// @Description The slug is derived from the name.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomTypeRequest true "Create Room Type Request"
// @Success 201 {object} response.Data[dto.RoomTypeResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/room-types [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	req := dto.CreateRoomTypeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	roomType, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, roomType)
}

// GetRoomTypes lists room types.
// @Summary List room types
// @Tags RoomType
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param active query bool false "Defaults to true"
// @Param guests query int false "Minimum guest capacity"
// @Param search query string false "Name"
// @Success 200 {object} response.Data[dto.GetRoomTypesResponse]
// @Failure 400 {object} response.Error
// @Router /v1/room-types [get]
func (handler *Handler) GetRoomTypes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)
	queryParams.RestrictSort(model.TableName, sortableColumns...)

	filter := dto.ListFilter{}

	if err := filter.FromRequest(request); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	roomTypes, err := handler.service.GetAll(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, roomTypes)
}

// GetRoomType retrieves a room type by its ID.
// @Summary Get a room type
// @Tags RoomType
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} response.Data[dto.RoomTypeResponse]
// @Failure 404 {object} response.Error
// @Router /v1/room-types/{id} [get]
func (handler *Handler) GetRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomType")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	roomType, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, roomType)
}

// GetRoomTypeBySlug retrieves a room type by its slug.
// @Summary Get a room type by slug
// @Tags RoomType
// @Produce json
// @Param slug path string true "Room type slug"
// @Success 200 {object} response.Data[dto.RoomTypeResponse]
// @Failure 404 {object} response.Error
// @Router /v1/room-types/slug/{slug} [get]
func (handler *Handler) GetRoomTypeBySlug(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypeBySlug")
	defer scope.End()

	slug := chi.URLParam(request, requestParamSlug)

	roomType, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, roomType)
}

// UpdateRoomType edits a room type.
// @Summary Update a room type
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Param request body dto.UpdateRoomTypeRequest true "Update Room Type Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/room-types/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomType")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateRoomTypeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_type_id", id).Msg("failed to update room type")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Room type updated successfully")
}

// DeleteRoomType removes a room type that has no active rooms.
// @Summary Delete a room type
// @Tags RoomType
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/room-types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomType")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_type_id", id).Msg("failed to delete room type")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Room type deleted successfully")
}

// UploadImage attaches a photo to a room type.
// @Summary Upload a room type image
// @Tags RoomType
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room type ID"
// @Param file formData file true "png, jpg or webp up to 5 MB"
// @Success 201 {object} response.Data[dto.UploadImageResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/room-types/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)

		response.WithError(writer, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	_, fileHeader, err := request.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, failure.BadRequestFromString("file is required"))

		return
	}

	req := dto.UploadImageRequest{Image: fileHeader}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_type_id", id).Msg("failed to upload room type image")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// DeleteImage detaches a photo from a room type and removes it from storage.
// @Summary Delete a room type image
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path string true "Room type ID"
// @Param request body dto.DeleteImageRequest true "Delete Image Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/room-types/{id}/images [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.DeleteImageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.DeleteImage(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_type_id", id).Msg("failed to delete room type image")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Image deleted successfully")
}
