package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	activityDto "hotel/internal/domains/activity/model/dto"
	activityService "hotel/internal/domains/activity/service"
	addonService "hotel/internal/domains/addon/service"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	notificationModel "hotel/internal/domains/notification/model"
	notificationService "hotel/internal/domains/notification/service"
	roomService "hotel/internal/domains/room/service"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	msgBookingNotFound = "booking not found"
)

var (
	referenceSuffixPattern = regexp.MustCompile(`^[0-9a-f]{8}$`)

	errDeskOnly = failure.Forbidden("walk-in bookings and status overrides require a staff account")

	deskRoles = []string{constant.RoleSuperAdmin, constant.RoleAdmin, constant.RoleStaff}
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	ConfirmPayment(ctx context.Context, id string, req dto.ConfirmPaymentRequest) (dto.StatusResponse, error)
	Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (dto.StatusResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.StatusResponse, error)
	UpdatePaymentStatus(ctx context.Context, id string, req dto.UpdatePaymentStatusRequest) (dto.StatusResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Lookup(ctx context.Context, req dto.LookupRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
	History(ctx context.Context, id string) (activityDto.HistoryResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	allocator roomService.Allocator
	addons    addonService.Addon
	activity  activityService.Activity
	notifier  notificationService.Notifier
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	allocator roomService.Allocator,
	addons addonService.Addon,
	activity activityService.Activity,
	notifier notificationService.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		allocator: allocator,
		addons:    addons,
		activity:  activity,
		notifier:  notifier,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// transition is one requested change of a booking's status pair.
type transition struct {
	status             model.BookingStatus
	payment            model.PaymentStatus
	paymentReference   *string
	cancellationReason *string
	cancelledAt        *time.Time
	reason             string
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.DeskOnly() && !atDesk(ctx) {
		return res, errDeskOnly
	}

	checkIn, checkOut, nights, err := dto.ResolveStayWindow(req.CheckIn, req.CheckOut, timezone.Today(), s.cfg.Booking.CheckInGraceDays)
	if err != nil {
		return res, err
	}

	var catalog model.ServiceItems

	if len(req.ServiceIDs) > 0 {
		addons, resolveErr := s.addons.Resolve(ctx, req.ServiceIDs)
		if resolveErr != nil {
			return res, resolveErr // nolint:wrapcheck
		}

		for _, addon := range addons {
			catalog = append(catalog, model.ServiceItem{Name: addon.Name, Price: addon.Price})
		}
	}

	booking := req.ToModel(actor(ctx), checkIn, checkOut, nights, catalog)

	scope.SetAttributes(map[string]any{
		"booking.room_type": booking.RoomTypeSlug,
		"booking.check_in":  booking.CheckIn,
		"booking.nights":    booking.Nights,
		"booking.total":     booking.TotalAmount,
		"booking.status":    string(booking.BookingStatus),
	})

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if booking.BookingStatus.HoldsRoom() {
		booking = s.assignRoom(ctx, booking)
		scope.SetAttribute("booking.room_assigned", booking.HasRoom())
	}

	log.Info().
		Str("booking_id", booking.ID).
		Str("booking_status", string(booking.BookingStatus)).
		Str("source", string(booking.Source)).
		Msg("booking created")

	s.afterTransition(ctx, model.Booking{ID: booking.ID}, booking, constant.Empty)

	res.FromModel(s.cfg.Booking.ReferencePrefix, booking)

	return res, nil
}

func (s *serviceImpl) ConfirmPayment(ctx context.Context, id string, req dto.ConfirmPaymentRequest) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmPayment")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.BookingStatus.Terminal() {
		return res, failure.Conflictf("booking is already %s", booking.BookingStatus) // nolint:wrapcheck
	}

	next := model.BookingStatusConfirmed
	if booking.BookingStatus == model.BookingStatusCheckedIn {
		next = model.BookingStatusCheckedIn
	}

	reference := req.PaymentReference

	updated, err := s.apply(ctx, booking, transition{
		status:           next,
		payment:          model.PaymentStatusPaid,
		paymentReference: &reference,
		reason:           "payment confirmed",
	})
	if err != nil {
		return res, err
	}

	res.FromModel(s.cfg.Booking.ReferencePrefix, updated)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if !booking.BookingStatus.CanTransitionTo(model.BookingStatusCancelled) {
		return res, failure.Conflictf("cannot cancel a booking that is %s", booking.BookingStatus) // nolint:wrapcheck
	}

	now := timezone.Now()
	t := transition{
		status:      model.BookingStatusCancelled,
		payment:     model.PaymentStatusFailed,
		cancelledAt: &now,
		reason:      req.Reason,
	}

	if req.Reason != constant.Empty {
		reason := req.Reason
		t.cancellationReason = &reason
	}

	updated, err := s.apply(ctx, booking, t)
	if err != nil {
		return res, err
	}

	res.FromModel(s.cfg.Booking.ReferencePrefix, updated)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	next := model.BookingStatus(req.Status)
	if !next.Valid() {
		return res, failure.BadRequestFromString("invalid booking status") // nolint:wrapcheck
	}

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.BookingStatus == next {
		res.FromModel(s.cfg.Booking.ReferencePrefix, booking)

		return res, nil
	}

	t := transition{status: next, payment: booking.PaymentStatus}
	if next == model.BookingStatusCancelled {
		now := timezone.Now()
		t.cancelledAt = &now
	}

	updated, err := s.apply(ctx, booking, t)
	if err != nil {
		return res, err
	}

	res.FromModel(s.cfg.Booking.ReferencePrefix, updated)

	return res, nil
}

func (s *serviceImpl) UpdatePaymentStatus(ctx context.Context, id string, req dto.UpdatePaymentStatusRequest) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePaymentStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	payment := model.PaymentStatus(req.PaymentStatus)
	if !payment.Valid() {
		return res, failure.BadRequestFromString("invalid payment status") // nolint:wrapcheck
	}

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	// In-stay and closed bookings only get their payment sub-state written.
	next := booking.BookingStatus
	if next == model.BookingStatusPending || next == model.BookingStatusConfirmed {
		next = model.BookingStatusPending
		if payment == model.PaymentStatusPaid {
			next = model.BookingStatusConfirmed
		}
	}

	t := transition{status: next, payment: payment, reason: "payment status updated"}
	if req.PaymentReference != constant.Empty {
		reference := req.PaymentReference
		t.paymentReference = &reference
	}

	updated, err := s.apply(ctx, booking, t)
	if err != nil {
		return res, err
	}

	res.FromModel(s.cfg.Booking.ReferencePrefix, updated)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(s.cfg.Booking.ReferencePrefix, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Lookup(ctx context.Context, req dto.LookupRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Lookup")
	defer scope.End()
	defer scope.TraceIfError(&err)

	suffix := dto.ReferenceSuffix(s.cfg.Booking.ReferencePrefix, req.Reference)
	if !referenceSuffixPattern.MatchString(suffix) {
		return res, failure.BadRequestFromString("invalid booking reference") // nolint:wrapcheck
	}

	booking, err := s.repo.FindByReference(ctx, suffix, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up booking")

		return res, fmt.Errorf("failed to look up booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	res.FromModel(s.cfg.Booking.ReferencePrefix, booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(s.cfg.Booking.ReferencePrefix, models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(&err)

	groups, err := s.repo.CountByStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings by status")

		return res, fmt.Errorf("failed to count bookings by status: %w", err)
	}

	expiring, err := s.repo.Count(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  dto.ExpiringFilters(timezone.Today()),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count expiring bookings")

		return res, fmt.Errorf("failed to count expiring bookings: %w", err)
	}

	res.FromModel(model.Stats{ByStatus: groups, ExpiringToday: expiring})

	return res, nil
}

func (s *serviceImpl) History(ctx context.Context, id string) (res activityDto.HistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer scope.TraceIfError(&err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	return s.activity.History(ctx, id) // nolint:wrapcheck
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	return booking, nil
}

// apply is the single place a booking changes status. The write is
// conditional on the status read by the caller. Leaving a room-holding status
// releases the room; entering one assigns a room when none is held yet.
func (s *serviceImpl) apply(ctx context.Context, current model.Booking, t transition) (model.Booking, error) {
	if t.status != current.BookingStatus && !current.BookingStatus.CanTransitionTo(t.status) {
		return current, failure.Conflictf( // nolint:wrapcheck
			"cannot move booking from %s to %s", current.BookingStatus, t.status,
		)
	}

	user := actor(ctx)
	updated := current
	updated.BookingStatus = t.status
	updated.PaymentStatus = t.payment
	updated.Touch(user)

	fields := map[string]any{
		model.FieldBookingStatus:  string(t.status),
		model.FieldPaymentStatus:  string(t.payment),
		constant.FieldModifiedAt: updated.ModifiedAt,
		constant.FieldModifiedBy: user,
	}

	if t.paymentReference != nil {
		fields[model.FieldPaymentReference] = *t.paymentReference
		updated.PaymentReference = t.paymentReference
	}

	if t.cancellationReason != nil {
		fields[model.FieldCancelReason] = *t.cancellationReason
		updated.CancellationReason = t.cancellationReason
	}

	if t.cancelledAt != nil {
		fields[model.FieldCancelledAt] = *t.cancelledAt
		updated.CancelledAt = t.cancelledAt
	}

	// Only the step out of a room-holding status frees the room. Later writes
	// on a checked out booking leave whoever holds that room now untouched.
	release := current.BookingStatus.HoldsRoom() && !t.status.HoldsRoom() &&
		current.HasRoom() && current.RoomID != nil

	// A checked out booking keeps its room number on record.
	if release && t.status != model.BookingStatusCheckedOut {
		fields[model.FieldRoomID] = nil
		fields[model.FieldRoomNumber] = nil
		updated.RoomID = nil
		updated.RoomNumber = nil
	}

	affected, err := s.repo.UpdateCount(ctx, fields, s.whileInStatus(current))
	if err != nil {
		log.Error().Err(err).Str("booking_id", current.ID).Msg("failed to update booking status")

		return current, fmt.Errorf("failed to update booking status: %w", err)
	}

	if affected == 0 {
		return current, failure.Conflict("booking was modified concurrently") // nolint:wrapcheck
	}

	if release {
		s.releaseRoom(ctx, *current.RoomID)
	}

	if t.status.HoldsRoom() && !updated.HasRoom() {
		updated = s.assignRoom(ctx, updated)
	}

	log.Info().
		Str("booking_id", current.ID).
		Str("from", string(current.BookingStatus)).
		Str("to", string(updated.BookingStatus)).
		Str("payment_status", string(updated.PaymentStatus)).
		Msg("booking status changed")

	s.afterTransition(ctx, current, updated, t.reason)

	return updated, nil
}

// assignRoom claims a room for the booking. Running out of rooms leaves the
// booking unassigned and is not an error.
func (s *serviceImpl) assignRoom(ctx context.Context, booking model.Booking) model.Booking {
	room, err := s.allocator.Assign(ctx, booking.RoomTypeSlug)
	if err != nil {
		log.Warn().Err(err).Str("booking_id", booking.ID).Msg("room assignment failed")

		return booking
	}

	if room == nil {
		log.Warn().
			Str("booking_id", booking.ID).
			Str("room_type", booking.RoomTypeSlug).
			Msg("booking left unassigned, no room available")

		return booking
	}

	roomID, roomNumber := room.ID, room.RoomNumber

	affected, err := s.repo.UpdateCount(ctx, map[string]any{
		model.FieldRoomID:        roomID,
		model.FieldRoomNumber:    roomNumber,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor(ctx),
	}, s.whileInStatus(booking))
	if err != nil || affected == 0 {
		log.Warn().Err(err).Str("booking_id", booking.ID).Str("room_number", roomNumber).Msg("failed to attach room, releasing it")
		s.releaseRoom(ctx, roomID)

		return booking
	}

	booking.RoomID = &roomID
	booking.RoomNumber = &roomNumber

	log.Info().Str("booking_id", booking.ID).Str("room_number", roomNumber).Msg("room assigned")

	return booking
}

func (s *serviceImpl) releaseRoom(ctx context.Context, roomID string) {
	if err := s.allocator.Release(ctx, roomID); err != nil {
		log.Warn().Err(err).Str("room_id", roomID).Msg("failed to release room")
	}
}

func (s *serviceImpl) whileInStatus(booking model.Booking) gDto.FilterGroup {
	return shared.FilterByIDAndStatus(booking.ID, model.FieldID, model.FieldBookingStatus, string(booking.BookingStatus), model.TableName)
}

// afterTransition records history, notifies the guest and drops cached reads.
// None of it can fail the transition.
func (s *serviceImpl) afterTransition(ctx context.Context, previous, updated model.Booking, reason string) {
	record := activityDto.RecordRequest{
		BookingID:         updated.ID,
		FromBookingStatus: string(previous.BookingStatus),
		ToBookingStatus:   string(updated.BookingStatus),
		FromPaymentStatus: string(previous.PaymentStatus),
		ToPaymentStatus:   string(updated.PaymentStatus),
		Reason:            reason,
		Actor:             actor(ctx),
	}

	if updated.HasRoom() {
		record.RoomNumber = *updated.RoomNumber
	}

	var notification *notificationModel.BookingNotification

	switch {
	case updated.BookingStatus == model.BookingStatusConfirmed && previous.BookingStatus != model.BookingStatusConfirmed:
		notification = s.notification(notificationModel.TypeBookingConfirmed, updated, reason)
	case updated.BookingStatus == model.BookingStatusCancelled && previous.BookingStatus != model.BookingStatusCancelled:
		notification = s.notification(notificationModel.TypeBookingCancelled, updated, reason)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.activity.Record(c, record)

		if notification != nil {
			s.notifier.Publish(c, *notification)
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, updated.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) notification(kind notificationModel.Type, booking model.Booking, reason string) *notificationModel.BookingNotification {
	n := &notificationModel.BookingNotification{
		Type:         kind,
		BookingID:    booking.ID,
		Reference:    dto.Reference(s.cfg.Booking.ReferencePrefix, booking.ID),
		GuestName:    booking.GuestName(),
		GuestEmail:   booking.GuestEmail,
		RoomTypeName: booking.RoomTypeName,
		CheckIn:      booking.CheckIn.Format(constant.DateOnlyFormat),
		CheckOut:     booking.CheckOut.Format(constant.DateOnlyFormat),
		Nights:       booking.Nights,
		TotalAmount:  booking.TotalAmount,
		CreatedAt:    timezone.Format(timezone.Now(), constant.DateFormat),
	}

	if kind == notificationModel.TypeBookingCancelled {
		n.Reason = reason
	}

	if booking.HasRoom() {
		n.RoomNumber = *booking.RoomNumber
	}

	return n
}

func actor(ctx context.Context) string {
	if user, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && user != constant.Empty {
		return user
	}

	return constant.SystemUser
}

// atDesk reports whether the caller is front desk staff or an internal
// service holding the API key.
func atDesk(ctx context.Context) bool {
	if user, _ := ctx.Value(constant.ContextKeyUserID).(string); user == constant.ServiceUser {
		return true
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return slices.Contains(deskRoles, role)
}
