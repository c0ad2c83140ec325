package dto

import (
	"net/http"
	"strings"
	"time"

	"hotel/internal/domains/booking/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

const (
	referenceSuffixLength = 8
	defaultRoomCount      = 1

	queryParamBookingStatus = "booking_status"
	queryParamPaymentStatus = "payment_status"
	queryParamSource        = "source"
	queryParamRoomType      = "room_type"
	queryParamExpiringSoon  = "expiring_soon"
	queryParamReference     = "reference"
	queryParamEmail         = "email"
)

type ServiceItemRequest struct {
	Name  string  `json:"name"  validate:"required,max=255"`
	Price float64 `json:"price" validate:"gte=0"`
}

type CreateBookingRequest struct {
	GuestFirstName   string               `json:"guest_first_name"  validate:"required,max=100"`
	GuestLastName    string               `json:"guest_last_name"   validate:"required,max=100"`
	GuestEmail       string               `json:"guest_email"       validate:"required,email,max=255"`
	GuestPhone       string               `json:"guest_phone"       validate:"required,max=30"`
	GuestCountry     string               `json:"guest_country"     validate:"required,max=100"`
	RoomTypeSlug     string               `json:"room_type_slug"    validate:"required,max=120"`
	RoomTypeName     string               `json:"room_type_name"    validate:"required,max=255"`
	RoomCount        int                  `json:"room_count"        validate:"omitempty,min=1"`
	CheckIn          string               `json:"check_in"          validate:"required,datetime=2006-01-02"`
	CheckOut         string               `json:"check_out"         validate:"required,datetime=2006-01-02"`
	Nights           int                  `json:"nights"            validate:"required,min=1"`
	Adults           int                  `json:"adults"            validate:"required,min=1"`
	Children         int                  `json:"children"          validate:"gte=0"`
	PricePerNight    float64              `json:"price_per_night"   validate:"gte=0"`
	TotalAmount      *float64             `json:"total_amount"      validate:"required,gte=0"`
	Services         []ServiceItemRequest `json:"services"          validate:"omitempty,dive"`
	ServiceIDs       []string             `json:"service_ids"       validate:"omitempty,dive,uuid"`
	SpecialRequests  string               `json:"special_requests"  validate:"omitempty,max=1000"`
	Source           string               `json:"source"            validate:"omitempty,oneof=website walk_in agent phone"`
	PaymentReference string               `json:"payment_reference" validate:"omitempty,max=255"`
	BookingStatus    string               `json:"booking_status"    validate:"omitempty,oneof=pending confirmed checked_in"`
	PaymentStatus    string               `json:"payment_status"    validate:"omitempty,oneof=pending paid failed refunded"`
}

// ResolveStayWindow parses the requested dates and applies the check-in grace
// window: a check-in up to graceDays before today is moved to today.
func ResolveStayWindow(checkIn, checkOut string, today time.Time, graceDays int) (in, out time.Time, nights int, err error) {
	in, err = timezone.Parse(constant.DateOnlyFormat, checkIn)
	if err != nil {
		return in, out, 0, failure.BadRequestFromString("check_in must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	out, err = timezone.Parse(constant.DateOnlyFormat, checkOut)
	if err != nil {
		return in, out, 0, failure.BadRequestFromString("check_out must be a date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	today = timezone.StartOfDay(today)

	if in.Before(today) {
		if timezone.DaysBetween(in, today) > graceDays {
			return in, out, 0, failure.BadRequestFromString("check_in cannot be in the past") // nolint:wrapcheck
		}

		in = today
	}

	nights = timezone.DaysBetween(in, out)
	if nights < 1 {
		return in, out, 0, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	return in, out, nights, nil
}

// DeskOnly reports whether the request asks for something only front desk
// staff may do: record a walk-in or set its statuses directly.
func (c *CreateBookingRequest) DeskOnly() bool {
	return model.Source(c.Source) == model.SourceWalkIn ||
		c.BookingStatus != constant.Empty ||
		c.PaymentStatus != constant.Empty
}

// ResolveStatuses derives the initial booking and payment status of a new booking.
func (c *CreateBookingRequest) ResolveStatuses() (model.BookingStatus, model.PaymentStatus) {
	if c.PaymentReference != constant.Empty {
		return model.BookingStatusConfirmed, model.PaymentStatusPaid
	}

	if model.Source(c.Source) == model.SourceWalkIn {
		booking := model.BookingStatusConfirmed
		if c.BookingStatus != constant.Empty {
			booking = model.BookingStatus(c.BookingStatus)
		}

		payment := model.PaymentStatusPaid
		if c.PaymentStatus != constant.Empty {
			payment = model.PaymentStatus(c.PaymentStatus)
		}

		return booking, payment
	}

	return model.BookingStatusPending, model.PaymentStatusPending
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, nights int, catalog model.ServiceItems) model.Booking {
	bookingStatus, paymentStatus := c.ResolveStatuses()

	source := model.Source(c.Source)
	if source == constant.Empty {
		source = model.SourceWebsite
	}

	roomCount := c.RoomCount
	if roomCount == 0 {
		roomCount = defaultRoomCount
	}

	services := make(model.ServiceItems, 0, len(c.Services)+len(catalog))
	for _, item := range c.Services {
		services = append(services, model.ServiceItem{Name: item.Name, Price: item.Price})
	}

	services = append(services, catalog...)

	var totalAmount float64
	if c.TotalAmount != nil {
		totalAmount = *c.TotalAmount
	}

	return model.Booking{
		ID:               uuid.NewString(),
		GuestFirstName:   strings.TrimSpace(c.GuestFirstName),
		GuestLastName:    strings.TrimSpace(c.GuestLastName),
		GuestEmail:       strings.ToLower(strings.TrimSpace(c.GuestEmail)),
		GuestPhone:       strings.TrimSpace(c.GuestPhone),
		GuestCountry:     c.GuestCountry,
		RoomTypeSlug:     c.RoomTypeSlug,
		RoomTypeName:     c.RoomTypeName,
		RoomCount:        roomCount,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Nights:           nights,
		Adults:           c.Adults,
		Children:         c.Children,
		TotalGuests:      c.Adults + c.Children,
		PricePerNight:    c.PricePerNight,
		TotalAmount:      totalAmount,
		Services:         services,
		PaymentStatus:    paymentStatus,
		BookingStatus:    bookingStatus,
		Source:           source,
		PaymentReference: optional(c.PaymentReference),
		SpecialRequests:  optional(c.SpecialRequests),
		Metadata:         gModel.NewMetadata(user),
	}
}

// Reference renders the human readable booking reference: prefix plus the
// last eight hex characters of the id, upper-cased.
func Reference(prefix, id string) string {
	hex := strings.ReplaceAll(id, "-", constant.Empty)
	if len(hex) > referenceSuffixLength {
		hex = hex[len(hex)-referenceSuffixLength:]
	}

	return prefix + strings.ToUpper(hex)
}

// ReferenceSuffix strips the prefix from a reference and returns the lower-cased id suffix.
func ReferenceSuffix(prefix, reference string) string {
	reference = strings.TrimSpace(reference)
	if len(reference) >= len(prefix) && strings.EqualFold(reference[:len(prefix)], prefix) {
		reference = reference[len(prefix):]
	}

	return strings.ToLower(reference)
}

type CreateBookingResponse struct {
	ID            string  `json:"id"`
	Reference     string  `json:"reference"`
	GuestName     string  `json:"guest_name"`
	GuestEmail    string  `json:"guest_email"`
	RoomTypeSlug  string  `json:"room_type_slug"`
	RoomTypeName  string  `json:"room_type_name"`
	RoomNumber    *string `json:"room_number"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Nights        int     `json:"nights"`
	TotalGuests   int     `json:"total_guests"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentStatus string  `json:"payment_status"`
	BookingStatus string  `json:"booking_status"`
}

func (r *CreateBookingResponse) FromModel(prefix string, model model.Booking) {
	r.ID = model.ID
	r.Reference = Reference(prefix, model.ID)
	r.GuestName = model.GuestName()
	r.GuestEmail = model.GuestEmail
	r.RoomTypeSlug = model.RoomTypeSlug
	r.RoomTypeName = model.RoomTypeName
	r.RoomNumber = model.RoomNumber
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Nights = model.Nights
	r.TotalGuests = model.TotalGuests
	r.TotalAmount = model.TotalAmount
	r.PaymentStatus = string(model.PaymentStatus)
	r.BookingStatus = string(model.BookingStatus)
}

type ConfirmPaymentRequest struct {
	PaymentReference string `json:"payment_reference" validate:"required,max=255"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus    string `json:"payment_status"    validate:"required"`
	PaymentReference string `json:"payment_reference" validate:"omitempty,max=255"`
}

type StatusResponse struct {
	ID            string  `json:"id"`
	Reference     string  `json:"reference"`
	PaymentStatus string  `json:"payment_status"`
	BookingStatus string  `json:"booking_status"`
	RoomNumber    *string `json:"room_number"`
}

func (r *StatusResponse) FromModel(prefix string, model model.Booking) {
	r.ID = model.ID
	r.Reference = Reference(prefix, model.ID)
	r.PaymentStatus = string(model.PaymentStatus)
	r.BookingStatus = string(model.BookingStatus)
	r.RoomNumber = model.RoomNumber
}

type BookingResponse struct {
	ID                 string              `json:"id"`
	Reference          string              `json:"reference"`
	GuestFirstName     string              `json:"guest_first_name"`
	GuestLastName      string              `json:"guest_last_name"`
	GuestEmail         string              `json:"guest_email"`
	GuestPhone         string              `json:"guest_phone"`
	GuestCountry       string              `json:"guest_country"`
	RoomTypeSlug       string              `json:"room_type_slug"`
	RoomTypeName       string              `json:"room_type_name"`
	RoomCount          int                 `json:"room_count"`
	RoomNumber         *string             `json:"room_number"`
	CheckIn            string              `json:"check_in"`
	CheckOut           string              `json:"check_out"`
	Nights             int                 `json:"nights"`
	Adults             int                 `json:"adults"`
	Children           int                 `json:"children"`
	TotalGuests        int                 `json:"total_guests"`
	PricePerNight      float64             `json:"price_per_night"`
	TotalAmount        float64             `json:"total_amount"`
	Services           []model.ServiceItem `json:"services"`
	PaymentStatus      string              `json:"payment_status"`
	BookingStatus      string              `json:"booking_status"`
	Source             string              `json:"source"`
	PaymentReference   *string             `json:"payment_reference"`
	SpecialRequests    *string             `json:"special_requests"`
	CancellationReason *string             `json:"cancellation_reason"`
	CancelledAt        *string             `json:"cancelled_at"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(prefix string, booking model.Booking) {
	r.ID = booking.ID
	r.Reference = Reference(prefix, booking.ID)
	r.GuestFirstName = booking.GuestFirstName
	r.GuestLastName = booking.GuestLastName
	r.GuestEmail = booking.GuestEmail
	r.GuestPhone = booking.GuestPhone
	r.GuestCountry = booking.GuestCountry
	r.RoomTypeSlug = booking.RoomTypeSlug
	r.RoomTypeName = booking.RoomTypeName
	r.RoomCount = booking.RoomCount
	r.RoomNumber = booking.RoomNumber
	r.CheckIn = booking.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = booking.CheckOut.Format(constant.DateOnlyFormat)
	r.Nights = booking.Nights
	r.Adults = booking.Adults
	r.Children = booking.Children
	r.TotalGuests = booking.TotalGuests
	r.PricePerNight = booking.PricePerNight
	r.TotalAmount = booking.TotalAmount
	r.Services = booking.Services
	r.PaymentStatus = string(booking.PaymentStatus)
	r.BookingStatus = string(booking.BookingStatus)
	r.Source = string(booking.Source)
	r.PaymentReference = booking.PaymentReference
	r.SpecialRequests = booking.SpecialRequests
	r.CancellationReason = booking.CancellationReason

	if booking.CancelledAt != nil {
		cancelledAt := timezone.Format(*booking.CancelledAt, constant.DateFormat)
		r.CancelledAt = &cancelledAt
	}

	if r.Services == nil {
		r.Services = []model.ServiceItem{}
	}

	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(prefix string, models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(prefix, mod)
	}
}

type StatsResponse struct {
	Counts        map[string]int `json:"counts"`
	TotalBookings int            `json:"total_bookings"`
	TotalRevenue  float64        `json:"total_revenue"`
	ExpiringToday int            `json:"expiring_today"`
}

// FromModel fills a zero count for every status without bookings. TotalRevenue
// sums every group, cancelled ones included.
func (r *StatsResponse) FromModel(stats model.Stats) {
	r.Counts = make(map[string]int, len(model.BookingStatuses()))
	for _, status := range model.BookingStatuses() {
		r.Counts[string(status)] = 0
	}

	for _, group := range stats.ByStatus {
		r.Counts[string(group.BookingStatus)] += group.Count
		r.TotalBookings += group.Count
		r.TotalRevenue += group.Revenue
	}

	r.ExpiringToday = stats.ExpiringToday
}

type LookupRequest struct {
	Reference string `json:"reference" validate:"required,max=50"`
	Email     string `json:"email"     validate:"required,email"`
}

func (l *LookupRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	l.Reference = strings.TrimSpace(query.Get(queryParamReference))
	l.Email = strings.ToLower(strings.TrimSpace(query.Get(queryParamEmail)))
}

// ListFilter carries the listBookings query string.
type ListFilter struct {
	BookingStatus string
	PaymentStatus string
	Source        string
	RoomType      string
	Search        string
	ExpiringSoon  bool
}

func (f *ListFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.BookingStatus = query.Get(queryParamBookingStatus)
	f.PaymentStatus = query.Get(queryParamPaymentStatus)
	f.Source = query.Get(queryParamSource)
	f.RoomType = query.Get(queryParamRoomType)
	f.Search = strings.TrimSpace(query.Get(constant.RequestParamSearch))

	if expiring := shared.ConvertStringToBool(query.Get(queryParamExpiringSoon)); expiring != nil {
		f.ExpiringSoon = *expiring
	}
}

func (f *ListFilter) Validate() error {
	if f.BookingStatus != constant.Empty && !model.BookingStatus(f.BookingStatus).Valid() {
		return failure.BadRequestFromString("invalid booking_status filter") // nolint:wrapcheck
	}

	if f.PaymentStatus != constant.Empty && !model.PaymentStatus(f.PaymentStatus).Valid() {
		return failure.BadRequestFromString("invalid payment_status filter") // nolint:wrapcheck
	}

	if f.Source != constant.Empty && !model.Source(f.Source).Valid() {
		return failure.BadRequestFromString("invalid source filter") // nolint:wrapcheck
	}

	return nil
}

// ToFilterGroup builds the where clause. Expiring soon means a check-out
// within [today, tomorrow) while the guest still holds the room.
func (f *ListFilter) ToFilterGroup(today time.Time) gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	eq := func(field, value string) {
		if value == constant.Empty {
			return
		}

		group.Filters = append(group.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	eq(model.FieldBookingStatus, f.BookingStatus)
	eq(model.FieldPaymentStatus, f.PaymentStatus)
	eq(model.FieldSource, f.Source)
	eq(model.FieldRoomTypeSlug, f.RoomType)

	if f.Search != constant.Empty {
		search := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}

		for _, field := range []string{model.FieldGuestFirstName, model.FieldGuestLastName, model.FieldGuestEmail, model.FieldGuestPhone} {
			search.Filters = append(search.Filters, gDto.Filter{
				ArgName:  "search_" + field,
				Field:    field,
				Operator: gDto.FilterOperatorLike,
				Value:    f.Search,
				Table:    model.TableName,
			})
		}

		group.Filters = append(group.Filters, search)
	}

	if f.ExpiringSoon {
		group.Filters = append(group.Filters, ExpiringFilters(today)...)
	}

	return group
}

// ExpiringFilters selects bookings that check out today and still hold a room.
func ExpiringFilters(today time.Time) []any {
	start := timezone.StartOfDay(today)
	statuses := []string{}

	for _, status := range model.ActiveStatuses() {
		statuses = append(statuses, string(status))
	}

	return []any{
		gDto.Filter{
			ArgName:  "check_out_from",
			Field:    model.FieldCheckOut,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    start.Format(constant.DateOnlyFormat),
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "check_out_until",
			Field:    model.FieldCheckOut,
			Operator: gDto.FilterOperatorLess,
			Value:    start.AddDate(0, 0, 1).Format(constant.DateOnlyFormat),
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "active_status",
			Field:    model.FieldBookingStatus,
			Operator: gDto.FilterOperatorIn,
			Value:    statuses,
			Table:    model.TableName,
		},
	}
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == constant.Empty {
		return nil
	}

	return &value
}
