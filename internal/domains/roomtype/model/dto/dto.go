package dto

import (
	"mime/multipart"
	"net/http"
	"strings"
	"unicode"

	"hotel/internal/domains/roomtype/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	queryParamActive = "active"
	queryParamGuests = "guests"
)

type CreateRoomTypeRequest struct {
	Slug          string   `json:"slug"            validate:"omitempty,max=120"`
	Name          string   `json:"name"            validate:"required,min=2,max=255"`
	Description   string   `json:"description"     validate:"omitempty"`
	MaxAdults     int      `json:"max_adults"      validate:"required,min=1"`
	MaxChildren   int      `json:"max_children"    validate:"gte=0"`
	MaxGuests     int      `json:"max_guests"      validate:"required,min=1"`
	TotalRooms    int      `json:"total_rooms"     validate:"required,min=1"`
	PricePerNight float64  `json:"price_per_night" validate:"gte=0"`
	Amenities     []string `json:"amenities"       validate:"omitempty,dive,max=100"`
	Images        []string `json:"images"          validate:"omitempty,dive,url"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	slug := Slugify(c.Slug)
	if slug == "" {
		slug = Slugify(c.Name)
	}

	return model.RoomType{
		ID:            uuid.NewString(),
		Slug:          slug,
		Name:          strings.TrimSpace(c.Name),
		Description:   c.Description,
		MaxAdults:     c.MaxAdults,
		MaxChildren:   c.MaxChildren,
		MaxGuests:     c.MaxGuests,
		TotalRooms:    c.TotalRooms,
		PricePerNight: c.PricePerNight,
		Amenities:     orEmpty(c.Amenities),
		Images:        orEmpty(c.Images),
		Active:        true,
		Metadata:      gModel.NewMetadata(user),
	}
}

// Slugify lower-cases s and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	var builder strings.Builder

	dash := false

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && builder.Len() > 0 {
				builder.WriteRune('-')
			}

			builder.WriteRune(r)

			dash = false

			continue
		}

		dash = true
	}

	return builder.String()
}

// UpdateRoomTypeRequest leaves the slug out: rooms and bookings keep a copy of it.
type UpdateRoomTypeRequest struct {
	Name          string         `db:"name"            json:"name"            validate:"omitempty,min=2,max=255"`
	Description   string         `db:"description"     json:"description"     validate:"omitempty"`
	MaxAdults     int            `db:"max_adults"      json:"max_adults"      validate:"omitempty,min=1"`
	MaxChildren   *int           `db:"max_children"    json:"max_children"    validate:"omitempty,gte=0"`
	MaxGuests     int            `db:"max_guests"      json:"max_guests"      validate:"omitempty,min=1"`
	TotalRooms    int            `db:"total_rooms"     json:"total_rooms"     validate:"omitempty,min=1"`
	PricePerNight *float64       `db:"price_per_night" json:"price_per_night" validate:"omitempty,gte=0"`
	Amenities     pq.StringArray `db:"amenities"       json:"amenities"       validate:"omitempty,dive,max=100"`
	Images        pq.StringArray `db:"images"          json:"images"          validate:"omitempty,dive,url"`
	Active        *bool          `db:"active"          json:"active"          validate:"omitempty"`
}

func (u UpdateRoomTypeRequest) IsEmpty() bool {
	return u.Name == "" && u.Description == "" && u.MaxAdults == 0 && u.MaxChildren == nil &&
		u.MaxGuests == 0 && u.TotalRooms == 0 && u.PricePerNight == nil &&
		u.Amenities == nil && u.Images == nil && u.Active == nil
}

type RoomTypeResponse struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	MaxAdults     int      `json:"max_adults"`
	MaxChildren   int      `json:"max_children"`
	MaxGuests     int      `json:"max_guests"`
	TotalRooms    int      `json:"total_rooms"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	Active        bool     `json:"active"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Slug = model.Slug
	r.Name = model.Name
	r.Description = model.Description
	r.MaxAdults = model.MaxAdults
	r.MaxChildren = model.MaxChildren
	r.MaxGuests = model.MaxGuests
	r.TotalRooms = model.TotalRooms
	r.PricePerNight = model.PricePerNight
	r.Amenities = orEmpty(model.Amenities)
	r.Images = orEmpty(model.Images)
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, m := range models {
		r.RoomTypes[i].FromModel(m)
	}
}

type UploadImageRequest struct {
	Image *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
}

type UploadImageResponse struct {
	URL      string   `json:"url"`
	FileName string   `json:"file_name"`
	Images   []string `json:"images"`
}

type DeleteImageRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

// ListFilter carries the listRoomTypes query string. Active defaults to true.
type ListFilter struct {
	Active    bool
	MinGuests *int
	Search    string
}

func (f *ListFilter) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	f.Active = true
	f.Search = strings.TrimSpace(query.Get(constant.RequestParamSearch))

	if active := shared.ConvertStringToBool(query.Get(queryParamActive)); active != nil {
		f.Active = *active
	}

	if guests := query.Get(queryParamGuests); guests != constant.Empty {
		value, err := shared.ConvertStringToInt(guests)
		if err != nil || value < 1 {
			return failure.BadRequestFromString("guests must be a positive number") // nolint:wrapcheck
		}

		f.MinGuests = &value
	}

	return nil
}

func (f *ListFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldActive, Value: f.Active, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	if f.MinGuests != nil {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldMaxGuests, Value: *f.MinGuests, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName})
	}

	if f.Search != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldName, Value: f.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName})
	}

	return group
}
