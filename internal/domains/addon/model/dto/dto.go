package dto

import (
	"hotel/internal/domains/addon/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type CreateAddonRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Price       float64 `json:"price" validate:"gte=0"`
}

func (c *CreateAddonRequest) ToModel(user string) model.Addon {
	return model.Addon{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(c.Name),
		Description: c.Description,
		Price:       c.Price,
		Active:      true,
		Metadata:    gModel.NewMetadata(user),
	}
}

type UpdateAddonRequest struct {
	Name        string   `db:"name" json:"name" validate:"omitempty,max=255"`
	Description string   `db:"description" json:"description" validate:"omitempty,max=1000"`
	Price       *float64 `db:"price" json:"price" validate:"omitempty,gte=0"`
	Active      *bool    `db:"active" json:"active" validate:"omitempty"`
}

type AddonResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *AddonResponse) FromModel(model model.Addon) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetAddonsResponse struct {
	Addons    []AddonResponse `json:"addons"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetAddonsResponse) FromModels(models []model.Addon, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Addons = make([]AddonResponse, len(models))
	for i, mod := range models {
		r.Addons[i].FromModel(mod)
	}
}

// ListFilter carries the listAddons query string. Active defaults to true.
type ListFilter struct {
	Active bool
	Search string
}

func (f *ListFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.Active = true
	f.Search = strings.TrimSpace(query.Get(constant.RequestParamSearch))

	if active := shared.ConvertStringToBool(query.Get("active")); active != nil {
		f.Active = *active
	}
}

func (f *ListFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldActive, Value: f.Active, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	if f.Search != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldName, Value: f.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName})
	}

	return group
}
