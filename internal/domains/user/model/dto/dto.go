package dto

import (
	"net/http"
	"strings"

	"hotel/internal/domains/user/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

const queryParamRole = "role"

type CreateUserRequest struct {
	Email    string `json:"email"     validate:"required,email,max=255"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
	Role     string `json:"role"      validate:"omitempty,oneof=superadmin admin staff user"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == constant.Empty {
		role = constant.RoleStaff
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: hashedPassword,
		FullName: strings.TrimSpace(r.FullName),
		Role:     role,
		Active:   true,
		Metadata: gModel.NewMetadata(username),
	}
}

type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	Role        string  `json:"role"`
	Active      bool    `json:"active"`
	LastLoginAt *string `json:"last_login_at"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Email = user.Email
	r.FullName = user.FullName
	r.Role = user.Role
	r.Active = user.Active
	r.Metadata.FromModel(user.Metadata)

	if user.LastLoginAt != nil {
		lastLogin := timezone.Format(*user.LastLoginAt, constant.DateFormat)
		r.LastLoginAt = &lastLogin
	}
}

type UpdateUserRequest struct {
	FullName *string `db:"full_name" json:"full_name" validate:"omitempty,min=2,max=255"`
	Role     *string `db:"role"      json:"role"      validate:"omitempty,oneof=superadmin admin staff user"`
	Active   *bool   `db:"active"    json:"active"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

// ListFilter carries the listUsers query string.
type ListFilter struct {
	Role   string
	Search string
}

func (f *ListFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.Role = query.Get(queryParamRole)
	f.Search = strings.TrimSpace(query.Get(constant.RequestParamSearch))
}

func (f *ListFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if f.Role != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    f.Role,
			Table:    model.TableName,
		})
	}

	if f.Search != constant.Empty {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_email", Field: model.FieldEmail, Operator: gDto.FilterOperatorLike, Value: f.Search, Table: model.TableName},
				gDto.Filter{ArgName: "search_full_name", Field: model.FieldFullName, Operator: gDto.FilterOperatorLike, Value: f.Search, Table: model.TableName},
			},
		})
	}

	return group
}
