package model

import (
	"time"

	"hotel/shared/constant"
	"hotel/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID          = "id"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldFullName    = "full_name"
	FieldRole        = "role"
	FieldActive      = "active"
	FieldLastLoginAt = "last_login_at"
)

// roleRank orders staff roles; a higher rank may manage lower ones.
var roleRank = map[string]int{
	constant.RoleUser:       1,
	constant.RoleStaff:      2,
	constant.RoleAdmin:      3,
	constant.RoleSuperAdmin: 4,
}

func ValidRole(role string) bool {
	_, ok := roleRank[role]

	return ok
}

// CanManage reports whether an account with actorRole may create, edit or
// remove an account holding targetRole.
func CanManage(actorRole, targetRole string) bool {
	if actorRole == constant.RoleSuperAdmin {
		return true
	}

	return roleRank[actorRole] > roleRank[targetRole]
}

type User struct {
	ID          string     `db:"id"`
	Email       string     `db:"email"`
	Password    string     `db:"password"`
	FullName    string     `db:"full_name"`
	Role        string     `db:"role"`
	Active      bool       `db:"active"`
	LastLoginAt *time.Time `db:"last_login_at"`
	model.Metadata
}
