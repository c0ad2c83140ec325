package permissions

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{
	constant.RoleSuperAdmin,
	constant.RoleAdmin,
	constant.RoleStaff,
	constant.RoleUser,
}

// Permission describes one route pattern. Permissions lists the roles allowed
// to call it; APIKey additionally admits callers holding the service API key.
// A public route marked Optional still resolves a bearer token when one is
// sent, so the handler can tell staff from anonymous guests.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
	Optional    bool     `json:"optional"`
	APIKey      bool     `json:"api_key"`
}

// PermissionData is the route table the auth middleware consults. Routes it
// does not list are denied.
type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions returns the entry for a chi route pattern. The second value
// is false when the route is not listed.
func (r *PermissionData) FindPermissions(path, method string) (Permission, bool) {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && strings.EqualFold(rp.Method, method)
	})

	if idx == -1 {
		return Permission{}, false
	}

	return r.Endpoints[idx], true
}

func (p Permission) Allows(role string) bool {
	return slices.Contains(p.Permissions, role)
}

// Get loads the embedded table. It returns nil when the table does not parse
// or fails validation, which leaves every protected route closed.
func Get() *PermissionData {
	data, err := parse(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("permissions loaded")

	return data
}

func parse(raw []byte) (*PermissionData, error) {
	var data PermissionData

	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	if err := data.validate(); err != nil {
		return nil, err
	}

	return &data, nil
}

func (r *PermissionData) validate() error {
	var errs []error

	seen := make(map[string]struct{}, len(r.Endpoints))

	for _, endpoint := range r.Endpoints {
		key := strings.ToUpper(endpoint.Method) + " " + endpoint.Path

		if _, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("%s is listed twice", key))
		}

		seen[key] = struct{}{}

		if endpoint.Skip && len(endpoint.Permissions) > 0 {
			errs = append(errs, fmt.Errorf("%s is public but lists roles", key))
		}

		if endpoint.Optional && !endpoint.Skip {
			errs = append(errs, fmt.Errorf("%s is optional but not public", key))
		}

		if !endpoint.Skip && !endpoint.APIKey && len(endpoint.Permissions) == 0 {
			errs = append(errs, fmt.Errorf("%s admits nobody", key))
		}

		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				errs = append(errs, fmt.Errorf("%s names unknown role %q", key, role))
			}
		}
	}

	return errors.Join(errs...)
}
