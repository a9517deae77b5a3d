package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

const (
	// Session requires a logged-in user.
	Session = "session"
	// Manager requires a user managing at least one hotel.
	Manager = "manager"
)

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Permissions []string `json:"permissions"`
	Operation   string   `json:"operation"`
	Skip        bool     `json:"skip"`
}

// Requires reports whether the operation demands permission.
func (p Permission) Requires(permission string) bool {
	return slices.Contains(p.Permissions, permission)
}

type PermissionData struct {
	Operations []Permission `json:"operations"`
	Skip       bool         `json:"skip"`
}

// FindPermissions returns the entry for operation and whether one exists.
func (r *PermissionData) FindPermissions(operation string) (Permission, bool) {
	idx := slices.IndexFunc(r.Operations, func(rp Permission) bool {
		return rp.Operation == operation
	})

	if idx == -1 {
		return Permission{}, false
	}

	return r.Operations[idx], true
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("operations", len(permissions.Operations)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
