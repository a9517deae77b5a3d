package dto

import (
	"strconv"
	"strings"
)

type LoginRequest struct {
	UserID   string `validate:"required"`
	Password string `validate:"required"`
}

// ParseUserID returns the numeric user id, or false when the input is not one.
func (r *LoginRequest) ParseUserID() (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.UserID), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
