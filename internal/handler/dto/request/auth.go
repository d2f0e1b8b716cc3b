package request

import "strings"

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=72"` // bcrypt input limit
}

func (r LoginRequest) NormalizedUsername() string {
	return strings.TrimSpace(r.Username)
}
