package user

import (
	"fmt"
)

// UserUpsertRequest is the payload for POST /users, sent on every sign-in.
type UserUpsertRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (u UserUpsertRequest) Validate() error {
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}
