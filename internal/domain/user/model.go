package user

import "fmt"

// Principal identifies the caller making a pick. Identity arrives on the
// request (the frontend session owns authentication) and is only plumbed
// through to the pick conflict key.
type Principal struct {
	UserID string
}

func (p Principal) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("principal user id is required")
	}

	return nil
}
