package user

import (
	"fmt"
	"strings"
)

// User is a league member profile. Authentication lives in an external
// identity service; this row only carries league-facing attributes.
type User struct {
	ID       string
	UserName string
	TeamName string
	Email    string
	Paid     bool
	Survival bool
	Admin    bool
}

// DisplayName prefers the fantasy team name, falling back to the username.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.TeamName); name != "" {
		return name
	}
	return u.UserName
}

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(u.UserName) == "" {
		return fmt.Errorf("user name is required")
	}

	return nil
}

// Principal is the authenticated caller identity produced by token
// verification.
type Principal struct {
	UserID string
	Email  string
	Admin  bool
}
