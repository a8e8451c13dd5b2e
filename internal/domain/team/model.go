package team

import (
	"fmt"
	"strings"
)

// Team is an NFL franchise that players belong to and games are scheduled for.
type Team struct {
	ID   int64
	Code string
	Name string
	City string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be positive")
	}
	if strings.TrimSpace(t.Code) == "" {
		return fmt.Errorf("team code is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
