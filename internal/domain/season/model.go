package season

import (
	"fmt"
	"time"
)

// Season is one NFL year with its configured week boundaries.
type Season struct {
	Year      int
	StartDate time.Time
}

// Week marks the start of one scoring week within a season. Season setup
// creates 19 rows so week lookups cover the post-season boundary.
type Week struct {
	Year      int
	Week      int
	StartDate time.Time
}

func (s Season) Validate() error {
	if s.Year <= 0 {
		return fmt.Errorf("season year is required")
	}
	if s.StartDate.IsZero() {
		return fmt.Errorf("season start date is required")
	}

	return nil
}
