package prize

import "fmt"

// Pot is the payout for one finishing place of one game type. Amounts are
// whole dollars.
type Pot struct {
	GameTypeID int
	Place      int
	Amount     int64
}

// WeeklyWinner records a placement for one week of a season.
type WeeklyWinner struct {
	ID     int64
	Year   int
	Week   int
	Place  int
	UserID string
}

// YearEndResult records a season-final placement for one game type.
type YearEndResult struct {
	ID         int64
	Year       int
	GameTypeID int
	Place      int
	UserID     string
}

func (w WeeklyWinner) Validate() error {
	if w.Year <= 0 {
		return fmt.Errorf("winner year is required")
	}
	if w.Week < 1 || w.Week > 18 {
		return fmt.Errorf("winner week must be within 1-18")
	}
	if w.Place < 1 || w.Place > 4 {
		return fmt.Errorf("winner place must be within 1-4")
	}
	if w.UserID == "" {
		return fmt.Errorf("winner user id is required")
	}

	return nil
}

func (r YearEndResult) Validate() error {
	if r.Year <= 0 {
		return fmt.Errorf("result year is required")
	}
	if r.GameTypeID < 1 || r.GameTypeID > 3 {
		return fmt.Errorf("result game type must be within 1-3")
	}
	if r.Place < 1 || r.Place > 4 {
		return fmt.Errorf("result place must be within 1-4")
	}
	if r.UserID == "" {
		return fmt.Errorf("result user id is required")
	}

	return nil
}
