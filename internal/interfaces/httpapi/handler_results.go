package httpapi

import (
	"context"
	"net/http"

	"github.com/gridironpool/gridiron-pool/internal/usecase"
)

// ListWeeklyWinners returns placements for one week, or the whole season
// when week is omitted.
func (h *Handler) ListWeeklyWinners(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWeeklyWinners")
	defer span.End()

	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := queryInt(r, "week", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	winners, err := h.resultsService.WeeklyWinners(ctx, year, week)
	if err != nil {
		h.logger.WarnContext(ctx, "load weekly winners failed", "year", year, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, winnersToDTO(ctx, winners))
}

func (h *Handler) ListYearEndResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListYearEndResults")
	defer span.End()

	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	results, err := h.resultsService.YearEndResults(ctx, year)
	if err != nil {
		h.logger.WarnContext(ctx, "load year-end results failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, winnersToDTO(ctx, results))
}

func (h *Handler) ListEarnings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEarnings")
	defer span.End()

	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	earnings, err := h.resultsService.Earnings(ctx, year)
	if err != nil {
		h.logger.WarnContext(ctx, "load earnings failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]earningsDTO, 0, len(earnings))
	for _, e := range earnings {
		items = append(items, earningsDTO{
			UserID:   e.UserID,
			TeamName: e.TeamName,
			Total:    e.Total,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAlerts")
	defer span.End()

	banner, err := h.adminService.Alerts(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "load alerts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, alertsDTO{
		HomeMessage:   banner.HomeMessage,
		RosterMessage: banner.RosterMessage,
	})
}

type winnerDTO struct {
	Week       int    `json:"week,omitempty"`
	Place      int    `json:"place"`
	UserID     string `json:"user_id"`
	TeamName   string `json:"team_name"`
	GameTypeID int    `json:"game_type_id"`
	Payout     int64  `json:"payout"`
}

type earningsDTO struct {
	UserID   string `json:"user_id"`
	TeamName string `json:"team_name"`
	Total    int64  `json:"total"`
}

type alertsDTO struct {
	HomeMessage   string `json:"home_message"`
	RosterMessage string `json:"roster_message"`
}

func winnersToDTO(ctx context.Context, winners []usecase.WinnerEntry) []winnerDTO {
	ctx, span := startSpan(ctx, "httpapi.winnersToDTO")
	defer span.End()

	items := make([]winnerDTO, 0, len(winners))
	for _, entry := range winners {
		items = append(items, winnerDTO{
			Week:       entry.Week,
			Place:      entry.Place,
			UserID:     entry.UserID,
			TeamName:   entry.TeamName,
			GameTypeID: entry.GameTypeID,
			Payout:     entry.Payout,
		})
	}
	return items
}
