package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/gridironpool/gridiron-pool/internal/usecase"
)

func (h *Handler) ListRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoster")
	defer span.End()

	week, err := queryInt(r, "week", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	pageSize, err := queryInt(r, "page_size", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	result, err := h.rosterService.Players(ctx, usecase.RosterQuery{
		Position:   strings.TrimSpace(query.Get("position")),
		Name:       strings.TrimSpace(query.Get("name")),
		SortKey:    usecase.RosterSortKey(strings.TrimSpace(query.Get("sort"))),
		Descending: query.Get("desc") == "true",
		Page:       page,
		PageSize:   pageSize,
		Week:       week,
		Year:       year,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "load roster failed", "week", week, "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterPageToDTO(ctx, result))
}

type rosterPageDTO struct {
	Players      []rosterPlayerDTO `json:"players"`
	TotalPlayers int               `json:"total_players"`
	Page         int               `json:"page"`
	PageSize     int               `json:"page_size"`
}

type rosterPlayerDTO struct {
	PlayerID    int64           `json:"player_id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	FullName    string          `json:"full_name"`
	Position    string          `json:"position"`
	TeamID      int64           `json:"team_id"`
	TeamCode    string          `json:"team_code"`
	PictureURL  string          `json:"picture_url,omitempty"`
	SeasonTotal float64         `json:"season_total"`
	WeekStats   []weeklyStatDTO `json:"week_stats,omitempty"`
	Locked      bool            `json:"locked"`
	Opponent    string          `json:"opponent"`
}

func rosterPageToDTO(ctx context.Context, page usecase.RosterPage) rosterPageDTO {
	ctx, span := startSpan(ctx, "httpapi.rosterPageToDTO")
	defer span.End()

	players := make([]rosterPlayerDTO, 0, len(page.Players))
	for _, entry := range page.Players {
		players = append(players, rosterPlayerDTO{
			PlayerID:    entry.Player.ID,
			FirstName:   entry.Player.FirstName,
			LastName:    entry.Player.LastName,
			FullName:    entry.Player.FullName,
			Position:    string(entry.Player.Position),
			TeamID:      entry.Player.TeamID,
			TeamCode:    entry.TeamCode,
			PictureURL:  entry.Player.PictureURL,
			SeasonTotal: entry.SeasonTotal,
			WeekStats:   weeklyStatsToDTO(ctx, entry.WeekStats),
			Locked:      entry.Locked,
			Opponent:    entry.Opponent,
		})
	}

	return rosterPageDTO{
		Players:      players,
		TotalPlayers: page.TotalPlayers,
		Page:         page.Page,
		PageSize:     page.PageSize,
	}
}
