package httpapi

import (
	"context"
	"net/http"

	"github.com/gridironpool/gridiron-pool/internal/usecase"
)

func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoreboard")
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
	gameType, err := queryGameType(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.scoreboardService.WeeklyPicks(ctx, week, year, gameType)
	if err != nil {
		h.logger.WarnContext(ctx, "load scoreboard failed", "week", week, "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoreboardToDTO(ctx, view))
}

func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRankings")
	defer span.End()

	year, err := queryInt(r, "year", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	gameType, err := queryGameType(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rankings, err := h.rankingService.SeasonRankings(ctx, year, gameType)
	if err != nil {
		h.logger.WarnContext(ctx, "load rankings failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rankingDTO, 0, len(rankings))
	for _, rk := range rankings {
		items = append(items, rankingDTO{
			Rank:        rk.Rank,
			UserID:      rk.UserID,
			TeamName:    rk.TeamName,
			TotalPoints: rk.TotalPoints,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamLocks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamLocks")
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

	statuses, err := h.lockService.TeamLockStatuses(ctx, week, year)
	if err != nil {
		h.logger.WarnContext(ctx, "load team locks failed", "week", week, "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamLockDTO, 0, len(statuses))
	for _, st := range statuses {
		items = append(items, teamLockDTO{
			TeamID:     st.TeamID,
			Locked:     st.Locked,
			OpponentID: st.OpponentID,
			ScheduleID: st.ScheduleID,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type scoreboardDTO struct {
	Week          int                 `json:"week"`
	Year          int                 `json:"year"`
	GameType      int                 `json:"game_type"`
	TieBreakGames []tieBreakGameDTO  `json:"tie_break_games"`
	Rows          []scoreboardRowDTO `json:"rows"`
}

type tieBreakGameDTO struct {
	ScheduleID  int64 `json:"schedule_id"`
	HomeTeamID  int64 `json:"home_team_id"`
	AwayTeamID  int64 `json:"away_team_id"`
	ActualTotal int   `json:"actual_total"`
}

type scoreboardRowDTO struct {
	UserID            string          `json:"user_id"`
	TeamName          string          `json:"team_name"`
	Quarterback       positionSlotDTO `json:"quarterback"`
	RunningBack       positionSlotDTO `json:"running_back"`
	WideReceiver      positionSlotDTO `json:"wide_receiver"`
	TightEnd          positionSlotDTO `json:"tight_end"`
	Kicker            positionSlotDTO `json:"kicker"`
	Defense           positionSlotDTO `json:"defense"`
	PlayerTotalPoints float64         `json:"player_total_points"`
	TieBreaker1Diff   int             `json:"tie_breaker_1_diff"`
	TieBreaker2Diff   int             `json:"tie_breaker_2_diff"`
	TotalDiff         int             `json:"total_diff"`
}

type rankingDTO struct {
	Rank        int     `json:"rank"`
	UserID      string  `json:"user_id"`
	TeamName    string  `json:"team_name"`
	TotalPoints float64 `json:"total_points"`
}

type teamLockDTO struct {
	TeamID     int64 `json:"team_id"`
	Locked     bool  `json:"locked"`
	OpponentID int64 `json:"opponent_id"`
	ScheduleID int64 `json:"schedule_id"`
}

func scoreboardToDTO(ctx context.Context, view usecase.WeeklyPicksView) scoreboardDTO {
	ctx, span := startSpan(ctx, "httpapi.scoreboardToDTO")
	defer span.End()

	games := make([]tieBreakGameDTO, 0, len(view.TieBreakGames))
	for _, g := range view.TieBreakGames {
		games = append(games, tieBreakGameDTO{
			ScheduleID:  g.ScheduleID,
			HomeTeamID:  g.HomeTeamID,
			AwayTeamID:  g.AwayTeamID,
			ActualTotal: g.ActualTotal,
		})
	}

	rows := make([]scoreboardRowDTO, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, scoreboardRowDTO{
			UserID:            row.UserID,
			TeamName:          row.TeamName,
			Quarterback:       positionSlotToDTO(ctx, row.Quarterback),
			RunningBack:       positionSlotToDTO(ctx, row.RunningBack),
			WideReceiver:      positionSlotToDTO(ctx, row.WideReceiver),
			TightEnd:          positionSlotToDTO(ctx, row.TightEnd),
			Kicker:            positionSlotToDTO(ctx, row.Kicker),
			Defense:           positionSlotToDTO(ctx, row.Defense),
			PlayerTotalPoints: row.PlayerTotalPoints,
			TieBreaker1Diff:   row.TieBreaker1Diff,
			TieBreaker2Diff:   row.TieBreaker2Diff,
			TotalDiff:         row.TotalDiff,
		})
	}

	return scoreboardDTO{
		Week:          view.Week,
		Year:          view.Year,
		GameType:      int(view.GameType),
		TieBreakGames: games,
		Rows:          rows,
	}
}
