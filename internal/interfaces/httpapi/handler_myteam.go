package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/gridironpool/gridiron-pool/internal/domain/player"
	"github.com/gridironpool/gridiron-pool/internal/domain/stats"
	"github.com/gridironpool/gridiron-pool/internal/domain/tiebreaker"
	"github.com/gridironpool/gridiron-pool/internal/usecase"
)

func (h *Handler) GetMyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyTeam")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

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
	if week == 0 {
		week, err = h.myTeamService.CurrentWeek(ctx, year)
		if err != nil {
			h.logger.WarnContext(ctx, "resolve current week failed", "year", year, "error", err)
			writeError(ctx, w, err)
			return
		}
	}

	view, err := h.myTeamService.MyTeam(ctx, principal.UserID, week, year)
	if err != nil {
		h.logger.WarnContext(ctx, "load my team failed", "user_id", principal.UserID, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, myTeamToDTO(ctx, view))
}

func (h *Handler) SaveTieBreakers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveTieBreakers")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req saveTieBreakersRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries := make([]tiebreaker.Prediction, 0, len(req.Predictions))
	for _, p := range req.Predictions {
		entries = append(entries, tiebreaker.Prediction{
			UserID:         principal.UserID,
			ScheduleID:     p.ScheduleID,
			PredictedTotal: p.PredictedTotal,
		})
	}

	if err := h.myTeamService.SaveTieBreakers(ctx, principal.UserID, entries); err != nil {
		h.logger.WarnContext(ctx, "save tie breakers failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "saved"})
}

type saveTieBreakersRequest struct {
	Predictions []tieBreakerPredictionDTO `json:"predictions" validate:"required,min=1,dive"`
}

type tieBreakerPredictionDTO struct {
	ScheduleID     int64 `json:"schedule_id" validate:"required,gt=0"`
	PredictedTotal int   `json:"predicted_total" validate:"gte=0"`
}

type myTeamDTO struct {
	Weekly            map[string]positionSlotDTO `json:"weekly"`
	Survivor          map[string]positionSlotDTO `json:"survivor"`
	SelectedWeek      int                        `json:"selected_week"`
	CurrentWeek       int                        `json:"current_week"`
	WeeklyPicksLeft   int                        `json:"weekly_picks_left"`
	SurvivorPicksLeft int                        `json:"survivor_picks_left"`
	SurvivorEligible  bool                       `json:"survivor_eligible"`
	TieBreakGames     []myTeamTieBreakDTO        `json:"tie_break_games"`
	AlertMessage      string                     `json:"alert_message,omitempty"`
}

type myTeamTieBreakDTO struct {
	ScheduleID     int64  `json:"schedule_id"`
	Label          string `json:"label"`
	ActualTotal    int    `json:"actual_total"`
	ScoreLocked    bool   `json:"score_locked"`
	PredictedTotal *int   `json:"predicted_total,omitempty"`
}

type positionSlotDTO struct {
	PlayerID   int64           `json:"player_id"`
	FullName   string          `json:"full_name"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Position   string          `json:"position"`
	TeamID     int64           `json:"team_id"`
	Locked     bool            `json:"locked"`
	OpponentID int64           `json:"opponent_id"`
	ScheduleID int64           `json:"schedule_id"`
	Points     float64         `json:"points"`
	WeekStats  []weeklyStatDTO `json:"week_stats,omitempty"`
}

type weeklyStatDTO struct {
	PlayerID int64 `json:"player_id"`
	Week     int   `json:"week"`
	Year     int   `json:"year"`

	PassingYards      int `json:"passing_yards"`
	PassingTouchdowns int `json:"passing_touchdowns"`
	Interceptions     int `json:"interceptions"`

	RushingYards      int `json:"rushing_yards"`
	RushingTouchdowns int `json:"rushing_touchdowns"`
	Fumbles           int `json:"fumbles"`

	ReceivingYards      int `json:"receiving_yards"`
	ReceivingTouchdowns int `json:"receiving_touchdowns"`

	FieldGoalsUnder40 int `json:"field_goals_under_40"`
	FieldGoals40to49  int `json:"field_goals_40_to_49"`
	FieldGoals50Plus  int `json:"field_goals_50_plus"`
	ExtraPoints       int `json:"extra_points"`

	Sacks                  int `json:"sacks"`
	DefensiveInterceptions int `json:"defensive_interceptions"`
	FumblesRecovered       int `json:"fumbles_recovered"`
	DefensiveTouchdowns    int `json:"defensive_touchdowns"`
	PointsAllowed          int `json:"points_allowed"`

	TotalPoints float64 `json:"total_points"`
}

func myTeamToDTO(ctx context.Context, view usecase.MyTeamView) myTeamDTO {
	ctx, span := startSpan(ctx, "httpapi.myTeamToDTO")
	defer span.End()

	games := make([]myTeamTieBreakDTO, 0, len(view.TieBreakGames))
	for _, g := range view.TieBreakGames {
		games = append(games, myTeamTieBreakDTO{
			ScheduleID:     g.ScheduleID,
			Label:          g.Label,
			ActualTotal:    g.ActualTotal,
			ScoreLocked:    g.ScoreLocked,
			PredictedTotal: g.PredictedTotal,
		})
	}

	return myTeamDTO{
		Weekly:            rosterSlotsToDTO(ctx, view.Weekly),
		Survivor:          rosterSlotsToDTO(ctx, view.Survivor),
		SelectedWeek:      view.SelectedWeek,
		CurrentWeek:       view.CurrentWeek,
		WeeklyPicksLeft:   view.WeeklyPicksLeft,
		SurvivorPicksLeft: view.SurvivorPicksLeft,
		SurvivorEligible:  view.SurvivorEligible,
		TieBreakGames:     games,
		AlertMessage:      view.AlertMessage,
	}
}

func rosterSlotsToDTO(ctx context.Context, slots map[player.Position]usecase.PositionDetail) map[string]positionSlotDTO {
	ctx, span := startSpan(ctx, "httpapi.rosterSlotsToDTO")
	defer span.End()

	out := make(map[string]positionSlotDTO, len(slots))
	for position, detail := range slots {
		out[string(position)] = positionSlotToDTO(ctx, detail)
	}
	return out
}

func positionSlotToDTO(ctx context.Context, detail usecase.PositionDetail) positionSlotDTO {
	ctx, span := startSpan(ctx, "httpapi.positionSlotToDTO")
	defer span.End()

	return positionSlotDTO{
		PlayerID:   detail.PlayerID,
		FullName:   detail.FullName,
		FirstName:  detail.FirstName,
		LastName:   detail.LastName,
		Position:   string(detail.Position),
		TeamID:     detail.TeamID,
		Locked:     detail.Locked,
		OpponentID: detail.OpponentID,
		ScheduleID: detail.ScheduleID,
		Points:     detail.Points,
		WeekStats:  weeklyStatsToDTO(ctx, detail.WeekStats),
	}
}

func weeklyStatsToDTO(ctx context.Context, items []stats.WeeklyStat) []weeklyStatDTO {
	ctx, span := startSpan(ctx, "httpapi.weeklyStatsToDTO")
	defer span.End()

	if len(items) == 0 {
		return nil
	}

	out := make([]weeklyStatDTO, 0, len(items))
	for _, st := range items {
		out = append(out, weeklyStatDTO{
			PlayerID:               st.PlayerID,
			Week:                   st.Week,
			Year:                   st.Year,
			PassingYards:           st.PassingYards,
			PassingTouchdowns:      st.PassingTouchdowns,
			Interceptions:          st.Interceptions,
			RushingYards:           st.RushingYards,
			RushingTouchdowns:      st.RushingTouchdowns,
			Fumbles:                st.Fumbles,
			ReceivingYards:         st.ReceivingYards,
			ReceivingTouchdowns:    st.ReceivingTouchdowns,
			FieldGoalsUnder40:      st.FieldGoalsUnder40,
			FieldGoals40to49:       st.FieldGoals40to49,
			FieldGoals50Plus:       st.FieldGoals50Plus,
			ExtraPoints:            st.ExtraPoints,
			Sacks:                  st.Sacks,
			DefensiveInterceptions: st.DefensiveInterceptions,
			FumblesRecovered:       st.FumblesRecovered,
			DefensiveTouchdowns:    st.DefensiveTouchdowns,
			PointsAllowed:          st.PointsAllowed,
			TotalPoints:            st.TotalPoints,
		})
	}
	return out
}
