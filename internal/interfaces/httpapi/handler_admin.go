package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/gridironpool/gridiron-pool/internal/domain/alert"
	"github.com/gridironpool/gridiron-pool/internal/domain/prize"
	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	"github.com/gridironpool/gridiron-pool/internal/usecase"
)

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	var req createSeasonRequest
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

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: start_date must be RFC3339: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.adminService.CreateSeason(ctx, req.Year, startDate); err != nil {
		h.logger.WarnContext(ctx, "create season failed", "year", req.Year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]int{"year": req.Year})
}

func (h *Handler) AddGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddGame")
	defer span.End()

	var req gameRequest
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

	game, err := req.toGame(0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	id, err := h.adminService.AddGame(ctx, game)
	if err != nil {
		h.logger.WarnContext(ctx, "add game failed", "week", req.Week, "year", req.Year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGame")
	defer span.End()

	id, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req gameRequest
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

	game, err := req.toGame(id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.adminService.UpdateGame(ctx, game); err != nil {
		h.logger.WarnContext(ctx, "update game failed", "game_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"id": id})
}

func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGame")
	defer span.End()

	id, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.adminService.DeleteGame(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete game failed", "game_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) ToggleTieBreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleTieBreak")
	defer span.End()

	id, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.adminService.ToggleTieBreak(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "toggle tie break failed", "game_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "toggled"})
}

func (h *Handler) UpdateFinalScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFinalScores")
	defer span.End()

	id, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req finalScoresRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.adminService.UpdateFinalScores(ctx, id, req.HomeScore, req.AwayScore); err != nil {
		h.logger.WarnContext(ctx, "update final scores failed", "game_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *Handler) UpsertWeeklyWinner(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertWeeklyWinner")
	defer span.End()

	var req weeklyWinnerRequest
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

	winner := prize.WeeklyWinner{
		Year:   req.Year,
		Week:   req.Week,
		Place:  req.Place,
		UserID: req.UserID,
	}
	if err := h.adminService.UpsertWeeklyWinner(ctx, winner); err != nil {
		h.logger.WarnContext(ctx, "upsert weekly winner failed", "year", req.Year, "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *Handler) UpsertYearEndResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertYearEndResult")
	defer span.End()

	var req yearEndResultRequest
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

	result := prize.YearEndResult{
		Year:       req.Year,
		GameTypeID: req.GameTypeID,
		Place:      req.Place,
		UserID:     req.UserID,
	}
	if err := h.adminService.UpsertYearEndResult(ctx, result); err != nil {
		h.logger.WarnContext(ctx, "upsert year-end result failed", "year", req.Year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *Handler) SetUserFlags(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetUserFlags")
	defer span.End()

	userID := r.PathValue("userID")

	var req userFlagsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.adminService.SetUserFlags(ctx, userID, req.Paid, req.Survival); err != nil {
		h.logger.WarnContext(ctx, "set user flags failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *Handler) SaveAlerts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveAlerts")
	defer span.End()

	var req alertsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	banner := alert.Alert{
		HomeMessage:   req.HomeMessage,
		RosterMessage: req.RosterMessage,
	}
	if err := h.adminService.SaveAlerts(ctx, banner); err != nil {
		h.logger.WarnContext(ctx, "save alerts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, alertsDTO{
		HomeMessage:   banner.HomeMessage,
		RosterMessage: banner.RosterMessage,
	})
}

type createSeasonRequest struct {
	Year      int    `json:"year" validate:"required,gt=0"`
	StartDate string `json:"start_date" validate:"required"`
}

type gameRequest struct {
	Week         int    `json:"week" validate:"required,min=1,max=18"`
	Year         int    `json:"year" validate:"required,gt=0"`
	HomeTeamID   int64  `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID   int64  `json:"away_team_id" validate:"required,gt=0"`
	Kickoff      string `json:"kickoff" validate:"required"`
	TieBreakGame bool   `json:"tie_break_game"`
}

func (req gameRequest) toGame(id int64) (schedule.Game, error) {
	kickoff, err := time.Parse(time.RFC3339, req.Kickoff)
	if err != nil {
		return schedule.Game{}, fmt.Errorf("%w: kickoff must be RFC3339: %v", usecase.ErrInvalidInput, err)
	}

	return schedule.Game{
		ID:           id,
		Week:         req.Week,
		Year:         req.Year,
		HomeTeamID:   req.HomeTeamID,
		AwayTeamID:   req.AwayTeamID,
		Kickoff:      kickoff,
		TieBreakGame: req.TieBreakGame,
	}, nil
}

type finalScoresRequest struct {
	HomeScore *int `json:"home_score"`
	AwayScore *int `json:"away_score"`
}

type weeklyWinnerRequest struct {
	Year   int    `json:"year" validate:"required,gt=0"`
	Week   int    `json:"week" validate:"required,min=1,max=18"`
	Place  int    `json:"place" validate:"required,min=1,max=4"`
	UserID string `json:"user_id" validate:"required"`
}

type yearEndResultRequest struct {
	Year       int    `json:"year" validate:"required,gt=0"`
	GameTypeID int    `json:"game_type_id" validate:"required,min=1,max=3"`
	Place      int    `json:"place" validate:"required,min=1,max=4"`
	UserID     string `json:"user_id" validate:"required"`
}

type userFlagsRequest struct {
	Paid     bool `json:"paid"`
	Survival bool `json:"survival"`
}

type alertsRequest struct {
	HomeMessage   string `json:"home_message" validate:"max=2000"`
	RosterMessage string `json:"roster_message" validate:"max=2000"`
}
