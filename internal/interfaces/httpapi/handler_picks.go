package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/gridironpool/gridiron-pool/internal/domain/pick"
	"github.com/gridironpool/gridiron-pool/internal/usecase"
)

func (h *Handler) SavePick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SavePick")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req savePickRequest
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

	saved := h.pickService.SavePick(ctx, principal.UserID, req.PlayerID, req.Week, req.Year, pick.GameType(req.GameType))
	if !saved {
		h.logger.WarnContext(ctx, "save pick rejected",
			"user_id", principal.UserID,
			"player_id", req.PlayerID,
			"week", req.Week,
			"game_type", req.GameType,
		)
	}

	writeSuccess(ctx, w, http.StatusOK, savePickResponse{Saved: saved})
}

type savePickRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
	Week     int   `json:"week" validate:"required,min=1,max=18"`
	Year     int   `json:"year" validate:"required,gt=0"`
	GameType int   `json:"game_type" validate:"required,min=1,max=2"`
}

type savePickResponse struct {
	Saved bool `json:"saved"`
}
