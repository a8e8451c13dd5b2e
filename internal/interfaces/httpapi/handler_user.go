package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/gridironpool/gridiron-pool/internal/domain/user"
	"github.com/gridironpool/gridiron-pool/internal/usecase"
)

func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyProfile")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	profile, err := h.userService.Profile(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "load profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(ctx, profile))
}

func (h *Handler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMyProfile")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req updateProfileRequest
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

	updated, err := h.userService.UpdateProfile(ctx, principal.UserID, req.UserName, req.TeamName, req.Email)
	if err != nil {
		h.logger.WarnContext(ctx, "update profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(ctx, updated))
}

type updateProfileRequest struct {
	UserName string `json:"user_name" validate:"required,max=100"`
	TeamName string `json:"team_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
}

type userDTO struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	TeamName string `json:"team_name"`
	Email    string `json:"email"`
	Paid     bool   `json:"paid"`
	Survival bool   `json:"survival"`
	Admin    bool   `json:"admin"`
}

func userToDTO(ctx context.Context, v user.User) userDTO {
	ctx, span := startSpan(ctx, "httpapi.userToDTO")
	defer span.End()

	return userDTO{
		ID:       v.ID,
		UserName: v.UserName,
		TeamName: v.TeamName,
		Email:    v.Email,
		Paid:     v.Paid,
		Survival: v.Survival,
		Admin:    v.Admin,
	}
}
