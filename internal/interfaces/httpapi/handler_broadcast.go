package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/gridironpool/gridiron-pool/internal/usecase"
)

func (h *Handler) SendBroadcast(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SendBroadcast")
	defer span.End()

	var req broadcastRequest
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

	result, err := h.broadcastService.SendToLeague(ctx, req.Subject, req.HTMLBody, req.PaidOnly)
	if err != nil {
		h.logger.WarnContext(ctx, "send broadcast failed", "subject", req.Subject, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, broadcastToDTO(ctx, result))
}

type broadcastRequest struct {
	Subject  string `json:"subject" validate:"required,max=200"`
	HTMLBody string `json:"html_body" validate:"required"`
	PaidOnly bool   `json:"paid_only"`
}

type broadcastResultDTO struct {
	RunID        string        `json:"run_id"`
	Recipients   int           `json:"recipients"`
	SentCount    int           `json:"sent_count"`
	FailedCount  int           `json:"failed_count"`
	Deliveries   []deliveryDTO `json:"deliveries"`
	StatusReport string        `json:"status_report"`
}

type deliveryDTO struct {
	Email      string `json:"email"`
	TeamName   string `json:"team_name"`
	Sent       bool   `json:"sent"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

func broadcastToDTO(ctx context.Context, result usecase.BroadcastResult) broadcastResultDTO {
	ctx, span := startSpan(ctx, "httpapi.broadcastToDTO")
	defer span.End()

	deliveries := make([]deliveryDTO, 0, len(result.Deliveries))
	for _, d := range result.Deliveries {
		deliveries = append(deliveries, deliveryDTO{
			Email:      d.Email,
			TeamName:   d.TeamName,
			Sent:       d.Sent,
			Message:    d.Message,
			DurationMs: d.DurationMs,
		})
	}

	return broadcastResultDTO{
		RunID:        result.RunID,
		Recipients:   result.Recipients,
		SentCount:    result.SentCount,
		FailedCount:  result.FailedCount,
		Deliveries:   deliveries,
		StatusReport: result.StatusReport,
	}
}
