package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gridironpool/gridiron-pool/internal/domain/pick"
	"github.com/gridironpool/gridiron-pool/internal/platform/logging"
	"github.com/gridironpool/gridiron-pool/internal/usecase"
)

type Handler struct {
	lockService       *usecase.LockService
	scoreboardService *usecase.ScoreboardService
	rankingService    *usecase.RankingService
	rosterService     *usecase.RosterService
	pickService       *usecase.PickService
	myTeamService     *usecase.MyTeamService
	adminService      *usecase.AdminService
	resultsService    *usecase.ResultsService
	userService       *usecase.UserService
	broadcastService  *usecase.BroadcastService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	lockService *usecase.LockService,
	scoreboardService *usecase.ScoreboardService,
	rankingService *usecase.RankingService,
	rosterService *usecase.RosterService,
	pickService *usecase.PickService,
	myTeamService *usecase.MyTeamService,
	adminService *usecase.AdminService,
	resultsService *usecase.ResultsService,
	userService *usecase.UserService,
	broadcastService *usecase.BroadcastService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		lockService:       lockService,
		scoreboardService: scoreboardService,
		rankingService:    rankingService,
		rosterService:     rosterService,
		pickService:       pickService,
		myTeamService:     myTeamService,
		adminService:      adminService,
		resultsService:    resultsService,
		userService:       userService,
		broadcastService:  broadcastService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: query parameter %q must be an integer", usecase.ErrInvalidInput, name)
	}

	return v, nil
}

func queryGameType(r *http.Request) (pick.GameType, error) {
	v, err := queryInt(r, "game_type", int(pick.GameTypeWeekly))
	if err != nil {
		return 0, err
	}

	return pick.GameType(v), nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: path parameter %q must be a positive integer", usecase.ErrInvalidInput, name)
	}

	return id, nil
}
