package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/valyala/bytebufferpool"

	"github.com/gridironpool/gridiron-pool/internal/domain/user"
	"github.com/gridironpool/gridiron-pool/internal/platform/logging"
)

const defaultBroadcastWorkers = 4

// EmailSender delivers one message to one recipient.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// IDGenerator mints broadcast run identifiers.
type IDGenerator interface {
	NewID() (string, error)
}

// BroadcastService fans a league-wide email out over a bounded worker
// pool. Per-recipient failures are collected rather than aborting the
// run.
type BroadcastService struct {
	userRepo    user.Repository
	sender      EmailSender
	idGenerator IDGenerator
	workerCount int
	logger      *logging.Logger
}

func NewBroadcastService(
	userRepo user.Repository,
	sender EmailSender,
	idGenerator IDGenerator,
	workerCount int,
	logger *logging.Logger,
) *BroadcastService {
	if workerCount <= 0 {
		workerCount = defaultBroadcastWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BroadcastService{
		userRepo:    userRepo,
		sender:      sender,
		idGenerator: idGenerator,
		workerCount: workerCount,
		logger:      logger,
	}
}

// DeliveryResult is the outcome for one recipient.
type DeliveryResult struct {
	Email      string
	TeamName   string
	Sent       bool
	Message    string
	DurationMs int64
}

type BroadcastResult struct {
	RunID        string
	Recipients   int
	SentCount    int
	FailedCount  int
	Deliveries   []DeliveryResult
	StatusReport string
}

// SendToLeague emails every member, or only paid members when paidOnly is
// set.
func (s *BroadcastService) SendToLeague(ctx context.Context, subject, htmlBody string, paidOnly bool) (BroadcastResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BroadcastService.SendToLeague")
	defer span.End()

	if subject == "" {
		return BroadcastResult{}, fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	if htmlBody == "" {
		return BroadcastResult{}, fmt.Errorf("%w: body is required", ErrInvalidInput)
	}

	runID, err := s.idGenerator.NewID()
	if err != nil {
		return BroadcastResult{}, fmt.Errorf("generate run id: %w", err)
	}

	var recipients []user.User
	if paidOnly {
		recipients, err = s.userRepo.ListEligible(ctx, false)
	} else {
		recipients, err = s.userRepo.List(ctx)
	}
	if err != nil {
		return BroadcastResult{}, fmt.Errorf("list recipients: %w", err)
	}

	result := BroadcastResult{RunID: runID, Recipients: len(recipients)}
	if len(recipients) == 0 {
		result.StatusReport = fmt.Sprintf("broadcast %s: no recipients", runID)
		return result, nil
	}

	results := make(chan DeliveryResult, len(recipients))

	var sentCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(s.workerCount)
	if err != nil {
		return BroadcastResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, recipient := range recipients {
		recipient := recipient
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := DeliveryResult{
				Email:    recipient.Email,
				TeamName: recipient.DisplayName(),
			}

			if err := s.sender.Send(ctx, recipient.Email, subject, htmlBody); err != nil {
				row.Message = err.Error()
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "broadcast delivery failed",
					"run_id", runID,
					"email", recipient.Email,
					"error", err,
				)
			} else {
				row.Sent = true
				row.Message = "sent"
				sentCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			results <- row
		}); err != nil {
			workers.Done()
			return BroadcastResult{}, fmt.Errorf("submit delivery to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Deliveries = append(result.Deliveries, row)
	}
	sort.SliceStable(result.Deliveries, func(i, j int) bool {
		return result.Deliveries[i].Email < result.Deliveries[j].Email
	})

	result.SentCount = int(sentCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.StatusReport = buildStatusReport(runID, result)

	s.logger.InfoContext(ctx, "broadcast finished",
		"run_id", runID,
		"recipients", result.Recipients,
		"sent", result.SentCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

func buildStatusReport(runID string, result BroadcastResult) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(fmt.Sprintf("broadcast %s: %d sent, %d failed of %d\n",
		runID, result.SentCount, result.FailedCount, result.Recipients))
	for _, row := range result.Deliveries {
		_, _ = buf.WriteString(fmt.Sprintf("%s (%s): %s\n", row.Email, row.TeamName, row.Message))
	}
	return buf.String()
}
