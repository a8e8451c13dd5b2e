package cache

import (
	"context"
	"strconv"

	"github.com/gridironpool/gridiron-pool/internal/domain/prize"
	"github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	"github.com/gridironpool/gridiron-pool/internal/domain/team"
	basecache "github.com/gridironpool/gridiron-pool/internal/platform/cache"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	key := "team:id:" + strconv.FormatInt(teamID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type ScheduleRepository struct {
	next  schedule.Repository
	cache *basecache.Store
}

func NewScheduleRepository(next schedule.Repository, cache *basecache.Store) *ScheduleRepository {
	return &ScheduleRepository{next: next, cache: cache}
}

func (r *ScheduleRepository) ListByWeek(ctx context.Context, week, year int) ([]schedule.Game, error) {
	key := "schedule:week:" + weekKey(week, year)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByWeek(ctx, week, year)
		if err != nil {
			return nil, err
		}
		return append([]schedule.Game(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]schedule.Game)
	return append([]schedule.Game(nil), items...), nil
}

func (r *ScheduleRepository) ListTieBreakGames(ctx context.Context, week, year int) ([]schedule.Game, error) {
	key := "schedule:tiebreak:" + weekKey(week, year)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListTieBreakGames(ctx, week, year)
		if err != nil {
			return nil, err
		}
		return append([]schedule.Game(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]schedule.Game)
	return append([]schedule.Game(nil), items...), nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, gameID int64) (schedule.Game, bool, error) {
	key := "schedule:id:" + strconv.FormatInt(gameID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, gameID)
		if err != nil {
			return nil, err
		}
		return cachedGameByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return schedule.Game{}, false, err
	}

	cached, _ := v.(cachedGameByID)
	return cached.value, cached.exists, nil
}

func (r *ScheduleRepository) Insert(ctx context.Context, game schedule.Game) (int64, error) {
	id, err := r.next.Insert(ctx, game)
	if err != nil {
		return 0, err
	}
	r.cache.Delete(ctx, "schedule:week:"+weekKey(game.Week, game.Year))
	r.cache.Delete(ctx, "schedule:tiebreak:"+weekKey(game.Week, game.Year))
	return id, nil
}

func (r *ScheduleRepository) Update(ctx context.Context, game schedule.Game) error {
	if err := r.next.Update(ctx, game); err != nil {
		return err
	}
	r.invalidateGame(ctx, game.ID)
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, gameID int64) error {
	if err := r.next.Delete(ctx, gameID); err != nil {
		return err
	}
	r.invalidateGame(ctx, gameID)
	return nil
}

func (r *ScheduleRepository) SetTieBreak(ctx context.Context, gameID int64, tieBreak bool) error {
	if err := r.next.SetTieBreak(ctx, gameID, tieBreak); err != nil {
		return err
	}
	r.invalidateGame(ctx, gameID)
	return nil
}

func (r *ScheduleRepository) UpdateScores(ctx context.Context, gameID int64, homeScore, awayScore *int) error {
	if err := r.next.UpdateScores(ctx, gameID, homeScore, awayScore); err != nil {
		return err
	}
	r.invalidateGame(ctx, gameID)
	return nil
}

// invalidateGame drops the point lookup plus every week listing since the
// game's week is not known to the caller here.
func (r *ScheduleRepository) invalidateGame(ctx context.Context, gameID int64) {
	r.cache.Delete(ctx, "schedule:id:"+strconv.FormatInt(gameID, 10))
	r.cache.DeletePrefix(ctx, "schedule:week:")
	r.cache.DeletePrefix(ctx, "schedule:tiebreak:")
}

type cachedGameByID struct {
	value  schedule.Game
	exists bool
}

func weekKey(week, year int) string {
	return strconv.Itoa(year) + ":" + strconv.Itoa(week)
}

type PrizeRepository struct {
	next  prize.Repository
	cache *basecache.Store
}

func NewPrizeRepository(next prize.Repository, cache *basecache.Store) *PrizeRepository {
	return &PrizeRepository{next: next, cache: cache}
}

func (r *PrizeRepository) ListPots(ctx context.Context) ([]prize.Pot, error) {
	v, err := r.cache.GetOrLoad(ctx, "prize:pots", func(ctx context.Context) (any, error) {
		items, err := r.next.ListPots(ctx)
		if err != nil {
			return nil, err
		}
		return append([]prize.Pot(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]prize.Pot)
	return append([]prize.Pot(nil), items...), nil
}

func (r *PrizeRepository) ListWinners(ctx context.Context, year int) ([]prize.WeeklyWinner, error) {
	key := "prize:winners:" + strconv.Itoa(year)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListWinners(ctx, year)
		if err != nil {
			return nil, err
		}
		return append([]prize.WeeklyWinner(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]prize.WeeklyWinner)
	return append([]prize.WeeklyWinner(nil), items...), nil
}

func (r *PrizeRepository) UpsertWinner(ctx context.Context, item prize.WeeklyWinner) error {
	if err := r.next.UpsertWinner(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, "prize:winners:"+strconv.Itoa(item.Year))
	return nil
}

func (r *PrizeRepository) ListYearEndResults(ctx context.Context, year int) ([]prize.YearEndResult, error) {
	key := "prize:year-end:" + strconv.Itoa(year)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListYearEndResults(ctx, year)
		if err != nil {
			return nil, err
		}
		return append([]prize.YearEndResult(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]prize.YearEndResult)
	return append([]prize.YearEndResult(nil), items...), nil
}

func (r *PrizeRepository) UpsertYearEndResult(ctx context.Context, item prize.YearEndResult) error {
	if err := r.next.UpsertYearEndResult(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, "prize:year-end:"+strconv.Itoa(item.Year))
	return nil
}
