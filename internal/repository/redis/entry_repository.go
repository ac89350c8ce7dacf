package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
)

// EntryRepository stores each entry as a JSON blob. Membership of a shop's active queue and
// its history is tracked by sorted sets scored by arrival and finish time respectively.
type EntryRepository struct {
	cli *redis.Client
	l   logger.Logger
}

func NewEntryRepository(cli *redis.Client, l logger.Logger) *EntryRepository {
	return &EntryRepository{
		cli: cli,
		l:   l,
	}
}

func (r *EntryRepository) Append(ctx context.Context, e *models.QueueEntry) error {
	exists, err := r.cli.Exists(ctx, entryKey(e.ID)).Result()
	if err != nil {
		r.l.Errorf(ctx, "redisEntryRepository.Append.Exists: %v", err)
		return qerrors.Infra("entry.append", err)
	}
	if exists > 0 {
		return qerrors.ErrConflict
	}

	seq, err := r.cli.Incr(ctx, seqKey(e.BarbershopID)).Result()
	if err != nil {
		r.l.Errorf(ctx, "redisEntryRepository.Append.Incr: %v", err)
		return qerrors.Infra("entry.append", err)
	}
	e.Seq = seq

	data, err := json.Marshal(e)
	if err != nil {
		return qerrors.Infra("entry.append", err)
	}

	if _, err := r.cli.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, entryKey(e.ID), data, 0)
		pipe.ZAdd(ctx, activeKey(e.BarbershopID), redis.Z{
			Score:  float64(e.ArrivalTime.UnixMilli()),
			Member: e.ID,
		})
		return nil
	}); err != nil {
		r.l.Errorf(ctx, "redisEntryRepository.Append: %v", err)
		return qerrors.Infra("entry.append", err)
	}

	r.l.Debug(ctx, "Entry appended",
		"barbershop_id", e.BarbershopID,
		"entry_id", e.ID,
		"seq", seq,
	)

	return nil
}

func (r *EntryRepository) Get(ctx context.Context, id string) (*models.QueueEntry, error) {
	data, err := r.cli.Get(ctx, entryKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, qerrors.ErrEntryNotFound
		}
		r.l.Errorf(ctx, "redisEntryRepository.Get: %v", err)
		return nil, qerrors.Infra("entry.get", err)
	}

	var e models.QueueEntry
	if err := json.Unmarshal(data, &e); err != nil {
		r.l.Errorf(ctx, "redisEntryRepository.Get.Unmarshal: %v", err)
		return nil, qerrors.Infra("entry.get", err)
	}

	return &e, nil
}

func (r *EntryRepository) ListActive(ctx context.Context, shopID string) ([]*models.QueueEntry, error) {
	ids, err := r.cli.ZRange(ctx, activeKey(shopID), 0, -1).Result()
	if err != nil {
		r.l.Errorf(ctx, "redisEntryRepository.ListActive: %v", err)
		return nil, qerrors.Infra("entry.list_active", err)
	}

	entries, err := r.load(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := entries[:0]
	for _, e := range entries {
		if !e.IsTerminal() {
			out = append(out, e)
		}
	}

	// Scores only carry millisecond precision.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ArrivedBefore(out[j])
	})

	return out, nil
}

func (r *EntryRepository) Update(ctx context.Context, id string, fn func(e *models.QueueEntry) error) (*models.QueueEntry, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur.IsTerminal() {
		return nil, qerrors.ErrInvalidState
	}

	next := cur.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	data, err := json.Marshal(next)
	if err != nil {
		return nil, qerrors.Infra("entry.update", err)
	}

	if _, err := r.cli.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, entryKey(id), data, 0)
		if next.IsTerminal() {
			finished := next.UpdatedAt
			if next.FinishedAt != nil {
				finished = *next.FinishedAt
			}
			pipe.ZRem(ctx, activeKey(next.BarbershopID), id)
			pipe.ZAdd(ctx, historyKey(next.BarbershopID), redis.Z{
				Score:  float64(finished.UnixMilli()),
				Member: id,
			})
		}
		return nil
	}); err != nil {
		r.l.Errorf(ctx, "redisEntryRepository.Update: %v", err)
		return nil, qerrors.Infra("entry.update", err)
	}

	return next, nil
}

func (r *EntryRepository) UpdatePositions(ctx context.Context, shopID string, positions map[string]int) error {
	if len(positions) == 0 {
		return nil
	}

	ids := make([]string, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries, err := r.load(ctx, ids)
	if err != nil {
		return err
	}
	if len(entries) != len(ids) {
		return qerrors.ErrEntryNotFound
	}

	if _, err := r.cli.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, e := range entries {
			if e.BarbershopID != shopID {
				return qerrors.ErrEntryNotFound
			}
			e.Position = positions[e.ID]
			data, err := json.Marshal(e)
			if err != nil {
				return err
			}
			pipe.Set(ctx, entryKey(e.ID), data, 0)
		}
		return nil
	}); err != nil {
		if errors.Is(err, qerrors.ErrEntryNotFound) {
			return err
		}
		r.l.Errorf(ctx, "redisEntryRepository.UpdatePositions: %v", err)
		return qerrors.Infra("entry.update_positions", err)
	}

	r.l.Debug(ctx, "Positions updated",
		"barbershop_id", shopID,
		"count", len(ids),
	)

	return nil
}

func (r *EntryRepository) ListTerminal(ctx context.Context, shopID string, from, to time.Time) ([]*models.QueueEntry, error) {
	ids, err := r.cli.ZRangeByScore(ctx, historyKey(shopID), &redis.ZRangeBy{
		Min: strconv.FormatInt(from.UnixMilli(), 10),
		Max: strconv.FormatInt(to.UnixMilli(), 10),
	}).Result()
	if err != nil {
		r.l.Errorf(ctx, "redisEntryRepository.ListTerminal: %v", err)
		return nil, qerrors.Infra("entry.list_terminal", err)
	}

	return r.load(ctx, ids)
}

// load fetches entries in one round trip, skipping ids whose blob has disappeared.
func (r *EntryRepository) load(ctx context.Context, ids []string) ([]*models.QueueEntry, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = entryKey(id)
	}

	vals, err := r.cli.MGet(ctx, keys...).Result()
	if err != nil {
		r.l.Errorf(ctx, "redisEntryRepository.load: %v", err)
		return nil, qerrors.Infra("entry.load", err)
	}

	out := make([]*models.QueueEntry, 0, len(vals))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			r.l.Warn(ctx, "Entry blob missing", "entry_id", ids[i])
			continue
		}
		var e models.QueueEntry
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			r.l.Errorf(ctx, "redisEntryRepository.load.Unmarshal: %v", err)
			return nil, qerrors.Infra("entry.load", err)
		}
		out = append(out, &e)
	}

	return out, nil
}
