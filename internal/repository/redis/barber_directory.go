package repository

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/redis/go-redis/v9"
	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
)

// BarberDirectory keeps one hash per barber (shop id -> assignment) and a set of
// active barber ids per shop.
type BarberDirectory struct {
	cli *redis.Client
	l   logger.Logger
}

func NewBarberDirectory(cli *redis.Client, l logger.Logger) *BarberDirectory {
	return &BarberDirectory{
		cli: cli,
		l:   l,
	}
}

func (d *BarberDirectory) ListByBarber(ctx context.Context, barberID string) ([]*models.BarberAssignment, error) {
	vals, err := d.cli.HGetAll(ctx, barberKey(barberID)).Result()
	if err != nil {
		d.l.Errorf(ctx, "redisBarberDirectory.ListByBarber: %v", err)
		return nil, qerrors.Infra("barber.list", err)
	}

	out := make([]*models.BarberAssignment, 0, len(vals))
	for _, v := range vals {
		var a models.BarberAssignment
		if err := json.Unmarshal([]byte(v), &a); err != nil {
			d.l.Errorf(ctx, "redisBarberDirectory.ListByBarber.Unmarshal: %v", err)
			return nil, qerrors.Infra("barber.list", err)
		}
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BarbershopID < out[j].BarbershopID
	})

	return out, nil
}

func (d *BarberDirectory) ListActiveInShop(ctx context.Context, shopID string) ([]string, error) {
	ids, err := d.cli.SMembers(ctx, shopBarbersKey(shopID)).Result()
	if err != nil {
		d.l.Errorf(ctx, "redisBarberDirectory.ListActiveInShop: %v", err)
		return nil, qerrors.Infra("barber.list_active", err)
	}
	sort.Strings(ids)

	return ids, nil
}

func (d *BarberDirectory) IsActive(ctx context.Context, barberID, shopID string) (bool, error) {
	ok, err := d.cli.SIsMember(ctx, shopBarbersKey(shopID), barberID).Result()
	if err != nil {
		d.l.Errorf(ctx, "redisBarberDirectory.IsActive: %v", err)
		return false, qerrors.Infra("barber.is_active", err)
	}

	return ok, nil
}

func (d *BarberDirectory) SaveAll(ctx context.Context, as []*models.BarberAssignment) error {
	if _, err := d.cli.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, a := range as {
			data, err := json.Marshal(a)
			if err != nil {
				return err
			}
			pipe.HSet(ctx, barberKey(a.BarberID), a.BarbershopID, data)
			if a.Active {
				pipe.SAdd(ctx, shopBarbersKey(a.BarbershopID), a.BarberID)
			} else {
				pipe.SRem(ctx, shopBarbersKey(a.BarbershopID), a.BarberID)
			}
		}
		return nil
	}); err != nil {
		d.l.Errorf(ctx, "redisBarberDirectory.SaveAll: %v", err)
		return qerrors.Infra("barber.save", err)
	}

	return nil
}
