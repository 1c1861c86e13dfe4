// Package revenuerollup keeps the per-store, per-day revenue buckets in Redis.
// A month lives in one hash keyed by store and month; fields are days of
// month holding integer cents, plus a marker written only by a full rebuild.
package revenuerollup

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	keyNamespace = "fulfillment:revenue"
	builtField   = "built"
)

type cmdable interface {
	HIncrBy(ctx context.Context, key, field string, incr int64) *redis.IntCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	Rename(ctx context.Context, key, newkey string) *redis.StatusCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

var _ ports.RevenueRollup = (*Rollup)(nil)

// Rollup implements ports.RevenueRollup.
type Rollup struct {
	store cmdable
	ttl   time.Duration
}

// New wraps a go-redis client. Month hashes expire ttl after their last
// rebuild; zero keeps them forever.
func New(client cmdable, ttl time.Duration) (*Rollup, error) {
	if client == nil {
		return nil, errors.New("redis client required for revenue rollup")
	}
	return &Rollup{store: client, ttl: ttl}, nil
}

// Increment adds amount to day's bucket. Amounts are kept in cents.
func (r *Rollup) Increment(ctx context.Context, storeID kernel.UUID, day kernel.Date, amount kernel.Money) error {
	if err := errors.Join(storeID.Validate(), day.Validate(), amount.Validate()); err != nil {
		return err
	}
	key := monthKey(storeID, day)
	if err := r.store.HIncrBy(ctx, key, strconv.Itoa(day.Day()), cents(amount)).Err(); err != nil {
		return fmt.Errorf("hincrby %s: %w", key, err)
	}
	return nil
}

// MonthTotals returns ok=false until ReplaceMonth built the month at least once.
func (r *Rollup) MonthTotals(
	ctx context.Context,
	storeID kernel.UUID,
	month kernel.Date,
) (map[int]kernel.Money, bool, error) {
	key := monthKey(storeID, month)
	fields, err := r.store.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, false, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if _, built := fields[builtField]; !built {
		return nil, false, nil
	}

	totals := make(map[int]kernel.Money, len(fields)-1)
	for field, value := range fields {
		if field == builtField {
			continue
		}
		day, dayErr := strconv.Atoi(field)
		if dayErr != nil {
			return nil, false, fmt.Errorf("bucket %q of %s: %w", field, key, dayErr)
		}
		amount, amountErr := fromCents(value)
		if amountErr != nil {
			return nil, false, fmt.Errorf("bucket %d of %s: %w", day, key, amountErr)
		}
		if amount.Decimal().IsZero() {
			continue
		}
		totals[day] = amount
	}
	return totals, true, nil
}

// ReplaceMonth writes the month into a scratch key and renames it over the
// live one, so readers see either the old buckets or the new ones.
func (r *Rollup) ReplaceMonth(
	ctx context.Context,
	storeID kernel.UUID,
	month kernel.Date,
	totals map[int]kernel.Money,
) error {
	key := monthKey(storeID, month)
	scratch := key + ":rebuild"

	values := make([]any, 0, 2*len(totals)+2)
	values = append(values, builtField, time.Now().UTC().Format(time.RFC3339))
	for day, amount := range totals {
		values = append(values, strconv.Itoa(day), cents(amount))
	}

	if err := r.store.HSet(ctx, scratch, values...).Err(); err != nil {
		return fmt.Errorf("hset %s: %w", scratch, err)
	}
	if err := r.store.Rename(ctx, scratch, key).Err(); err != nil {
		return fmt.Errorf("rename %s: %w", scratch, err)
	}
	if r.ttl > 0 {
		if err := r.store.Expire(ctx, key, r.ttl).Err(); err != nil {
			return fmt.Errorf("expire %s: %w", key, err)
		}
	}
	return nil
}

func monthKey(storeID kernel.UUID, month kernel.Date) string {
	return fmt.Sprintf("%s:%s:%04d-%02d", keyNamespace, storeID, month.Year(), int(month.Month()))
}

func cents(m kernel.Money) int64 {
	return m.Decimal().Shift(kernel.CentPlaces).Round(0).IntPart()
}

func fromCents(value string) (kernel.Money, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return kernel.Money{}, err
	}
	return kernel.NewMoney(decimal.New(n, -kernel.CentPlaces))
}
