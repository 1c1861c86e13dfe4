package revenuerollup

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis keeps hashes in memory and implements the cmdable subset.
type fakeRedis struct {
	mu      sync.Mutex
	hashes  map[string]map[string]string
	expires map[string]time.Duration
	failOn  string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{hashes: make(map[string]map[string]string), expires: make(map[string]time.Duration)}
}

func (f *fakeRedis) fail(cmd string) error {
	if f.failOn == cmd {
		return errors.New("connection refused")
	}
	return nil
}

func (f *fakeRedis) HIncrBy(_ context.Context, key, field string, incr int64) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("hincrby"); err != nil {
		return redis.NewIntResult(0, err)
	}
	h := f.hash(key)
	current, _ := strconv.ParseInt(h[field], 10, 64)
	current += incr
	h[field] = strconv.FormatInt(current, 10)
	return redis.NewIntResult(current, nil)
}

func (f *fakeRedis) HGetAll(_ context.Context, key string) *redis.MapStringStringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("hgetall"); err != nil {
		return redis.NewMapStringStringResult(nil, err)
	}
	out := make(map[string]string, len(f.hashes[key]))
	for k, v := range f.hashes[key] {
		out[k] = v
	}
	return redis.NewMapStringStringResult(out, nil)
}

func (f *fakeRedis) HSet(_ context.Context, key string, values ...any) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := f.hash(key)
	for i := 0; i+1 < len(values); i += 2 {
		h[values[i].(string)] = toString(values[i+1])
	}
	return redis.NewIntResult(int64(len(values)/2), nil)
}

func (f *fakeRedis) Rename(_ context.Context, key, newkey string) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("rename"); err != nil {
		return redis.NewStatusResult("", err)
	}
	f.hashes[newkey] = f.hashes[key]
	delete(f.hashes, key)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Expire(_ context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expires[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) hash(key string) map[string]string {
	h, ok := f.hashes[key]
	if !ok {
		h = make(map[string]string)
		f.hashes[key] = h
	}
	return h
}

func toString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case int64:
		return strconv.FormatInt(value, 10)
	default:
		panic("unexpected hash value type")
	}
}

func march(t *testing.T, day int) kernel.Date {
	t.Helper()
	d, err := kernel.NewDate(2024, time.March, day)
	require.NoError(t, err)
	return d
}

func TestRollup_MonthNotBuilt(t *testing.T) {
	ctx := t.Context()
	fake := newFakeRedis()
	rollup, err := New(fake, 0)
	require.NoError(t, err)
	storeID := kernel.NewUUID()

	require.NoError(t, rollup.Increment(ctx, storeID, march(t, 14), kernel.MustMoney("30.00")))

	totals, ok, err := rollup.MonthTotals(ctx, storeID, march(t, 1))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, totals)
}

func TestRollup_ReplaceThenIncrement(t *testing.T) {
	ctx := t.Context()
	fake := newFakeRedis()
	rollup, err := New(fake, 400*24*time.Hour)
	require.NoError(t, err)
	storeID := kernel.NewUUID()

	require.NoError(t, rollup.ReplaceMonth(ctx, storeID, march(t, 1), map[int]kernel.Money{
		10: kernel.MustMoney("20.00"),
		14: kernel.MustMoney("30.00"),
	}))
	require.NoError(t, rollup.Increment(ctx, storeID, march(t, 14), kernel.MustMoney("45.75")))
	require.NoError(t, rollup.Increment(ctx, storeID, march(t, 14), kernel.MustMoney("0.10")))
	require.NoError(t, rollup.Increment(ctx, storeID, march(t, 14), kernel.MustMoney("0.20")))

	totals, ok, err := rollup.MonthTotals(ctx, storeID, march(t, 1))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, totals, 2)
	assert.Equal(t, "20.00", totals[10].String())
	assert.Equal(t, "76.05", totals[14].String())

	key := monthKey(storeID, march(t, 1))
	assert.Equal(t, 400*24*time.Hour, fake.expires[key])
	assert.NotContains(t, fake.hashes, key+":rebuild")
}

func TestRollup_ReplaceMonthDropsStaleDays(t *testing.T) {
	ctx := t.Context()
	fake := newFakeRedis()
	rollup, err := New(fake, 0)
	require.NoError(t, err)
	storeID := kernel.NewUUID()

	require.NoError(t, rollup.Increment(ctx, storeID, march(t, 3), kernel.MustMoney("99.99")))
	require.NoError(t, rollup.ReplaceMonth(ctx, storeID, march(t, 1), map[int]kernel.Money{}))

	totals, ok, err := rollup.MonthTotals(ctx, storeID, march(t, 1))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, totals)
	assert.Empty(t, fake.expires)
}

func TestRollup_MonthsAndStoresAreSeparate(t *testing.T) {
	ctx := t.Context()
	rollup, err := New(newFakeRedis(), 0)
	require.NoError(t, err)
	storeA, storeB := kernel.NewUUID(), kernel.NewUUID()
	april, err := kernel.NewDate(2024, time.April, 1)
	require.NoError(t, err)

	require.NoError(t, rollup.ReplaceMonth(ctx, storeA, march(t, 1), map[int]kernel.Money{1: kernel.MustMoney("1.00")}))
	require.NoError(t, rollup.Increment(ctx, storeA, april, kernel.MustMoney("5.00")))
	require.NoError(t, rollup.Increment(ctx, storeB, march(t, 1), kernel.MustMoney("7.00")))

	totals, ok, err := rollup.MonthTotals(ctx, storeA, march(t, 1))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, map[int]string{1: "1.00"}, stringify(totals))

	_, ok, err = rollup.MonthTotals(ctx, storeB, march(t, 1))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRollup_Errors(t *testing.T) {
	ctx := t.Context()
	fake := newFakeRedis()
	rollup, err := New(fake, 0)
	require.NoError(t, err)
	storeID := kernel.NewUUID()

	fake.failOn = "hgetall"
	_, _, err = rollup.MonthTotals(ctx, storeID, march(t, 1))
	require.ErrorContains(t, err, "connection refused")

	fake.failOn = "hincrby"
	require.Error(t, rollup.Increment(ctx, storeID, march(t, 1), kernel.MustMoney("1.00")))

	fake.failOn = "rename"
	require.Error(t, rollup.ReplaceMonth(ctx, storeID, march(t, 1), nil))

	require.Error(t, rollup.Increment(ctx, kernel.UUID{}, march(t, 1), kernel.MustMoney("1.00")))

	_, err = New(nil, 0)
	require.Error(t, err)
}

func TestMonthKey(t *testing.T) {
	storeID := kernel.MustUUIDFromString("11111111-1111-4111-8111-111111111111")
	assert.Equal(t, "fulfillment:revenue:11111111-1111-4111-8111-111111111111:2024-03", monthKey(storeID, march(t, 14)))
}

func stringify(totals map[int]kernel.Money) map[int]string {
	out := make(map[int]string, len(totals))
	for day, m := range totals {
		out[day] = m.String()
	}
	return out
}
