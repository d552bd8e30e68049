package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outrunner/model"
)

func params() model.Params {
	return model.Params{
		WireThickness:   0.8,
		MagnetWidth:     10,
		MagnetHeight:    15,
		MagnetThickness: 3,
		MinDiameter:     30,
		MaxDiameter:     40,
		TargetKV:        800,
	}
}

func TestKey(t *testing.T) {
	k := Key(params())
	assert.True(t, strings.HasPrefix(k, keyPrefix))
	assert.Equal(t, k, Key(params()))

	other := params()
	other.TargetKV = 801
	assert.NotEqual(t, k, Key(other))

	// 交换字段值不应得到相同的 key
	swapped := params()
	swapped.MinDiameter, swapped.MaxDiameter = 40, 30
	assert.NotEqual(t, k, Key(swapped))
}

func TestNilCacheIsDisabled(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	_, ok, err := c.Get(ctx, params())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Set(ctx, params(), model.MotorDesign{}))
	assert.NoError(t, c.Close())
}

func TestGetSetRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	ttl := 2 * time.Hour

	c, err := Dial(ctx, mr.Addr(), 0, ttl)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	_, ok, err := c.Get(ctx, params())
	require.NoError(t, err)
	assert.False(t, ok)

	design := model.MotorDesign{
		MotorDiameter: 35,
		SlotCount:     21,
		PoleCount:     22,
		WindingType:   model.Distributed,
		TurnsPerCoil:  4,
		EstimatedKV:   11.6138,
		TargetKV:      800,
		Timestamp:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, c.Set(ctx, params(), design))

	got, ok, err := c.Get(ctx, params())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, design, got)
	assert.Equal(t, ttl, mr.TTL(Key(params())))

	// 过期后视为未命中
	mr.FastForward(ttl + time.Second)
	_, ok, err = c.Get(ctx, params())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetCorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	c, err := Dial(ctx, mr.Addr(), 0, time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	require.NoError(t, mr.Set(Key(params()), "not json"))
	_, ok, err := c.Get(ctx, params())
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestDialUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := Dial(ctx, addr, 0, time.Hour)
	assert.Error(t, err)
}
