package order_test

import (
	"math"
	"testing"
	"time"

	"loading/internal/core/domain/model/order"
	"loading/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReading(t *testing.T) {
	t.Run("should keep all values in UTC", func(t *testing.T) {
		local := time.Date(2026, 3, 14, 6, 0, 0, 0, time.FixedZone("ART", -3*3600))

		r, err := order.NewReading(local, 1200, 850.2, 4.5, 118)

		require.NoError(t, err)
		assert.Equal(t, time.UTC, r.Timestamp().Location())
		assert.True(t, r.Timestamp().Equal(local))
		assert.InDelta(t, 1200.0, r.AccumulatedMass(), 1e-9)
		assert.InDelta(t, 850.2, r.Density(), 1e-9)
		assert.InDelta(t, 4.5, r.Temperature(), 1e-9)
		assert.InDelta(t, 118.0, r.FlowRate(), 1e-9)
	})

	t.Run("should reject zero timestamps and non finite values", func(t *testing.T) {
		_, err := order.NewReading(time.Time{}, 1, 1, 1, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewReading(now, math.NaN(), 1, math.Inf(1), 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "accumulated_mass")
		assert.Contains(t, err.Error(), "temperature")
	})
}

func TestNewDetail(t *testing.T) {
	r, err := order.NewReading(now, 1, 2, 3, 4)
	require.NoError(t, err)

	t.Run("should bind a reading to its order", func(t *testing.T) {
		d, err := order.NewDetail("OC-1", r)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Zero(t, d.ID())
		d.AssignID(15)
		assert.Equal(t, int64(15), d.ID())
	})

	t.Run("should require the order number", func(t *testing.T) {
		_, err := order.NewDetail(" ", r)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should restore with id", func(t *testing.T) {
		d, err := order.RestoreDetail(99, "OC-1", r)

		require.NoError(t, err)
		assert.Equal(t, int64(99), d.ID())
		assert.Equal(t, "OC-1", d.OrderNumber())
	})
}
