package scheduling

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestGetDaySlotsServesCachedList(t *testing.T) {
	mr, client := setupTestCache(t)
	f := newFixture()
	f.svc.Cache = client

	mr.Set(slotCacheKey("p1", "2026-03-17", 60), `["13:00"]`)

	slots, err := f.svc.GetDaySlots(context.Background(), SlotQuery{
		PractitionerID: "p1", SessionTypeID: "st-60", Date: "2026-03-17",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"13:00"}, slots)
}

func TestBookingInvalidatesEveryCachedDuration(t *testing.T) {
	mr, client := setupTestCache(t)
	f := newFixture()
	f.svc.Cache = client

	// A booking shifts the open slots of every duration, not just the
	// booked one, so the whole date's cache entries must go.
	mr.Set(slotCacheKey("p1", "2026-03-17", 60), `["09:00"]`)
	mr.Set(slotCacheKey("p1", "2026-03-17", 30), `["09:00","09:30"]`)
	mr.Set(slotCacheKey("p1", "2026-03-18", 60), `["10:00"]`)

	_, err := f.svc.BookAppointment(context.Background(), bookingInput("2026-03-17", "09:00"))
	require.NoError(t, err)

	assert.False(t, mr.Exists(slotCacheKey("p1", "2026-03-17", 60)))
	assert.False(t, mr.Exists(slotCacheKey("p1", "2026-03-17", 30)))
	assert.True(t, mr.Exists(slotCacheKey("p1", "2026-03-18", 60)))
}
