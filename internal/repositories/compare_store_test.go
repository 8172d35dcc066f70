package repositories

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"tripmarket/internal/domain"
	"tripmarket/internal/domain/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func TestCompareStoreWithoutRedis(t *testing.T) {
	s := CompareStore{}
	if _, err := s.List(context.Background(), "user-1"); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("expected ErrRedisUnavailable, got %v", err)
	}
	if _, err := s.Add(context.Background(), "user-1", "trip-1"); !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestTripCacheWithoutRedisIsAMiss(t *testing.T) {
	c := TripCache{TTL: time.Minute}
	c.Set(context.Background(), models.TripDetail{Trip: models.Trip{PublicID: "trip-1"}})
	if _, ok := c.Get(context.Background(), "trip-1"); ok {
		t.Fatalf("expected a miss without redis")
	}
	c.Invalidate(context.Background(), "trip-1")
}

func testRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestCompareStoreLimitAndIdempotentAdd(t *testing.T) {
	mr, client := testRedis(t)
	ctx := context.Background()
	user := "test-" + uuid.NewString()
	s := CompareStore{Redis: client, TTL: time.Minute, Limit: 3}

	for _, id := range []string{"a", "b", "c", "b"} {
		if _, err := s.Add(ctx, user, id); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	ids, err := s.List(ctx, user)
	if err != nil || len(ids) != 3 || ids[0] != "a" || ids[2] != "c" {
		t.Fatalf("got %v, %v", ids, err)
	}
	if ttl := mr.TTL(compareKey(user)); ttl != time.Minute {
		t.Fatalf("ttl = %v", ttl)
	}

	// Re-adding a listed trip on a full list is still a no-op.
	if ids, err := s.Add(ctx, user, "a"); err != nil || len(ids) != 3 {
		t.Fatalf("re-add on full list: %v, %v", ids, err)
	}
	if _, err := s.Add(ctx, user, "d"); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for a fourth trip, got %v", err)
	}

	ids, err = s.Remove(ctx, user, "b")
	if err != nil || len(ids) != 2 {
		t.Fatalf("after remove got %v, %v", ids, err)
	}
	if err := s.Clear(ctx, user); err != nil {
		t.Fatalf("clear: %v", err)
	}
	ids, _ = s.List(ctx, user)
	if len(ids) != 0 {
		t.Fatalf("expected empty list, got %v", ids)
	}
}

func TestCompareStoreConcurrentAddsNeverExceedLimit(t *testing.T) {
	_, client := testRedis(t)
	ctx := context.Background()
	user := "test-" + uuid.NewString()
	s := CompareStore{Redis: client, TTL: time.Minute, Limit: 3}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added []string
	)
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("trip-%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Add(ctx, user, id)
			if err == nil {
				mu.Lock()
				added = append(added, id)
				mu.Unlock()
				return
			}
			if !domain.IsConflict(err) {
				t.Errorf("add %s: unexpected error %v", id, err)
			}
		}()
	}
	wg.Wait()

	ids, err := s.List(ctx, user)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) > 3 || len(ids) != len(added) {
		t.Fatalf("list %v does not match successful adds %v", ids, added)
	}
	for _, id := range added {
		if !slices.Contains(ids, id) {
			t.Fatalf("%s reported added but missing from %v", id, ids)
		}
	}
}

func TestTripCacheRoundTrip(t *testing.T) {
	_, client := testRedis(t)
	ctx := context.Background()
	c := TripCache{Redis: client, TTL: time.Minute}
	id := "trip-" + uuid.NewString()

	c.Set(ctx, models.TripDetail{Trip: models.Trip{PublicID: id, Name: "Cached"}})
	got, ok := c.Get(ctx, id)
	if !ok || got.Trip.Name != "Cached" {
		t.Fatalf("got %+v, %v", got, ok)
	}
	c.Invalidate(ctx, id)
	if _, ok := c.Get(ctx, id); ok {
		t.Fatalf("expected a miss after invalidation")
	}
}
