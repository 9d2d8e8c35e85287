package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_LoadsOnceUnderContention(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var loads atomic.Int32

	loader := func(context.Context) (any, error) {
		loads.Add(1)
		time.Sleep(10 * time.Millisecond)
		return "value", nil
	}

	const workers = 24
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				t.Errorf("get or load: %v", err)
				return
			}
			if got, _ := v.(string); got != "value" {
				t.Errorf("unexpected value: %v", v)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := loads.Load(); got != 1 {
		t.Fatalf("expected 1 load, got %d", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	store := NewStore(time.Minute)
	wantErr := errors.New("backing store down")

	_, err := store.GetOrLoad(context.Background(), "key", func(context.Context) (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected loader error, got %v", err)
	}

	v, err := store.GetOrLoad(context.Background(), "key", func(context.Context) (any, error) {
		return "recovered", nil
	})
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if v != "recovered" {
		t.Fatalf("unexpected value after recovery: %v", v)
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	ctx := context.Background()

	store.Set(ctx, "key", "value")
	if _, ok := store.Get(ctx, "key"); !ok {
		t.Fatalf("expected fresh entry")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := store.Get(ctx, "key"); ok {
		t.Fatalf("expected expired entry")
	}
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "key", "value")
	store.Delete(ctx, "key")
	if _, ok := store.Get(ctx, "key"); ok {
		t.Fatalf("expected deleted entry")
	}
}
