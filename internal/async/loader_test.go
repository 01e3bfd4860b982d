package async

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoaderResolvesSuccess(t *testing.T) {
	loader := NewLoader[string]()

	if !loader.Result().IsIdle() {
		t.Fatal("expected a fresh loader to be idle")
	}

	result := loader.Load(context.Background(), func(ctx context.Context) (string, error) {
		return "hello", nil
	})

	if !result.IsSuccess() {
		t.Fatalf("expected success, got %v", result.State())
	}
	if got := result.MustValue(); got != "hello" {
		t.Errorf("value = %q, want %q", got, "hello")
	}
	if !loader.Result().IsSuccess() {
		t.Error("expected loader to retain the resolved result")
	}
}

func TestLoaderResolvesError(t *testing.T) {
	loader := NewLoader[string]()

	result := loader.Load(context.Background(), func(ctx context.Context) (string, error) {
		return "", errors.New("backend unavailable")
	})

	if !result.IsError() {
		t.Fatalf("expected error, got %v", result.State())
	}
	if got := result.Message(); got != "backend unavailable" {
		t.Errorf("message = %q, want %q", got, "backend unavailable")
	}
}

// A second load started while the first is still in flight wins: the
// first load's resolution is dropped and both calls observe the second
// load's result.
func TestLoaderSupersedesStaleLoad(t *testing.T) {
	loader := NewLoader[int]()

	firstStarted := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan Result[int], 1)

	go func() {
		firstDone <- loader.Load(context.Background(), func(ctx context.Context) (int, error) {
			close(firstStarted)
			<-release
			return 1, nil
		})
	}()

	<-firstStarted

	second := loader.Load(context.Background(), func(ctx context.Context) (int, error) {
		return 2, nil
	})

	close(release)

	first := <-firstDone

	if got := second.MustValue(); got != 2 {
		t.Errorf("second load value = %d, want 2", got)
	}
	if got := first.MustValue(); got != 2 {
		t.Errorf("superseded load should observe the newer result, got %d", got)
	}
	if got := loader.Result().MustValue(); got != 2 {
		t.Errorf("loader result = %d, want 2", got)
	}
}

func TestLoaderCancelsInFlightContext(t *testing.T) {
	loader := NewLoader[int]()

	firstStarted := make(chan struct{})
	firstCtx := make(chan context.Context, 1)

	go func() {
		loader.Load(context.Background(), func(ctx context.Context) (int, error) {
			firstCtx <- ctx
			close(firstStarted)
			<-ctx.Done()
			return 0, ctx.Err()
		})
	}()

	<-firstStarted

	loader.Load(context.Background(), func(ctx context.Context) (int, error) {
		return 2, nil
	})

	select {
	case ctx := <-firstCtx:
		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Error("expected the first load's context to be cancelled")
		}
	case <-time.After(time.Second):
		t.Fatal("first load never started")
	}
}

func TestLoaderReset(t *testing.T) {
	loader := NewLoader[int]()

	loader.Load(context.Background(), func(ctx context.Context) (int, error) {
		return 7, nil
	})

	loader.Reset()

	if !loader.Result().IsIdle() {
		t.Errorf("expected idle after reset, got %v", loader.Result().State())
	}
}
