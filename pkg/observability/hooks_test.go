package observability

import (
	"context"
	"testing"
	"time"
)

type recordingCacheHooks struct {
	hits, misses, sets int
}

func (r *recordingCacheHooks) OnCacheHit(context.Context, string)      { r.hits++ }
func (r *recordingCacheHooks) OnCacheMiss(context.Context, string)     { r.misses++ }
func (r *recordingCacheHooks) OnCacheSet(context.Context, string, int) { r.sets++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// None of these should panic
	Render().OnRenderStart(ctx, "slate")
	Render().OnRenderComplete(ctx, "slate", 1024, time.Millisecond)
	Cache().OnCacheHit(ctx, "sketch")
	Cache().OnCacheMiss(ctx, "sketch")
	Cache().OnCacheSet(ctx, "sketch", 1024)
	HTTP().OnRequest(ctx, "GET", "/api/sketch.svg")
	HTTP().OnResponse(ctx, "GET", "/api/sketch.svg", 200, time.Millisecond)
}

func TestSetCacheHooks(t *testing.T) {
	Reset()
	defer Reset()

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)

	ctx := context.Background()
	Cache().OnCacheHit(ctx, "sketch")
	Cache().OnCacheMiss(ctx, "sketch")
	Cache().OnCacheSet(ctx, "sketch", 42)

	if rec.hits != 1 || rec.misses != 1 || rec.sets != 1 {
		t.Errorf("hooks not invoked: %+v", rec)
	}
}

func TestSetNilKeepsPrevious(t *testing.T) {
	Reset()
	defer Reset()

	SetCacheHooks(nil)
	if Cache() == nil {
		t.Error("nil registration should keep the previous hooks")
	}
}
