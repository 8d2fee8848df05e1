package observability

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/screenruler/pkg/ruler"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// View hooks
	v := NoopViewHooks{}
	v.OnValidated(ruler.Defaults(1), ruler.Defaults(2))
	v.OnPersisted("ppi=150")
	v.OnRendered(ruler.Centimeter, 3, 12, time.Millisecond)

	// Sink hooks
	s := NoopSinkHooks{}
	s.OnRenderStart(ctx, "svg")
	s.OnRenderComplete(ctx, "svg", 1024, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := View().(NoopViewHooks); !ok {
		t.Error("View() should return NoopViewHooks by default")
	}
	if _, ok := Sink().(NoopSinkHooks); !ok {
		t.Error("Sink() should return NoopSinkHooks by default")
	}

	// Set custom hooks
	customView := &testViewHooks{}
	SetViewHooks(customView)
	if View() != customView {
		t.Error("SetViewHooks should set custom hooks")
	}

	customSink := &testSinkHooks{}
	SetSinkHooks(customSink)
	if Sink() != customSink {
		t.Error("SetSinkHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := View().(NoopViewHooks); !ok {
		t.Error("Reset() should restore NoopViewHooks")
	}
	if _, ok := Sink().(NoopSinkHooks); !ok {
		t.Error("Reset() should restore NoopSinkHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testViewHooks{}
	SetViewHooks(custom)

	// Setting nil should be ignored
	SetViewHooks(nil)

	if View() != custom {
		t.Error("SetViewHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testViewHooks struct{ NoopViewHooks }
type testSinkHooks struct{ NoopSinkHooks }
