package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigure_OverridesAndKeepsZeroValues(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Configure(Config{
		Short: 7 * time.Second,
		Batch: 2 * time.Minute,
	})

	if got := Short(); got != 7*time.Second {
		t.Errorf("Short: got %v, want %v", got, 7*time.Second)
	}
	if got := Batch(); got != 2*time.Minute {
		t.Errorf("Batch: got %v, want %v", got, 2*time.Minute)
	}
	// Zero values in the config leave the defaults alone.
	if got := Medium(); got != DefaultMedium {
		t.Errorf("Medium: got %v, want default %v", got, DefaultMedium)
	}
	if got := Ping(); got != DefaultPing {
		t.Errorf("Ping: got %v, want default %v", got, DefaultPing)
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	Configure(Config{Ping: time.Minute, Long: time.Hour})
	Reset()

	cur := Current()
	want := Config{
		Ping:   DefaultPing,
		Short:  DefaultShort,
		Medium: DefaultMedium,
		Long:   DefaultLong,
		Batch:  DefaultBatch,
	}
	if cur != want {
		t.Errorf("Current after Reset: got %+v, want %+v", cur, want)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Setenv("TIMEOUT_SHORT", "3s")
	t.Setenv("TIMEOUT_BATCH", "2m")
	t.Setenv("TIMEOUT_PING", "not-a-duration")

	if got := ConfigureFromEnv(); got != 2 {
		t.Fatalf("ConfigureFromEnv: got %d overrides, want 2", got)
	}
	if got := Short(); got != 3*time.Second {
		t.Errorf("Short: got %v, want %v", got, 3*time.Second)
	}
	if got := Batch(); got != 2*time.Minute {
		t.Errorf("Batch: got %v, want %v", got, 2*time.Minute)
	}
	// The malformed value is skipped, not applied as zero.
	if got := Ping(); got != DefaultPing {
		t.Errorf("Ping: got %v, want default %v", got, DefaultPing)
	}
}

func TestWithTimeout_WarnsOnDeadline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, log, "roster reconcile sweep")
	<-ctx.Done()
	cancel()

	entries := logs.FilterMessage("operation timed out").All()
	if len(entries) != 1 {
		t.Fatalf("warn entries: got %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["operation"]; got != "roster reconcile sweep" {
		t.Errorf("operation field: got %v", got)
	}
}

func TestWithTimeout_SilentOnNormalCompletion(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	ctx, cancel := WithTimeout(context.Background(), time.Minute, log, "catalog seed")
	if _, ok := ctx.Deadline(); !ok {
		t.Fatal("expected a deadline on the derived context")
	}
	cancel()

	if n := logs.Len(); n != 0 {
		t.Errorf("warn entries after clean cancel: got %d, want 0", n)
	}

	// A nil logger is allowed; the deadline path must not panic.
	ctx, cancel = WithTimeout(context.Background(), time.Millisecond, nil, "catalog seed")
	<-ctx.Done()
	cancel()
}
