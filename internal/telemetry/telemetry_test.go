package telemetry_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/telemetry"
)

// providerOnce ensures we only create one Provider per test run to avoid
// duplicate Prometheus metric registration errors from promauto's global registry
var (
	testProvider *telemetry.Provider
	providerOnce sync.Once
)

func getTestProvider(t *testing.T) *telemetry.Provider {
	t.Helper()
	providerOnce.Do(func() {
		testProvider = telemetry.NewProvider()
	})
	return testProvider
}

func TestNewProvider(t *testing.T) {
	provider := getTestProvider(t)
	if provider == nil {
		t.Fatal("expected non-nil provider")
	}
	if provider.Tracer == nil {
		t.Error("expected non-nil tracer")
	}
	if provider.Metrics == nil {
		t.Error("expected non-nil metrics")
	}
}

func TestRecordNormalization(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordNormalization(ctx, "html", "activity", 10*time.Millisecond)
	provider.RecordNormalization(ctx, "pdf_text", "generic", 5*time.Millisecond)
	provider.RecordNormalizationFailure(ctx, "transform")
}

func TestRecordBatchAndDuplicates(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	provider.RecordBatch(ctx, 10)
	provider.RecordDuplicate(ctx)
	provider.RecordValidationFailures(ctx, 2)
	provider.SetDedupIndexSize(42)
}

func TestRecordTagging(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	provider.RecordTagging(ctx, 2*time.Millisecond, 3, 1)
}

func TestHandler(t *testing.T) {
	provider := getTestProvider(t)
	if provider.Handler() == nil {
		t.Error("expected non-nil metrics handler")
	}
}

func TestStartSpan(t *testing.T) {
	provider := getTestProvider(t)
	ctx, span := provider.StartSpan(context.Background(), "normalize")
	if ctx == nil || span == nil {
		t.Fatal("expected span and context")
	}
	span.End()
}
