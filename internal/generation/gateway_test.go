package generation_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prachinebangla/seogen/internal/generation"
	"github.com/prachinebangla/seogen/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const testPrompt = "Extract the product name from: Fexomin 120mg Tablet"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGateway(t *testing.T, backend generation.Backend, opts ...generation.GatewayOption) *generation.Gateway {
	t.Helper()
	gw, err := generation.NewGateway(backend, generation.GatewayConfig{
		MaxRetries: 3,
		Options:    generation.DefaultOptions(),
	}, discardLogger(), opts...)
	require.NoError(t, err)
	return gw
}

func TestGatewayGenerate(t *testing.T) {
	t.Parallel()

	errUnavailable := errors.New("backend unavailable")

	tests := []struct {
		name          string
		replies       []mocks.Reply
		wantText      string
		wantErr       error
		wantCalls     int
		wantSafeCalls []int
	}{
		{
			name:      "first call succeeds",
			replies:   []mocks.Reply{{Text: "Fexomin 120mg Tablet"}},
			wantText:  "Fexomin 120mg Tablet",
			wantCalls: 1,
		},
		{
			name:      "reply is trimmed",
			replies:   []mocks.Reply{{Text: "\n  Fexomin 120mg Tablet \n"}},
			wantText:  "Fexomin 120mg Tablet",
			wantCalls: 1,
		},
		{
			name:          "empty reply is reprompted within the same attempt",
			replies:       []mocks.Reply{{Text: "   "}, {Text: "Safe answer"}},
			wantText:      "Safe answer",
			wantCalls:     2,
			wantSafeCalls: []int{1},
		},
		{
			name:      "error moves to the next attempt with the original prompt",
			replies:   []mocks.Reply{{Err: errUnavailable}, {Text: "Recovered"}},
			wantText:  "Recovered",
			wantCalls: 2,
		},
		{
			name:          "error on safe prompt before the last attempt is swallowed",
			replies:       []mocks.Reply{{Text: ""}, {Err: errUnavailable}, {Text: "Third call"}},
			wantText:      "Third call",
			wantCalls:     3,
			wantSafeCalls: []int{1},
		},
		{
			name:      "error on every attempt",
			replies:   []mocks.Reply{{Err: errUnavailable}},
			wantErr:   errUnavailable,
			wantCalls: 3,
		},
		{
			name:          "empty reply on every call",
			replies:       []mocks.Reply{{Text: ""}},
			wantErr:       generation.ErrEmptyResponse,
			wantCalls:     6,
			wantSafeCalls: []int{1, 3, 5},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			backend := mocks.NewMockBackendWithReplies(tc.replies...)
			gw := newTestGateway(t, backend)

			text, err := gw.Generate(context.Background(), testPrompt)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, generation.ErrGenerationFailed, "exhaustion must be a generation failure")
				assert.ErrorIs(t, err, tc.wantErr, "the cause should be preserved")
				assert.Empty(t, text)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantText, text)
			}

			assert.Equal(t, tc.wantCalls, backend.CallCount(), "unexpected number of backend calls")
			for i := 0; i < backend.CallCount(); i++ {
				want := testPrompt
				for _, s := range tc.wantSafeCalls {
					if s == i {
						want = generation.SafePrompt(testPrompt)
					}
				}
				assert.Equal(t, want, backend.Prompt(i), "prompt of call %d", i)
			}
		})
	}
}

func TestGatewayPassesOptions(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockBackendWithText("ok")
	gw := newTestGateway(t, backend)

	_, err := gw.Generate(context.Background(), testPrompt)
	require.NoError(t, err)

	require.Len(t, backend.GenerateCalls.Options, 1)
	opts := backend.GenerateCalls.Options[0]
	assert.InDelta(t, 0.5, opts.Temperature, 1e-6)
	assert.InDelta(t, 0.94, opts.TopP, 1e-6)
	assert.Equal(t, int32(1024), opts.MaxOutputTokens)
	assert.True(t, opts.BlockUnsafeContent)
}

func TestGatewayRecordsEvents(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockBackendWithReplies(
		mocks.Reply{Err: errors.New("boom")},
		mocks.Reply{Text: ""},
		mocks.Reply{Text: "done"},
	)
	recorder := mocks.NewMockRecorder()
	gw := newTestGateway(t, backend, generation.WithRecorder(recorder))

	text, err := gw.Generate(context.Background(), testPrompt)
	require.NoError(t, err)
	assert.Equal(t, "done", text)

	assert.Equal(t, 1, recorder.Attempts(generation.OutcomeError))
	assert.Equal(t, 1, recorder.Attempts(generation.OutcomeInvalid))
	assert.Equal(t, 1, recorder.Attempts(generation.OutcomeSuccess))
	assert.Equal(t, 1, recorder.Reprompts())
	assert.Same(t, recorder, gw.Recorder())
}

func TestGatewayCanceledContext(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockBackendWithText("never returned")
	gw := newTestGateway(t, backend)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.Generate(ctx, testPrompt)
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, backend.CallCount(), "no backend call after cancellation")
}

func TestGatewayAttemptTimeout(t *testing.T) {
	t.Parallel()

	backend := &mocks.MockBackend{
		GenerateFn: func(ctx context.Context, _ string, _ generation.Options) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	gw, err := generation.NewGateway(backend, generation.GatewayConfig{
		MaxRetries:     2,
		AttemptTimeout: 10 * time.Millisecond,
	}, discardLogger())
	require.NoError(t, err)

	_, err = gw.Generate(context.Background(), testPrompt)
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 2, backend.CallCount())
}

func TestGatewayRateLimiter(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockBackendWithText("ok")
	limiter := rate.NewLimiter(rate.Inf, 1)
	gw := newTestGateway(t, backend, generation.WithRateLimiter(limiter))

	for i := 0; i < 3; i++ {
		_, err := gw.Generate(context.Background(), testPrompt)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, backend.CallCount())
}

func TestNewGateway(t *testing.T) {
	t.Parallel()

	t.Run("nil backend", func(t *testing.T) {
		t.Parallel()
		_, err := generation.NewGateway(nil, generation.GatewayConfig{}, discardLogger())
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})

	t.Run("nil logger", func(t *testing.T) {
		t.Parallel()
		_, err := generation.NewGateway(mocks.NewMockBackendWithText("x"), generation.GatewayConfig{}, nil)
		assert.Error(t, err)
	})

	t.Run("non-positive retries use the default", func(t *testing.T) {
		t.Parallel()
		backend := mocks.NewMockBackendWithError(errors.New("down"))
		gw, err := generation.NewGateway(backend, generation.GatewayConfig{MaxRetries: 0}, discardLogger())
		require.NoError(t, err)

		_, err = gw.Generate(context.Background(), testPrompt)
		assert.Error(t, err)
		assert.Equal(t, generation.DefaultMaxRetries, backend.CallCount())
	})
}

func TestBackendFunc(t *testing.T) {
	t.Parallel()

	var got string
	f := generation.BackendFunc(func(_ context.Context, prompt string, _ generation.Options) (string, error) {
		got = prompt
		return "reply", nil
	})

	text, err := f.Generate(context.Background(), "hello", generation.Options{})
	require.NoError(t, err)
	assert.Equal(t, "reply", text)
	assert.Equal(t, "hello", got)
}
