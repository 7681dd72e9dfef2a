package fetch

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebouncerCoalescesRapidTriggers(t *testing.T) {
	debouncer := NewDebouncer(50 * time.Millisecond)

	var runs atomic.Int32

	for range 5 {
		debouncer.Trigger(func() {
			runs.Add(1)
		})
	}

	require.Eventually(t, func() bool {
		return runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// No further invocation fires after the pause.
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, int32(1), runs.Load())
}

func TestDebouncerRunsLatestFunction(t *testing.T) {
	debouncer := NewDebouncer(20 * time.Millisecond)

	var value atomic.Int32

	debouncer.Trigger(func() { value.Store(1) })
	debouncer.Trigger(func() { value.Store(2) })

	require.Eventually(t, func() bool {
		return value.Load() == 2
	}, time.Second, time.Millisecond)
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	debouncer := NewDebouncer(20 * time.Millisecond)

	var runs atomic.Int32

	debouncer.Trigger(func() {
		runs.Add(1)
	})
	debouncer.Stop()

	time.Sleep(60 * time.Millisecond)
	require.Equal(t, int32(0), runs.Load())
}
