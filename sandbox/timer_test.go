package sandbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimer(t *testing.T) {
	timer := NewTimer(100 * time.Millisecond)
	require.False(t, timer.IsReady())

	// 6 ticks at 60 TPS is 99.99ms
	for i := 0; i < 6; i++ {
		timer.Update()
	}
	require.False(t, timer.IsReady())

	timer.Update()
	require.True(t, timer.IsReady())

	timer.Reset()
	require.False(t, timer.IsReady())

	require.True(t, NewTimer(0).IsReady())
}
