package orient

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerCountsWarningsAndErrors(t *testing.T) {
	l := NewDefaultLogger("test", false)
	warnings, errs := l.Counts()
	require.Zero(t, warnings)
	require.Zero(t, errs)

	l.Warnf("first warning")
	l.Warnf("second warning")
	l.Errorf("one error")

	warnings, errs = l.Counts()
	require.Equal(t, 2, warnings)
	require.Equal(t, 1, errs)
}

func TestDefaultLoggerDebugfRespectsToggle(t *testing.T) {
	l := NewDefaultLogger("", false)
	require.False(t, l.DebugEnabled())
	l.SetDebug(true)
	require.True(t, l.DebugEnabled())
}

func TestNopLoggerDiscardsEverything(t *testing.T) {
	l := NewNopLogger()
	require.False(t, l.DebugEnabled())
	l.SetDebug(true)
	require.False(t, l.DebugEnabled())
	l.Debugf("x")
	l.Infof("x")
	l.Warnf("x")
	l.Errorf("x")
}
