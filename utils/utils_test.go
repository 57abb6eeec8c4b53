package utils

import (
	"errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestHashString(t *testing.T) {
	require.Equal(t, HashString("abierto"), HashString("abierto"))
	require.NotEqual(t, HashString("abierto"), HashString("abierta"))
}

func TestRecoverWithError(t *testing.T) {
	run := func(fn func()) (err error) {
		defer RecoverWithError(&err)
		fn()
		return nil
	}
	require.NoError(t, run(func() {}))

	err := run(func() { panic("boom") })
	require.EqualError(t, err, "got panic: boom")

	err = run(func() { panic(errors.New("wrapped")) })
	require.EqualError(t, err, "got panic: wrapped")
}
