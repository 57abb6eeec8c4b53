package logger

import (
	"bytes"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		"WARN":    zerolog.WarnLevel,
		" Error ": zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
	}
	for value, want := range cases {
		t.Run(value, func(t *testing.T) {
			t.Setenv(LevelEnv, value)
			require.Equal(t, want, Level())
		})
	}
}

func TestHandleLogLine(t *testing.T) {
	wrapperLogger := zerolog.Nop()
	var dump panicDump

	handleLogLine([]byte(`{"level_name":"info"}`), &dump, wrapperLogger)
	handleLogLine([]byte("not json"), &dump, wrapperLogger)
	require.False(t, dump.started())

	handleLogLine([]byte("panic: boom"), &dump, wrapperLogger)
	require.True(t, dump.started())
	require.Equal(t, "boom", dump.message)

	handleLogLine([]byte(""), &dump, wrapperLogger)
	handleLogLine([]byte("goroutine 1 [running]:"), &dump, wrapperLogger)
	handleLogLine([]byte(`{"level_name":"info"}`), &dump, wrapperLogger)
	require.Equal(t, "goroutine 1 [running]:\n{\"level_name\":\"info\"}\n", dump.trace.String())
}

func TestExitEvent(t *testing.T) {
	SetupLogging()
	var out bytes.Buffer
	wrapperLogger := zerolog.New(&out)

	t.Run("Clean exit", func(t *testing.T) {
		out.Reset()
		exitEvent(0, &panicDump{}, wrapperLogger).Msg("done")
		require.Contains(t, out.String(), `"level_name":"info"`)
	})

	t.Run("Panic", func(t *testing.T) {
		out.Reset()
		dump := &panicDump{message: "boom"}
		dump.trace.WriteString("goroutine 1 [running]:\n")
		exitEvent(2, dump, wrapperLogger).Msg("done")
		require.Contains(t, out.String(), `"level_name":"error"`)
		require.Contains(t, out.String(), `"error":"boom"`)
		require.Contains(t, out.String(), `"stack_trace":"goroutine 1 [running]:\n"`)
	})
}
