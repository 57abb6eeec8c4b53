package logger

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/rs/zerolog"
	"os"
	"os/exec"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
)

// WrapProcess runs the executable as a child, passes its JSON log lines
// through and reports a panic dump on its stderr as one error entry.
// It exits with the child's exit code.
func WrapProcess(executable string, arg ...string) {
	wrapperLogger := NewLogger("Logs wrapper")
	defer handlePanic(wrapperLogger)

	r, w, err := os.Pipe()
	if err != nil {
		wrapperLogger.Fatal().Err(err).Msg("Could not create pipe for logs")
		os.Exit(1)
	}

	cmd := exec.Command(executable, arg...)
	cmd.Stderr = w
	cmd.Stdout = os.Stdout

	if err = cmd.Start(); err != nil {
		wrapperLogger.Fatal().Err(err).Msg("Could not launch main process")
		os.Exit(1)
	}
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)

	exitCodeCh := make(chan int)
	logsCh := make(chan []byte)

	go waitForCommandToExit(cmd, wrapperLogger, exitCodeCh)
	go collectLogs(r, wrapperLogger, logsCh)

	var dump panicDump
	for {
		select {
		case sig := <-signals:
			wrapperLogger.Info().Str("signal", sig.String()).Msg("Forwarding signal to main process")
			_ = cmd.Process.Signal(sig)
		case exitCode := <-exitCodeCh:
			handleExit(exitCode, &dump, wrapperLogger)
		case line := <-logsCh:
			handleLogLine(line, &dump, wrapperLogger)
		}
	}
}

// panicDump collects a Go panic printed by the child: the first line carries
// the panic value, the rest is the goroutine trace.
type panicDump struct {
	message string
	trace   strings.Builder
}

func (d *panicDump) started() bool {
	return d.message != ""
}

// add consumes the line when it belongs to the dump.
func (d *panicDump) add(line string) bool {
	switch {
	case d.started():
		if line != "" {
			d.trace.WriteString(line + "\n")
		}
		return true
	case strings.HasPrefix(line, "panic: "):
		d.message = strings.TrimPrefix(line, "panic: ")
		return true
	}
	return false
}

func waitForCommandToExit(cmd *exec.Cmd, wrapperLogger zerolog.Logger, exitCodeCh chan<- int) {
	defer handlePanic(wrapperLogger)
	err := cmd.Wait()
	if err == nil {
		exitCodeCh <- 0
		return
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		exitCodeCh <- 1
		return
	}
	exitCodeCh <- exitErr.ExitCode()
}

func collectLogs(r *os.File, wrapperLogger zerolog.Logger, logsCh chan<- []byte) {
	defer handlePanic(wrapperLogger)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := make([]byte, len(scanner.Bytes()))
		copy(line, scanner.Bytes())
		logsCh <- line
	}
	if err := scanner.Err(); err != nil {
		wrapperLogger.Fatal().Err(err).Msg("Error scanning piped main process's Stderr")
		os.Exit(1)
	}
}

func handleExit(exitCode int, dump *panicDump, wrapperLogger zerolog.Logger) {
	exitEvent(exitCode, dump, wrapperLogger).Int("exit_code", exitCode).Msg("Main process exited")
	os.Exit(exitCode)
}

func exitEvent(exitCode int, dump *panicDump, wrapperLogger zerolog.Logger) *zerolog.Event {
	switch {
	case exitCode == 0:
		return wrapperLogger.Info()
	case dump.started():
		return wrapperLogger.Error().
			Err(errors.New(dump.message)).
			Str("stack_trace", dump.trace.String())
	}
	return wrapperLogger.Error()
}

// handleLogLine forwards JSON lines and keeps panic output for the exit entry.
func handleLogLine(line []byte, dump *panicDump, wrapperLogger zerolog.Logger) {
	text := string(line)
	switch {
	case dump.add(text), text == "":
	case isJSON(line):
		_, _ = fmt.Fprintln(os.Stderr, text)
	default:
		wrapperLogger.Warn().Str("line", text).Msg("Got log line that is not JSON formatted")
	}
}

func handlePanic(wrapperLogger zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	wrapperLogger.Fatal().
		Caller().
		Interface("panic", r).
		Str("stack_trace", string(debug.Stack())).
		Msg("Logs wrapper panicked")
}

func isJSON(b []byte) bool {
	var js json.RawMessage
	err := json.Unmarshal(b, &js)
	return err == nil && js != nil
}
