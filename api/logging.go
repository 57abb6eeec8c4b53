package api

import (
	"github.com/carlosgonzalezvergara/vendler/logger"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"net/http"
	"time"
)

var defaultLogger = logger.NewLogger("API")

type endpointLoggerFields struct {
	Method string `json:"method"`
	Url    string `json:"url"`
}

const (
	RequestInfoFieldsKey = "request_info"
	requestLoggerKey     = "logger"
)

func makeRequestLogger(request *http.Request) zerolog.Logger {
	fields := endpointLoggerFields{
		Method: request.Method,
		Url:    request.URL.String(),
	}
	return defaultLogger.
		With().Interface(RequestInfoFieldsKey, fields).Logger()
}

// requestLogging gives every request its logger and reports the outcome.
func requestLogging(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		reqLogger := makeRequestLogger(c.Request())
		c.Set(requestLoggerKey, &reqLogger)

		err := next(c)
		if err != nil {
			c.Error(err)
		}
		status := c.Response().Status
		event := reqLogger.Info()
		if status >= http.StatusInternalServerError {
			event = reqLogger.Error().Err(err)
		}
		event.Int("status", status).Dur("latency", time.Since(start)).Msg("Finished processing request")
		return nil
	}
}

func requestLogger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get(requestLoggerKey).(*zerolog.Logger); ok {
		return l
	}
	reqLogger := makeRequestLogger(c.Request())
	return &reqLogger
}
