package api

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/aktionsart"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/export"
	"github.com/carlosgonzalezvergara/vendler/ls"
	"github.com/carlosgonzalezvergara/vendler/sessionstore"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/cors"
	"gopkg.in/yaml.v3"
	"net/http"
)

type Config struct {
	Port           string   `envconfig:"VENDLER_API_PORT" default:"10000"`
	AllowedOrigins []string `envconfig:"VENDLER_API_ALLOWED_ORIGINS" default:"*"`
}

func ReadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

var (
	ErrWrongKind   = errors.New("operation not available for this kind of session")
	ErrSpanishOnly = errors.New("logical structures are built for Spanish clauses only")
)

//go:embed data/credits.yaml
var creditsData embed.FS

type Credits struct {
	Title            string   `json:"title" yaml:"title"`
	Author           string   `json:"author" yaml:"author"`
	Affiliation      string   `json:"affiliation" yaml:"affiliation"`
	Development      string   `json:"development" yaml:"development"`
	Acknowledgements string   `json:"acknowledgements" yaml:"acknowledgements"`
	Bibliography     []string `json:"bibliography" yaml:"bibliography"`
	Contact          string   `json:"contact" yaml:"contact"`
}

func loadCredits() (map[aktionsart.Lang]Credits, error) {
	b, err := creditsData.ReadFile("data/credits.yaml")
	if err != nil {
		return nil, err
	}
	var credits map[aktionsart.Lang]Credits
	if err := yaml.Unmarshal(b, &credits); err != nil {
		return nil, fmt.Errorf("credits: %w", err)
	}
	return credits, nil
}

// Server exposes both dialogs over HTTP.
type Server struct {
	store      sessionstore.Store
	aktionsart map[aktionsart.Lang]*aktionsart.Engine
	ls         *ls.Engine
	credits    map[aktionsart.Lang]Credits
	echo       *echo.Echo
}

func New(store sessionstore.Store, ls *ls.Engine, engines ...*aktionsart.Engine) (*Server, error) {
	credits, err := loadCredits()
	if err != nil {
		return nil, err
	}
	s := &Server{
		store:      store,
		aktionsart: make(map[aktionsart.Lang]*aktionsart.Engine, len(engines)),
		ls:         ls,
		credits:    credits,
	}
	for _, e := range engines {
		s.aktionsart[e.Lang()] = e
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = wrapError
	e.Use(middleware.Recover())
	e.Use(requestLogging)

	group := e.Group("/api")
	group.GET("/credits", s.getCredits)
	sessions := group.Group("/sessions")
	sessions.POST("", s.createSession)
	sessions.GET("/:id", s.getSession)
	sessions.DELETE("/:id", s.deleteSession)
	sessions.POST("/:id/answer", s.answer)
	sessions.POST("/:id/back", s.back)
	sessions.POST("/:id/restart", s.restart)
	sessions.POST("/:id/handoff", s.handoff)
	sessions.GET("/:id/export/:format", s.export)
	s.echo = e
	return s, nil
}

// Handler is the API with CORS applied.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(s.echo)
}

// Start serves until the server fails or ctx is done.
func (s *Server) Start(ctx context.Context, cfg Config) error {
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: s.Handler(cfg.AllowedOrigins)}
	errCh := make(chan error, 1)
	go func() {
		defaultLogger.Info().Msgf("REST API on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}

func wrapError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var httpErr *echo.HTTPError
	status := http.StatusInternalServerError
	body := errorResponse{Error: err.Error()}
	if inputErr, ok := dialog.IsInvalid(err); ok {
		status = http.StatusUnprocessableEntity
		body.Warning = inputErr.Warning
	} else {
		switch {
		case errors.As(err, &httpErr):
			status = httpErr.Code
			body.Error = fmt.Sprint(httpErr.Message)
		case errors.Is(err, sessionstore.ErrSessionNotFound):
			status = http.StatusNotFound
		case errors.Is(err, dialog.ErrFinished), errors.Is(err, ls.ErrNoResult),
			errors.Is(err, aktionsart.ErrNoResult), errors.Is(err, ErrSpanishOnly):
			status = http.StatusConflict
		case errors.Is(err, ls.ErrUnknownAkt), errors.Is(err, ls.ErrMissingClause),
			errors.Is(err, export.ErrUnknownFormat), errors.Is(err, ErrWrongKind):
			status = http.StatusBadRequest
		}
	}
	if status >= http.StatusInternalServerError {
		requestLogger(c).Error().Err(err).Msg("Request failed")
	}
	_ = c.JSON(status, body)
}
