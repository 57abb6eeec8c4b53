package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/logger"
	"github.com/kelseyhightower/envconfig"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrDisabled = errors.New("translation is disabled")

// Translator turns Spanish text into English.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

type Config struct {
	URL            string `envconfig:"VENDLER_TRANSLATE_URL" default:""`
	APIKey         string `envconfig:"VENDLER_TRANSLATE_API_KEY" default:""`
	Source         string `envconfig:"VENDLER_TRANSLATE_SOURCE" default:"es"`
	Target         string `envconfig:"VENDLER_TRANSLATE_TARGET" default:"en"`
	TimeoutSeconds int    `envconfig:"VENDLER_TRANSLATE_TIMEOUT" default:"5"`
	Cache          string `envconfig:"VENDLER_TRANSLATE_CACHE" default:"memory"`
	CacheTTLHours  int    `envconfig:"VENDLER_TRANSLATE_CACHE_TTL" default:"720"`
}

func ReadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// Disabled is the translator used when no endpoint is configured.
type Disabled struct{}

func (Disabled) Translate(context.Context, string) (string, error) {
	return "", ErrDisabled
}

// HTTPTranslator talks to a LibreTranslate compatible /translate endpoint.
type HTTPTranslator struct {
	url    string
	cfg    Config
	client *http.Client
}

func NewHTTPTranslator(cfg Config) *HTTPTranslator {
	return &HTTPTranslator{
		url:    strings.TrimSuffix(cfg.URL, "/") + "/translate",
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

// New returns the HTTP translator, or Disabled when the URL is unset.
func New(cfg Config) Translator {
	if cfg.URL == "" {
		translatorLogger := logger.NewLogger("Translator")
		translatorLogger.Info().Msg("No translation endpoint configured, predicates stay in Spanish")
		return Disabled{}
	}
	return NewHTTPTranslator(cfg)
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

func (t *HTTPTranslator) Translate(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(translateRequest{
		Q:      text,
		Source: t.cfg.Source,
		Target: t.cfg.Target,
		Format: "text",
		APIKey: t.cfg.APIKey,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate '%s': %w", text, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var out translateResponse
	if err := json.Unmarshal(b, &out); err != nil {
		return "", fmt.Errorf("translate '%s': status %d: %w", text, resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate '%s': status %d: %s", text, resp.StatusCode, out.Error)
	}
	if out.TranslatedText == "" {
		return "", fmt.Errorf("translate '%s': empty translation", text)
	}
	return out.TranslatedText, nil
}
