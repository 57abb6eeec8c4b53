package translate

import (
	"context"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/carlosgonzalezvergara/vendler/logger"
	"github.com/carlosgonzalezvergara/vendler/redis"
	"github.com/rs/zerolog"
	"strings"
	"time"
)

// Glosser renders Spanish predicate constants in English. RRG vocabulary is
// left alone, the correction list wins over the translator, and translations
// are cached. Failures leave the constant untouched.
type Glosser struct {
	lex        *lexicon.Lexicon
	translator Translator
	cache      Cache
	timeout    time.Duration
	logger     zerolog.Logger
}

func NewGlosser(lex *lexicon.Lexicon, translator Translator, cache Cache, timeout time.Duration) *Glosser {
	if translator == nil {
		translator = Disabled{}
	}
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Glosser{
		lex:        lex,
		translator: translator,
		cache:      cache,
		timeout:    timeout,
		logger:     logger.NewLogger("Glosser"),
	}
}

func (g *Glosser) Gloss(name string) string {
	if name == "" || lexicon.IsEmpty(name) {
		return name
	}
	if g.lex.IsKeyword(name) || g.lex.IsKeyword(lexicon.Stem(name)) {
		return name
	}
	if c, ok := g.lex.Correction(name); ok {
		return c
	}

	text := strings.ReplaceAll(name, ".", " ")
	ctx := context.Background()
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	cached, ok, err := g.cache.Get(ctx, text)
	if err != nil {
		g.logger.Warn().Err(err).Str("text", text).Msg("Translation cache lookup failed")
	}
	if ok {
		return cached
	}

	translated, err := g.translator.Translate(ctx, text)
	if err != nil {
		g.logger.Debug().Err(err).Str("text", text).Msg("Keeping the Spanish constant")
		return name
	}
	gloss := constant(translated)
	if gloss == "" {
		return name
	}
	if err := g.cache.Set(ctx, text, gloss); err != nil {
		g.logger.Warn().Err(err).Str("text", text).Msg("Could not cache translation")
	}
	return gloss
}

// constant lower-cases a translation and joins its words with dots.
func constant(translation string) string {
	translation = strings.Trim(strings.ToLower(translation), " .,;:!?¡¿\"'")
	return strings.Join(strings.Fields(translation), ".")
}

// NewDefaultGlosser reads the translator and cache settings from the
// environment.
func NewDefaultGlosser(lex *lexicon.Lexicon) (*Glosser, error) {
	cfg, err := ReadConfig()
	if err != nil {
		return nil, err
	}
	var cache Cache
	switch cfg.Cache {
	case "redis":
		client, err := redis.NewClient(redis.GlossesDB)
		if err != nil {
			return nil, err
		}
		cache = NewRedisCache(client, time.Duration(cfg.CacheTTLHours)*time.Hour)
	case "memory", "":
		cache = NewMemoryCache()
	default:
		return nil, fmt.Errorf("unknown translation cache '%s'", cfg.Cache)
	}
	return NewGlosser(lex, New(cfg), cache, time.Duration(cfg.TimeoutSeconds)*time.Second), nil
}
