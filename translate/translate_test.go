package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/carlosgonzalezvergara/vendler/redis"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

type mockTranslator struct {
	mu      sync.Mutex
	glosses map[string]string
	calls   []string
}

func (m *mockTranslator) Translate(_ context.Context, text string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, text)
	if g, ok := m.glosses[text]; ok {
		return g, nil
	}
	return "", errors.New("no translation")
}

func TestGlosser(t *testing.T) {
	translator := &mockTranslator{glosses: map[string]string{
		"comer":     "Eat",
		"salir de":  "go out of.",
		"enamorado": "in love",
	}}
	glosser := NewGlosser(lexicon.Default(), translator, NewMemoryCache(), time.Second)

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Keyword", "have", "have"},
		{"Keyword stem", "express.something.to.pedro", "express.something.to.pedro"},
		{"Correction", "abierto", "open"},
		{"Translated", "comer", "eat"},
		{"Dotted", "salir.de", "go.out.of"},
		{"Several words", "enamorado", "in.love"},
		{"Untranslatable", "zurcir", "zurcir"},
		{"Empty argument", "Ø", "Ø"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, glosser.Gloss(c.in))
		})
	}
	require.Equal(t, []string{"comer", "salir de", "enamorado", "zurcir"}, translator.calls)

	t.Run("Cached", func(t *testing.T) {
		calls := len(translator.calls)
		require.Equal(t, "eat", glosser.Gloss("comer"))
		require.Len(t, translator.calls, calls)
	})
}

func TestDisabledGlosser(t *testing.T) {
	glosser := NewGlosser(lexicon.Default(), nil, nil, 0)
	require.Equal(t, "comer", glosser.Gloss("comer"))
	require.Equal(t, "open", glosser.Gloss("abierto"))
}

func TestHTTPTranslator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/translate", r.URL.Path)
		var req translateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "es", req.Source)
		require.Equal(t, "en", req.Target)
		if req.Q == "fallar" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = fmt.Fprint(w, `{"error":"bad request"}`)
			return
		}
		_, _ = fmt.Fprintf(w, `{"translatedText":"%s"}`, strings.ToUpper(req.Q))
	}))
	defer server.Close()

	translator := New(Config{URL: server.URL + "/", Source: "es", Target: "en", TimeoutSeconds: 1})
	got, err := translator.Translate(context.Background(), "correr")
	require.NoError(t, err)
	require.Equal(t, "CORRER", got)

	_, err = translator.Translate(context.Background(), "fallar")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad request")

	_, err = New(Config{}).Translate(context.Background(), "correr")
	require.ErrorIs(t, err, ErrDisabled)
}

type fakeStore struct {
	values map[string][]byte
	ttls   map[string]time.Duration
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := f.values[key]
	if !ok {
		return nil, redis.ErrNotFound
	}
	return v, nil
}

func (f *fakeStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	f.values[key] = value
	f.ttls[key] = ttl
	return nil
}

func TestRedisCache(t *testing.T) {
	store := &fakeStore{values: map[string][]byte{}, ttls: map[string]time.Duration{}}
	cache := &RedisCache{store: store, ttl: time.Hour}
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "comer")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, cache.Set(ctx, "comer", "eat"))
	got, ok, err := cache.Get(ctx, "comer")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "eat", got)

	require.Len(t, store.values, 1)
	for key, ttl := range store.ttls {
		require.True(t, strings.HasPrefix(key, "gloss:"))
		require.Len(t, key, len("gloss:")+16)
		require.Equal(t, time.Hour, ttl)
	}
}
