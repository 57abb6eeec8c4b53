package sessionstore

import (
	"context"
	"errors"
	"github.com/carlosgonzalezvergara/vendler/aktionsart"
	"github.com/carlosgonzalezvergara/vendler/dialog"
	"github.com/carlosgonzalezvergara/vendler/lexicon"
	"github.com/carlosgonzalezvergara/vendler/ls"
	"github.com/carlosgonzalezvergara/vendler/redis"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
	"time"
)

type fakeKV struct {
	mu       sync.Mutex
	values   map[string][]byte
	locked   map[string]bool
	locks    int
	releases int
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string][]byte{}, locked: map[string]bool{}}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	if !ok {
		return nil, redis.ErrNotFound
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; !ok {
		return redis.ErrNotFound
	}
	delete(f.values, key)
	return nil
}

func (f *fakeKV) Lock(_ context.Context, key string) (redis.ReleaseLock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locked[key] {
		return nil, errors.New("already locked")
	}
	f.locked[key] = true
	f.locks++
	return func() error {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.locked, key)
		f.releases++
		return nil
	}, nil
}

func stores() map[string]Store {
	return map[string]Store{
		"Memory": NewMemoryStore(),
		"Redis":  &RedisStore{kv: newFakeKV(), ttl: time.Hour},
	}
}

func TestStore(t *testing.T) {
	engine, err := ls.NewEngine(lexicon.Default(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	for name, store := range stores() {
		t.Run(name, func(t *testing.T) {
			sess, err := engine.Start()
			require.NoError(t, err)
			require.NoError(t, engine.Answer(sess, dialog.Form(map[string]string{
				ls.FieldAkt:    "logro",
				ls.FieldClause: "Pedro llegó",
			})))

			rec := &Record{Kind: KindLS, LS: sess}
			require.NoError(t, store.Create(ctx, rec))
			require.NotEmpty(t, rec.ID)

			got, err := store.Get(ctx, rec.ID)
			require.NoError(t, err)
			require.Equal(t, KindLS, got.Kind)
			if diff := cmp.Diff(sess, got.LS); diff != "" {
				t.Fatalf("stored session (-want +got):\n%s", diff)
			}

			updated, err := store.Update(ctx, rec.ID, func(rec *Record) error {
				return engine.Answer(rec.LS, dialog.Form(map[string]string{ls.FieldSubject: "Pedro"}))
			})
			require.NoError(t, err)
			require.Equal(t, ls.NodeDynamicity, updated.LS.Node)

			got, err = store.Get(ctx, rec.ID)
			require.NoError(t, err)
			require.Equal(t, "Pedro", got.LS.State.X)
			require.Len(t, got.LS.History, 2)

			t.Run("Rejected update is not saved", func(t *testing.T) {
				_, err := store.Update(ctx, rec.ID, func(rec *Record) error {
					rec.LS.State.X = "Juan"
					return engine.Answer(rec.LS, dialog.Text("quizá"))
				})
				_, ok := dialog.IsInvalid(err)
				require.True(t, ok)

				got, err := store.Get(ctx, rec.ID)
				require.NoError(t, err)
				require.Equal(t, "Pedro", got.LS.State.X)
			})

			require.NoError(t, store.Delete(ctx, rec.ID))
			_, err = store.Get(ctx, rec.ID)
			require.ErrorIs(t, err, ErrSessionNotFound)
			require.ErrorIs(t, store.Delete(ctx, rec.ID), ErrSessionNotFound)
			require.ErrorIs(t, store.Save(ctx, rec), ErrSessionNotFound)
			_, err = store.Update(ctx, rec.ID, func(*Record) error { return nil })
			require.ErrorIs(t, err, ErrSessionNotFound)
		})
	}
}

func TestAktionsartRecord(t *testing.T) {
	engine, err := aktionsart.NewDefaultEngine(aktionsart.English)
	require.NoError(t, err)
	sess, err := engine.Start()
	require.NoError(t, err)
	require.NoError(t, engine.Answer(sess, dialog.Text("Peter ran")))

	store := NewMemoryStore()
	rec := &Record{Kind: KindAktionsart, Lang: aktionsart.English, Aktionsart: sess}
	require.NoError(t, store.Create(context.Background(), rec))

	got, err := store.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	require.Nil(t, got.LS)
	require.Equal(t, aktionsart.English, got.Lang)
	require.Equal(t, sess.Node, got.Aktionsart.Node)
	require.Equal(t, "Peter ran", got.Aktionsart.State.OriginalClause)
}

func TestRedisStoreLocks(t *testing.T) {
	kv := newFakeKV()
	store := &RedisStore{kv: kv, ttl: time.Hour}
	ctx := context.Background()

	rec := &Record{Kind: KindLS}
	require.NoError(t, store.Create(ctx, rec))

	_, err := store.Update(ctx, rec.ID, func(inner *Record) error {
		_, err := store.Update(ctx, rec.ID, func(*Record) error { return nil })
		require.Error(t, err)
		inner.Parent = "parent"
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, kv.locks)
	require.Equal(t, 1, kv.releases)

	got, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, "parent", got.Parent)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("ls")
	require.NoError(t, err)
	require.Equal(t, KindLS, k)
	_, err = ParseKind("other")
	require.Error(t, err)
}
