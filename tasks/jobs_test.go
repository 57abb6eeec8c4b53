package tasks

import (
	"context"
	"encoding/json"
	"github.com/carlosgonzalezvergara/vendler/redis"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

type memoryDocuments struct {
	docs map[string][]byte
}

func (m *memoryDocuments) GetDocument(_ context.Context, key string, doc interface{}) error {
	raw, ok := m.docs[key]
	if !ok {
		return redis.ErrNotFound
	}
	return json.Unmarshal(raw, doc)
}

func (m *memoryDocuments) SaveDocument(_ context.Context, key string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.docs[key] = raw
	return nil
}

func (m *memoryDocuments) UpdateDocument(_ context.Context, key string, doc interface{}, update func()) error {
	raw, ok := m.docs[key]
	if !ok {
		return redis.ErrNotFound
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return err
	}
	patched, err := redis.PatchDocument(raw, doc, update)
	if err != nil {
		return err
	}
	m.docs[key] = patched
	return nil
}

func (m *memoryDocuments) Close() error {
	return nil
}

func TestTaskStatus(t *testing.T) {
	for _, s := range []TaskStatus{TaskStatusCompletedSuccess, TaskStatusCompletedFailure, TaskStatusCanceled} {
		require.True(t, s.Complete(), s)
		require.False(t, s.Submitted(), s)
	}
	for _, s := range []TaskStatus{TaskStatusSubmitted, TaskStatusStarted} {
		require.False(t, s.Complete(), s)
		require.True(t, s.Submitted(), s)
	}
	require.False(t, TaskStatusFailed.Complete())
	require.False(t, TaskStatusFailed.Submitted())
}

func TestJobs(t *testing.T) {
	docs := &memoryDocuments{docs: map[string][]byte{}}
	jobs := Jobs{client: docs}
	ctx := context.Background()

	job, key, err := jobs.Create(ctx, "scripts/smoke.yaml")
	require.NoError(t, err)
	require.Equal(t, JobKey(job.ID), key)
	require.True(t, strings.HasPrefix(key, "replay-job:"))
	require.Equal(t, TaskStatusSubmitted, job.Status)
	require.NotNil(t, job.SubmittedAt)

	// A field written by the submitting side must survive worker updates.
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(docs.docs[key], &raw))
	raw["requested_by"] = "linguist@example.com"
	docs.docs[key], err = json.Marshal(raw)
	require.NoError(t, err)

	require.NoError(t, jobs.Update(ctx, key, func(job *ReplayJob) {
		job.Status = TaskStatusStarted
		job.Attempts++
		job.StartedAt = FormattedNow()
	}))

	got, err := jobs.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, TaskStatusStarted, got.Status)
	require.Equal(t, 1, got.Attempts)
	require.Equal(t, "scripts/smoke.yaml", got.ScriptKey)
	require.NotNil(t, got.StartedAt)

	require.NoError(t, json.Unmarshal(docs.docs[key], &raw))
	require.Equal(t, "linguist@example.com", raw["requested_by"])

	_, err = jobs.Get(ctx, JobKey("missing"))
	require.ErrorIs(t, err, redis.ErrNotFound)
	require.ErrorIs(t, jobs.Update(ctx, JobKey("missing"), func(*ReplayJob) {}), redis.ErrNotFound)
}
