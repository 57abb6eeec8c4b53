package tasks

import (
	"context"
	"github.com/google/uuid"
	"time"
)

type TaskStatus string

const (
	TaskStatusSubmitted        TaskStatus = "submitted"
	TaskStatusStarted          TaskStatus = "started"
	TaskStatusFailed           TaskStatus = "failed"
	TaskStatusCompletedSuccess TaskStatus = "completed - success"
	TaskStatusCompletedFailure TaskStatus = "completed - failure"
	TaskStatusCanceled         TaskStatus = "canceled"
)

func (s TaskStatus) Complete() bool {
	return s == TaskStatusCompletedSuccess || s == TaskStatusCompletedFailure || s == TaskStatusCanceled
}

func (s TaskStatus) Submitted() bool {
	return s == TaskStatusSubmitted || s == TaskStatusStarted
}

// Summary mirrors the counts of the replay report.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// ReplayJob is the Redis document tracking one batch replay.
type ReplayJob struct {
	ID            string     `json:"id"`
	ScriptKey     string     `json:"script_key"`
	ReportKey     string     `json:"report_key,omitempty"`
	UserCanceled  bool       `json:"user_canceled"`
	Status        TaskStatus `json:"status"`
	SubmittedAt   *string    `json:"submitted_at"`
	StartedAt     *string    `json:"started_at"`
	CompletedAt   *string    `json:"completed_at"`
	Attempts      int        `json:"attempts"`
	ErrorMessages []string   `json:"error_messages"`
	Summary       *Summary   `json:"summary,omitempty"`
}

const RFC3339Micro = "2006-01-02T15:04:05.000000-07:00"

func FormattedNow() *string {
	now := time.Now().UTC().Format(RFC3339Micro)
	return &now
}

func JobKey(id string) string {
	return "replay-job:" + id
}

type documents interface {
	GetDocument(ctx context.Context, key string, doc interface{}) error
	SaveDocument(ctx context.Context, key string, doc interface{}) error
	UpdateDocument(ctx context.Context, key string, doc interface{}, update func()) error
	Close() error
}

type Jobs struct {
	client documents
}

// Create stores a new submitted job for the script and returns it with its
// Redis key.
func (jobs Jobs) Create(ctx context.Context, scriptKey string) (*ReplayJob, string, error) {
	job := ReplayJob{
		ID:          uuid.NewString(),
		ScriptKey:   scriptKey,
		Status:      TaskStatusSubmitted,
		SubmittedAt: FormattedNow(),
	}
	key := JobKey(job.ID)
	if err := jobs.client.SaveDocument(ctx, key, &job); err != nil {
		return nil, "", err
	}
	return &job, key, nil
}

func (jobs Jobs) Get(ctx context.Context, redisKey string) (*ReplayJob, error) {
	var job ReplayJob
	if err := jobs.client.GetDocument(ctx, redisKey, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (jobs Jobs) Update(ctx context.Context, redisKey string, updateFunc func(job *ReplayJob)) error {
	var job ReplayJob
	return jobs.client.UpdateDocument(ctx, redisKey, &job, func() { updateFunc(&job) })
}
