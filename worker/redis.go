package worker

import (
	"context"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/tasks"
)

type redisTransactions interface {
	getJob(ctx context.Context, redisKey string) (*tasks.ReplayJob, error)
	onTaskStarted(ctx context.Context, task *Task) error
	onTaskCancelled(ctx context.Context, task *Task, errorMessages ...string) error
	onTaskExceededRetries(ctx context.Context, task *Task, maxRetries int) error
	onTaskFailedWithError(ctx context.Context, task *Task, err error) error
	onTaskComplete(ctx context.Context, task *Task) error
	close()
}

type redisClientWrapper struct {
	tasksClient *tasks.Client
}

func (wrapper *redisClientWrapper) close() {
	wrapper.tasksClient.Close()
}

func (wrapper *redisClientWrapper) getJob(ctx context.Context, redisKey string) (*tasks.ReplayJob, error) {
	return wrapper.tasksClient.Jobs.Get(ctx, redisKey)
}

func (wrapper *redisClientWrapper) onTaskStarted(ctx context.Context, task *Task) error {
	return wrapper.tasksClient.Jobs.Update(ctx, task.redisKey, func(job *tasks.ReplayJob) {
		job.Status = tasks.TaskStatusStarted
		job.Attempts += 1
		job.StartedAt = tasks.FormattedNow()
		job.CompletedAt = nil
	})
}

func (wrapper *redisClientWrapper) onTaskCancelled(ctx context.Context, task *Task, errorMessages ...string) error {
	return wrapper.tasksClient.Jobs.Update(ctx, task.redisKey, func(job *tasks.ReplayJob) {
		job.Status = tasks.TaskStatusCanceled
		job.CompletedAt = tasks.FormattedNow()
		job.ErrorMessages = append(job.ErrorMessages, errorMessages...)
	})
}

func (wrapper *redisClientWrapper) onTaskExceededRetries(ctx context.Context, task *Task, maxRetries int) error {
	return wrapper.tasksClient.Jobs.Update(ctx, task.redisKey, func(job *tasks.ReplayJob) {
		job.Status = tasks.TaskStatusCompletedFailure
		job.CompletedAt = tasks.FormattedNow()
		job.ErrorMessages = append(
			job.ErrorMessages,
			fmt.Sprintf(
				"Job has exceeded retries. (Attempts: %d, max retries: %d )",
				job.Attempts,
				maxRetries,
			),
		)
	})
}

func (wrapper *redisClientWrapper) onTaskFailedWithError(ctx context.Context, task *Task, err error) error {
	return wrapper.tasksClient.Jobs.Update(ctx, task.redisKey, func(job *tasks.ReplayJob) {
		job.Status = tasks.TaskStatusFailed
		job.CompletedAt = tasks.FormattedNow()
		job.ErrorMessages = append(job.ErrorMessages, err.Error())
	})
}

func (wrapper *redisClientWrapper) onTaskComplete(ctx context.Context, task *Task) error {
	return wrapper.tasksClient.Jobs.Update(ctx, task.redisKey, func(job *tasks.ReplayJob) {
		if !job.Status.Complete() {
			job.Status = tasks.TaskStatusCompletedSuccess
		}
		job.CompletedAt = tasks.FormattedNow()
		job.ReportKey = getReportFileKey(task)
		job.Summary = task.summary
	})
}
