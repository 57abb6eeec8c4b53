package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/replay"
	"github.com/carlosgonzalezvergara/vendler/tasks"
	"github.com/carlosgonzalezvergara/vendler/utils"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

type Message struct {
	RedisKey  string `json:"redis_key"`
	ScriptKey string `json:"script_key,omitempty"`
	ReportKey string `json:"report_key,omitempty"`
	Sender    string `json:"sender,omitempty"`
	Status    string `json:"status,omitempty"`
}

type Task struct {
	delivery  *amqp.Delivery
	job       *tasks.ReplayJob
	message   *Message
	redisKey  string
	scriptKey string
	summary   *tasks.Summary
	logger    *zerolog.Logger
}

func (worker *Worker) processMessage(ctx context.Context, delivery *amqp.Delivery) {
	task, err := worker.createTask(ctx, delivery)
	rejectLogger := worker.logger.With().Str("message_id", delivery.MessageId).Logger()
	if err != nil {
		worker.logger.Err(err).
			Str("message_id", delivery.MessageId).
			Str("body", string(delivery.Body)).
			Msg("Failed to create task for delivery")
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.processTask(ctx, task); err != nil {
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.rmq.notifyCompletion(task); err != nil {
		task.logger.Err(err).Msg("Got error while sending completion message")
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.rmq.acknowledgeDelivery(delivery); err != nil {
		task.logger.Err(err).Msg("Failed to acknowledge delivery")
	}
	task.logger.Info().Msg("Finished processing RMQ message")
}

func (worker *Worker) createTask(ctx context.Context, delivery *amqp.Delivery) (*Task, error) {
	var message Message
	err := json.Unmarshal(delivery.Body, &message)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal message, got error %w", err)
	}
	job, err := worker.redis.getJob(ctx, message.RedisKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query replay job for message, got error %w", err)
	}
	scriptKey := message.ScriptKey
	if scriptKey == "" {
		scriptKey = job.ScriptKey
	}
	if scriptKey == "" {
		return nil, fmt.Errorf("replay job %s has no script", message.RedisKey)
	}
	taskLogger := worker.logger.With().Str("tid", message.RedisKey).Str("script", scriptKey).Logger()
	task := Task{
		delivery:  delivery,
		job:       job,
		redisKey:  message.RedisKey,
		scriptKey: scriptKey,
		message:   &message,
		logger:    &taskLogger,
	}
	return &task, nil
}

func (worker *Worker) processTask(ctx context.Context, task *Task) error {
	shouldPerform, err := worker.shouldPerformTask(ctx, task)
	if err != nil {
		task.logger.Err(err).
			Msg("Got error while trying to decide whether to run task")
		return err
	}
	if !shouldPerform {
		return nil
	}
	if err = worker.redis.onTaskStarted(ctx, task); err != nil {
		task.logger.Err(err).Msg("Failed to update replay job")
		return fmt.Errorf("failed to update replay job: %w", err)
	}
	if err = worker.runReplay(ctx, task); err != nil {
		task.logger.Err(err).Msg("Got error while running replay")
		if err = worker.redis.onTaskFailedWithError(ctx, task, err); err != nil {
			return err
		}
		return nil
	}
	task.logger.Info().Msg("Saved report, marking job as complete")
	if err = worker.redis.onTaskComplete(ctx, task); err != nil {
		task.logger.Err(err).Msg("Got error while trying to mark job as complete")
		return err
	}
	return nil
}

func (worker *Worker) runReplay(ctx context.Context, task *Task) (err error) {
	defer utils.RecoverWithError(&err)
	task.logger.Info().Msgf("Processing message from RMQ, attempt # %d", task.job.Attempts+1)
	data, err := worker.s3.getScript(ctx, task)
	if err != nil {
		task.logger.Err(err).Caller().Msg("Could not fetch replay script from s3")
		return fmt.Errorf("failed fetch script from s3: %w", err)
	}
	script, err := replay.ParseScript(data)
	if err != nil {
		return err
	}
	report := worker.runner.Run(ctx, script)
	task.summary = &tasks.Summary{
		Total:  report.Summary.Total,
		Passed: report.Summary.Passed,
		Failed: report.Summary.Failed,
	}
	result, err := json.Marshal(report)
	if err != nil {
		return err
	}
	task.logger.Info().Int("failed_cases", report.Summary.Failed).Msg("Finished replay, saving report to s3")
	if err = worker.s3.saveReport(ctx, task, result); err != nil {
		task.logger.Err(err).Msg("Got error while trying to save report")
		return err
	}
	return nil
}

func (worker *Worker) shouldPerformTask(ctx context.Context, task *Task) (bool, error) {
	job := task.job
	taskLogger := task.logger

	if job.Status.Complete() {
		taskLogger.Info().Msg("Job is already done. (might indicate issue acking message with RMQ). Notifying completion.")
		return false, nil
	}
	if job.UserCanceled {
		taskLogger.Info().Msg("Job was canceled, no need to replay. Notifying completion.")
		err := worker.redis.onTaskCancelled(ctx, task)
		return false, err
	}
	if job.Attempts >= worker.config.TaskMaxRetries {
		taskLogger.Info().Msg("Replay job has exceeded retries. Notifying completion.")
		err := worker.redis.onTaskExceededRetries(ctx, task, worker.config.TaskMaxRetries)
		return false, err
	}
	return true, nil
}
