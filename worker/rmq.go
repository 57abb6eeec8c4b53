package worker

import (
	"encoding/json"
	"github.com/carlosgonzalezvergara/vendler/rmq"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

const senderName = "vendler-worker"

// rmqTransactions is what the worker needs from the replay job queue.
type rmqTransactions interface {
	notifyCompletion(task *Task) error
	acknowledgeDelivery(delivery *amqp.Delivery) error
	rejectDelivery(delivery *amqp.Delivery, logger *zerolog.Logger)
	getDeliveriesCh() <-chan amqp.Delivery
	getReqChanErrorsCh() <-chan *amqp.Error
	getRespChanErrorsCh() <-chan *amqp.Error
	close()
}

type jobQueue struct {
	client *rmq.Client
}

func (q *jobQueue) close() {
	q.client.Close()
}

func (q *jobQueue) getDeliveriesCh() <-chan amqp.Delivery {
	return q.client.Deliveries
}

func (q *jobQueue) getReqChanErrorsCh() <-chan *amqp.Error {
	return q.client.ReqChanErrors
}

func (q *jobQueue) getRespChanErrorsCh() <-chan *amqp.Error {
	return q.client.Errors
}

// completionMessage echoes the request and points at the stored replay
// script and, when the job produced one, its report.
func completionMessage(task *Task) Message {
	message := *task.message
	message.Sender = senderName
	message.ScriptKey = task.scriptKey
	if task.summary != nil {
		message.ReportKey = getReportFileKey(task)
	}
	return message
}

func (q *jobQueue) notifyCompletion(task *Task) error {
	b, err := json.Marshal(completionMessage(task))
	if err != nil {
		return err
	}
	return q.client.NotifyCompletion(amqp.Publishing{
		ContentType: "application/json",
		Body:        b,
	})
}

func (q *jobQueue) acknowledgeDelivery(delivery *amqp.Delivery) error {
	return delivery.Ack(false)
}

// shouldRequeue gives a failed replay job a single second attempt.
func shouldRequeue(delivery *amqp.Delivery) bool {
	return !delivery.Redelivered
}

func (q *jobQueue) rejectDelivery(delivery *amqp.Delivery, logger *zerolog.Logger) {
	requeue := shouldRequeue(delivery)
	event := logger.Info().Uint64("delivery_tag", delivery.DeliveryTag).Bool("requeue", requeue)
	if requeue {
		event.Msg("Requeuing replay job for a second attempt")
	} else {
		event.Msg("Dropping replay job that already failed once")
	}
	if err := delivery.Reject(requeue); err != nil {
		logger.Err(err).Bool("requeue", requeue).Msg("Failed to reject delivery")
	}
}
