package worker

import (
	"context"
	"errors"
	"github.com/carlosgonzalezvergara/vendler/replay"
	"github.com/carlosgonzalezvergara/vendler/tasks"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

const validScript = "name: smoke\ncases:\n  - kind: aktionsart\n    lang: en\n"

type failingMethod struct {
	fail bool
}

type withValue struct {
	fail          bool
	returnedValue interface{}
}

type runnerMock struct {
	config runnerMockConfig
	calls  runnerCall
}

type runnerMockConfig struct {
	panic  bool
	report replay.Report
}

type runnerCall struct {
	run bool
}

type redisMock struct {
	config  redisMockConfig
	calls   redisMockCalls
	summary *tasks.Summary
}

type redisMockConfig struct {
	getJob                withValue
	onTaskCancelled       failingMethod
	onTaskStarted         failingMethod
	onTaskExceededRetries failingMethod
	onTaskFailedWithError failingMethod
	onTaskComplete        failingMethod
}

type redisMockCalls struct {
	getJob                bool
	onTaskCancelled       bool
	onTaskStarted         bool
	onTaskExceededRetries bool
	onTaskFailedWithError bool
	onTaskComplete        bool
}

type rmqMock struct {
	config  rmqMockConfig
	calls   rmqMockCalls
	message Message
}

type rmqMockConfig struct {
	notifyCompletion    failingMethod
	acknowledgeDelivery failingMethod
}

type rmqMockCalls struct {
	notifyCompletion    bool
	acknowledgeDelivery bool
	rejectDelivery      bool
}

type s3Mock struct {
	config s3MockConfig
	calls  s3MockCalls
	saved  map[string][]byte
}

type s3MockConfig struct {
	getScript  withValue
	saveReport failingMethod
}

type s3MockCalls struct {
	getScript  bool
	saveReport bool
}

func (mock *s3Mock) close() {}

func (mock *rmqMock) close() {}

func (mock *redisMock) close() {}

func (mock *runnerMock) Run(_ context.Context, script *replay.Script) replay.Report {
	mock.calls.run = true
	if mock.config.panic {
		panic("runner exploded")
	}
	report := mock.config.report
	report.Script = script.Name
	return report
}

func (mock *redisMock) getJob(_ context.Context, redisKey string) (*tasks.ReplayJob, error) {
	mock.calls.getJob = true
	if mock.config.getJob.fail {
		return nil, errors.New("failed to get replay job")
	}
	switch job := mock.config.getJob.returnedValue.(type) {
	case tasks.ReplayJob:
		return &job, nil
	default:
		return &tasks.ReplayJob{ID: "job", ScriptKey: "scripts/smoke.yaml"}, nil
	}
}

func (mock *redisMock) onTaskStarted(_ context.Context, task *Task) error {
	mock.calls.onTaskStarted = true
	if mock.config.onTaskStarted.fail {
		return errors.New("failed to update replay job on start")
	}
	return nil
}

func (mock *redisMock) onTaskCancelled(_ context.Context, task *Task, errorMessages ...string) error {
	mock.calls.onTaskCancelled = true
	if mock.config.onTaskCancelled.fail {
		return errors.New("failed to update replay job on cancel")
	}
	return nil
}

func (mock *redisMock) onTaskExceededRetries(_ context.Context, task *Task, maxRetries int) error {
	mock.calls.onTaskExceededRetries = true
	if mock.config.onTaskExceededRetries.fail {
		return errors.New("failed to update replay job on exceeded retries")
	}
	return nil
}

func (mock *redisMock) onTaskFailedWithError(_ context.Context, task *Task, err error) error {
	mock.calls.onTaskFailedWithError = true
	if mock.config.onTaskFailedWithError.fail {
		return errors.New("failed to update replay job on fail with error")
	}
	return nil
}

func (mock *redisMock) onTaskComplete(_ context.Context, task *Task) error {
	mock.calls.onTaskComplete = true
	mock.summary = task.summary
	if mock.config.onTaskComplete.fail {
		return errors.New("failed to update replay job on complete")
	}
	return nil
}

func (mock *rmqMock) rejectDelivery(delivery *amqp.Delivery, logger *zerolog.Logger) {
	mock.calls.rejectDelivery = true
}

func (mock *rmqMock) getDeliveriesCh() <-chan amqp.Delivery {
	return nil
}

func (mock *rmqMock) getReqChanErrorsCh() <-chan *amqp.Error {
	return nil
}

func (mock *rmqMock) getRespChanErrorsCh() <-chan *amqp.Error {
	return nil
}

func (mock *rmqMock) notifyCompletion(task *Task) error {
	mock.calls.notifyCompletion = true
	mock.message = completionMessage(task)
	if mock.config.notifyCompletion.fail {
		return errors.New("failed to notify completion")
	}
	return nil
}

func (mock *rmqMock) acknowledgeDelivery(delivery *amqp.Delivery) error {
	mock.calls.acknowledgeDelivery = true
	if mock.config.acknowledgeDelivery.fail {
		return errors.New("failed to acknowledge delivery")
	}
	return nil
}

func (mock *s3Mock) getScript(_ context.Context, task *Task) ([]byte, error) {
	mock.calls.getScript = true
	if mock.config.getScript.fail {
		return nil, errors.New("mock: failed to load from s3")
	}
	switch data := mock.config.getScript.returnedValue.(type) {
	case []byte:
		return data, nil
	default:
		return []byte(validScript), nil
	}
}

func (mock *s3Mock) saveReport(_ context.Context, task *Task, report []byte) error {
	mock.calls.saveReport = true
	if mock.config.saveReport.fail {
		return errors.New("failed to upload report")
	}
	if mock.saved == nil {
		mock.saved = make(map[string][]byte)
	}
	mock.saved[getReportFileKey(task)] = report
	return nil
}
