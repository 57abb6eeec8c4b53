package worker

import (
	"context"
	"github.com/carlosgonzalezvergara/vendler/s3client"
)

type s3Transactions interface {
	saveReport(ctx context.Context, task *Task, report []byte) error
	getScript(ctx context.Context, task *Task) ([]byte, error)
	close()
}

type s3ClientWrapper struct {
	s3Client *s3client.Client
}

func (wrapper *s3ClientWrapper) close() {
	wrapper.s3Client.Close()
}

func (wrapper *s3ClientWrapper) saveReport(ctx context.Context, task *Task, report []byte) error {
	return wrapper.s3Client.Upload(ctx, getReportFileKey(task), report)
}

func (wrapper *s3ClientWrapper) getScript(ctx context.Context, task *Task) ([]byte, error) {
	return wrapper.s3Client.Download(ctx, task.scriptKey)
}
