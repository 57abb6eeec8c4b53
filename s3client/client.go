package s3client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/carlosgonzalezvergara/vendler/logger"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"sync"
)

type Config struct {
	BucketName  string `envconfig:"VENDLER_S3_BUCKET" required:"true"`
	Env         string `envconfig:"VENDLER_ENV" default:"prod"`
	Region      string `envconfig:"VENDLER_S3_REGION" required:"true"`
	Endpoint    string `envconfig:"VENDLER_S3_ENDPOINT_URL" default:""`
	AccessKeyID string `envconfig:"VENDLER_S3_ACCESS_ID" default:""`
	AccessKey   string `envconfig:"VENDLER_S3_ACCESS_KEY" default:""`
}

var ErrNoSession = errors.New("no S3 session available")

var clientLogger = logger.NewLogger("S3Client")
var sdkLogger = logger.NewLogger("S3-SDK")

// Client keeps one AWS session and replaces it when a transfer fails.
type Client struct {
	config Config
	mu     sync.Mutex
	sess   *session.Session
}

func New() (*Client, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		clientLogger.Err(err).Msg("Failed to get proper variables from environment")
		return nil, err
	}
	client := &Client{config: config}
	if _, err := client.refresh(nil); err != nil {
		return nil, err
	}
	return client, nil
}

func (client *Client) Upload(ctx context.Context, key string, data []byte) error {
	params := &s3manager.UploadInput{
		Bucket: aws.String(client.config.BucketName),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	return client.withSession(func(sess *session.Session) error {
		uploader := s3manager.NewUploader(sess.Copy(&aws.Config{Logger: sdkLog(key, client.config.BucketName)}))
		clientLogger.Debug().Str("key", key).Int("bytes", len(data)).Msg("Uploading the file")
		_, err := uploader.UploadWithContext(ctx, params)
		return err
	})
}

func (client *Client) Download(ctx context.Context, key string) ([]byte, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(client.config.BucketName),
		Key:    aws.String(key),
	}
	var data []byte
	err := client.withSession(func(sess *session.Session) error {
		downloader := s3manager.NewDownloader(sess.Copy(&aws.Config{Logger: sdkLog(key, client.config.BucketName)}))
		buf := aws.NewWriteAtBuffer([]byte{})
		size, err := downloader.DownloadWithContext(ctx, buf, params)
		if err != nil {
			return err
		}
		clientLogger.Debug().Str("key", key).Msgf("Downloaded %v bytes", size)
		data = buf.Bytes()
		return nil
	})
	return data, err
}

func (client *Client) Close() {
	client.mu.Lock()
	defer client.mu.Unlock()
	client.sess = nil
}

// withSession runs fn and, if it fails, runs it once more on a fresh session.
func (client *Client) withSession(fn func(*session.Session) error) error {
	client.mu.Lock()
	sess := client.sess
	client.mu.Unlock()
	if sess == nil {
		return ErrNoSession
	}
	err := fn(sess)
	if err == nil {
		return nil
	}
	clientLogger.Error().Err(err).Msg("Caught error while using S3 session, trying to refresh it")
	sess, refreshErr := client.refresh(sess)
	if refreshErr != nil {
		return fmt.Errorf("%v; refresh: %w", err, refreshErr)
	}
	return fn(sess)
}

// refresh replaces stale with a new session unless another caller already did.
func (client *Client) refresh(stale *session.Session) (*session.Session, error) {
	client.mu.Lock()
	defer client.mu.Unlock()
	if client.sess != nil && client.sess != stale {
		return client.sess, nil
	}
	sess, err := client.acquire()
	client.sess = sess
	return sess, err
}

func (client *Client) acquire() (*session.Session, error) {
	sess, err := session.NewSession(client.ec2Config())
	if err == nil {
		if _, err = sts.New(sess).GetCallerIdentity(&sts.GetCallerIdentityInput{}); err == nil {
			clientLogger.Info().Msg("S3 session successfully initialized using EC2")
			return sess, nil
		}
	}
	clientLogger.Info().Msg("Could not initialize S3 session using EC2, trying env credentials")
	cfg, err := client.envConfig()
	if err != nil {
		return nil, err
	}
	if sess, err = session.NewSession(cfg); err != nil {
		clientLogger.Error().Err(err).Msg("Could not initialize S3 session")
		return nil, err
	}
	if _, err = sts.New(sess).GetCallerIdentity(&sts.GetCallerIdentityInput{}); err != nil {
		clientLogger.Error().Err(err).Msg("Could not initialize S3 session")
		return nil, errors.New("could not initialize S3 session")
	}
	clientLogger.Info().Msg("S3 session successfully initialized using env credentials")
	return sess, nil
}

func (client *Client) ec2Config() *aws.Config {
	return &aws.Config{
		Region:     aws.String(client.config.Region),
		MaxRetries: aws.Int(4),
		LogLevel:   aws.LogLevel(aws.LogDebug),
	}
}

func (client *Client) envConfig() (*aws.Config, error) {
	creds := credentials.NewStaticCredentials(client.config.AccessKeyID, client.config.AccessKey, "")
	if _, err := creds.Get(); err != nil {
		clientLogger.Error().Err(err).Msg("Error with credentials from environment")
		return nil, err
	}
	cfg := aws.NewConfig().
		WithRegion(client.config.Region).
		WithMaxRetries(4).
		WithCredentials(creds).
		WithLogLevel(aws.LogDebug)

	if client.config.Env == "dev" && client.config.Endpoint != "" {
		cfg = cfg.WithEndpoint(client.config.Endpoint).WithS3ForcePathStyle(true)
	}
	return cfg, nil
}

type s3Logger struct {
	logger zerolog.Logger
}

func sdkLog(key, bucket string) *s3Logger {
	return &s3Logger{sdkLogger.With().Str("key", key).Str("bucket", bucket).Logger()}
}

func (l *s3Logger) Log(v ...interface{}) {
	l.logger.Debug().Msg(fmt.Sprint(v...))
}
