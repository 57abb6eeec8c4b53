package rmq

import (
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/logger"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

type Config struct {
	Host                    string `envconfig:"VENDLER_RMQ_HOST" required:"true"`
	Port                    string `envconfig:"VENDLER_RMQ_PORT" default:"5672"`
	Username                string `envconfig:"VENDLER_RMQ_USERNAME" required:"true"`
	Password                string `envconfig:"VENDLER_RMQ_PASSWORD" required:"true"`
	Exchange                string `envconfig:"VENDLER_RMQ_EXCHANGE" default:"vendler-exchange"`
	MaxParallelRequestCount int    `envconfig:"VENDLER_RMQ_MAX_PARALLEL_REQUESTS" default:"5"`
	ReplayTaskQueue         string `envconfig:"VENDLER_RMQ_REPLAY_QUEUE" default:"vendler-replay"`
	CompletionQueue         string `envconfig:"VENDLER_RMQ_COMPLETION_QUEUE" default:"vendler-replay-done"`
}

func readConfig(rmqLogger zerolog.Logger) (Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		rmqLogger.Error().Err(err).Msg("Could not read env config")
		return config, err
	}
	return config, nil
}

// Publisher sends messages to the queues bound on the exchange.
type Publisher struct {
	Errors  <-chan *amqp.Error
	config  Config
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewPublisher() (*Publisher, error) {
	config, err := readConfig(logger.NewLogger("RMQ publisher"))
	if err != nil {
		return nil, err
	}
	return newPublisher(config)
}

func newPublisher(config Config) (*Publisher, error) {
	conn, channel, err := setup(getURL(config))
	if err != nil {
		return nil, fmt.Errorf("failed connection: %w", err)
	}
	if err := channel.ExchangeDeclare(config.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("exchange: %w", err)
	}
	for _, queue := range []string{config.ReplayTaskQueue, config.CompletionQueue} {
		if err := declare(channel, config.Exchange, queue); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	return &Publisher{
		Errors:  channel.NotifyClose(make(chan *amqp.Error)),
		config:  config,
		conn:    conn,
		channel: channel,
	}, nil
}

func (p *Publisher) publish(queue string, msg amqp.Publishing) error {
	return p.channel.Publish(p.config.Exchange, queue, false, false, msg)
}

// SubmitReplay queues a replay job for the workers.
func (p *Publisher) SubmitReplay(msg amqp.Publishing) error {
	return p.publish(p.config.ReplayTaskQueue, msg)
}

// NotifyCompletion tells whoever submitted the job that it is done.
func (p *Publisher) NotifyCompletion(msg amqp.Publishing) error {
	return p.publish(p.config.CompletionQueue, msg)
}

func (p *Publisher) Close() {
	_ = p.conn.Close()
}

// Client consumes replay jobs and answers on its own connection.
type Client struct {
	*Publisher
	Deliveries    <-chan amqp.Delivery
	ReqChanErrors <-chan *amqp.Error
	reqConn       *amqp.Connection
}

func NewClient() (*Client, error) {
	rmqLogger := logger.NewLogger("RMQ client")
	config, err := readConfig(rmqLogger)
	if err != nil {
		return nil, err
	}

	publisher, err := newPublisher(config)
	if err != nil {
		return nil, err
	}
	reqConn, reqChannel, err := setup(getURL(config))
	if err != nil {
		publisher.Close()
		return nil, fmt.Errorf("failed connection: %w", err)
	}
	if err := reqChannel.Qos(config.MaxParallelRequestCount, 0, false); err != nil {
		publisher.Close()
		_ = reqConn.Close()
		return nil, fmt.Errorf("qos: %w", err)
	}

	deliveries, err := reqChannel.Consume(
		config.ReplayTaskQueue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		publisher.Close()
		_ = reqConn.Close()
		return nil, fmt.Errorf("consume deliveries: %w", err)
	}
	rmqLogger.Info().Str("queue", config.ReplayTaskQueue).Msg("Consuming replay jobs")

	return &Client{
		Publisher:     publisher,
		Deliveries:    deliveries,
		ReqChanErrors: reqChannel.NotifyClose(make(chan *amqp.Error)),
		reqConn:       reqConn,
	}, nil
}

func (c *Client) Close() {
	_ = c.reqConn.Close()
	c.Publisher.Close()
}

func getURL(config Config) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s", config.Username, config.Password, config.Host, config.Port)
}

func declare(channel *amqp.Channel, exchange, queue string) error {
	q, err := channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return channel.QueueBind(q.Name, q.Name, exchange, false, nil)
}

func setup(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}
