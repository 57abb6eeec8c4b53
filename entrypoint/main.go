package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"github.com/carlosgonzalezvergara/vendler/aktionsart"
	"github.com/carlosgonzalezvergara/vendler/api"
	"github.com/carlosgonzalezvergara/vendler/logger"
	"github.com/carlosgonzalezvergara/vendler/ls"
	"github.com/carlosgonzalezvergara/vendler/replay"
	"github.com/carlosgonzalezvergara/vendler/rmq"
	"github.com/carlosgonzalezvergara/vendler/sessionstore"
	"github.com/carlosgonzalezvergara/vendler/tasks"
	"github.com/carlosgonzalezvergara/vendler/worker"
	"github.com/kelseyhightower/envconfig"
	"github.com/streadway/amqp"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type Config struct {
	Store string `envconfig:"VENDLER_SESSION_STORE" default:"memory"`
}

const usage = `usage: vendler [-wrap] [-store memory|redis] <mode>

modes:
  api                 serve the dialogs over HTTP
  worker              consume batch replay jobs
  replay <file>       replay a local script and print the report
  submit <script key> queue a replay job for a script stored in S3
`

var mainLogger = logger.NewLogger("Main")

func main() {
	logger.SetupLogging()
	fatalErrLogger := mainLogger.Fatal().Caller()

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fatalErrLogger.Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}
	wrap := flag.Bool("wrap", false, "run as a child process behind the log wrapper")
	store := flag.String("store", config.Store, "session store for the api mode: memory or redis")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	if *wrap {
		args := []string{"-store", *store}
		logger.WrapProcess(os.Args[0], append(args, flag.Args()...)...)
		return
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var err error
	switch mode := flag.Arg(0); mode {
	case "api":
		err = serveAPI(ctx, *store)
	case "worker":
		err = runWorker(ctx)
	case "replay":
		if flag.NArg() < 2 {
			flag.Usage()
			os.Exit(2)
		}
		var failed bool
		failed, err = replayFile(ctx, flag.Arg(1))
		if err == nil && failed {
			stop()
			os.Exit(1)
		}
	case "submit":
		if flag.NArg() < 2 {
			flag.Usage()
			os.Exit(2)
		}
		err = submit(ctx, flag.Arg(1))
	default:
		mainLogger.Error().Str("mode", mode).Msg("Unknown mode")
		flag.Usage()
		os.Exit(2)
	}
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, http.ErrServerClosed) {
		fatalErrLogger.Err(err).Msg("Stopped with error")
		os.Exit(1)
	}
}

func engines() (*ls.Engine, []*aktionsart.Engine, error) {
	lsEngine, err := ls.NewDefaultEngine()
	if err != nil {
		return nil, nil, err
	}
	var akt []*aktionsart.Engine
	for _, lang := range []aktionsart.Lang{aktionsart.Spanish, aktionsart.English} {
		e, err := aktionsart.NewDefaultEngine(lang)
		if err != nil {
			return nil, nil, err
		}
		akt = append(akt, e)
	}
	return lsEngine, akt, nil
}

func openStore(kind string) (sessionstore.Store, error) {
	switch kind {
	case "memory":
		return sessionstore.NewMemoryStore(), nil
	case "redis":
		return sessionstore.NewRedisStore()
	}
	return nil, fmt.Errorf("unknown session store '%s'", kind)
}

func serveAPI(ctx context.Context, storeKind string) error {
	cfg, err := api.ReadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(storeKind)
	if err != nil {
		return err
	}
	lsEngine, akt, err := engines()
	if err != nil {
		return err
	}
	server, err := api.New(store, lsEngine, akt...)
	if err != nil {
		return err
	}
	mainLogger.Info().Str("store", storeKind).Msg("Starting API service")
	return server.Start(ctx, cfg)
}

func runWorker(ctx context.Context) error {
	lsEngine, akt, err := engines()
	if err != nil {
		return err
	}
	runner := replay.NewRunner(lsEngine, akt...)

	mainLogger.Info().Msg("Start replay worker")
	for {
		rmqWorker, err := worker.New(runner)
		if err != nil {
			return fmt.Errorf("could not initialize RMQ worker: %w", err)
		}
		err = rmqWorker.StartWorker(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		mainLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
		}
	}
}

// replayFile reports whether any case failed.
func replayFile(ctx context.Context, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	script, err := replay.ParseScript(data)
	if err != nil {
		return false, err
	}
	lsEngine, akt, err := engines()
	if err != nil {
		return false, err
	}
	report := replay.NewRunner(lsEngine, akt...).Run(ctx, script)
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return false, err
	}
	fmt.Println(string(out))
	return report.Summary.Failed > 0, nil
}

func submit(ctx context.Context, scriptKey string) error {
	tasksClient, err := tasks.NewClient()
	if err != nil {
		return err
	}
	defer tasksClient.Close()
	job, redisKey, err := tasksClient.Jobs.Create(ctx, scriptKey)
	if err != nil {
		return err
	}

	publisher, err := rmq.NewPublisher()
	if err != nil {
		return err
	}
	defer publisher.Close()
	body, err := json.Marshal(worker.Message{RedisKey: redisKey, ScriptKey: scriptKey, Sender: "vendler-cli"})
	if err != nil {
		return err
	}
	if err := publisher.SubmitReplay(amqp.Publishing{ContentType: "application/json", Body: body}); err != nil {
		return err
	}
	mainLogger.Info().Str("job", job.ID).Str("redis_key", redisKey).Msg("Replay job submitted")
	return nil
}
