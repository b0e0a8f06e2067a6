package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	appteams "github.com/preston-bernstein/owl-schedule-service/internal/app/teams"
	"github.com/preston-bernstein/owl-schedule-service/internal/cli"
	"github.com/preston-bernstein/owl-schedule-service/internal/config"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
	"github.com/preston-bernstein/owl-schedule-service/internal/logging"
	"github.com/preston-bernstein/owl-schedule-service/internal/server"
)

const appVersion = "dev"

const cliLogLevel = "warn"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(cliLogConfig(cfg.Log, stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.Deps{
		OpenStore: func(ctx context.Context) (schedule.Store, error) {
			return server.OpenStore(ctx, cfg.Store, logger, nil)
		},
		Roster:       appteams.NewService(cfg.LogosDir),
		QueryTimeout: cfg.Store.QueryTimeout,
		Location:     server.ResolveLocation(cfg.Timezone, logger),
	})
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		cli.Report(stderr, logger, err)
		return 1
	}
	return 0
}

// cliLogConfig keeps logs off the terminal unless LOG_LEVEL or LOG_FILE asks
// for them; stderr is reserved for the command's own messages.
func cliLogConfig(cfg config.LogConfig, stderr io.Writer) logging.Config {
	out := logging.Config{
		Level:   cliLogLevel,
		Format:  cfg.Format,
		File:    cfg.File,
		Output:  io.Discard,
		Service: "owlctl",
		Version: appVersion,
	}
	if _, ok := os.LookupEnv("LOG_LEVEL"); ok {
		out.Level = cfg.Level
		out.Output = stderr
	}
	return out
}
