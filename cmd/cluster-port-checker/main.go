package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type CLI struct {
	Check Check `cmd:"" default:"withargs" help:"Check which cluster services have all of their required ports open (default)."`
	Serve Serve `cmd:"" help:"Re-run the port check on an interval and expose the results as Prometheus metrics."`
}

type streams struct {
	stdout io.Writer
	stderr io.Writer
}

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var cli CLI

	kctx := kong.Parse(&cli,
		kong.Name("cluster-port-checker"),
		kong.Description("Checks that the well-known ports of cluster services are open."),
		kong.UsageOnError(),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.Bind(&streams{stdout: os.Stdout, stderr: os.Stderr})

	err := kctx.Run()
	cancel()
	kctx.FatalIfErrorf(err)
}

// loadDotEnv populates the environment from path without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}
