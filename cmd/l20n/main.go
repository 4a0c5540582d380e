// Command l20n resolves localization keys against a resource tree and prints
// the result as JSON.
//
//	l20n -accept "fr-CH, en;q=0.7" -res "{locale}/app.properties" -arg user=Ann greeting title
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrymomot/l20n/pkg/config"
	"github.com/dmitrymomot/l20n/pkg/logger"
)

type runIDKey struct{}

func main() {
	var (
		envFile  = flag.String("env-file", "", "load variables from this .env file")
		accept   = flag.String("accept", os.Getenv("L20N_ACCEPT_LANGUAGE"), "requested languages as an Accept-Language header")
		res      = flag.String("res", "", "comma separated resource ids, overrides L20N_RESOURCES")
		entities = flag.Bool("entities", false, "print attributes along with values")
		args     argList
	)
	flag.Var(&args, "arg", "argument as name=value; may be repeated")
	flag.Parse()

	if *envFile != "" {
		config.MustLoadEnv(*envFile)
	}

	var cfg Config
	config.MustLoad(&cfg)
	if *res != "" {
		cfg.Resources = strings.Split(*res, ",")
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "l20n"),
		logger.WithOutput(os.Stderr),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())

	req := request{
		Accept:   *accept,
		Keys:     flag.Args(),
		Args:     args.values(),
		Entities: *entities,
	}
	if err := run(ctx, cfg, req, os.Stdout, log); err != nil {
		log.ErrorContext(ctx, "l20n failed", logger.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
