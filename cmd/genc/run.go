package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/genc/bootstrap"
	"github.com/kbukum/genc/config"
	"github.com/kbukum/genc/errors"
	"github.com/kbukum/genc/logger"
	"github.com/kbukum/genc/observability"
	"github.com/kbukum/genc/recipe"
	"github.com/kbukum/genc/sequence"
	"github.com/kbukum/genc/version"
)

const appName = "genc"

// run parses args, loads configuration and writes every recipe's values to out.
func run(ctx context.Context, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	configFile := fs.String("config", "", "path to the config file (default: search ./config.yml, ./cmd/genc/config.yml, ...)")
	envFile := fs.String("env-file", "", "path to a .env file")
	fs.Int("count", 10, "number of values to pull from each recipe")
	fs.String("recipe", "", "only run the named recipe")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return errors.InvalidConfig(err.Error()).WithCause(err)
	}

	if *showVersion {
		return version.Fprint(out, appName)
	}

	// Only these flags map onto config keys.
	bound := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	bound.AddFlag(fs.Lookup("count"))
	bound.AddFlag(fs.Lookup("recipe"))

	var cfg Config
	if err := config.LoadConfig(appName, &cfg,
		config.WithConfigFile(*configFile),
		config.WithEnvFile(*envFile),
		config.WithFlags(bound),
	); err != nil {
		return err
	}

	app, err := bootstrap.NewApp(&cfg)
	if err != nil {
		return err
	}

	var (
		metrics *observability.Metrics
		named   []recipe.Named
	)
	if cfg.Tracing.Endpoint != "" {
		app.OnStart(func(ctx context.Context) error {
			tp, err := observability.InitTracer(ctx, &cfg.Tracing)
			if err != nil {
				return err
			}
			app.OnStop(tp.Shutdown)
			return nil
		})
	}
	if cfg.Metrics.Endpoint != "" {
		app.OnStart(func(ctx context.Context) error {
			mp, err := observability.InitMeter(ctx, &cfg.Metrics)
			if err != nil {
				return err
			}
			app.OnStop(mp.Shutdown)
			metrics, err = observability.NewMetrics(observability.Meter(appName))
			return err
		})
	}
	app.OnConfigure(func(ctx context.Context, a *bootstrap.App[*Config]) error {
		named, err = compile(a.Cfg)
		return err
	})

	return app.RunTask(ctx, func(ctx context.Context) error {
		return generate(ctx, app.Logger, named, cfg.Count, metrics, out)
	})
}

// compile builds the configured recipes, keeping only cfg.Recipe when set.
func compile(cfg *Config) ([]recipe.Named, error) {
	named, err := recipe.Compile(cfg.Recipes)
	if err != nil {
		return nil, err
	}
	if cfg.Recipe == "" {
		return named, nil
	}
	i := slices.IndexFunc(named, func(n recipe.Named) bool { return n.Name == cfg.Recipe })
	if i < 0 {
		return nil, errors.InvalidConfig(fmt.Sprintf("no recipe named %q", cfg.Recipe)).
			WithDetail("field", "recipe")
	}
	return named[i : i+1], nil
}

// generate pulls count values from every recipe in order and writes them as
// "<recipe>\t<value>" lines. The first failing recipe stops the run.
func generate(ctx context.Context, log *logger.Logger, named []recipe.Named, count int, metrics *observability.Metrics, out io.Writer) error {
	ctx, runSpan := observability.StartSpan(ctx, observability.SpanRun)
	defer runSpan.End()

	w := bufio.NewWriter(out)
	defer w.Flush()

	for _, n := range named {
		if err := take(ctx, log, n, count, metrics, w); err != nil {
			observability.SetSpanError(ctx, err)
			return err
		}
	}
	return w.Flush()
}

func take(ctx context.Context, log *logger.Logger, n recipe.Named, count int, metrics *observability.Metrics, w io.Writer) error {
	ctx, span := observability.StartSpan(ctx, observability.SpanRecipe)
	defer span.End()
	span.SetAttributes(
		attribute.String(observability.AttrGenerator, n.Name),
		attribute.String(observability.AttrKind, n.Kind),
		attribute.Int(observability.AttrCount, count),
	)

	g := observability.Instrument(ctx, n.Generator, metrics, n.Name)
	pulled := 0
	err := sequence.ForEach(ctx, sequence.Limit(g, count), func(_ context.Context, v any) error {
		pulled++
		_, err := fmt.Fprintf(w, "%s\t%v\n", n.Name, v)
		return err
	})
	if metrics != nil {
		metrics.RecordTake(ctx, n.Name, pulled, err)
	}
	if err != nil {
		observability.SetSpanError(ctx, err)
		log.WithContext(ctx).Error("recipe failed", logger.Fields(
			logger.FieldRecipe, n.Name,
			logger.FieldCount, pulled,
			logger.FieldCode, string(errors.CodeOf(err)),
		))
		return fmt.Errorf("recipe %s: %w", n.Name, err)
	}
	log.WithContext(ctx).Debug("recipe done", logger.Fields(logger.FieldRecipe, n.Name, logger.FieldCount, pulled))
	return nil
}
