// Package bootstrap runs a finite command with a uniform lifecycle.
//
// NewApp applies config defaults, validates the config and initializes the
// global logger. RunTask then runs start hooks, configure callbacks and the
// task under a context cancelled by SIGINT/SIGTERM, and finally the stop
// hooks, even when an earlier phase failed.
//
// # Quick Start
//
//	app, err := bootstrap.NewApp(&cfg)
//	app.OnStart(initTracing)
//	app.OnStop(flushTracing)
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    return generate(ctx, app.Cfg)
//	})
package bootstrap
