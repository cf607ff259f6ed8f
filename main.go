/*
Renders the testbed scene headlessly and writes the frame to disk.
With -watch it keeps running and renders again whenever the
configuration file changes.
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/slim/engine"
	"github.com/spaghettifunk/slim/engine/core"
	"github.com/spaghettifunk/slim/testbed"
)

func main() {
	configPath := flag.String("config", "", "path of the TOML configuration file")
	watch := flag.Bool("watch", false, "render again every time the configuration file changes")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		core.LogFatal(err.Error())
	}

	tb := testbed.NewTestGame(cfg, *configPath)

	e, err := engine.New(tb.Game)
	if err != nil {
		core.LogFatal(err.Error())
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal(err.Error())
	}

	// cancel the context on system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if *watch {
		err = e.Watch(ctx)
	} else {
		err = e.Run(ctx)
	}
	if err != nil && ctx.Err() == nil {
		core.LogError(err.Error())
		_ = e.Shutdown()
		os.Exit(1)
	}

	if err := e.Shutdown(); err != nil {
		core.LogError(err.Error())
		os.Exit(1)
	}
}
