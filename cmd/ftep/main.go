package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"
)

var gitCommitSHA = ""

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, syscall.SIGTERM, syscall.SIGINT)

		select {
		case <-interrupt:
			fmt.Println()
			klog.Info("received interrupt signal")
			cancel()
		case <-ctx.Done():
		}

		signal.Stop(interrupt)
	}()

	app := &cli.App{
		Name:        "ftep",
		Version:     gitCommitSHA,
		Description: "CLI to build, embed, and query a full-text index packed inside a columnar table file.",
		Flags: []cli.Flag{
			FlagVerbose,
		},
		Commands: []*cli.Command{
			newCmd_Demo(),
			newCmd_ContactsBench(),
		},
		Before: func(c *cli.Context) error {
			if c.Bool(FlagVerbose.Name) {
				var fs flag.FlagSet
				klog.InitFlags(&fs)
				return fs.Set("v", "4")
			}
			return nil
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.RunContext(ctx, os.Args); err != nil {
		klog.Fatal(err)
	}
}
