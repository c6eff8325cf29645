// Copyright (c) 2019 Cloudbase Solutions Srl
//
// SPDX-License-Identifier: Apache-2.0
//

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/cloudbase/pybootd/pkg/bootutils"
	"github.com/cloudbase/pybootd/pkg/config"
	"github.com/cloudbase/pybootd/pkg/netutils"
)

// name of this binary.
const name = "pybootd-netconf"

const usage = `network configuration tool for the boot daemon`

// version is set at build time.
var version = "unknown"

// bootLog is the process logger. It is rebuilt from the CLI flags and
// the configuration file before any command runs.
var bootLog = logrus.WithField("name", name)

var defaultOutputFile = os.Stdout

func cliContextToContext(c *cli.Context) (context.Context, error) {
	if c == nil || c.App == nil {
		return nil, errors.New("invalid CLI context")
	}

	ctx, ok := c.App.Metadata["context"].(context.Context)
	if !ok {
		return nil, errors.New("CLI context not set")
	}

	return ctx, nil
}

// beforeSubcommands wires the logger from the [logger] configuration
// section and the global flags, flags taking precedence.
func beforeSubcommands(c *cli.Context) error {
	logType := "stderr"
	logFile := c.GlobalString("log")
	level := c.GlobalString("log-level")

	if configFile := c.GlobalString("config"); configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		c.App.Metadata["config"] = cfg

		logType = cfg.GetOpt("logger", "type", logType)
		if logFile == "" {
			logFile = cfg.GetOpt("logger", "file", "")
		}
		if level == "" {
			level = cfg.GetOpt("logger", "level", "info")
		}
	}

	if logFile != "" {
		logType = "file"
	}
	if c.GlobalBool("debug") {
		level = "debug"
	}

	logger, err := bootutils.NewLogger(logType, logFile, level, name)
	if err != nil {
		return err
	}

	bootLog = logger
	netutils.SetLogger(bootLog)

	return nil
}

func createApp(ctx context.Context) *cli.App {
	app := cli.NewApp()
	app.Name = name
	app.Usage = usage
	app.Version = version
	app.Metadata = map[string]interface{}{
		"context": ctx,
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "path to the daemon configuration file",
		},
		cli.StringFlag{
			Name:  "log",
			Usage: "set the log file path",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "set the log level (debug, info, error)",
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "enable debug output",
		},
	}
	app.Commands = []cli.Command{
		netconfigCLICommand,
		versionCLICommand,
	}
	app.Before = beforeSubcommands

	return app
}

func main() {
	app := createApp(context.Background())

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
