// Copyright (c) 2019 Cloudbase Solutions Srl
//
// SPDX-License-Identifier: Apache-2.0
//

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli"

	"github.com/cloudbase/pybootd/pkg/netutils"
)

var netconfigCLICommand = cli.Command{
	Name:  "netconfig",
	Usage: "show the interface configuration serving an address",
	ArgsUsage: `<address>

   <address> is an IPv4 address the daemon must reach, for instance the
   first address of the configured BOOTP pool.`,
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "json",
			Usage: "print the interface configuration as JSON",
		},
	},
	Action: func(context *cli.Context) error {
		ctx, err := cliContextToContext(context)
		if err != nil {
			return err
		}

		address := context.Args().First()
		if address == "" {
			return fmt.Errorf("Missing target address")
		}

		return netconfig(ctx, address, context.Bool("json"))
	},
}

type formatIfaceConfig interface {
	Write(config *netutils.InterfaceConfig, file *os.File) error
}

type formatIfaceTabular struct{}
type formatIfaceJSON struct{}

func (f formatIfaceTabular) Write(config *netutils.InterfaceConfig, file *os.File) error {
	flags := uint(0)
	minWidth := 12
	tabWidth := 1
	padding := 3

	w := tabwriter.NewWriter(file, minWidth, tabWidth, padding, ' ', flags)

	fmt.Fprint(w, "INTERFACE\tADDRESS\tNETWORK\tMASK\n")
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		config.IfName,
		config.Server,
		config.Net,
		config.Mask)

	return w.Flush()
}

func (f formatIfaceJSON) Write(config *netutils.InterfaceConfig, file *os.File) error {
	return json.NewEncoder(file).Encode(config)
}

func netconfig(ctx context.Context, address string, asJSON bool) error {
	bootLog.WithField("address", address).Debug("Resolving interface configuration")

	config, err := netutils.GetIfaceConfig(ctx, address)
	if err != nil {
		return err
	}
	if config == nil {
		return fmt.Errorf("No configured interface serves %s", address)
	}

	var fs formatIfaceConfig = formatIfaceTabular{}
	if asJSON {
		fs = formatIfaceJSON{}
	}

	return fs.Write(config, defaultOutputFile)
}
