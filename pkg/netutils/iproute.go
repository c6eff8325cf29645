// Copyright (c) 2019 Cloudbase Solutions Srl
//
// SPDX-License-Identifier: Apache-2.0
//

package netutils

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrCommandFailed is the failure cause reported when the fallback
	// ip command could not be run or exited with a non zero status.
	ErrCommandFailed = errors.New("ip command failed")

	// ErrMalformedOutput is the failure cause reported for ip command
	// output that does not follow the expected stanza format.
	ErrMalformedOutput = errors.New("malformed ip command output")
)

// Overridden in unit tests.
var ipAddrShowFunc = func(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "ip", "address", "show").Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ifaceAddr is one IPv4 address entry attributed to an interface.
type ifaceAddr struct {
	ifName string
	addr   uint32
	mask   uint32
}

// parseInet parses the address/prefixlen token of an inet line.
func parseInet(token string) (uint32, uint32, error) {
	fields := strings.SplitN(token, "/", 2)
	if len(fields) != 2 {
		return 0, 0, errors.Wrapf(ErrMalformedOutput, "inet entry %q", token)
	}

	addr, err := IPToInt(fields[0])
	if err != nil {
		return 0, 0, errors.Wrapf(ErrMalformedOutput, "inet entry %q", token)
	}

	prefixLen, err := strconv.Atoi(fields[1])
	if err != nil || prefixLen < 0 || prefixLen > 32 {
		return 0, 0, errors.Wrapf(ErrMalformedOutput, "inet entry %q", token)
	}

	mask := uint32(((uint64(1) << uint(prefixLen)) - 1) << uint(32-prefixLen))

	return addr, mask, nil
}

// parseIPAddrOutput turns the line oriented output of "ip address show"
// into address entries. A current interface name is tracked across
// lines: header lines, recognized by a first token ending with a colon,
// update it, and inet lines attribute an address to it. Any malformed
// inet entry aborts the whole parse, continuing could attribute an
// address to the wrong interface.
func parseIPAddrOutput(out string) ([]ifaceAddr, error) {
	var entries []ifaceAddr
	var ifName string

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch {
		case strings.HasSuffix(fields[0], ":"):
			if len(fields) < 2 {
				continue
			}
			ifName = strings.TrimSuffix(fields[1], ":")
		case fields[0] == "inet":
			if len(fields) < 2 {
				return nil, errors.Wrapf(ErrMalformedOutput, "inet line %q", line)
			}

			addr, mask, err := parseInet(fields[1])
			if err != nil {
				return nil, err
			}

			entries = append(entries, ifaceAddr{
				ifName: ifName,
				addr:   addr,
				mask:   mask,
			})
		}
	}

	return entries, nil
}

// iprouteIfaceConfig resolves target against the interface table
// obtained by running the ip command and parsing its output.
func iprouteIfaceConfig(ctx context.Context, target uint32) (*InterfaceConfig, error) {
	out, err := ipAddrShowFunc(ctx)
	if err != nil {
		return nil, errors.Wrapf(ErrCommandFailed, "%v", err)
	}

	entries, err := parseIPAddrOutput(out)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if sameSubnet(target, entry.addr, entry.mask) {
			return newInterfaceConfig(entry.ifName, entry.addr, entry.mask), nil
		}
	}

	return nil, nil
}
