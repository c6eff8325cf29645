// Copyright (c) 2019 Cloudbase Solutions Srl
//
// SPDX-License-Identifier: Apache-2.0
//

package netutils

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

var netLog = logrus.WithField("source", "netutils")

// SetLogger sets the logger for the netutils package.
func SetLogger(logger *logrus.Entry) {
	fields := netLog.Data
	netLog = logger.WithFields(fields)
}

// InterfaceConfig describes the local interface able to reach a given
// target address: its name, its own address, and the network and mask
// of the subnet it serves.
type InterfaceConfig struct {
	IfName string `json:"ifname"`
	Server string `json:"server"`
	Net    string `json:"net"`
	Mask   string `json:"mask"`
}

// sameSubnet reports whether target and candidate belong to the same
// subnet under mask. A zero mask matches everything.
func sameSubnet(target, candidate, mask uint32) bool {
	return target&mask == candidate&mask
}

func newInterfaceConfig(ifName string, addr, mask uint32) *InterfaceConfig {
	return &InterfaceConfig{
		IfName: ifName,
		Server: IntToIP(addr),
		Net:    IntToIP(addr & mask),
		Mask:   IntToIP(mask),
	}
}

var (
	probeOnce     sync.Once
	netlinkUsable bool
)

// structuredAvailable reports whether the netlink query path can be
// used on this host. The probe runs once and its answer is reused for
// the process lifetime.
func structuredAvailable() bool {
	probeOnce.Do(func() {
		_, err := linkListFunc()
		netlinkUsable = err == nil
		if err != nil {
			netLog.WithError(err).Debug("netlink unavailable, falling back to the ip command")
		}
	})

	return netlinkUsable
}

// GetIfaceConfig returns the configuration of the local interface whose
// subnet contains address, or nil when no interface matches. An empty
// address resolves to nil without querying the host.
func GetIfaceConfig(ctx context.Context, address string) (*InterfaceConfig, error) {
	if address == "" {
		return nil, nil
	}

	target, err := IPToInt(address)
	if err != nil {
		return nil, err
	}

	if structuredAvailable() {
		return netlinkIfaceConfig(target)
	}

	return iprouteIfaceConfig(ctx, target)
}
