// Copyright (c) 2019 Cloudbase Solutions Srl
//
// SPDX-License-Identifier: Apache-2.0
//

package netutils

import (
	"encoding/binary"
	"net"

	"github.com/pkg/errors"
	"github.com/vishvananda/netlink"
)

// Overridden in unit tests.
var linkListFunc = netlink.LinkList
var addrListFunc = func(link netlink.Link) ([]netlink.Addr, error) {
	return netlink.AddrList(link, netlink.FAMILY_V4)
}

// matchAddrs scans the address entries of one interface for a subnet
// containing target. Entries without an IPv4 address and mask are
// skipped. The first match in enumeration order wins.
func matchAddrs(target uint32, ifName string, addrs []netlink.Addr) *InterfaceConfig {
	for _, addr := range addrs {
		if addr.IPNet == nil {
			continue
		}

		ip4 := addr.IPNet.IP.To4()
		if ip4 == nil || len(addr.IPNet.Mask) != net.IPv4len {
			continue
		}

		addrVal := binary.BigEndian.Uint32(ip4)
		maskVal := binary.BigEndian.Uint32(addr.IPNet.Mask)

		if sameSubnet(target, addrVal, maskVal) {
			return newInterfaceConfig(ifName, addrVal, maskVal)
		}
	}

	return nil
}

// netlinkIfaceConfig resolves target against the host interface table
// queried through netlink.
func netlinkIfaceConfig(target uint32) (*InterfaceConfig, error) {
	links, err := linkListFunc()
	if err != nil {
		return nil, errors.Wrap(err, "Could not list host interfaces")
	}

	for _, link := range links {
		name := link.Attrs().Name

		addrs, err := addrListFunc(link)
		if err != nil {
			netLog.WithError(err).WithField("interface", name).Warn("skipping interface")
			continue
		}

		if config := matchAddrs(target, name, addrs); config != nil {
			return config, nil
		}
	}

	return nil, nil
}
