// Copyright (c) 2019 Cloudbase Solutions Srl
//
// SPDX-License-Identifier: Apache-2.0
//

package netutils

import (
	"encoding/binary"
	"net"

	"github.com/pkg/errors"
)

// ErrInvalidAddress is the failure cause reported for strings that are
// not dotted quad IPv4 addresses.
var ErrInvalidAddress = errors.New("invalid IPv4 address")

// IPToInt converts a dotted quad IPv4 address into its unsigned integer
// form, network byte order.
func IPToInt(s string) (uint32, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return 0, errors.Wrapf(ErrInvalidAddress, "%q", s)
	}

	ip4 := ip.To4()
	if ip4 == nil {
		return 0, errors.Wrapf(ErrInvalidAddress, "%q", s)
	}

	return binary.BigEndian.Uint32(ip4), nil
}

// IntToIP is the inverse of IPToInt.
func IntToIP(v uint32) string {
	ip := make(net.IP, net.IPv4len)
	binary.BigEndian.PutUint32(ip, v)
	return ip.String()
}
