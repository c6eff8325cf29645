// Copyright (c) 2019 Cloudbase Solutions Srl
//
// SPDX-License-Identifier: Apache-2.0
//

package netutils

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIPToInt(t *testing.T) {
	assert := assert.New(t)

	v, err := IPToInt("192.168.1.10")
	assert.NoError(err)
	assert.Equal(uint32(0xc0a8010a), v)

	v, err = IPToInt("0.0.0.0")
	assert.NoError(err)
	assert.Equal(uint32(0), v)

	v, err = IPToInt("255.255.255.255")
	assert.NoError(err)
	assert.Equal(uint32(0xffffffff), v)

	for _, s := range []string{
		"",
		"192.168.1",
		"192.168.1.256",
		"192.168.1.10.1",
		"2001:db8::1",
		"foo",
	} {
		_, err = IPToInt(s)
		assert.Error(err, "address %q", s)
		assert.Equal(ErrInvalidAddress, errors.Cause(err))
	}
}

func TestIPRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, s := range []string{
		"0.0.0.0",
		"10.0.0.5",
		"127.0.0.1",
		"192.168.1.10",
		"255.255.255.255",
	} {
		v, err := IPToInt(s)
		assert.NoError(err)
		assert.Equal(s, IntToIP(v))
	}

	for _, v := range []uint32{0, 1, 0x7f000001, 0xc0a8010a, 0xfffffffe, 0xffffffff} {
		u, err := IPToInt(IntToIP(v))
		assert.NoError(err)
		assert.Equal(v, u)
	}
}
