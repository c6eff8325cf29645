// Copyright (c) 2019 Cloudbase Solutions Srl
//
// SPDX-License-Identifier: Apache-2.0
//

package bootutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexLine(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("(0)  : ", HexLine(nil, " "))
	assert.Equal("(3) 41 42 43 : ABC", HexLine([]byte("ABC"), " "))
	assert.Equal("(4) 41-42-43-00 : ABC.", HexLine([]byte("ABC\x00"), "-"))
	assert.Equal("(2) ff 7f : ..", HexLine([]byte{0xff, 0x7f}, " "))
}

func TestHexDump(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", HexDump(nil))

	data := append([]byte("0123456789abcdef"), 0x00, 'G')
	dump := HexDump(data)

	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	assert.Len(lines, 2)
	assert.Contains(lines[0], "00000000")
	assert.Contains(lines[0], "0123456789abcdef")
	assert.Contains(lines[1], "00000010")
	assert.Contains(lines[1], ".G")
}
