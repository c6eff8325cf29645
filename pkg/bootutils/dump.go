// Copyright (c) 2019 Cloudbase Solutions Srl
//
// SPDX-License-Identifier: Apache-2.0
//

package bootutils

import (
	"fmt"
	"strings"
)

const hexDumpRowLen = 16

// printableASCII maps a byte to its printable ASCII character, or a dot.
func printableASCII(b byte) byte {
	if b >= 0x20 && b <= 0x7e {
		return b
	}
	return '.'
}

// HexLine returns the hexadecimal and ASCII representations of data on
// a single line, prefixed with its length, for protocol debug logs.
func HexLine(data []byte, sep string) string {
	hexa := make([]string, len(data))
	printable := make([]byte, len(data))

	for i, b := range data {
		hexa[i] = fmt.Sprintf("%02x", b)
		printable[i] = printableASCII(b)
	}

	return fmt.Sprintf("(%d) %s : %s", len(data), strings.Join(hexa, sep), printable)
}

// HexDump formats data as rows of sixteen bytes, each with its offset,
// hexadecimal values and ASCII representation.
func HexDump(data []byte) string {
	var sb strings.Builder

	for off := 0; off < len(data); off += hexDumpRowLen {
		end := off + hexDumpRowLen
		if end > len(data) {
			end = len(data)
		}
		row := data[off:end]

		printable := make([]byte, len(row))
		for i, b := range row {
			printable[i] = printableASCII(b)
		}

		fmt.Fprintf(&sb, "%08x  %-*s %s\n",
			off, hexDumpRowLen*3, fmt.Sprintf("% x", row), printable)
	}

	return sb.String()
}
