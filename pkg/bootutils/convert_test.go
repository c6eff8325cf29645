// Copyright (c) 2019 Cloudbase Solutions Srl
//
// SPDX-License-Identifier: Apache-2.0
//

package bootutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	assert := assert.New(t)

	for _, d := range []struct {
		value    string
		expected int64
	}{
		{"", 0},
		{"0", 0},
		{"128", 128},
		{" 128 ", 128},
		{"128K", 128000},
		{"128KB", 128000},
		{"128Ki", 131072},
		{"128KiB", 131072},
		{"128k", 128000},
		{"2M", 2000000},
		{"2Mi", 2097152},
		{"2MiB", 2097152},
		{"0x20", 32},
		{" 0x1000 ", 4096},
	} {
		v, err := ToInt(d.value)
		assert.NoError(err, "value %q", d.value)
		assert.Equal(d.expected, v, "value %q", d.value)
	}

	for _, value := range []string{"abc", "12q", "K", "1.5M", "0x"} {
		_, err := ToInt(value)
		assert.Error(err, "value %q", value)
	}
}

func TestToBool(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []string{"on", "high", "true", "enable", "enabled", "yes", "1", "ON", "Yes"} {
		v, err := ToBool(value, false)
		assert.NoError(err, "value %q", value)
		assert.True(v, "value %q", value)
	}

	for _, value := range []string{"off", "low", "false", "disable", "disabled", "no", "0", "OFF", "No"} {
		v, err := ToBool(value, false)
		assert.NoError(err, "value %q", value)
		assert.False(v, "value %q", value)
	}

	// Permissive mode maps anything unrecognized to false.
	v, err := ToBool("maybe", true)
	assert.NoError(err)
	assert.False(v)

	v, err = ToBool("", true)
	assert.NoError(err)
	assert.False(v)

	_, err = ToBool("maybe", false)
	assert.Error(err)
}
