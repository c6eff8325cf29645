// Copyright (c) 2019 Cloudbase Solutions Srl
//
// SPDX-License-Identifier: Apache-2.0
//

package config

import (
	units "github.com/docker/go-units"
	ini "github.com/go-ini/ini"
	"github.com/pkg/errors"

	"github.com/cloudbase/pybootd/pkg/bootutils"
)

// Config reads the daemon INI configuration, handing back caller
// supplied defaults for missing sections and options.
type Config struct {
	file *ini.File
}

// Load reads an INI configuration file.
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not load configuration file %s", path)
	}

	return &Config{file: file}, nil
}

// GetOpt returns an option value, or dflt when the section or the
// option is missing.
func (c *Config) GetOpt(section, option, dflt string) string {
	sec, err := c.file.GetSection(section)
	if err != nil {
		return dflt
	}
	if !sec.HasKey(option) {
		return dflt
	}

	return sec.Key(option).String()
}

// GetInt returns an integer option, accepting the same value forms as
// bootutils.ToInt, or dflt when the option is missing.
func (c *Config) GetInt(section, option string, dflt int64) (int64, error) {
	value := c.GetOpt(section, option, "")
	if value == "" {
		return dflt, nil
	}

	return bootutils.ToInt(value)
}

// GetBool returns a boolean option, permissively parsed, or dflt when
// the option is missing.
func (c *Config) GetBool(section, option string, dflt bool) bool {
	value := c.GetOpt(section, option, "")
	if value == "" {
		return dflt
	}

	v, _ := bootutils.ToBool(value, true)
	return v
}

// GetSize returns a human readable size option ("64m", "2g") in bytes,
// or dflt when the option is missing.
func (c *Config) GetSize(section, option string, dflt int64) (int64, error) {
	value := c.GetOpt(section, option, "")
	if value == "" {
		return dflt, nil
	}

	size, err := units.RAMInBytes(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid size value for %s.%s", section, option)
	}

	return size, nil
}
