// Copyright (c) 2019 Cloudbase Solutions Srl
//
// SPDX-License-Identifier: Apache-2.0
//

package bootutils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// String values evaluated as true booleans.
var trueBooleans = []string{"on", "high", "true", "enable", "enabled", "yes", "1"}

// String values evaluated as false booleans.
var falseBooleans = []string{"off", "low", "false", "disable", "disabled", "no", "0"}

var sizeRegexp = regexp.MustCompile(`^\s*(\d+)\s*(?:([KMkm]i?)?B?)?\s*$`)

var sizeMultipliers = map[string]int64{
	"K":  1000,
	"KI": 1 << 10,
	"M":  1000 * 1000,
	"MI": 1 << 20,
}

// ToInt converts a string into an integer. The input may be a decimal
// or a 0x prefixed hexadecimal value, optionally followed by a kilo or
// mega unit suffix: K and M are decimal multipliers, Ki and Mi binary
// ones. An empty string converts to zero.
func ToInt(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}

	if mo := sizeRegexp.FindStringSubmatch(value); mo != nil {
		v, err := strconv.ParseInt(mo[1], 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid integer value %q", value)
		}
		if mo[2] != "" {
			v *= sizeMultipliers[strings.ToUpper(mo[2])]
		}
		return v, nil
	}

	v, err := strconv.ParseInt(strings.TrimSpace(value), 0, 64)
	if err != nil {
		return 0, errors.Errorf("invalid integer value %q", value)
	}

	return v, nil
}

// ToBool converts a string into a boolean. The usual on/off style
// configuration words are recognized. When permissive is set, any
// unrecognized value maps to false instead of failing.
func ToBool(value string, permissive bool) (bool, error) {
	v := strings.ToLower(value)

	for _, word := range trueBooleans {
		if v == word {
			return true, nil
		}
	}

	if permissive {
		return false, nil
	}

	for _, word := range falseBooleans {
		if v == word {
			return false, nil
		}
	}

	return false, errors.Errorf("invalid boolean value %q", value)
}
