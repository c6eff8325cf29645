// Copyright (c) 2019 Cloudbase Solutions Srl
//
// SPDX-License-Identifier: Apache-2.0
//

package bootutils

import (
	"io"
	"log/syslog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logrusSyslog "github.com/sirupsen/logrus/hooks/syslog"
)

// NewLogger builds the daemon logger, writing to the handler selected
// by logType: a file, stderr, the local syslog daemon, or nowhere for
// any other value. The level names mirror the daemon configuration
// file, anything unrecognized meaning warning. The returned entry
// carries the daemon name as a field.
func NewLogger(logType, logFile, level, name string) (*logrus.Entry, error) {
	logger := logrus.New()
	logger.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	}
	logger.SetLevel(logLevel(level))

	switch strings.ToLower(logType) {
	case "file":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
		if err != nil {
			return nil, errors.Wrap(err, "Could not open log file")
		}
		logger.Out = f
	case "stderr":
		logger.Out = os.Stderr
	case "syslog", "unix":
		hook, err := logrusSyslog.NewSyslogHook("", "", syslog.LOG_INFO|syslog.LOG_DAEMON, name)
		if err != nil {
			return nil, errors.Wrap(err, "Could not connect to syslog")
		}
		logger.Hooks.Add(hook)
		logger.Out = io.Discard
	default:
		// Null handler.
		logger.Out = io.Discard
	}

	return logger.WithField("name", name), nil
}

// logLevel maps a configuration level name to a logrus level.
func logLevel(level string) logrus.Level {
	switch strings.ToUpper(level) {
	case "DEBUG", "ALL":
		return logrus.DebugLevel
	case "INFO":
		return logrus.InfoLevel
	case "ERROR":
		return logrus.ErrorLevel
	case "CRITICAL":
		return logrus.FatalLevel
	default:
		return logrus.WarnLevel
	}
}
