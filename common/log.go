/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger for all subpackages. The analysis pipeline logs
// page-level progress at debug, geometry anomalies at warn.
var Log = newLogger()

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return log
}

// SetVerbosity maps a repeatable -v count onto log levels. 0 is warn,
// 1 is info, 2 or more is debug.
func SetVerbosity(count int) {
	switch {
	case count <= 0:
		Log.SetLevel(logrus.WarnLevel)
	case count == 1:
		Log.SetLevel(logrus.InfoLevel)
	default:
		Log.SetLevel(logrus.DebugLevel)
	}
}
