package main

import (
	logging "github.com/ipfs/go-log/v2"
)

const logSubsystem = "i18n-completeness"

var log = logging.Logger(logSubsystem)

// setVerbose switches between the default WARN level and DEBUG.
func setVerbose(verbose bool) {
	level := "WARN"
	if verbose {
		level = "DEBUG"
	}
	_ = logging.SetLogLevel(logSubsystem, level)
}
