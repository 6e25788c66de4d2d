// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/treesort"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "rounds", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--json] [--config-file=FILE] [--count=N] [--rounds=N] [--seed=N]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if err := applyOptions(masterConfiguration, options); nil != err {
		exitwithstatus.Message("%s: invalid option: %s", program, err)
	}

	// start logging
	if err := os.MkdirAll(masterConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q creation failed, error: %s", program, masterConfiguration.Logging.Directory, err)
	}
	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err := fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	var output io.Writer = os.Stdout
	if len(options["quiet"]) > 0 {
		output = io.Discard
	}
	reporter := treesort.NewTextReporter(output)
	if "json" == masterConfiguration.Output {
		reporter = treesort.NewJSONReporter(output)
	}

	harness, err := treesort.New(
		masterConfiguration.Count,
		masterConfiguration.Rounds,
		masterConfiguration.Seed,
		reporter,
		logger.New("treesort"),
	)
	if nil != err {
		log.Criticalf("harness setup error: %s", err)
		exitwithstatus.Message("%s: harness setup error: %s", program, err)
	}

	if err := harness.Run(); nil != err {
		fault.Criticalf("run failed: %s", err)
		exitwithstatus.Message("%s: run failed: %s", program, err)
	}
}

// command line values override the configuration file
func applyOptions(config *Configuration, options map[string][]string) error {
	if n := options["count"]; len(n) > 0 {
		count, err := strconv.Atoi(n[len(n)-1])
		if nil != err || count < 0 {
			return fault.ErrInvalidCount
		}
		config.Count = count
	}
	if n := options["rounds"]; len(n) > 0 {
		rounds, err := strconv.Atoi(n[len(n)-1])
		if nil != err || rounds < 1 {
			return fault.ErrInvalidCount
		}
		config.Rounds = rounds
	}
	if n := options["seed"]; len(n) > 0 {
		seed, err := strconv.ParseInt(n[len(n)-1], 10, 64)
		if nil != err {
			return err
		}
		config.Seed = seed
	}
	if len(options["json"]) > 0 {
		config.Output = "json"
	}
	return nil
}
