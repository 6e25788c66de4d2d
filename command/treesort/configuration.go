// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultCount  = 1000000
	defaultRounds = 1
	defaultSeed   = 1
	defaultOutput = "text"

	defaultLogDirectory = "log"
	defaultLogFile      = "treesort.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// Configuration - everything treesort reads from its configuration file
type Configuration struct {
	Count   int                  `gluamapper:"count" json:"count"`
	Rounds  int                  `gluamapper:"rounds" json:"rounds"`
	Seed    int64                `gluamapper:"seed" json:"seed"`
	Output  string               `gluamapper:"output" json:"output"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration, an empty file name
// gives the defaults with logging below the system temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	baseDirectory := os.TempDir()
	if "" != configurationFileName {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		configurationFileName = fileName
		baseDirectory, _ = filepath.Split(configurationFileName)
	}

	// the parser fills maps in place so give it a private copy
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		Count:  defaultCount,
		Rounds: defaultRounds,
		Seed:   defaultSeed,
		Output: defaultOutput,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}

	if "" != configurationFileName {
		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	if options.Count < 0 || options.Rounds < 1 {
		return nil, fault.ErrInvalidCount
	}
	if "text" != options.Output && "json" != options.Output {
		return nil, fault.ErrInvalidOutput
	}

	// force log directory to be absolute
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(baseDirectory, options.Logging.Directory)
	}

	return options, nil
}
