// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultOrder = "in"

	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"scenario":        "info",
		logger.DefaultTag: "critical",
	}
)

// one step of a scenario
type Operation struct {
	Op    string `gluamapper:"op" json:"op"`
	Key   string `gluamapper:"key" json:"key"`
	Value string `gluamapper:"value" json:"value,omitempty"`
}

type Configuration struct {
	Order      string               `gluamapper:"order" json:"order"`
	Operations []Operation          `gluamapper:"operations" json:"operations"`
	Logging    logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		Order: defaultOrder,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    make(LoglevelMap),
		},
	}

	// the file may add to or override these levels
	for tag, level := range defaultLogLevels {
		options.Logging.Levels[tag] = level
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if _, err := avl.ParseOrder(options.Order); nil != err {
		return nil, err
	}

	// log files live under the configuration directory unless absolute
	options.Logging.Directory = ensureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
