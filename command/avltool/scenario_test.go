// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func TestExecute(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	theConfiguration := &Configuration{
		Order: "in",
		Operations: []Operation{
			{Op: "insert", Key: "pear", Value: "green"},
			{Op: "insert", Key: "apple", Value: "red"},
			{Op: "insert", Key: "apple", Value: "yellow"},
			{Op: "set", Key: "apple", Value: "yellow"},
			{Op: "SET", Key: "fig", Value: "purple"},
			{Op: "get", Key: "fig"},
			{Op: "remove", Key: "pear"},
			{Op: "get", Key: "pear"},
			{Op: "delete", Key: "pear"},
		},
	}

	reply, err := execute(logger.New("scenario"), theConfiguration)
	require.Nil(t, err, "execute")

	results := []string{}
	for _, step := range reply.Steps {
		results = append(results, step.Result)
	}
	assert.Equal(t, []string{
		"ok",
		"ok",
		fault.ErrKeyExists.Error(),
		"ok",
		"ok",
		"ok",
		"ok",
		fault.ErrKeyNotFound.Error(),
		fault.ErrKeyNotFound.Error(),
	}, results, "step results")
	assert.Equal(t, "set", reply.Steps[4].Op, "operation is lower cased")
	assert.Equal(t, "purple", reply.Steps[5].Value, "get returns the value")

	assert.Equal(t, []entryReply{
		{Key: "apple", Value: "yellow"},
		{Key: "fig", Value: "purple"},
	}, reply.Entries, "entries")
	assert.Equal(t, 2, reply.Size, "size")
	assert.Equal(t, 2, reply.Height, "height")
	assert.Equal(t, "in", reply.Order, "order")
}

func TestExecuteUnknownOperation(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	theConfiguration := &Configuration{
		Order: "post",
		Operations: []Operation{
			{Op: "insert", Key: "a"},
			{Op: "rotate", Key: "a"},
		},
	}

	_, err := execute(logger.New("scenario"), theConfiguration)
	assert.Equal(t, fault.ErrUnknownOperation, err, "unknown operation")
}

func TestGetConfiguration(t *testing.T) {
	dir, err := ioutil.TempDir("", "avltool")
	require.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "scenario.conf")
	source := `
local M = {}
M.order = "pre"
M.operations = {
    { op = "insert", key = "b", value = "2" },
    { op = "insert", key = "a", value = "1" },
}
M.logging = {
    directory = "logs",
    file = "scenario.log",
    levels = {
        scenario = "debug",
    },
}
return M
`
	require.Nil(t, ioutil.WriteFile(fileName, []byte(source), 0600), "write configuration")

	theConfiguration, err := getConfiguration(fileName)
	require.Nil(t, err, "get configuration")

	assert.Equal(t, "pre", theConfiguration.Order, "order")
	assert.Equal(t, []Operation{
		{Op: "insert", Key: "b", Value: "2"},
		{Op: "insert", Key: "a", Value: "1"},
	}, theConfiguration.Operations, "operations")
	assert.Equal(t, filepath.Join(dir, "logs"), theConfiguration.Logging.Directory, "log directory")
	assert.Equal(t, "scenario.log", theConfiguration.Logging.File, "log file")
	assert.Equal(t, defaultLogCount, theConfiguration.Logging.Count, "default count")
	assert.Equal(t, "debug", theConfiguration.Logging.Levels["scenario"], "level")

	info, err := os.Stat(theConfiguration.Logging.Directory)
	require.Nil(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory is a directory")
}

func TestGetConfigurationBadOrder(t *testing.T) {
	dir, err := ioutil.TempDir("", "avltool")
	require.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "scenario.conf")
	require.Nil(t, ioutil.WriteFile(fileName, []byte(`return { order = "sideways" }`), 0600), "write configuration")

	_, err = getConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidOrder, err, "order")
}
