// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type step struct {
	Op    string `gluamapper:"op"`
	Key   string `gluamapper:"key"`
	Value string `gluamapper:"value"`
}

type testConfiguration struct {
	Name  string            `gluamapper:"name"`
	Count int               `gluamapper:"count"`
	Steps []step            `gluamapper:"steps"`
	Tags  map[string]string `gluamapper:"tags"`
}

const testSource = `
local M = {}
M.name = arg[0]
M.count = 2 + 3
M.steps = {
    { op = "insert", key = "one", value = "1" },
    { op = "remove", key = "two" },
}
M.tags = { colour = "red" }
return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(testSource), 0600)
	require.Nil(t, err, "write configuration")

	config := &testConfiguration{Count: 99}
	err = configuration.ParseConfigurationFile(fileName, config)
	require.Nil(t, err, "parse")

	expected := &testConfiguration{
		Name:  fileName,
		Count: 5,
		Steps: []step{
			{Op: "insert", Key: "one", Value: "1"},
			{Op: "remove", Key: "two"},
		},
		Tags: map[string]string{"colour": "red"},
	}
	assert.Equal(t, expected, config, "configuration")
}

func TestParseConfigurationString(t *testing.T) {
	config := &testConfiguration{}
	err := configuration.ParseConfigurationString("inline", testSource, config)
	require.Nil(t, err, "parse")
	assert.Equal(t, "inline", config.Name, "arg[0]")
	assert.Equal(t, 2, len(config.Steps), "steps")
}

func TestParseConfigurationErrors(t *testing.T) {
	config := &testConfiguration{}

	err := configuration.ParseConfigurationString("none", "local x = 1", config)
	assert.Equal(t, fault.ErrConfigurationFailed, err, "no table returned")

	err = configuration.ParseConfigurationString("scalar", "return 42", config)
	assert.Equal(t, fault.ErrConfigurationFailed, err, "scalar returned")

	err = configuration.ParseConfigurationString("syntax", "return {", config)
	assert.NotNil(t, err, "syntax error")

	err = configuration.ParseConfigurationString("value", "return {}", *config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "struct value")

	var missing *testConfiguration
	err = configuration.ParseConfigurationString("nil", "return {}", missing)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "nil pointer")

	err = configuration.ParseConfigurationFile("/nonexistent/file.conf", config)
	assert.NotNil(t, err, "missing file")
}
