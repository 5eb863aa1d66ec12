// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	dir = "testing"
)

func setupTestLogger() {
	_ = os.RemoveAll(dir)
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
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
	_ = os.RemoveAll(dir)
}

func TestInitialiseTwice(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	assert.Nil(t, fault.Initialise(), "first initialise")
	assert.Equal(t, fault.ErrAlreadyInitialised, fault.Initialise(), "second initialise")
	fault.Finalise()
	assert.Nil(t, fault.Initialise(), "initialise after finalise")
	fault.Finalise()
}

func TestPanicIfError(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	assert.Nil(t, fault.Initialise(), "initialise")
	defer fault.Finalise()

	assert.NotPanics(t, func() { fault.PanicIfError("no error", nil) })
	assert.PanicsWithValue(t, "retrace failed with error: encountered an unexpected null pointer", func() {
		fault.PanicIfError("retrace", fault.ErrNullPointer)
	}, "logged then panics")
}

func TestPanicIfErrorWithoutChannel(t *testing.T) {
	assert.PanicsWithValue(t, "entries failed with error: the key was not found in the tree", func() {
		fault.PanicIfError("entries", fault.ErrKeyNotFound)
	}, "falls back to stdout")
}
