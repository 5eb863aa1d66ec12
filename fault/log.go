// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// channel used for the last message before an abort
var log *logger.L

// Initialise - open the critical log channel
//
// the logger package must already be initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush the critical log channel and detach it
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// PanicIfError - abort with a logged message when err is not nil
//
// only for conditions that mean a tree invariant has been broken,
// ordinary lookup misses must be returned to the caller
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	if _, file, line, ok := runtime.Caller(1); ok {
		criticalf("(%q:%d) %s", file, line, s)
	} else {
		criticalf("%s", s)
	}
	panic(s)
}

// write to the log channel or to stdout if it was never opened
func criticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
