// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/avltree/fault"
)

// output formats
const (
	formatJson = "json"
	formatYaml = "yaml"
)

// print a reply in the format selected by the global flag
func printReply(m *metadata, message interface{}) error {
	switch m.format {
	case formatJson, "":
		return printJson(m.w, message)
	case formatYaml:
		return printYaml(m.w, message)
	default:
		return fault.ErrInvalidFormat
	}
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func printYaml(handle io.Writer, message interface{}) error {

	b, err := yaml.Marshal(message)
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s", b)
	return nil
}
