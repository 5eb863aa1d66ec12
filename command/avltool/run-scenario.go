// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

type stepReply struct {
	Op     string `json:"op" yaml:"op"`
	Key    string `json:"key" yaml:"key"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	Result string `json:"result" yaml:"result"`
}

type entryReply struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

type scenarioReply struct {
	Steps   []stepReply  `json:"steps" yaml:"steps"`
	Order   string       `json:"order" yaml:"order"`
	Entries []entryReply `json:"entries" yaml:"entries"`
	Size    int          `json:"size" yaml:"size"`
	Height  int          `json:"height" yaml:"height"`
}

func runScenario(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	configFile := c.String("config-file")
	if "" == configFile {
		return fault.ErrMissingArguments
	}

	theConfiguration, err := getConfiguration(configFile)
	if nil != err {
		return err
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		return err
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		return err
	}
	defer fault.Finalise()

	log := logger.New("scenario")
	log.Infof("configuration: %q", configFile)
	log.Debugf("theConfiguration: %v", theConfiguration)

	reply, err := execute(log, theConfiguration)
	if nil != err {
		log.Errorf("scenario failed: %s", err)
		return err
	}
	log.Infof("finished: size: %d  height: %d", reply.Size, reply.Height)

	return printReply(m, reply)
}

// apply each operation to an empty string map
//
// lookup misses and duplicate inserts are recorded in the step result,
// only an unknown operation aborts the scenario
func execute(log *logger.L, theConfiguration *Configuration) (*scenarioReply, error) {

	order, err := avl.ParseOrder(theConfiguration.Order)
	if nil != err {
		return nil, err
	}

	m := avl.NewOrderedMap[string, string]()

	reply := &scenarioReply{
		Steps: make([]stepReply, 0, len(theConfiguration.Operations)),
		Order: order.String(),
	}

	for i, op := range theConfiguration.Operations {
		step := stepReply{
			Op:    strings.ToLower(op.Op),
			Key:   op.Key,
			Value: op.Value,
		}

		switch step.Op {
		case "insert":
			err = m.Insert(op.Key, op.Value)
		case "set":
			m.Set(op.Key, op.Value)
			err = nil
		case "remove", "delete":
			err = m.Remove(op.Key)
		case "get":
			step.Value, err = m.Get(op.Key)
		default:
			log.Errorf("operation[%d]: %q  error: %s", i, op.Op, fault.ErrUnknownOperation)
			return nil, fault.ErrUnknownOperation
		}

		if nil != err {
			step.Result = err.Error()
			log.Warnf("operation[%d]: %s %q  error: %s", i, step.Op, op.Key, err)
		} else {
			step.Result = "ok"
			log.Infof("operation[%d]: %s %q  size: %d", i, step.Op, op.Key, m.Size())
		}
		reply.Steps = append(reply.Steps, step)
	}

	reply.Entries = make([]entryReply, 0, m.Size())
	entries := m.Iterate(order)
	for entries.Next() {
		e, err := entries.Value()
		fault.PanicIfError("scenario entries", err)
		reply.Entries = append(reply.Entries, entryReply{Key: e.Key, Value: *e.Value})
	}
	reply.Size = m.Size()
	reply.Height = m.Tree().Height()

	return reply, nil
}
