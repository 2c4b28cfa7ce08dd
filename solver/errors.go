// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/gosl/io"
)

// ConfigError reports an invalid configuration or inconsistent input data.
// It is always returned before any computation starts
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "config: " + e.Msg }

// cfgErr builds a ConfigError with a formatted message
func cfgErr(msg string, prm ...interface{}) *ConfigError {
	return &ConfigError{Msg: io.Sf(msg, prm...)}
}

// ResourceError reports that the memory budget cannot hold even a single-node
// batch. The run aborts before producing any results
type ResourceError struct {
	Need   int64 // bytes required by the smallest possible batch
	Budget int64 // bytes granted by the configuration
}

func (e *ResourceError) Error() string {
	return io.Sf("resource: a single-node batch needs %d bytes but the budget is %d bytes (short by %d)",
		e.Need, e.Budget, e.Need-e.Budget)
}

// NumericError reports non-finite values detected in a reconstructed batch.
// The batch aborts; results aggregated from earlier batches are retained
type NumericError struct {
	Lo int // first node row of the offending batch
	Hi int // one past the last node row of the offending batch
}

func (e *NumericError) Error() string {
	return io.Sf("numeric: non-finite values in reconstructed batch covering node rows [%d,%d)", e.Lo, e.Hi)
}
