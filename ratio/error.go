// Copyright 2024 The Ratiorepl Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package ratio

import "github.com/pkg/errors"

// ParseErrorKind distinguishes the two ways DecimalTuple parsing can fail.
type ParseErrorKind int

const (
	// MatchFailed means s does not match the decimal grammar at all.
	MatchFailed ParseErrorKind = iota
	// BigIntError means the grammar matched but the captured integer part
	// could not be interpreted as a non-negative arbitrary-precision
	// integer (for example, a doubled sign such as "+-0").
	BigIntError
)

// ParseError is returned by Parse when s is not a valid decimal literal.
type ParseError struct {
	Kind ParseErrorKind
	s    string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case BigIntError:
		return errors.Errorf("ratio: invalid integer part in %q", e.s).Error()
	default:
		return errors.Errorf("ratio: %q does not match the decimal grammar", e.s).Error()
	}
}
