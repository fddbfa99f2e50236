/*
 * Dieter - a modular procedural language with set-like type qualifiers
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package parser

import (
	"fmt"

	"github.com/catseye/Dieter/ast"
)

// SyntaxError reports a grammar violation: an unexpected token where a
// specific one was required, or a malformed type/statement/expression.
type SyntaxError struct {
	ast.Range
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.Message)
}

func (e *SyntaxError) IsUserError() {}

func newExpectedError(r ast.Range, expected string, found string) *SyntaxError {
	return &SyntaxError{
		Range:   r,
		Message: fmt.Sprintf("expected %s, found %s", expected, found),
	}
}
