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

// Package errors defines the error taxonomy shared by every other package:
// a distinction between errors that indicate a bug in this checker
// (InternalError) and errors that report an actual problem in the
// checked Dieter program (UserError), plus small interfaces
// (SecondaryError, ErrorNotes, ParentError) that the pretty printer uses
// to render richer diagnostics.
package errors

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/xerrors"
)

// InternalError is an implementation error in this checker itself, e.g.
// an unreachable code path. It should never be caught, only propagated.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is an error about the Dieter program being checked.
type UserError interface {
	error
	IsUserError()
}

// ExternalError wraps a recovered panic from code this checker does not
// control (e.g. a faulty ImportHandler, were one ever added).
type ExternalError struct {
	Recovered any
}

func NewExternalError(recovered any) ExternalError {
	return ExternalError{Recovered: recovered}
}

func (e ExternalError) Error() string {
	return fmt.Sprint(e.Recovered)
}

// UnreachableError indicates a code path that should never execute.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func (e UnreachableError) IsInternalError() {}

// SecondaryError is implemented by errors that have a secondary message,
// printed on the line below the primary message by the pretty printer.
type SecondaryError interface {
	SecondaryError() string
}

// ErrorNote is an additional annotation attached to an error, e.g.
// pointing at a previous declaration.
type ErrorNote interface {
	Message() string
}

// ErrorNotes is implemented by errors carrying one or more ErrorNotes.
type ErrorNotes interface {
	ErrorNotes() []ErrorNote
}

// ParentError is an error that aggregates one or more child errors, e.g.
// CheckerError in the check package.
type ParentError interface {
	error
	ChildErrors() []error
}

// UnexpectedError is the default InternalError implementation: it wraps
// an implementation error with a formatted message.
type UnexpectedError struct {
	Err error
}

var _ InternalError = UnexpectedError{}

func NewUnexpectedError(message string, args ...any) UnexpectedError {
	return UnexpectedError{Err: fmt.Errorf(message, args...)}
}

func (e UnexpectedError) Unwrap() error {
	return e.Err
}

func (e UnexpectedError) Error() string {
	return e.Err.Error()
}

func (e UnexpectedError) IsInternalError() {}

// DefaultUserError is the default UserError implementation.
type DefaultUserError struct {
	Err error
}

var _ UserError = DefaultUserError{}

func NewDefaultUserError(message string, args ...any) DefaultUserError {
	return DefaultUserError{Err: fmt.Errorf(message, args...)}
}

func (e DefaultUserError) Unwrap() error {
	return e.Err
}

func (e DefaultUserError) Error() string {
	return e.Err.Error()
}

func (e DefaultUserError) IsUserError() {}

// Wrap adds context to err while preserving it for errors.Is/As, using
// golang.org/x/xerrors so that %w-formatted frames survive in older Go
// toolchains the teacher still supports.
func Wrap(err error, message string) error {
	return xerrors.Errorf("%s: %w", message, err)
}
