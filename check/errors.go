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

package check

import (
	"fmt"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/catseye/Dieter/ast"
	"github.com/catseye/Dieter/common"
	"github.com/catseye/Dieter/types"
)

// SemanticError is implemented by every diagnostic the checker produces,
// mirroring the teacher's sema.SemanticError: an error with a source
// range, marked so it can be distinguished from an internal/unexpected
// error in a type switch.
type SemanticError interface {
	error
	ast.HasPosition
	isSemanticError()
}

// CheckerError aggregates every diagnostic from one Check call. It is a
// ParentError: its own Error() summarizes the count, and its Errors are
// the individual diagnostics, grounded on the teacher's sema.CheckerError.
type CheckerError struct {
	Errors []error
}

func (e *CheckerError) Error() string {
	return fmt.Sprintf("checking failed with %d error(s)", len(e.Errors))
}

func (e *CheckerError) ChildErrors() []error {
	return e.Errors
}

// UndefinedNameError reports a reference to a name that was never
// declared. Candidates is every name of the same kind that was actually
// declared, used to suggest the closest one by edit distance when the
// reference looks like a typo, grounded on the teacher's
// NotDeclaredMemberError.findClosestMember.
type UndefinedNameError struct {
	ast.Range
	Kind       common.DeclarationKind
	Name       string
	Candidates []string
}

func (*UndefinedNameError) isSemanticError() {}
func (e *UndefinedNameError) Error() string {
	return fmt.Sprintf("undefined %s '%s'", e.Kind.Name(), e.Name)
}

// SecondaryError suggests the closest declared name of the same kind, if
// one is within edit distance of Name's own length -- close enough that
// it is plausibly a typo rather than an unrelated name.
func (e *UndefinedNameError) SecondaryError() string {
	closest := e.closestCandidate()
	if closest == "" {
		return fmt.Sprintf("no %s named '%s' is declared", e.Kind.Name(), e.Name)
	}
	return fmt.Sprintf("did you mean '%s'?", closest)
}

func (e *UndefinedNameError) closestCandidate() (closest string) {
	nameRunes := []rune(e.Name)
	closestDistance := len(nameRunes)

	for _, candidate := range e.Candidates {
		distance := levenshtein.DistanceForStrings(nameRunes, []rune(candidate), levenshtein.DefaultOptions)
		if distance < closestDistance && distance < len(candidate) {
			closest = candidate
			closestDistance = distance
		}
	}
	return
}

type QualifierModuleMismatchError struct {
	ast.Range
	Qualifier string
	Module    string
}

func (*QualifierModuleMismatchError) isSemanticError() {}
func (e *QualifierModuleMismatchError) Error() string {
	return fmt.Sprintf("cannot bestow qualifier '%s' outside module '%s'", e.Qualifier, e.Module)
}

// UnificationErrorKind mirrors spec's qualifier-set-violation /
// structural-mismatch distinction within a single unification failure.
type UnificationErrorKind uint8

const (
	QualifierSetViolation UnificationErrorKind = iota
	StructuralMismatch
)

type UnificationError struct {
	ast.Range
	Kind     UnificationErrorKind
	Receptor types.Type
	Provider types.Type
}

func (*UnificationError) isSemanticError() {}
func (e *UnificationError) Error() string {
	switch e.Kind {
	case QualifierSetViolation:
		return fmt.Sprintf("cannot unify: receptor '%s' demands qualifiers the provider '%s' does not have", e.Receptor, e.Provider)
	default:
		return fmt.Sprintf("cannot unify '%s' with '%s'", e.Receptor, e.Provider)
	}
}

type ReturnTypeDivergenceError struct {
	ast.Range
	Name     string
	Previous types.Type
	This     types.Type
}

func (*ReturnTypeDivergenceError) isSemanticError() {}
func (e *ReturnTypeDivergenceError) Error() string {
	return fmt.Sprintf("procedure '%s' previously declared with return type '%s', now '%s'", e.Name, e.Previous, e.This)
}

type AmbiguousDispatchError struct {
	ast.Range
	Name string
}

func (*AmbiguousDispatchError) isSemanticError() {}
func (e *AmbiguousDispatchError) Error() string {
	return fmt.Sprintf("call to '%s' is ambiguous: applicable candidates cannot be linearized by specificity", e.Name)
}

type OrderingCycleError struct {
	ast.Range
	Before string
	After  string
}

func (*OrderingCycleError) isSemanticError() {}
func (e *OrderingCycleError) Error() string {
	return fmt.Sprintf("order %s < %s would create a cycle in the qualifier ordering", e.Before, e.After)
}

type ArityMismatchError struct {
	ast.Range
	Name     string
	Expected int
	Got      int
}

func (*ArityMismatchError) isSemanticError() {}
func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("'%s' expects %d argument(s), got %d", e.Name, e.Expected, e.Got)
}

type RedeclarationError struct {
	ast.Range
	Kind     common.DeclarationKind
	Name     string
	Previous ast.Position
}

func (*RedeclarationError) isSemanticError() {}
func (e *RedeclarationError) Error() string {
	return fmt.Sprintf("%s '%s' already declared at %s", e.Kind.Name(), e.Name, e.Previous)
}

type NoSuperCandidateError struct {
	ast.Range
	Name string
}

func (*NoSuperCandidateError) isSemanticError() {}
func (e *NoSuperCandidateError) Error() string {
	return fmt.Sprintf("'super' used in '%s', which has no more general candidate", e.Name)
}

// NoApplicableCandidateError is the "best-effort failure" spec §4.6 calls
// for when every candidate is rejected during the dispatch probe.
type NoApplicableCandidateError struct {
	ast.Range
	Name string
}

func (*NoApplicableCandidateError) isSemanticError() {}
func (e *NoApplicableCandidateError) Error() string {
	return fmt.Sprintf("no applicable candidate for call to '%s'", e.Name)
}
