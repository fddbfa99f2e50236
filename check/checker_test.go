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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catseye/Dieter/ast"
	"github.com/catseye/Dieter/parser"
)

// parseAndCheck lexes, parses and checks code in one step, failing the
// test immediately on a syntax error so every test below can assume it
// is exercising the checker, not the parser.
func parseAndCheck(t *testing.T, code string) error {
	program, errs := parser.ParseProgram(code)
	require.Empty(t, errs, "unexpected syntax errors")
	return NewChecker().Check(program)
}

// expectCheckerErrors asserts that err is a *CheckerError with exactly
// n diagnostics, and returns them for further inspection.
func expectCheckerErrors(t *testing.T, err error, n int) []error {
	require.Error(t, err)
	require.IsType(t, &CheckerError{}, err)
	errs := err.(*CheckerError).Errors
	require.Len(t, errs, n)
	for _, e := range errs {
		_ = e.Error()
	}
	return errs
}

func TestCheckPersonModule(t *testing.T) {
	t.Parallel()

	err := parseAndCheck(t, `
module person
  var by_name: map from string to person ref
  var by_id: map from int to person ref

  procedure person_new(name: string, id: int): person ref
  var p: person ref
  begin
    p := bestow person p
    by_name[name] := p
    by_id[id] := p
    return p
  end

  procedure person_name(p: person ref): string
  begin
    return name_of(p)
  end
end

forward name_of(ref): string
`)
	assert.NoError(t, err)
}

func TestCheckRebindingSuccess(t *testing.T) {
	t.Parallel()

	err := parseAndCheck(t, `
module beefy
end

module gnarly
end

forward glunt(beefy gnarly ♥t): gnarly ♥t
forward equal(♥u, ♥u): bool

module driver
  procedure run(): bool
  var i: beefy gnarly int
  begin
    return equal(glunt(i), 4)
  end
end
`)
	assert.NoError(t, err)
}

func TestCheckSupersetViolation(t *testing.T) {
	t.Parallel()

	err := parseAndCheck(t, `
module beefy
end

module gnarly
end

forward traub(beefy gnarly ♥t): bool

module driver
  procedure run(): bool
  var s: beefy int
  begin
    return traub(s)
  end
end
`)
	errs := expectCheckerErrors(t, err, 1)
	require.IsType(t, &UnificationError{}, errs[0])
	assert.Equal(t, QualifierSetViolation, errs[0].(*UnificationError).Kind)
}

func TestCheckBestowOutsideDefiningModule(t *testing.T) {
	t.Parallel()

	err := parseAndCheck(t, `
module alpha
end

module beta
  var x: ref
  procedure run(): ref
  begin
    x := bestow beta x
    return bestow alpha x
  end
end
`)
	errs := expectCheckerErrors(t, err, 1)
	require.IsType(t, &QualifierModuleMismatchError{}, errs[0])
	mismatch := errs[0].(*QualifierModuleMismatchError)
	assert.Equal(t, "alpha", mismatch.Qualifier)
	assert.Equal(t, "beta", mismatch.Module)
}

func TestCheckAmbiguousDispatchThenOrdering(t *testing.T) {
	t.Parallel()

	withoutOrder := `
module beefy
end

module gnarly
end

forward grind(♥t): int
forward grind(gnarly ♥t): int
forward grind(beefy ♥t): int

module driver
  procedure run(): int
  var x: beefy gnarly int
  begin
    return grind(x)
  end
end
`
	err := parseAndCheck(t, withoutOrder)
	errs := expectCheckerErrors(t, err, 1)
	require.IsType(t, &AmbiguousDispatchError{}, errs[0])

	withOrder := `
order beefy < gnarly
` + withoutOrder

	program, parseErrs := parser.ParseProgram(withOrder)
	require.Empty(t, parseErrs)
	checker := NewChecker()
	require.NoError(t, checker.Check(program))

	var driver *ast.ModuleDecl
	for _, m := range program.Modules() {
		if m.Name.Name == "driver" {
			driver = m
		}
	}
	require.NotNil(t, driver)
	call := driver.Procs[0].Body.(*ast.ReturnStatement).Value.(*ast.CallExpr)
	chain, ok := checker.Elaboration().DispatchChainOf(call)
	require.True(t, ok)
	require.Len(t, chain.Candidates, 3)
	assert.Equal(t, 0, len(chain.Candidates[0].Signature.ParamTypes[0].Qualifiers.Names()))
	assert.Equal(t, []string{"gnarly"}, chain.Candidates[1].Signature.ParamTypes[0].Qualifiers.Names())
	assert.Equal(t, []string{"beefy"}, chain.Candidates[2].Signature.ParamTypes[0].Qualifiers.Names())
}

func TestCheckReturnTypeDivergence(t *testing.T) {
	t.Parallel()

	err := parseAndCheck(t, `
forward foo(int): int
forward foo(string): bool
`)
	errs := expectCheckerErrors(t, err, 1)
	require.IsType(t, &ReturnTypeDivergenceError{}, errs[0])
}

func TestCheckUndefinedQualifier(t *testing.T) {
	t.Parallel()

	err := parseAndCheck(t, `
module driver
  procedure run(): int
  var x: nosuch int
  begin
    return 0
  end
end
`)
	errs := expectCheckerErrors(t, err, 1)
	require.IsType(t, &UndefinedNameError{}, errs[0])
}

func TestCheckSuperDelegatesToMoreGeneralSibling(t *testing.T) {
	t.Parallel()

	err := parseAndCheck(t, `
module beefy
end

forward grind(♥t): int

module driver
  procedure grind(x: beefy int): int
  begin
    return super
  end
end
`)
	assert.NoError(t, err)
}

func TestCheckSuperFromMostGeneralCandidateIsError(t *testing.T) {
	t.Parallel()

	err := parseAndCheck(t, `
module beefy
end

forward grind(beefy int): int

module driver
  procedure grind(t: ♥t): int
  begin
    return super
  end
end
`)
	errs := expectCheckerErrors(t, err, 1)
	require.IsType(t, &NoSuperCandidateError{}, errs[0])
}

func TestCheckRedeclaredVariable(t *testing.T) {
	t.Parallel()

	err := parseAndCheck(t, `
module driver
  procedure run(): int
  var x: int
  var x: int
  begin
    return x
  end
end
`)
	errs := expectCheckerErrors(t, err, 1)
	require.IsType(t, &RedeclarationError{}, errs[0])
}

func TestCheckArityMismatch(t *testing.T) {
	t.Parallel()

	err := parseAndCheck(t, `
forward one(int): int

module driver
  procedure run(): int
  begin
    return one(1, 2)
  end
end
`)
	errs := expectCheckerErrors(t, err, 1)
	require.IsType(t, &ArityMismatchError{}, errs[0])
}

func TestCheckOrderingCycle(t *testing.T) {
	t.Parallel()

	err := parseAndCheck(t, `
module beefy
end

module gnarly
end

order beefy < gnarly
order gnarly < beefy
`)
	errs := expectCheckerErrors(t, err, 1)
	require.IsType(t, &OrderingCycleError{}, errs[0])
}
