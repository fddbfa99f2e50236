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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/catseye/Dieter/ast"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseEmptyProgram(t *testing.T) {
	t.Parallel()

	program, errs := ParseProgram("")
	require.Empty(t, errs)
	assert.Empty(t, program.Declarations)
}

func TestParseOrderingDecl(t *testing.T) {
	t.Parallel()

	program, errs := ParseProgram("order beefy < gnarly .")
	require.Empty(t, errs)
	require.Len(t, program.Declarations, 1)
	order := program.Declarations[0].(*ast.OrderingDecl)
	assert.Equal(t, "beefy", order.Before.Name)
	assert.Equal(t, "gnarly", order.After.Name)
}

func TestParseForwardDecl(t *testing.T) {
	t.Parallel()

	program, errs := ParseProgram("forward glunt(beefy gnarly ♥t): gnarly ♥t")
	require.Empty(t, errs)
	require.Len(t, program.Declarations, 1)
	fwd := program.Declarations[0].(*ast.ForwardDecl)
	assert.Equal(t, "glunt", fwd.Name.Name)
	require.Len(t, fwd.ParamTypes, 1)
	assert.Equal(t, []string{"beefy", "gnarly"}, qualifierNames(fwd.ParamTypes[0]))
	tv, ok := fwd.ParamTypes[0].Bare.(*ast.TypeVarExpr)
	require.True(t, ok)
	assert.Equal(t, "t", tv.Name.Name)
	assert.Equal(t, []string{"gnarly"}, qualifierNames(fwd.ReturnType))
}

func TestParseForwardDeclMultipleParams(t *testing.T) {
	t.Parallel()

	program, errs := ParseProgram("forward pair(int, string): bool")
	require.Empty(t, errs)
	fwd := program.Declarations[0].(*ast.ForwardDecl)
	require.Len(t, fwd.ParamTypes, 2)
	assert.Equal(t, "int", fwd.ParamTypes[0].Bare.(*ast.PrimitiveTypeExpr).Name.Name)
	assert.Equal(t, "string", fwd.ParamTypes[1].Bare.(*ast.PrimitiveTypeExpr).Name.Name)
}

func TestParseMapType(t *testing.T) {
	t.Parallel()

	program, errs := ParseProgram("forward lookup(map from string to int): int")
	require.Empty(t, errs)
	fwd := program.Declarations[0].(*ast.ForwardDecl)
	m, ok := fwd.ParamTypes[0].Bare.(*ast.MapTypeExpr)
	require.True(t, ok)
	require.NotNil(t, m.From)
	assert.Equal(t, "string", m.From.Bare.(*ast.PrimitiveTypeExpr).Name.Name)
	assert.Equal(t, "int", m.To.Bare.(*ast.PrimitiveTypeExpr).Name.Name)
}

func TestParseMapTypeWithoutKey(t *testing.T) {
	t.Parallel()

	program, errs := ParseProgram("forward any_key(map to int): int")
	require.Empty(t, errs)
	fwd := program.Declarations[0].(*ast.ForwardDecl)
	m, ok := fwd.ParamTypes[0].Bare.(*ast.MapTypeExpr)
	require.True(t, ok)
	assert.Nil(t, m.From)
}

func TestParseModuleWithProcedure(t *testing.T) {
	t.Parallel()

	program, errs := ParseProgram(`
module beefy
  var count: int

  procedure bump(x: int): int
  begin
    count := x
    return count
  end
end
`)
	require.Empty(t, errs)
	require.Len(t, program.Declarations, 1)
	mod := program.Declarations[0].(*ast.ModuleDecl)
	assert.Equal(t, "beefy", mod.Name.Name)
	require.Len(t, mod.Locals, 1)
	assert.Equal(t, "count", mod.Locals[0].Name.Name)
	require.Len(t, mod.Procs, 1)

	proc := mod.Procs[0]
	assert.Equal(t, "bump", proc.Name.Name)
	require.Len(t, proc.Params, 1)
	assert.Equal(t, "x", proc.Params[0].Name.Name)

	block := proc.Body.(*ast.BlockStatement)
	require.Len(t, block.Statements, 2)
	assign := block.Statements[0].(*ast.AssignStatement)
	assert.Equal(t, "count", assign.Name.Name)
	ret := block.Statements[1].(*ast.ReturnStatement)
	assert.Equal(t, "count", ret.Value.(*ast.VarRefExpr).Name.Name)
}

func TestParseIfWhileStatements(t *testing.T) {
	t.Parallel()

	program, errs := ParseProgram(`
module m
  procedure f(x: int): int
  begin
    if x then
      while x do
        x := x
    else
      return x
  end
end
`)
	require.Empty(t, errs)
	mod := program.Declarations[0].(*ast.ModuleDecl)
	block := mod.Procs[0].Body.(*ast.BlockStatement)
	ifStmt := block.Statements[0].(*ast.IfStatement)
	_, isWhile := ifStmt.Then.(*ast.WhileStatement)
	assert.True(t, isWhile)
	_, isReturn := ifStmt.Else.(*ast.ReturnStatement)
	assert.True(t, isReturn)
}

func TestParseBestowAndSuper(t *testing.T) {
	t.Parallel()

	program, errs := ParseProgram(`
module m
  procedure f(): int
  begin
    return bestow m super
  end
end
`)
	require.Empty(t, errs)
	mod := program.Declarations[0].(*ast.ModuleDecl)
	ret := mod.Procs[0].Body.(*ast.BlockStatement).Statements[0].(*ast.ReturnStatement)
	bestow := ret.Value.(*ast.BestowExpr)
	assert.Equal(t, "m", bestow.Qualifier.Name)
	_, isSuper := bestow.Sub.(*ast.SuperExpr)
	assert.True(t, isSuper)
}

func TestParseIndexedAssignAndCall(t *testing.T) {
	t.Parallel()

	program, errs := ParseProgram(`
module m
  var tbl: map from int to int

  procedure f(i: int): int
  begin
    tbl[i] := succ(i)
    return tbl[i]
  end
end

forward succ(int): int
`)
	require.Empty(t, errs)
	mod := program.Declarations[0].(*ast.ModuleDecl)
	block := mod.Procs[0].Body.(*ast.BlockStatement)
	assign := block.Statements[0].(*ast.AssignStatement)
	require.NotNil(t, assign.Index)
	call := assign.Value.(*ast.CallExpr)
	assert.Equal(t, "succ", call.Name.Name)
}

func TestParseErrorOnMissingEnd(t *testing.T) {
	t.Parallel()

	_, errs := ParseProgram(`
module m
  procedure f(): int
  begin
    return 1
  end
`)
	require.NotEmpty(t, errs)
}

func TestParseErrorOnUnknownType(t *testing.T) {
	t.Parallel()

	_, errs := ParseProgram("forward bogus(): &")
	require.NotEmpty(t, errs)
}

func qualifierNames(te *ast.TypeExpr) []string {
	names := make([]string, len(te.Qualifiers))
	for i, q := range te.Qualifiers {
		names[i] = q.Name
	}
	return names
}
