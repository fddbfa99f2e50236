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

// Package check implements Dieter's static checker: symbol tables, the
// qualifier ordering relation, the directional unification engine, and
// the dispatcher that drives the whole AST walk.
package check

import (
	"fmt"
	"io"

	"github.com/catseye/Dieter/ast"
	"github.com/catseye/Dieter/common"
	"github.com/catseye/Dieter/types"
)

// Checker owns every piece of state a single run of Check mutates. It is
// never shared across goroutines and carries no package-level state of
// its own, per spec's single-threaded resource model.
type Checker struct {
	interner   *types.QualifierInterner
	qualifiers *QualifierTable
	procedures *ProcedureTable
	ordering   *OrderingGraph
	counter    *types.IDCounter
	scopes     *VariableScopeStack
	elaboration *Elaboration

	currentModule string
	currentProc   *ast.ProcDecl
	currentReturn types.Type
	bodySubst     *Substitution

	errs []error
	// declErrs is len(errs) when checking of the current procedure began;
	// once a hard error inside that procedure has been reported, the rest
	// of the procedure is not checked.
	declErrs int
}

func NewChecker() *Checker {
	return &Checker{
		interner:    types.NewQualifierInterner(),
		qualifiers:  NewQualifierTable(),
		procedures:  NewProcedureTable(),
		ordering:    NewOrderingGraph(),
		counter:     types.NewIDCounter(),
		elaboration: NewElaboration(),
	}
}

func (c *Checker) Elaboration() *Elaboration { return c.elaboration }

// DumpSymbolTable writes the qualifiers, the declared ordering edges,
// and every registered procedure's dispatch set, grounded on the
// original implementation's TypingContext.dump().
func (c *Checker) DumpSymbolTable(w io.Writer) {
	fmt.Fprintln(w, "qualifiers:")
	for _, name := range c.qualifiers.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}

	fmt.Fprintln(w, "ordering:")
	for _, edge := range c.ordering.Edges() {
		fmt.Fprintf(w, "  %s < %s\n", edge[0], edge[1])
	}

	fmt.Fprintln(w, "procedures:")
	for _, name := range c.procedures.Names() {
		for _, cand := range c.procedures.Lookup(name) {
			fmt.Fprintf(w, "  %s(", name)
			for i, pt := range cand.Signature.ParamTypes {
				if i > 0 {
					fmt.Fprint(w, ", ")
				}
				fmt.Fprint(w, pt.String())
			}
			fmt.Fprintf(w, ") : %s\n", cand.Signature.ReturnType.String())
		}
	}
}

func (c *Checker) report(err error) {
	c.errs = append(c.errs, err)
}

// Check runs the three-pass walk described in spec §4.6 over program and
// returns a *CheckerError aggregating every diagnostic, or nil if the
// program is well-typed.
func (c *Checker) Check(program *ast.Program) error {
	for _, m := range program.Modules() {
		if previous, ok := c.qualifiers.Define(m.Name.Name, m.Name.Pos); !ok {
			c.report(&RedeclarationError{
				Range: ast.NewRangeFromPositioned(m.Name), Kind: common.DeclarationKindModule,
				Name: m.Name.Name, Previous: previous,
			})
		}
	}

	for _, f := range program.Forwards() {
		c.registerForward(f)
	}
	for _, m := range program.Modules() {
		for _, p := range m.Procs {
			c.registerProc(p)
		}
	}

	for _, o := range program.Orderings() {
		c.checkOrdering(o)
	}

	for _, m := range program.Modules() {
		c.checkModule(m)
	}

	if len(c.errs) == 0 {
		return nil
	}
	return &CheckerError{Errors: c.errs}
}

func (c *Checker) registerForward(f *ast.ForwardDecl) {
	paramTypes, returnType := c.resolveSignature(f.ParamTypes, f.ReturnType)
	sig := &types.ProcSignature{Name: f.Name.Name, ParamTypes: paramTypes, ReturnType: returnType}
	if err := c.procedures.Add(&Candidate{Signature: sig, DeclAt: f.Keyword}); err != nil {
		c.report(err)
	}
}

func (c *Checker) registerProc(p *ast.ProcDecl) {
	paramTypeExprs := make([]*ast.TypeExpr, len(p.Params))
	for i, param := range p.Params {
		paramTypeExprs[i] = param.Type
	}
	paramTypes, returnType := c.resolveSignature(paramTypeExprs, p.ReturnType)
	sig := &types.ProcSignature{Name: p.Name.Name, ParamTypes: paramTypes, ReturnType: returnType}
	if err := c.procedures.Add(&Candidate{Signature: sig, DeclAt: p.Keyword, Proc: p}); err != nil {
		c.report(err)
	}
}

// resolveSignature resolves a parameter type list and a return type
// sharing one type-variable namespace, so `♥t` occurring more than once
// in the same declaration refers to the same identity.
func (c *Checker) resolveSignature(paramTypeExprs []*ast.TypeExpr, returnTypeExpr *ast.TypeExpr) ([]types.Type, types.Type) {
	varIDs := make(map[string]int)
	paramTypes := make([]types.Type, len(paramTypeExprs))
	for i, te := range paramTypeExprs {
		paramTypes[i] = c.resolveTypeExpr(te, varIDs)
	}
	returnType := c.resolveTypeExpr(returnTypeExpr, varIDs)
	return paramTypes, returnType
}

func (c *Checker) resolveTypeExpr(te *ast.TypeExpr, varIDs map[string]int) types.Type {
	qset := types.NewQualifierSet(c.interner)
	for _, q := range te.Qualifiers {
		if !c.qualifiers.IsDefined(q.Name) {
			c.report(&UndefinedNameError{Range: ast.NewRangeFromPositioned(q), Kind: common.DeclarationKindQualifier, Name: q.Name, Candidates: c.qualifiers.Names()})
			continue
		}
		qset = qset.AddName(q.Name)
	}

	switch bare := te.Bare.(type) {
	case *ast.PrimitiveTypeExpr:
		return c.primitiveType(bare.Name.Name).WithQualifiers(qset)
	case *ast.MapTypeExpr:
		var keyType *types.Type
		if bare.From != nil {
			k := c.resolveTypeExpr(bare.From, varIDs)
			keyType = &k
		}
		valueType := c.resolveTypeExpr(bare.To, varIDs)
		return types.Map(c.interner, keyType, valueType).WithQualifiers(qset)
	case *ast.TypeVarExpr:
		id, ok := varIDs[bare.Name.Name]
		if !ok {
			id = c.counter.Next()
			varIDs[bare.Name.Name] = id
		}
		return types.NewTypeVariable(c.interner, id).WithQualifiers(qset)
	default:
		return types.Void(c.interner).WithQualifiers(qset)
	}
}

func (c *Checker) primitiveType(name string) types.Type {
	switch name {
	case "bool":
		return types.Bool(c.interner)
	case "int":
		return types.Int(c.interner)
	case "rat":
		return types.Rat(c.interner)
	case "string":
		return types.String(c.interner)
	case "ref":
		return types.Ref(c.interner)
	default:
		return types.Void(c.interner)
	}
}

func (c *Checker) checkOrdering(o *ast.OrderingDecl) {
	r := ast.NewRangeFromPositioned(o)
	if !c.qualifiers.IsDefined(o.Before.Name) {
		c.report(&UndefinedNameError{Range: r, Kind: common.DeclarationKindQualifier, Name: o.Before.Name, Candidates: c.qualifiers.Names()})
		return
	}
	if !c.qualifiers.IsDefined(o.After.Name) {
		c.report(&UndefinedNameError{Range: r, Kind: common.DeclarationKindQualifier, Name: o.After.Name, Candidates: c.qualifiers.Names()})
		return
	}
	if err := c.ordering.AddEdge(o.Before.Name, o.After.Name, r); err != nil {
		c.report(err)
	}
}

func (c *Checker) checkModule(m *ast.ModuleDecl) {
	c.currentModule = m.Name.Name
	c.scopes = NewVariableScopeStack()
	for _, v := range m.Locals {
		c.declareLocal(v)
	}
	for _, p := range m.Procs {
		c.checkProc(p)
	}
}

func (c *Checker) checkProc(p *ast.ProcDecl) {
	candidates := c.procedures.Lookup(p.Name.Name)
	var mine *Candidate
	for _, cand := range candidates {
		if cand.Proc == p {
			mine = cand
			break
		}
	}
	if mine == nil {
		return
	}

	c.currentProc = p
	c.currentReturn = mine.Signature.ReturnType
	c.bodySubst = NewSubstitution()
	c.declErrs = len(c.errs)

	c.scopes.Push()
	defer c.scopes.Pop()

	for i, param := range p.Params {
		if c.scopes.DeclaredInTop(param.Name.Name) {
			c.report(&RedeclarationError{
				Range: ast.NewRangeFromPositioned(param.Name), Kind: common.DeclarationKindParameter, Name: param.Name.Name,
			})
			continue
		}
		c.scopes.Declare(param.Name.Name, mine.Signature.ParamTypes[i])
	}
	for _, local := range p.Locals {
		c.declareLocal(local)
	}

	c.checkStatement(p.Body)
}

// declareLocal declares a `var` declaration's name in the innermost
// scope frame, reporting a RedeclarationError instead of shadowing if
// the name is already declared in that same frame.
func (c *Checker) declareLocal(v *ast.VarDecl) {
	if c.scopes.DeclaredInTop(v.Name.Name) {
		c.report(&RedeclarationError{
			Range: ast.NewRangeFromPositioned(v.Name), Kind: common.DeclarationKindVariable, Name: v.Name.Name,
		})
		return
	}
	c.scopes.Declare(v.Name.Name, c.resolveTypeExpr(v.Type, map[string]int{}))
}

func (c *Checker) boolType() types.Type { return types.Bool(c.interner) }

func (c *Checker) checkStatement(s ast.Statement) {
	if len(c.errs) > c.declErrs {
		return
	}
	switch stmt := s.(type) {
	case *ast.BlockStatement:
		for _, sub := range stmt.Statements {
			c.checkStatement(sub)
		}

	case *ast.IfStatement:
		testType := c.typeOfExpr(stmt.Test)
		c.unify(c.boolType(), testType, stmt.Test)
		c.checkStatement(stmt.Then)
		if stmt.Else != nil {
			c.checkStatement(stmt.Else)
		}

	case *ast.WhileStatement:
		testType := c.typeOfExpr(stmt.Test)
		c.unify(c.boolType(), testType, stmt.Test)
		c.checkStatement(stmt.Body)

	case *ast.ReturnStatement:
		valueType := c.typeOfExpr(stmt.Value)
		c.unify(c.currentReturn, valueType, stmt.Value)

	case *ast.AssignStatement:
		c.checkAssign(stmt)

	case *ast.CallStatement:
		c.resolveCallSite(stmt.Name, stmt.Args, ast.NewRangeFromPositioned(stmt))
	}
}

func (c *Checker) checkAssign(stmt *ast.AssignStatement) {
	varType, ok := c.scopes.Lookup(stmt.Name.Name)
	if !ok {
		c.report(&UndefinedNameError{Range: ast.NewRangeFromPositioned(stmt), Kind: common.DeclarationKindVariable, Name: stmt.Name.Name, Candidates: c.scopes.Names()})
		return
	}
	valueType := c.typeOfExpr(stmt.Value)

	if stmt.Index == nil {
		c.unify(varType, valueType, stmt.Value)
		return
	}

	if varType.Base.Kind != types.BaseTypeMap {
		c.report(&UnificationError{
			Range: ast.NewRangeFromPositioned(stmt), Kind: StructuralMismatch,
			Receptor: varType, Provider: valueType,
		})
		return
	}
	indexType := c.typeOfExpr(stmt.Index)
	if varType.Base.KeyType != nil {
		c.unify(*varType.Base.KeyType, indexType, stmt.Index)
	}
	c.unify(*varType.Base.ValueType, valueType, stmt.Value)
}

func (c *Checker) unify(receptor, provider types.Type, at ast.HasPosition) {
	if len(c.errs) > c.declErrs {
		return
	}
	if err := Unify(receptor, provider, c.bodySubst); err != nil {
		err.Range = ast.NewRangeFromPositioned(at)
		c.report(err)
	}
}

func (c *Checker) resolveCallSite(name ast.Identifier, args []ast.Expression, r ast.Range) (types.Type, *DispatchChain) {
	candidates := c.procedures.Lookup(name.Name)
	if len(candidates) == 0 {
		c.report(&UndefinedNameError{Range: r, Kind: common.DeclarationKindProcedure, Name: name.Name, Candidates: c.procedures.Names()})
		return types.Void(c.interner), nil
	}

	argTypes := make([]types.Type, len(args))
	for i, a := range args {
		argTypes[i] = c.typeOfExpr(a)
	}

	anyArityMatches := false
	for _, cand := range candidates {
		if len(cand.Signature.ParamTypes) == len(argTypes) {
			anyArityMatches = true
			break
		}
	}
	if !anyArityMatches {
		c.report(&ArityMismatchError{Range: r, Name: name.Name, Expected: len(candidates[0].Signature.ParamTypes), Got: len(argTypes)})
		return types.Void(c.interner), nil
	}

	chain, returnType, err := resolveCall(c.ordering, c.counter, name.Name, candidates, argTypes, r)
	if err != nil {
		c.report(err)
		return types.Void(c.interner), nil
	}
	return returnType, chain
}
