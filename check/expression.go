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
	"github.com/catseye/Dieter/ast"
	"github.com/catseye/Dieter/common"
	"github.com/catseye/Dieter/types"
)

// typeOfExpr computes e's static type, recording it (and, for calls, the
// resolved dispatch chain) on the Elaboration. Errors are reported
// rather than returned; on failure a best-effort type (usually void) is
// returned so checking of the rest of the declaration can continue.
func (c *Checker) typeOfExpr(e ast.Expression) types.Type {
	t := c.computeType(e)
	c.elaboration.SetType(e, t)
	return t
}

func (c *Checker) computeType(e ast.Expression) types.Type {
	switch expr := e.(type) {
	case *ast.IntLiteralExpr:
		return types.Int(c.interner)

	case *ast.StringLiteralExpr:
		return types.String(c.interner)

	case *ast.VarRefExpr:
		varType, ok := c.scopes.Lookup(expr.Name.Name)
		if !ok {
			c.report(&UndefinedNameError{Range: ast.NewRangeFromPositioned(expr), Kind: common.DeclarationKindVariable, Name: expr.Name.Name, Candidates: c.scopes.Names()})
			return types.Void(c.interner)
		}
		if expr.Index == nil {
			return varType
		}
		if varType.Base.Kind != types.BaseTypeMap {
			c.report(&UnificationError{
				Range: ast.NewRangeFromPositioned(expr), Kind: StructuralMismatch,
				Receptor: varType, Provider: varType,
			})
			return types.Void(c.interner)
		}
		indexType := c.typeOfExpr(expr.Index)
		if varType.Base.KeyType != nil {
			c.unify(*varType.Base.KeyType, indexType, expr.Index)
		}
		return *varType.Base.ValueType

	case *ast.CallExpr:
		returnType, chain := c.resolveCallSite(expr.Name, expr.Args, ast.NewRangeFromPositioned(expr))
		if chain != nil {
			c.elaboration.SetDispatchChain(expr, chain)
		}
		return returnType

	case *ast.SuperExpr:
		return c.typeOfSuper(expr)

	case *ast.BestowExpr:
		return c.typeOfBestow(expr)

	default:
		return types.Void(c.interner)
	}
}

// typeOfSuper checks that `super`, used in the body of c.currentProc, has
// somewhere to delegate to: a sibling candidate of the same name whose
// declared signature is strictly more general than c.currentProc's own,
// per the qualifier-specificity ordering (CompareSignatures/OrderingGraph,
// the same machinery compareApplicable uses to rank a dispatch chain).
// A raw headcount of same-named candidates is not enough -- the most
// general candidate in a chain has siblings too, just none of them more
// general than it, and `super` in its body has nothing to delegate to.
func (c *Checker) typeOfSuper(expr *ast.SuperExpr) types.Type {
	if c.currentProc == nil {
		return types.Void(c.interner)
	}
	candidates := c.procedures.Lookup(c.currentProc.Name.Name)
	var mine *Candidate
	for _, cand := range candidates {
		if cand.Proc == c.currentProc {
			mine = cand
			break
		}
	}
	if mine == nil {
		return c.currentReturn
	}

	mineQualifiers := signatureQualifiers(mine.Signature)
	for _, cand := range candidates {
		if cand == mine {
			continue
		}
		if len(cand.Signature.ParamTypes) != len(mine.Signature.ParamTypes) {
			continue
		}
		if CompareSignatures(c.ordering, mineQualifiers, signatureQualifiers(cand.Signature)) == Greater {
			return c.currentReturn
		}
	}

	c.report(&NoSuperCandidateError{Range: ast.NewRangeFromPositioned(expr), Name: c.currentProc.Name.Name})
	return c.currentReturn
}

func (c *Checker) typeOfBestow(expr *ast.BestowExpr) types.Type {
	subType := c.typeOfExpr(expr.Sub)
	if c.currentModule != expr.Qualifier.Name {
		c.report(&QualifierModuleMismatchError{
			Range: ast.NewRangeFromPositioned(expr), Qualifier: expr.Qualifier.Name, Module: c.currentModule,
		})
		return subType
	}
	return subType.WithQualifiers(subType.Qualifiers.AddName(expr.Qualifier.Name))
}
