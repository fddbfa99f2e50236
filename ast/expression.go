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

package ast

import (
	"strconv"

	"github.com/turbolent/prettier"
)

// Expression is implemented by every expression node. Accept dispatches
// to the matching method of an ExpressionVisitor, the way the teacher's
// ast.Expression does for its own visitor-based checker. Doc mirrors the
// teacher's ast.Expression.Doc: a separate, structured rendering used for
// canonical reformatting, kept alongside (not instead of) String, which
// is used for diagnostics and dumps.
type Expression interface {
	HasPosition
	String() string
	Doc() prettier.Doc
	AcceptExp(visitor ExpressionVisitor[VisitResult]) VisitResult
	isExpression()
}

// VisitResult is the result type of ExpressionVisitor.Visit*; it is
// intentionally declared here as an empty interface and not in the types
// package, so that ast has no dependency on types. The checker does not
// implement ExpressionVisitor; it types expressions with a type switch.
type VisitResult = any

type IntLiteralExpr struct {
	Range
	Value int64
}

func (*IntLiteralExpr) isExpression() {}
func (e *IntLiteralExpr) String() string {
	return strconv.FormatInt(e.Value, 10)
}
func (e *IntLiteralExpr) Doc() prettier.Doc {
	return prettier.Text(strconv.FormatInt(e.Value, 10))
}
func (e *IntLiteralExpr) AcceptExp(v ExpressionVisitor[VisitResult]) VisitResult {
	return v.VisitIntLiteralExpr(e)
}

type StringLiteralExpr struct {
	Range
	Value string
}

func (*StringLiteralExpr) isExpression() {}
func (e *StringLiteralExpr) String() string {
	return strconv.Quote(e.Value)
}
func (e *StringLiteralExpr) Doc() prettier.Doc {
	return prettier.Text(strconv.Quote(e.Value))
}
func (e *StringLiteralExpr) AcceptExp(v ExpressionVisitor[VisitResult]) VisitResult {
	return v.VisitStringLiteralExpr(e)
}

// VarRefExpr is a reference to a variable, optionally indexed (`v[k]`)
// when the variable has map type.
type VarRefExpr struct {
	Name  Identifier
	Index Expression // nil if not indexed
	EndAt Position
}

func (*VarRefExpr) isExpression() {}
func (e *VarRefExpr) StartPosition() Position { return e.Name.StartPosition() }
func (e *VarRefExpr) EndPosition() Position   { return e.EndAt }
func (e *VarRefExpr) String() string {
	if e.Index == nil {
		return e.Name.Name
	}
	return e.Name.Name + "[" + e.Index.String() + "]"
}
func (e *VarRefExpr) Doc() prettier.Doc {
	nameDoc := prettier.Text(e.Name.Name)
	if e.Index == nil {
		return nameDoc
	}
	return prettier.Concat{
		nameDoc,
		prettier.WrapBrackets(e.Index.Doc(), prettier.SoftLine{}),
	}
}
func (e *VarRefExpr) AcceptExp(v ExpressionVisitor[VisitResult]) VisitResult {
	return v.VisitVarRefExpr(e)
}

// CallExpr is a procedure invocation used in expression position.
type CallExpr struct {
	Name    Identifier
	Args    []Expression
	EndAt   Position
}

func (*CallExpr) isExpression() {}
func (e *CallExpr) StartPosition() Position { return e.Name.StartPosition() }
func (e *CallExpr) EndPosition() Position   { return e.EndAt }
func (e *CallExpr) String() string {
	s := e.Name.Name + "("
	for i, a := range e.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

var callArgumentSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func (e *CallExpr) Doc() prettier.Doc {
	nameDoc := prettier.Text(e.Name.Name)
	if len(e.Args) == 0 {
		return prettier.Concat{nameDoc, prettier.Text("()")}
	}
	argDocs := make([]prettier.Doc, len(e.Args))
	for i, a := range e.Args {
		argDocs[i] = a.Doc()
	}
	return prettier.Concat{
		nameDoc,
		prettier.WrapParentheses(
			prettier.Join(callArgumentSeparatorDoc, argDocs...),
			prettier.SoftLine{},
		),
	}
}
func (e *CallExpr) AcceptExp(v ExpressionVisitor[VisitResult]) VisitResult {
	return v.VisitCallExpr(e)
}

// SuperExpr is `super`: the static type of the current procedure's
// more-general sibling in its dispatch chain.
type SuperExpr struct {
	Range
}

func (*SuperExpr) isExpression() {}
func (e *SuperExpr) String() string { return "super" }

var superExprDoc prettier.Doc = prettier.Text("super")

func (e *SuperExpr) Doc() prettier.Doc { return superExprDoc }
func (e *SuperExpr) AcceptExp(v ExpressionVisitor[VisitResult]) VisitResult {
	return v.VisitSuperExpr(e)
}

// BestowExpr is `bestow q e`: adds qualifier q to the static type of e.
type BestowExpr struct {
	Keyword   Position
	Qualifier Identifier
	Sub       Expression
}

func (*BestowExpr) isExpression() {}
func (e *BestowExpr) StartPosition() Position { return e.Keyword }
func (e *BestowExpr) EndPosition() Position   { return e.Sub.EndPosition() }
func (e *BestowExpr) String() string {
	return "bestow " + e.Qualifier.Name + " " + e.Sub.String()
}
func (e *BestowExpr) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("bestow "),
		prettier.Text(e.Qualifier.Name),
		prettier.Space,
		e.Sub.Doc(),
	}
}
func (e *BestowExpr) AcceptExp(v ExpressionVisitor[VisitResult]) VisitResult {
	return v.VisitBestowExpr(e)
}
