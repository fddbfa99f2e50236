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

import "github.com/turbolent/prettier"

// Declaration is implemented by every top-level declaration.
type Declaration interface {
	HasPosition
	Doc() prettier.Doc
	AcceptDecl(visitor DeclarationVisitor[VisitResult]) VisitResult
	isDeclaration()
}

// VarDecl is `name : TypeExpr`, used both for module-local variables and
// for procedure parameters and locals.
type VarDecl struct {
	Name Identifier
	Type *TypeExpr
}

func (d *VarDecl) StartPosition() Position { return d.Name.StartPosition() }
func (d *VarDecl) EndPosition() Position   { return d.Type.EndPosition() }

func (d *VarDecl) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text(d.Name.Name),
		prettier.Text(": "),
		d.Type.Doc(),
	}
}

var varDeclSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func varDeclListDoc(decls []*VarDecl) prettier.Doc {
	docs := make([]prettier.Doc, len(decls))
	for i, d := range decls {
		docs[i] = d.Doc()
	}
	return prettier.Join(varDeclSeparatorDoc, docs...)
}

// OrderingDecl is `order q1 < q2`: q1 is declared strictly more specific
// than q2, the way a subtype precedes its supertype.
type OrderingDecl struct {
	Keyword Position
	Before  Identifier
	After   Identifier
}

func (*OrderingDecl) isDeclaration() {}
func (d *OrderingDecl) StartPosition() Position { return d.Keyword }
func (d *OrderingDecl) EndPosition() Position   { return d.After.EndPosition() }
func (d *OrderingDecl) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("order "),
		prettier.Text(d.Before.Name),
		prettier.Text(" < "),
		prettier.Text(d.After.Name),
	}
}
func (d *OrderingDecl) AcceptDecl(v DeclarationVisitor[VisitResult]) VisitResult {
	return v.VisitOrderingDecl(d)
}

// ForwardDecl is `forward name(Type, ...): Type`, declaring a signature
// with no body (e.g. for an intrinsic such as new_ref() or succ).
type ForwardDecl struct {
	Keyword    Position
	Name       Identifier
	ParamTypes []*TypeExpr
	ReturnType *TypeExpr
}

func (*ForwardDecl) isDeclaration() {}
func (d *ForwardDecl) StartPosition() Position { return d.Keyword }
func (d *ForwardDecl) EndPosition() Position   { return d.ReturnType.EndPosition() }
func (d *ForwardDecl) Doc() prettier.Doc {
	paramDocs := make([]prettier.Doc, len(d.ParamTypes))
	for i, p := range d.ParamTypes {
		paramDocs[i] = p.Doc()
	}
	return prettier.Concat{
		prettier.Text("forward "),
		prettier.Text(d.Name.Name),
		prettier.WrapParentheses(
			prettier.Join(varDeclSeparatorDoc, paramDocs...),
			prettier.SoftLine{},
		),
		prettier.Text(": "),
		d.ReturnType.Doc(),
	}
}
func (d *ForwardDecl) AcceptDecl(v DeclarationVisitor[VisitResult]) VisitResult {
	return v.VisitForwardDecl(d)
}

// ModuleDecl is `module name { var VarDecl } { ProcDecl } end`.
// The module's name is simultaneously the name of the qualifier it owns.
type ModuleDecl struct {
	Keyword Position
	Name    Identifier
	Locals  []*VarDecl
	Procs   []*ProcDecl
	EndAt   Position
}

func (*ModuleDecl) isDeclaration() {}
func (d *ModuleDecl) StartPosition() Position { return d.Keyword }
func (d *ModuleDecl) EndPosition() Position   { return d.EndAt }
func (d *ModuleDecl) Doc() prettier.Doc {
	var body []prettier.Doc
	if len(d.Locals) > 0 {
		body = append(body, prettier.Text("var "), varDeclListDoc(d.Locals), prettier.HardLine{})
	}
	for i, proc := range d.Procs {
		if i > 0 || len(d.Locals) > 0 {
			body = append(body, prettier.HardLine{})
		}
		body = append(body, proc.Doc())
	}
	return prettier.Concat{
		prettier.Text("module "),
		prettier.Text(d.Name.Name),
		prettier.Indent{
			Doc: prettier.Concat(append([]prettier.Doc{prettier.HardLine{}}, body...)),
		},
		prettier.HardLine{},
		prettier.Text("end"),
	}
}
func (d *ModuleDecl) AcceptDecl(v DeclarationVisitor[VisitResult]) VisitResult {
	return v.VisitModuleDecl(d)
}

// ProcDecl is `procedure name(VarDecl, ...): Type { var VarDecl } Statement`.
type ProcDecl struct {
	Keyword    Position
	Name       Identifier
	Params     []*VarDecl
	ReturnType *TypeExpr
	Locals     []*VarDecl
	Body       Statement
}

func (d *ProcDecl) StartPosition() Position { return d.Keyword }
func (d *ProcDecl) EndPosition() Position   { return d.Body.EndPosition() }

func (d *ProcDecl) Doc() prettier.Doc {
	docs := prettier.Concat{
		prettier.Text("procedure "),
		prettier.Text(d.Name.Name),
		prettier.WrapParentheses(varDeclListDoc(d.Params), prettier.SoftLine{}),
		prettier.Text(": "),
		d.ReturnType.Doc(),
	}
	if len(d.Locals) > 0 {
		docs = append(docs, prettier.HardLine{}, prettier.Text("var "), varDeclListDoc(d.Locals))
	}
	return append(docs, prettier.HardLine{}, d.Body.Doc())
}
