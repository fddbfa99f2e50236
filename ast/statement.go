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

// Statement is implemented by every statement node.
type Statement interface {
	HasPosition
	Doc() prettier.Doc
	AcceptStmt(visitor StatementVisitor[VisitResult]) VisitResult
	isStatement()
}

type BlockStatement struct {
	Range
	Statements []Statement
}

func (*BlockStatement) isStatement() {}

var blockStatementSeparatorDoc prettier.Doc = prettier.HardLine{}

func (s *BlockStatement) Doc() prettier.Doc {
	docs := make([]prettier.Doc, len(s.Statements))
	for i, stmt := range s.Statements {
		docs[i] = stmt.Doc()
	}
	return prettier.Concat{
		prettier.Text("begin"),
		prettier.Indent{
			Doc: prettier.Concat{
				prettier.HardLine{},
				prettier.Join(blockStatementSeparatorDoc, docs...),
			},
		},
		prettier.HardLine{},
		prettier.Text("end"),
	}
}
func (s *BlockStatement) AcceptStmt(v StatementVisitor[VisitResult]) VisitResult {
	return v.VisitBlockStatement(s)
}

type IfStatement struct {
	Range
	Test Expression
	Then Statement
	Else Statement // nil if no else-branch
}

func (*IfStatement) isStatement() {}
func (s *IfStatement) Doc() prettier.Doc {
	docs := prettier.Concat{
		prettier.Text("if "),
		s.Test.Doc(),
		prettier.Space,
		s.Then.Doc(),
	}
	if s.Else != nil {
		return append(docs, prettier.Text(" else "), s.Else.Doc())
	}
	return docs
}
func (s *IfStatement) AcceptStmt(v StatementVisitor[VisitResult]) VisitResult {
	return v.VisitIfStatement(s)
}

type WhileStatement struct {
	Range
	Test Expression
	Body Statement
}

func (*WhileStatement) isStatement() {}
func (s *WhileStatement) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("while "),
		s.Test.Doc(),
		prettier.Space,
		s.Body.Doc(),
	}
}
func (s *WhileStatement) AcceptStmt(v StatementVisitor[VisitResult]) VisitResult {
	return v.VisitWhileStatement(s)
}

// ReturnStatement is `return e` or `return final e`. Final marks that
// this statement terminates the procedure's dispatch chain; the checker
// only needs to type-check e and never inspects Final, which stays on
// this node for an evaluator to consume.
type ReturnStatement struct {
	Range
	Final bool
	Value Expression
}

func (*ReturnStatement) isStatement() {}
func (s *ReturnStatement) Doc() prettier.Doc {
	if s.Final {
		return prettier.Concat{prettier.Text("return final "), s.Value.Doc()}
	}
	return prettier.Concat{prettier.Text("return "), s.Value.Doc()}
}
func (s *ReturnStatement) AcceptStmt(v StatementVisitor[VisitResult]) VisitResult {
	return v.VisitReturnStatement(s)
}

// AssignStatement is `name := e` or `name[index] := e`.
type AssignStatement struct {
	Name  Identifier
	Index Expression // nil if not indexed
	Value Expression
}

func (*AssignStatement) isStatement() {}
func (s *AssignStatement) StartPosition() Position { return s.Name.StartPosition() }
func (s *AssignStatement) EndPosition() Position   { return s.Value.EndPosition() }
func (s *AssignStatement) Doc() prettier.Doc {
	targetDoc := prettier.Doc(prettier.Text(s.Name.Name))
	if s.Index != nil {
		targetDoc = prettier.Concat{
			targetDoc,
			prettier.WrapBrackets(s.Index.Doc(), prettier.SoftLine{}),
		}
	}
	return prettier.Concat{
		targetDoc,
		prettier.Text(" := "),
		s.Value.Doc(),
	}
}
func (s *AssignStatement) AcceptStmt(v StatementVisitor[VisitResult]) VisitResult {
	return v.VisitAssignStatement(s)
}

// CallStatement is a procedure call used as a statement, discarding its
// return value.
type CallStatement struct {
	Name  Identifier
	Args  []Expression
	EndAt Position
}

func (*CallStatement) isStatement() {}
func (s *CallStatement) StartPosition() Position { return s.Name.StartPosition() }
func (s *CallStatement) EndPosition() Position   { return s.EndAt }
func (s *CallStatement) Doc() prettier.Doc {
	if len(s.Args) == 0 {
		return prettier.Concat{prettier.Text(s.Name.Name), prettier.Text("()")}
	}
	argDocs := make([]prettier.Doc, len(s.Args))
	for i, a := range s.Args {
		argDocs[i] = a.Doc()
	}
	return prettier.Concat{
		prettier.Text(s.Name.Name),
		prettier.WrapParentheses(
			prettier.Join(callArgumentSeparatorDoc, argDocs...),
			prettier.SoftLine{},
		),
	}
}
func (s *CallStatement) AcceptStmt(v StatementVisitor[VisitResult]) VisitResult {
	return v.VisitCallStatement(s)
}
