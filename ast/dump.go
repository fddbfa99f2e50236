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
	"fmt"
	"io"
)

// Dumper writes an indented tree representation of a Program to an
// io.Writer. It implements StatementVisitor and DeclarationVisitor so
// declarations and statements are dispatched through Accept rather than
// a type switch; expressions are simple enough that their own String()
// suffices and Dumper does not need ExpressionVisitor.
type Dumper struct {
	w      io.Writer
	indent int
}

func NewDumper(w io.Writer) *Dumper {
	return &Dumper{w: w}
}

func (d *Dumper) DumpProgram(p *Program) {
	for _, decl := range p.Declarations {
		decl.AcceptDecl(d)
	}
}

func (d *Dumper) line(format string, args ...any) {
	for i := 0; i < d.indent; i++ {
		fmt.Fprint(d.w, "  ")
	}
	fmt.Fprintf(d.w, format, args...)
	fmt.Fprintln(d.w)
}

func (d *Dumper) descend(f func()) {
	d.indent++
	f()
	d.indent--
}

func (d *Dumper) dumpVarDecls(label string, decls []*VarDecl) {
	for _, v := range decls {
		d.line("%s %s : %s", label, v.Name.Name, v.Type.String())
	}
}

func (d *Dumper) VisitOrderingDecl(decl *OrderingDecl) VisitResult {
	d.line("order %s < %s", decl.Before.Name, decl.After.Name)
	return nil
}

func (d *Dumper) VisitForwardDecl(decl *ForwardDecl) VisitResult {
	d.line("forward %s", decl.Name.Name)
	return nil
}

func (d *Dumper) VisitModuleDecl(decl *ModuleDecl) VisitResult {
	d.line("module %s", decl.Name.Name)
	d.descend(func() {
		d.dumpVarDecls("var", decl.Locals)
		for _, proc := range decl.Procs {
			d.dumpProc(proc)
		}
	})
	return nil
}

func (d *Dumper) dumpProc(proc *ProcDecl) {
	d.line("procedure %s : %s", proc.Name.Name, proc.ReturnType.String())
	d.descend(func() {
		d.dumpVarDecls("param", proc.Params)
		d.dumpVarDecls("local", proc.Locals)
		proc.Body.AcceptStmt(d)
	})
}

func (d *Dumper) VisitBlockStatement(stmt *BlockStatement) VisitResult {
	d.line("block")
	d.descend(func() {
		for _, sub := range stmt.Statements {
			sub.AcceptStmt(d)
		}
	})
	return nil
}

func (d *Dumper) VisitIfStatement(stmt *IfStatement) VisitResult {
	d.line("if %s", stmt.Test.String())
	d.descend(func() {
		stmt.Then.AcceptStmt(d)
		if stmt.Else != nil {
			stmt.Else.AcceptStmt(d)
		}
	})
	return nil
}

func (d *Dumper) VisitWhileStatement(stmt *WhileStatement) VisitResult {
	d.line("while %s", stmt.Test.String())
	d.descend(func() {
		stmt.Body.AcceptStmt(d)
	})
	return nil
}

func (d *Dumper) VisitReturnStatement(stmt *ReturnStatement) VisitResult {
	if stmt.Final {
		d.line("return final %s", stmt.Value.String())
	} else {
		d.line("return %s", stmt.Value.String())
	}
	return nil
}

func (d *Dumper) VisitAssignStatement(stmt *AssignStatement) VisitResult {
	if stmt.Index != nil {
		d.line("%s[%s] := %s", stmt.Name.Name, stmt.Index.String(), stmt.Value.String())
	} else {
		d.line("%s := %s", stmt.Name.Name, stmt.Value.String())
	}
	return nil
}

func (d *Dumper) VisitCallStatement(stmt *CallStatement) VisitResult {
	d.line("call %s(%d args)", stmt.Name.Name, len(stmt.Args))
	return nil
}
