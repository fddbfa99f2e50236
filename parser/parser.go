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

// Package parser implements a recursive-descent parser for the grammar
// in the Dieter language specification, producing an *ast.Program for
// the check package to consume. Like the checker, it never panics on
// malformed input: syntax errors are collected and returned alongside
// whatever partial program could still be recovered.
package parser

import (
	"github.com/catseye/Dieter/ast"
	"github.com/catseye/Dieter/lexer"
)

type Parser struct {
	lex  *lexer.Lexer
	errs []error
}

// ParseProgram lexes and parses a complete Dieter source file.
func ParseProgram(source string) (*ast.Program, []error) {
	p := &Parser{lex: lexer.New(source)}
	program := p.parseProgram()
	if err := p.lex.Err(); err != nil {
		p.errs = append(p.errs, err)
	}
	return program, p.errs
}

func (p *Parser) tok() lexer.Token {
	return p.lex.Token()
}

func (p *Parser) advance() lexer.Token {
	t := p.lex.Token()
	p.lex.Scan()
	return t
}

func (p *Parser) isKeyword(text string) bool {
	t := p.tok()
	return t.Type == lexer.TokenKeyword && t.Text == text
}

func (p *Parser) expectKeyword(text string) ast.Position {
	if p.isKeyword(text) {
		return p.advance().StartPos
	}
	p.errorExpected("'" + text + "'")
	return p.tok().StartPos
}

func (p *Parser) expectType(tt lexer.TokenType) lexer.Token {
	if p.tok().Type == tt {
		return p.advance()
	}
	p.errorExpected(tt.String())
	return p.tok()
}

func (p *Parser) errorExpected(expected string) {
	found := p.tok().Type.String()
	if p.tok().Type == lexer.TokenKeyword || p.tok().Type == lexer.TokenIdent {
		found = "'" + p.tok().Text + "'"
	}
	p.errs = append(p.errs, newExpectedError(p.tok().Range, expected, found))
}

func (p *Parser) expectIdentifier() ast.Identifier {
	t := p.tok()
	if t.Type != lexer.TokenIdent && t.Type != lexer.TokenKeyword {
		p.errorExpected("identifier")
		return ast.Identifier{Name: "", Pos: t.StartPos}
	}
	p.advance()
	return ast.Identifier{Name: t.Text, Pos: t.StartPos}
}

// parseProgram implements Program ::= { Module | Ordering | Forward } "." .
func (p *Parser) parseProgram() *ast.Program {
	program := &ast.Program{}
	for {
		switch {
		case p.isKeyword(lexer.KeywordOrder):
			program.Declarations = append(program.Declarations, p.parseOrdering())
		case p.isKeyword(lexer.KeywordModule):
			program.Declarations = append(program.Declarations, p.parseModule())
		case p.isKeyword(lexer.KeywordForward):
			program.Declarations = append(program.Declarations, p.parseForward())
		default:
			goto done
		}
	}
done:
	if p.tok().Type == lexer.TokenDot {
		p.advance()
	}
	if p.tok().Type != lexer.TokenEOF {
		p.errorExpected("end of input")
	}
	return program
}

// Ordering ::= "order" qualName "<" qualName .
func (p *Parser) parseOrdering() *ast.OrderingDecl {
	kw := p.expectKeyword(lexer.KeywordOrder)
	before := p.expectIdentifier()
	p.expectType(lexer.TokenLess)
	after := p.expectIdentifier()
	return &ast.OrderingDecl{Keyword: kw, Before: before, After: after}
}

// Forward ::= "forward" procName "(" [ Type { "," Type } ] ")" ":" Type .
func (p *Parser) parseForward() *ast.ForwardDecl {
	kw := p.expectKeyword(lexer.KeywordForward)
	name := p.expectIdentifier()
	p.expectType(lexer.TokenLParen)
	var paramTypes []*ast.TypeExpr
	if p.tok().Type != lexer.TokenRParen {
		paramTypes = append(paramTypes, p.parseTypeExpr())
		for p.tok().Type == lexer.TokenComma {
			p.advance()
			paramTypes = append(paramTypes, p.parseTypeExpr())
		}
	}
	p.expectType(lexer.TokenRParen)
	p.expectType(lexer.TokenColon)
	returnType := p.parseTypeExpr()
	return &ast.ForwardDecl{Keyword: kw, Name: name, ParamTypes: paramTypes, ReturnType: returnType}
}

// Module ::= "module" qualName { "var" VarDecl } { ProcDecl } "end" .
func (p *Parser) parseModule() *ast.ModuleDecl {
	kw := p.expectKeyword(lexer.KeywordModule)
	name := p.expectIdentifier()
	module := &ast.ModuleDecl{Keyword: kw, Name: name}
	for p.isKeyword(lexer.KeywordVar) {
		p.advance()
		module.Locals = append(module.Locals, p.parseVarDecl())
	}
	for p.isKeyword(lexer.KeywordProcedure) {
		module.Procs = append(module.Procs, p.parseProcDecl())
	}
	module.EndAt = p.expectKeyword(lexer.KeywordEnd)
	return module
}

// VarDecl ::= varName ":" Type .
func (p *Parser) parseVarDecl() *ast.VarDecl {
	name := p.expectIdentifier()
	p.expectType(lexer.TokenColon)
	typeExpr := p.parseTypeExpr()
	return &ast.VarDecl{Name: name, Type: typeExpr}
}

// ProcDecl ::= "procedure" procName "(" [ VarDecl { "," VarDecl } ] ")" ":" Type
//              { "var" VarDecl } Statement .
func (p *Parser) parseProcDecl() *ast.ProcDecl {
	kw := p.expectKeyword(lexer.KeywordProcedure)
	name := p.expectIdentifier()
	proc := &ast.ProcDecl{Keyword: kw, Name: name}
	p.expectType(lexer.TokenLParen)
	if p.tok().Type != lexer.TokenRParen {
		proc.Params = append(proc.Params, p.parseVarDecl())
		for p.tok().Type == lexer.TokenComma {
			p.advance()
			proc.Params = append(proc.Params, p.parseVarDecl())
		}
	}
	p.expectType(lexer.TokenRParen)
	p.expectType(lexer.TokenColon)
	proc.ReturnType = p.parseTypeExpr()
	for p.isKeyword(lexer.KeywordVar) {
		p.advance()
		proc.Locals = append(proc.Locals, p.parseVarDecl())
	}
	proc.Body = p.parseStatement()
	return proc
}

// Statement ::= "begin" { Statement } "end"
//             | "if" Expr "then" Statement [ "else" Statement ]
//             | "while" Expr "do" Statement
//             | varName [ "[" Expr "]" ] ":=" Expr
//             | procName "(" [ Expr { "," Expr } ] ")"
//             | "return" [ "final" ] Expr .
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.isKeyword(lexer.KeywordBegin):
		start := p.advance().StartPos
		block := &ast.BlockStatement{Range: ast.Range{StartPos: start}}
		for !p.isKeyword(lexer.KeywordEnd) && p.tok().Type != lexer.TokenEOF {
			block.Statements = append(block.Statements, p.parseStatement())
		}
		block.EndPos = p.expectKeyword(lexer.KeywordEnd)
		return block

	case p.isKeyword(lexer.KeywordIf):
		start := p.advance().StartPos
		test := p.parseExpr()
		p.expectKeyword(lexer.KeywordThen)
		thenStmt := p.parseStatement()
		var elseStmt ast.Statement
		end := thenStmt.EndPosition()
		if p.isKeyword(lexer.KeywordElse) {
			p.advance()
			elseStmt = p.parseStatement()
			end = elseStmt.EndPosition()
		}
		return &ast.IfStatement{Range: ast.Range{StartPos: start, EndPos: end}, Test: test, Then: thenStmt, Else: elseStmt}

	case p.isKeyword(lexer.KeywordWhile):
		start := p.advance().StartPos
		test := p.parseExpr()
		p.expectKeyword(lexer.KeywordDo)
		body := p.parseStatement()
		return &ast.WhileStatement{Range: ast.Range{StartPos: start, EndPos: body.EndPosition()}, Test: test, Body: body}

	case p.isKeyword(lexer.KeywordReturn):
		start := p.advance().StartPos
		final := false
		if p.isKeyword(lexer.KeywordFinal) {
			p.advance()
			final = true
		}
		value := p.parseExpr()
		return &ast.ReturnStatement{Range: ast.Range{StartPos: start, EndPos: value.EndPosition()}, Final: final, Value: value}

	default:
		name := p.expectIdentifier()
		if p.tok().Type == lexer.TokenLParen {
			p.advance()
			call := &ast.CallStatement{Name: name}
			if p.tok().Type != lexer.TokenRParen {
				call.Args = append(call.Args, p.parseExpr())
				for p.tok().Type == lexer.TokenComma {
					p.advance()
					call.Args = append(call.Args, p.parseExpr())
				}
			}
			call.EndAt = p.expectType(lexer.TokenRParen).EndPos
			return call
		}
		assign := &ast.AssignStatement{Name: name}
		if p.tok().Type == lexer.TokenLBracket {
			p.advance()
			assign.Index = p.parseExpr()
			p.expectType(lexer.TokenRBracket)
		}
		p.expectType(lexer.TokenAssign)
		assign.Value = p.parseExpr()
		return assign
	}
}

// Expr ::= varName [ "[" Expr "]" ]
//        | procName "(" [ Expr { "," Expr } ] ")"
//        | "(" Expr ")"
//        | "bestow" qualName Expr
//        | "super" .
func (p *Parser) parseExpr() ast.Expression {
	switch {
	case p.tok().Type == lexer.TokenLParen:
		p.advance()
		inner := p.parseExpr()
		p.expectType(lexer.TokenRParen)
		return inner

	case p.isKeyword(lexer.KeywordBestow):
		start := p.advance().StartPos
		qual := p.expectIdentifier()
		sub := p.parseExpr()
		return &ast.BestowExpr{Keyword: start, Qualifier: qual, Sub: sub}

	case p.isKeyword(lexer.KeywordSuper):
		t := p.advance()
		return &ast.SuperExpr{Range: t.Range}

	case p.tok().Type == lexer.TokenInt:
		t := p.advance()
		return &ast.IntLiteralExpr{Range: t.Range, Value: t.IntValue}

	case p.tok().Type == lexer.TokenString:
		t := p.advance()
		return &ast.StringLiteralExpr{Range: t.Range, Value: t.StrValue}

	default:
		name := p.expectIdentifier()
		if p.tok().Type == lexer.TokenLParen {
			p.advance()
			call := &ast.CallExpr{Name: name}
			if p.tok().Type != lexer.TokenRParen {
				call.Args = append(call.Args, p.parseExpr())
				for p.tok().Type == lexer.TokenComma {
					p.advance()
					call.Args = append(call.Args, p.parseExpr())
				}
			}
			call.EndAt = p.expectType(lexer.TokenRParen).EndPos
			return call
		}
		ref := &ast.VarRefExpr{Name: name, EndAt: name.EndPosition()}
		if p.tok().Type == lexer.TokenLBracket {
			p.advance()
			ref.Index = p.parseExpr()
			ref.EndAt = p.expectType(lexer.TokenRBracket).EndPos
		}
		return ref
	}
}

// Type ::= { qualName } BareType .
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	var quals []ast.Identifier
	for p.tok().Type == lexer.TokenIdent ||
		(p.tok().Type == lexer.TokenKeyword && !isBareTypeStarter(p.tok().Text)) {
		quals = append(quals, p.expectIdentifier())
	}
	bare := p.parseBareTypeExpr()
	return ast.NewTypeExpr(quals, bare)
}

func isBareTypeStarter(keyword string) bool {
	if keyword == lexer.KeywordMap {
		return true
	}
	return isPrimitiveKeyword(keyword)
}

func isPrimitiveKeyword(keyword string) bool {
	switch keyword {
	case lexer.KeywordVoid, lexer.KeywordBool, lexer.KeywordInt,
		lexer.KeywordRat, lexer.KeywordString, lexer.KeywordRef:
		return true
	default:
		return false
	}
}

// BareType ::= "map" [ "from" Type ] "to" Type
//            | "♥" tvarName
//            | "bool" | "int" | "rat" | "string" | "ref" | "void" .
func (p *Parser) parseBareTypeExpr() ast.BareTypeExpr {
	switch {
	case p.tok().Type == lexer.TokenSigil:
		sigil := p.advance().StartPos
		name := p.expectIdentifier()
		return &ast.TypeVarExpr{Sigil: sigil, Name: name}

	case p.isKeyword(lexer.KeywordMap):
		start := p.advance().StartPos
		var from *ast.TypeExpr
		if p.isKeyword(lexer.KeywordFrom) {
			p.advance()
			from = p.parseTypeExpr()
		}
		p.expectKeyword(lexer.KeywordTo)
		to := p.parseTypeExpr()
		return &ast.MapTypeExpr{Range: ast.Range{StartPos: start, EndPos: to.EndPosition()}, From: from, To: to}

	case p.tok().Type == lexer.TokenKeyword && isPrimitiveKeyword(p.tok().Text):
		t := p.advance()
		return &ast.PrimitiveTypeExpr{Name: ast.Identifier{Name: t.Text, Pos: t.StartPos}}

	default:
		p.errorExpected("a type")
		t := p.tok()
		return &ast.PrimitiveTypeExpr{Name: ast.Identifier{Name: lexer.KeywordVoid, Pos: t.StartPos}}
	}
}
