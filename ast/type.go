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
	"strings"

	"github.com/turbolent/prettier"
)

// TypeExpr is a qualified type expression as written in source:
// zero or more qualifier identifiers in front of a bare type.
// Qualifiers are de-duplicated in source order; the checker discards
// that order anyway once it builds a QualifierSet, which is a true set.
type TypeExpr struct {
	Qualifiers []Identifier
	Bare       BareTypeExpr
}

func NewTypeExpr(qualifiers []Identifier, bare BareTypeExpr) *TypeExpr {
	seen := make(map[string]struct{}, len(qualifiers))
	deduped := make([]Identifier, 0, len(qualifiers))
	for _, q := range qualifiers {
		if _, ok := seen[q.Name]; ok {
			continue
		}
		seen[q.Name] = struct{}{}
		deduped = append(deduped, q)
	}
	return &TypeExpr{
		Qualifiers: deduped,
		Bare:       bare,
	}
}

func (t *TypeExpr) StartPosition() Position {
	if len(t.Qualifiers) > 0 {
		return t.Qualifiers[0].Pos
	}
	return t.Bare.StartPosition()
}

func (t *TypeExpr) EndPosition() Position {
	return t.Bare.EndPosition()
}

func (t *TypeExpr) String() string {
	var sb strings.Builder
	for _, q := range t.Qualifiers {
		sb.WriteString(q.Name)
		sb.WriteByte(' ')
	}
	sb.WriteString(t.Bare.String())
	return sb.String()
}

func (t *TypeExpr) Doc() prettier.Doc {
	if len(t.Qualifiers) == 0 {
		return t.Bare.Doc()
	}
	docs := make([]prettier.Doc, 0, len(t.Qualifiers)*2+1)
	for _, q := range t.Qualifiers {
		docs = append(docs, prettier.Text(q.Name), prettier.Space)
	}
	docs = append(docs, t.Bare.Doc())
	return prettier.Concat(docs)
}

// BareTypeExpr is the unqualified part of a TypeExpr: a primitive name,
// a map shape, or a type variable reference.
type BareTypeExpr interface {
	HasPosition
	String() string
	Doc() prettier.Doc
	isBareTypeExpr()
}

// PrimitiveTypeExpr is one of bool, int, rat, string, ref, void.
type PrimitiveTypeExpr struct {
	Name Identifier
}

func (*PrimitiveTypeExpr) isBareTypeExpr() {}

func (p *PrimitiveTypeExpr) StartPosition() Position { return p.Name.StartPosition() }
func (p *PrimitiveTypeExpr) EndPosition() Position   { return p.Name.EndPosition() }
func (p *PrimitiveTypeExpr) String() string          { return p.Name.Name }
func (p *PrimitiveTypeExpr) Doc() prettier.Doc       { return prettier.Text(p.Name.Name) }

// MapTypeExpr is `map [from Type] to Type`. From is nil for the
// unspecified-key "mixin" form, in which any value may be a key.
type MapTypeExpr struct {
	Range
	From *TypeExpr
	To   *TypeExpr
}

func (*MapTypeExpr) isBareTypeExpr() {}

func (m *MapTypeExpr) String() string {
	var sb strings.Builder
	sb.WriteString("map ")
	if m.From != nil {
		sb.WriteString("from ")
		sb.WriteString(m.From.String())
		sb.WriteByte(' ')
	}
	sb.WriteString("to ")
	sb.WriteString(m.To.String())
	return sb.String()
}

func (m *MapTypeExpr) Doc() prettier.Doc {
	docs := []prettier.Doc{prettier.Text("map"), prettier.Space}
	if m.From != nil {
		docs = append(docs, prettier.Text("from"), prettier.Space, m.From.Doc(), prettier.Space)
	}
	docs = append(docs, prettier.Text("to"), prettier.Space, m.To.Doc())
	return prettier.Concat(docs)
}

// TypeVarExpr is `♥name`, a reference to a type variable scoped to the
// enclosing forward/procedure declaration.
type TypeVarExpr struct {
	Sigil Position
	Name  Identifier
}

func (*TypeVarExpr) isBareTypeExpr() {}

func (t *TypeVarExpr) StartPosition() Position { return t.Sigil }
func (t *TypeVarExpr) EndPosition() Position   { return t.Name.EndPosition() }
func (t *TypeVarExpr) String() string          { return "♥" + t.Name.Name }
func (t *TypeVarExpr) Doc() prettier.Doc       { return prettier.Text("♥" + t.Name.Name) }
