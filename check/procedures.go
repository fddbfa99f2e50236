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
	"sort"

	"github.com/catseye/Dieter/ast"
	"github.com/catseye/Dieter/types"
)

// Candidate is one signature in a procedure's dispatch set, together
// with the declaration that introduced it, for diagnostics and for
// locating the ProcDecl's body when super needs to find a more general
// sibling.
type Candidate struct {
	Signature *types.ProcSignature
	DeclAt    ast.Position
	Proc      *ast.ProcDecl // nil for a signature coming from a ForwardDecl
}

// ProcedureTable maps a procedure name to its dispatch set: every
// `forward` and `procedure` declaration sharing that name, in
// declaration order. All candidates sharing a name must agree on return
// type.
type ProcedureTable struct {
	candidates map[string][]*Candidate
}

func NewProcedureTable() *ProcedureTable {
	return &ProcedureTable{candidates: make(map[string][]*Candidate)}
}

// Add registers a new candidate, rejecting one whose return type
// disagrees with an already-registered same-named candidate.
func (t *ProcedureTable) Add(c *Candidate) *ReturnTypeDivergenceError {
	existing := t.candidates[c.Signature.Name]
	if len(existing) > 0 && !existing[0].Signature.ReturnType.Equal(c.Signature.ReturnType) {
		return &ReturnTypeDivergenceError{
			Range:    ast.Range{StartPos: c.DeclAt, EndPos: c.DeclAt},
			Name:     c.Signature.Name,
			Previous: existing[0].Signature.ReturnType,
			This:     c.Signature.ReturnType,
		}
	}
	t.candidates[c.Signature.Name] = append(existing, c)
	return nil
}

func (t *ProcedureTable) IsDefined(name string) bool {
	return len(t.candidates[name]) > 0
}

func (t *ProcedureTable) Lookup(name string) []*Candidate {
	return t.candidates[name]
}

// Names returns every procedure name with at least one candidate,
// sorted, for diagnostics.
func (t *ProcedureTable) Names() []string {
	names := make([]string, 0, len(t.candidates))
	for name := range t.candidates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
