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
)

// QualifierTable maps a qualifier name to the module declaration that
// defines it. A qualifier name is defined exactly when some `module`
// declares it; using an undefined one in a type expression or an
// `order` declaration is an UndefinedNameError.
type QualifierTable struct {
	definedAt map[string]ast.Position
}

func NewQualifierTable() *QualifierTable {
	return &QualifierTable{definedAt: make(map[string]ast.Position)}
}

// Define records that name is defined at at. If name was already
// defined, the prior position is returned unchanged along with false,
// so the caller can report a RedeclarationError.
func (t *QualifierTable) Define(name string, at ast.Position) (previous ast.Position, ok bool) {
	if prev, exists := t.definedAt[name]; exists {
		return prev, false
	}
	t.definedAt[name] = at
	return ast.Position{}, true
}

func (t *QualifierTable) IsDefined(name string) bool {
	_, ok := t.definedAt[name]
	return ok
}

func (t *QualifierTable) DefinedAt(name string) ast.Position {
	return t.definedAt[name]
}

// Names returns every defined qualifier name, sorted, for diagnostics.
func (t *QualifierTable) Names() []string {
	names := make([]string, 0, len(t.definedAt))
	for name := range t.definedAt {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
