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

	"github.com/catseye/Dieter/types"
)

// VariableScopeStack is a stack of variable frames: one pushed per
// procedure body (module-level variables forming the outermost frame)
// and, optionally, per nested block. Lookups search innermost-out.
type VariableScopeStack struct {
	frames []map[string]types.Type
}

func NewVariableScopeStack() *VariableScopeStack {
	s := &VariableScopeStack{}
	s.Push()
	return s
}

func (s *VariableScopeStack) Push() {
	s.frames = append(s.frames, make(map[string]types.Type))
}

func (s *VariableScopeStack) Pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

// Declare adds name to the innermost frame. It does not check for
// shadowing; the checker decides whether redeclaration within the same
// frame is an error.
func (s *VariableScopeStack) Declare(name string, t types.Type) {
	s.frames[len(s.frames)-1][name] = t
}

// DeclaredInTop reports whether name is already declared in the
// innermost frame (used to detect redeclaration within one scope).
func (s *VariableScopeStack) DeclaredInTop(name string) bool {
	_, ok := s.frames[len(s.frames)-1][name]
	return ok
}

func (s *VariableScopeStack) Lookup(name string) (types.Type, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if t, ok := s.frames[i][name]; ok {
			return t, true
		}
	}
	return types.Type{}, false
}

// Names returns every name currently in scope across all frames, sorted
// and deduplicated, for diagnostics.
func (s *VariableScopeStack) Names() []string {
	seen := make(map[string]struct{})
	for _, frame := range s.frames {
		for name := range frame {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
