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

import "github.com/catseye/Dieter/types"

// Substitution maps a type variable's identity to the type it is bound
// to. It is created fresh on procedure entry and at every call site, and
// discarded when that scope ends -- it never outlives the AST traversal
// that created it, per spec's resource-lifetime model.
type Substitution struct {
	bindings map[int]types.Type
}

func NewSubstitution() *Substitution {
	return &Substitution{bindings: make(map[int]types.Type)}
}

// Deref follows t's binding chain to the end, applying path compression
// so later lookups of the same variable are O(1). A type that is not a
// variable, or a variable with no binding yet, is returned as-is.
func (s *Substitution) Deref(t types.Type) types.Type {
	if !t.IsVar() {
		return t
	}
	bound, ok := s.bindings[t.Base.VarID]
	if !ok {
		return t
	}
	final := s.Deref(bound)
	s.bindings[t.Base.VarID] = final
	return final
}

// Bind records that the variable v is bound to t.
func (s *Substitution) Bind(v types.Type, t types.Type) {
	s.bindings[v.Base.VarID] = t
}

// Apply substitutes every bound variable in t with its binding,
// recursively, normalizing as it goes: when a tvar is replaced by a
// concrete type, the outer qualifier set becomes the union of the
// referring site's qualifiers and the bound type's qualifiers, per
// spec §4.1's `apply` contract.
func (s *Substitution) Apply(t types.Type) types.Type {
	if t.IsVar() {
		bound, ok := s.bindings[t.Base.VarID]
		if !ok {
			return t
		}
		resolved := s.Apply(bound)
		return resolved.WithQualifiers(t.Qualifiers.Union(resolved.Qualifiers))
	}
	if t.Base.Kind == types.BaseTypeMap {
		var newKey *types.Type
		if t.Base.KeyType != nil {
			k := s.Apply(*t.Base.KeyType)
			newKey = &k
		}
		newValue := s.Apply(*t.Base.ValueType)
		t.Base.KeyType = newKey
		t.Base.ValueType = &newValue
	}
	return t
}
