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

package types

// ProcSignature is one entry in a procedure's dispatch set: the types of
// its parameters and its return type. A procedure name may own many
// signatures, one per `forward`/`procedure` declaration that uses it.
type ProcSignature struct {
	Name       string
	ParamTypes []Type
	ReturnType Type
}

// IDCounter mints fresh type-variable identities. It is owned by a
// single checker instance and threaded explicitly through every call
// that needs one -- never a package-level counter -- matching spec's
// "no global mutable state beyond the checker instance" rule.
type IDCounter struct {
	next int
}

func NewIDCounter() *IDCounter {
	return &IDCounter{}
}

func (c *IDCounter) Next() int {
	id := c.next
	c.next++
	return id
}

// Freshen returns a copy of sig with every type variable identity
// replaced by a freshly minted one, preserving which occurrences refer
// to the same variable. Called exactly once per call-site resolution, so
// that two invocations of a polymorphic procedure never share bindings.
func Freshen(sig *ProcSignature, counter *IDCounter) *ProcSignature {
	renumber := make(map[int]int)
	fresh := func(t Type) Type {
		return renumberVars(t, renumber, counter)
	}
	out := &ProcSignature{
		Name:       sig.Name,
		ParamTypes: make([]Type, len(sig.ParamTypes)),
		ReturnType: fresh(sig.ReturnType),
	}
	for i, p := range sig.ParamTypes {
		out.ParamTypes[i] = fresh(p)
	}
	return out
}

func renumberVars(t Type, renumber map[int]int, counter *IDCounter) Type {
	switch t.Base.Kind {
	case BaseTypeVar:
		newID, ok := renumber[t.Base.VarID]
		if !ok {
			newID = counter.Next()
			renumber[t.Base.VarID] = newID
		}
		t.Base.VarID = newID
		return t
	case BaseTypeMap:
		var newKey *Type
		if t.Base.KeyType != nil {
			k := renumberVars(*t.Base.KeyType, renumber, counter)
			newKey = &k
		}
		newValue := renumberVars(*t.Base.ValueType, renumber, counter)
		t.Base.KeyType = newKey
		t.Base.ValueType = &newValue
		return t
	default:
		return t
	}
}
