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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDCounterMintsDistinctIncreasingIDs(t *testing.T) {
	t.Parallel()

	c := NewIDCounter()
	a := c.Next()
	b := c.Next()
	assert.NotEqual(t, a, b)
	assert.Equal(t, a+1, b)
}

func TestFreshenPreservesSharedVariableIdentity(t *testing.T) {
	t.Parallel()

	in := NewQualifierInterner()
	counter := NewIDCounter()

	// forward equal(♥u, ♥u): bool -- both parameters share variable 0.
	sig := &ProcSignature{
		Name:       "equal",
		ParamTypes: []Type{NewTypeVariable(in, 0), NewTypeVariable(in, 0)},
		ReturnType: Bool(in),
	}

	// Variable 0 was minted by this counter when the signature was
	// declared, as the checker does; freshening must not reuse it.
	counter.Next()
	fresh := Freshen(sig, counter)
	require.Len(t, fresh.ParamTypes, 2)
	assert.Equal(t, fresh.ParamTypes[0].Base.VarID, fresh.ParamTypes[1].Base.VarID)
	assert.NotEqual(t, 0, fresh.ParamTypes[0].Base.VarID)
}

func TestFreshenAssignsDistinctIDsAcrossCalls(t *testing.T) {
	t.Parallel()

	in := NewQualifierInterner()
	counter := NewIDCounter()

	sig := &ProcSignature{
		Name:       "ident",
		ParamTypes: []Type{NewTypeVariable(in, 0)},
		ReturnType: NewTypeVariable(in, 0),
	}

	first := Freshen(sig, counter)
	second := Freshen(sig, counter)
	assert.NotEqual(t, first.ParamTypes[0].Base.VarID, second.ParamTypes[0].Base.VarID)
}

func TestFreshenPreservesDeclaredQualifiers(t *testing.T) {
	t.Parallel()

	in := NewQualifierInterner()
	counter := NewIDCounter()

	beefyGnarly := NewQualifierSet(in).AddName("beefy").AddName("gnarly")
	tvar := NewTypeVariable(in, 0).WithQualifiers(beefyGnarly)

	sig := &ProcSignature{
		Name:       "glunt",
		ParamTypes: []Type{tvar},
		ReturnType: NewTypeVariable(in, 0).WithQualifiers(NewQualifierSet(in).AddName("gnarly")),
	}

	fresh := Freshen(sig, counter)
	assert.ElementsMatch(t, []string{"beefy", "gnarly"}, fresh.ParamTypes[0].Qualifiers.Names())
	assert.Equal(t, []string{"gnarly"}, fresh.ReturnType.Qualifiers.Names())
}

func TestFreshenRenumbersNestedMapKeyAndValueVars(t *testing.T) {
	t.Parallel()

	in := NewQualifierInterner()
	counter := NewIDCounter()

	key := NewTypeVariable(in, 0)
	value := NewTypeVariable(in, 0)
	mapType := Map(in, &key, value)

	sig := &ProcSignature{
		Name:       "selfmap",
		ParamTypes: []Type{mapType},
		ReturnType: Bool(in),
	}

	// Variable 0 was minted by this counter when the signature was
	// declared, as the checker does; freshening must not reuse it.
	counter.Next()
	fresh := Freshen(sig, counter)
	m := fresh.ParamTypes[0]
	assert.Equal(t, m.Base.KeyType.Base.VarID, m.Base.ValueType.Base.VarID)
	assert.NotEqual(t, 0, m.Base.KeyType.Base.VarID)
}
