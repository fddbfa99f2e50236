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
)

func TestQualifierSetAddIsCommutative(t *testing.T) {
	t.Parallel()

	in := NewQualifierInterner()
	a := NewQualifierSet(in).AddName("beefy").AddName("gnarly")
	b := NewQualifierSet(in).AddName("gnarly").AddName("beefy")
	assert.True(t, a.Equal(b))
}

func TestQualifierSetAddIsIdempotent(t *testing.T) {
	t.Parallel()

	in := NewQualifierInterner()
	once := NewQualifierSet(in).AddName("beefy")
	twice := once.AddName("beefy")
	assert.True(t, once.Equal(twice))
	assert.Equal(t, 1, twice.Len())
}

func TestQualifierSetAddDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	in := NewQualifierInterner()
	empty := NewQualifierSet(in)
	withBeefy := empty.AddName("beefy")
	assert.True(t, empty.IsEmpty())
	assert.False(t, withBeefy.IsEmpty())
}

func TestQualifierSetIsSupersetOf(t *testing.T) {
	t.Parallel()

	in := NewQualifierInterner()
	beefyGnarly := NewQualifierSet(in).AddName("beefy").AddName("gnarly")
	beefy := NewQualifierSet(in).AddName("beefy")
	empty := NewQualifierSet(in)

	assert.True(t, beefyGnarly.IsSupersetOf(beefy))
	assert.True(t, beefyGnarly.IsSupersetOf(empty))
	assert.True(t, beefyGnarly.IsSupersetOf(beefyGnarly))
	assert.False(t, beefy.IsSupersetOf(beefyGnarly))
}

func TestQualifierSetUnionAndDifference(t *testing.T) {
	t.Parallel()

	in := NewQualifierInterner()
	beefy := NewQualifierSet(in).AddName("beefy")
	gnarly := NewQualifierSet(in).AddName("gnarly")

	union := beefy.Union(gnarly)
	assert.ElementsMatch(t, []string{"beefy", "gnarly"}, union.Names())

	diff := union.Difference(beefy)
	assert.Equal(t, []string{"gnarly"}, diff.Names())
}

func TestQualifierSetIsProperSubsetOf(t *testing.T) {
	t.Parallel()

	in := NewQualifierInterner()
	beefy := NewQualifierSet(in).AddName("beefy")
	beefyGnarly := beefy.AddName("gnarly")

	assert.True(t, beefy.IsProperSubsetOf(beefyGnarly))
	assert.False(t, beefyGnarly.IsProperSubsetOf(beefy))
	assert.False(t, beefy.IsProperSubsetOf(beefy))
}

func TestQualifierSetNamesAreSortedAndDeterministic(t *testing.T) {
	t.Parallel()

	in := NewQualifierInterner()
	set := NewQualifierSet(in).AddName("zeta").AddName("alpha").AddName("mu")
	assert.Equal(t, []string{"alpha", "mu", "zeta"}, set.Names())
}

func TestQualifierInternerReusesIDs(t *testing.T) {
	t.Parallel()

	in := NewQualifierInterner()
	id1 := in.Intern("beefy")
	id2 := in.Intern("beefy")
	assert.Equal(t, id1, id2)

	looked, ok := in.Lookup("beefy")
	assert.True(t, ok)
	assert.Equal(t, id1, looked)

	_, ok = in.Lookup("nosuch")
	assert.False(t, ok)
}

func TestQualifierSetStringRendersTrailingSpace(t *testing.T) {
	t.Parallel()

	in := NewQualifierInterner()
	empty := NewQualifierSet(in)
	assert.Equal(t, "", empty.String())

	beefy := empty.AddName("beefy")
	assert.Equal(t, "beefy ", beefy.String())
}
