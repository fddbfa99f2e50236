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

// Package types is the in-memory type IR: qualifier sets, base types, and
// the qualified type expressions the checker unifies and compares. It has
// no dependency on ast or check; a type here is a value, never a node.
package types

import (
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// QualifierID is the interned identity of a qualifier name. Qualifier
// names are module names; each gets an ID the first time it is interned
// (when it is first added to a set), so qualifier sets can be represented as dense
// bitsets instead of string-keyed sets.
type QualifierID uint

// QualifierInterner assigns a stable, dense QualifierID to each distinct
// qualifier name. One interner is owned by a single checker instance and
// threaded explicitly everywhere a QualifierSet is built or printed;
// it is never a package-level singleton.
type QualifierInterner struct {
	ids   map[string]QualifierID
	names []string
}

func NewQualifierInterner() *QualifierInterner {
	return &QualifierInterner{ids: make(map[string]QualifierID)}
}

// Intern returns name's QualifierID, minting a fresh one if this is the
// first time name has been seen.
func (in *QualifierInterner) Intern(name string) QualifierID {
	if id, ok := in.ids[name]; ok {
		return id
	}
	id := QualifierID(len(in.names))
	in.ids[name] = id
	in.names = append(in.names, name)
	return id
}

// Lookup returns name's QualifierID without interning it.
func (in *QualifierInterner) Lookup(name string) (QualifierID, bool) {
	id, ok := in.ids[name]
	return id, ok
}

func (in *QualifierInterner) Name(id QualifierID) string {
	return in.names[id]
}

// QualifierSet is a commutative, idempotent set of qualifiers, backed by
// an arbitrary-width bitset rather than the teacher's fixed TypeTag
// bitmask, since Dieter's qualifiers are user-declared and open-ended
// rather than a small closed enumeration of builtins.
type QualifierSet struct {
	interner *QualifierInterner
	bits     *bitset.BitSet
}

func NewQualifierSet(interner *QualifierInterner) QualifierSet {
	return QualifierSet{interner: interner, bits: bitset.New(0)}
}

// Add returns a new set with id added, leaving s itself untouched --
// qualified types are treated as immutable values throughout the
// checker, the way the original implementation's Type.qualify() clones
// before mutating rather than sharing structure.
func (s QualifierSet) Add(id QualifierID) QualifierSet {
	clone := s.bits.Clone()
	clone.Set(uint(id))
	return QualifierSet{interner: s.interner, bits: clone}
}

func (s QualifierSet) AddName(name string) QualifierSet {
	return s.Add(s.interner.Intern(name))
}

func (s QualifierSet) Contains(id QualifierID) bool {
	return s.bits.Test(uint(id))
}

func (s QualifierSet) Len() int {
	return int(s.bits.Count())
}

func (s QualifierSet) Clone() QualifierSet {
	return QualifierSet{interner: s.interner, bits: s.bits.Clone()}
}

// IsSupersetOf reports whether every qualifier in other also appears in
// s -- the cardinal rule of unification: qualifiers(provider) ⊇
// qualifiers(receptor).
func (s QualifierSet) IsSupersetOf(other QualifierSet) bool {
	return s.bits.IsSuperSet(other.bits)
}

func (s QualifierSet) Equal(other QualifierSet) bool {
	return s.bits.Equal(other.bits)
}

// Union returns a new set holding every qualifier in either s or other.
func (s QualifierSet) Union(other QualifierSet) QualifierSet {
	return QualifierSet{interner: s.interner, bits: s.bits.Union(other.bits)}
}

// Difference returns a new set holding the qualifiers in s but not in
// other -- used to compute the "extra" qualifiers a provider contributes
// beyond what a receptor already demands.
func (s QualifierSet) Difference(other QualifierSet) QualifierSet {
	return QualifierSet{interner: s.interner, bits: s.bits.Difference(other.bits)}
}

// IsProperSubsetOf reports whether every qualifier in s also appears in
// other and other holds at least one more -- used by the re-binding rule to decide
// whether a new candidate binding is strictly less qualified than an
// existing one.
func (s QualifierSet) IsProperSubsetOf(other QualifierSet) bool {
	return other.bits.IsSuperSet(s.bits) && !s.bits.Equal(other.bits)
}

func (s QualifierSet) IsEmpty() bool {
	return s.bits.None()
}

// Names returns the set's qualifier names in a deterministic, sorted
// order -- used for canonical-form printing and diagnostics.
func (s QualifierSet) Names() []string {
	names := make([]string, 0, s.Len())
	for id, ok := s.bits.NextSet(0); ok; id, ok = s.bits.NextSet(id + 1) {
		names = append(names, s.interner.Name(QualifierID(id)))
	}
	sort.Strings(names)
	return names
}

func (s QualifierSet) String() string {
	names := s.Names()
	if len(names) == 0 {
		return ""
	}
	return strings.Join(names, " ") + " "
}
