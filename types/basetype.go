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

import "strconv"

// BaseTypeKind enumerates Dieter's closed universe of base types. Unlike
// the teacher's sema.Type, which is an interface satisfied by dozens of
// nominal and composite types, Dieter's base types form a small closed
// set, so a tagged variant switched over Kind is the better fit; some
// switches below (String, Equal) cover several kinds with a default
// branch rather than naming each one.
type BaseTypeKind uint8

const (
	BaseTypeVoid BaseTypeKind = iota
	BaseTypeBool
	BaseTypeInt
	BaseTypeRat
	BaseTypeString
	BaseTypeRef
	BaseTypeMap
	BaseTypeVar
)

func (k BaseTypeKind) String() string {
	switch k {
	case BaseTypeVoid:
		return "void"
	case BaseTypeBool:
		return "bool"
	case BaseTypeInt:
		return "int"
	case BaseTypeRat:
		return "rat"
	case BaseTypeString:
		return "string"
	case BaseTypeRef:
		return "ref"
	case BaseTypeMap:
		return "map"
	case BaseTypeVar:
		return "var"
	default:
		return "?"
	}
}

// BaseType is the unqualified half of a Type. KeyType/ValueType are only
// meaningful when Kind is BaseTypeMap (KeyType is nil for the
// unspecified-key mixin form); VarID is only meaningful when Kind is
// BaseTypeVar.
type BaseType struct {
	Kind     BaseTypeKind
	KeyType  *Type
	ValueType *Type
	VarID    int
}

// Type is a qualified type expression: a qualifier set paired with a
// base type, per spec §3's `(qualifier-set, base-type)` pair.
type Type struct {
	Qualifiers QualifierSet
	Base       BaseType
}

func newSimple(interner *QualifierInterner, kind BaseTypeKind) Type {
	return Type{Qualifiers: NewQualifierSet(interner), Base: BaseType{Kind: kind}}
}

func Void(interner *QualifierInterner) Type   { return newSimple(interner, BaseTypeVoid) }
func Bool(interner *QualifierInterner) Type   { return newSimple(interner, BaseTypeBool) }
func Int(interner *QualifierInterner) Type    { return newSimple(interner, BaseTypeInt) }
func Rat(interner *QualifierInterner) Type    { return newSimple(interner, BaseTypeRat) }
func String(interner *QualifierInterner) Type { return newSimple(interner, BaseTypeString) }
func Ref(interner *QualifierInterner) Type    { return newSimple(interner, BaseTypeRef) }

// Map constructs a map type. keyType is nil for the unspecified-key
// mixin form, in which any type may be used as a key.
func Map(interner *QualifierInterner, keyType *Type, valueType Type) Type {
	return Type{
		Qualifiers: NewQualifierSet(interner),
		Base:       BaseType{Kind: BaseTypeMap, KeyType: keyType, ValueType: &valueType},
	}
}

// NewTypeVariable constructs an unqualified reference to the type
// variable identified by id. Bindings for it live in a Substitution, not
// on the Type value itself.
func NewTypeVariable(interner *QualifierInterner, id int) Type {
	t := newSimple(interner, BaseTypeVar)
	t.Base.VarID = id
	return t
}

func (t Type) IsVar() bool { return t.Base.Kind == BaseTypeVar }

// WithQualifiers returns a copy of t with qualifiers replaced by q.
func (t Type) WithQualifiers(q QualifierSet) Type {
	t.Qualifiers = q
	return t
}

// Equal reports structural equality: equal qualifier sets (as sets --
// duplicates and order never entered the representation to begin with)
// and a structurally equal base type. Unbound type variables compare
// equal only to themselves (same VarID); callers normally dereference
// through a Substitution before calling Equal.
func (t Type) Equal(other Type) bool {
	if !t.Qualifiers.Equal(other.Qualifiers) {
		return false
	}
	if t.Base.Kind != other.Base.Kind {
		return false
	}
	switch t.Base.Kind {
	case BaseTypeMap:
		if (t.Base.KeyType == nil) != (other.Base.KeyType == nil) {
			return false
		}
		if t.Base.KeyType != nil && !t.Base.KeyType.Equal(*other.Base.KeyType) {
			return false
		}
		return t.Base.ValueType.Equal(*other.Base.ValueType)
	case BaseTypeVar:
		return t.Base.VarID == other.Base.VarID
	default:
		return true
	}
}

func (t Type) String() string {
	s := t.Qualifiers.String()
	switch t.Base.Kind {
	case BaseTypeMap:
		s += "map "
		if t.Base.KeyType != nil {
			s += "from " + t.Base.KeyType.String() + " "
		}
		s += "to " + t.Base.ValueType.String()
	case BaseTypeVar:
		s += "♥" + strconv.Itoa(t.Base.VarID)
	default:
		s += t.Base.Kind.String()
	}
	return s
}
