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

package common

// DeclarationKind classifies what kind of thing a name was declared as,
// for use in diagnostics (e.g. RedeclarationError).
type DeclarationKind uint8

const (
	DeclarationKindUnknown DeclarationKind = iota
	DeclarationKindModule
	DeclarationKindQualifier
	DeclarationKindProcedure
	DeclarationKindVariable
	DeclarationKindParameter
)

func (k DeclarationKind) Name() string {
	switch k {
	case DeclarationKindModule:
		return "module"
	case DeclarationKindQualifier:
		return "qualifier"
	case DeclarationKindProcedure:
		return "procedure"
	case DeclarationKindVariable:
		return "variable"
	case DeclarationKindParameter:
		return "parameter"
	default:
		return "declaration"
	}
}

func (k DeclarationKind) String() string {
	return k.Name()
}
