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

package ast

// Program is the root of a Dieter source file: an interleaving of
// order/module/forward declarations, terminated by ".".
type Program struct {
	Declarations []Declaration
}

func (p *Program) Orderings() []*OrderingDecl {
	var result []*OrderingDecl
	for _, decl := range p.Declarations {
		if o, ok := decl.(*OrderingDecl); ok {
			result = append(result, o)
		}
	}
	return result
}

func (p *Program) Forwards() []*ForwardDecl {
	var result []*ForwardDecl
	for _, decl := range p.Declarations {
		if f, ok := decl.(*ForwardDecl); ok {
			result = append(result, f)
		}
	}
	return result
}

func (p *Program) Modules() []*ModuleDecl {
	var result []*ModuleDecl
	for _, decl := range p.Declarations {
		if m, ok := decl.(*ModuleDecl); ok {
			result = append(result, m)
		}
	}
	return result
}
