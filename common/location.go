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

// Package common holds declarations shared across lexer, parser, check
// and pretty that don't belong to any one of them: the notion of a
// source location, and the kinds of thing that can be (re)declared.
package common

// Location identifies a unit of source text, so diagnostics and the
// pretty printer's source map can be keyed by it. Dieter programs are
// single files; Location is a thin wrapper so the rest of the checker
// never has to special-case "no location".
type Location interface {
	String() string
	ID() string
}

// StringLocation is a Location backed by a file path.
type StringLocation string

func (l StringLocation) String() string {
	return string(l)
}

func (l StringLocation) ID() string {
	return string(l)
}
