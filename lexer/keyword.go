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

package lexer

import "github.com/SaveTheRbtz/mph"

// NOTE: keep allKeywords in sync when adding a reserved word.
const (
	KeywordOrder     = "order"
	KeywordModule    = "module"
	KeywordEnd       = "end"
	KeywordVar       = "var"
	KeywordProcedure = "procedure"
	KeywordForward   = "forward"
	KeywordBegin     = "begin"
	KeywordIf        = "if"
	KeywordThen      = "then"
	KeywordElse      = "else"
	KeywordWhile     = "while"
	KeywordDo        = "do"
	KeywordReturn    = "return"
	KeywordFinal     = "final"
	KeywordBestow    = "bestow"
	KeywordSuper     = "super"
	KeywordMap       = "map"
	KeywordFrom      = "from"
	KeywordTo        = "to"
	KeywordVoid      = "void"
	KeywordBool      = "bool"
	KeywordInt       = "int"
	KeywordRat       = "rat"
	KeywordString    = "string"
	KeywordRef       = "ref"
)

var allKeywords = []string{
	KeywordOrder,
	KeywordModule,
	KeywordEnd,
	KeywordVar,
	KeywordProcedure,
	KeywordForward,
	KeywordBegin,
	KeywordIf,
	KeywordThen,
	KeywordElse,
	KeywordWhile,
	KeywordDo,
	KeywordReturn,
	KeywordFinal,
	KeywordBestow,
	KeywordSuper,
	KeywordMap,
	KeywordFrom,
	KeywordTo,
	KeywordVoid,
	KeywordBool,
	KeywordInt,
	KeywordRat,
	KeywordString,
	KeywordRef,
}

var keywordsTable = mph.Build(allKeywords)

// isKeyword reports whether text names a reserved word, via an O(1)
// perfect-hash lookup rather than a linear scan or map.
func isKeyword(text string) bool {
	_, ok := keywordsTable.Lookup(text)
	return ok
}

// primitiveBareTypes names the bare-type keywords the parser accepts
// wherever a BareTypeExpr is expected.
var primitiveBareTypes = map[string]bool{
	KeywordVoid:   true,
	KeywordBool:   true,
	KeywordInt:    true,
	KeywordRat:    true,
	KeywordString: true,
	KeywordRef:    true,
}
