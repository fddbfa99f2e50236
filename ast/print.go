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

import (
	"bufio"
	"io"

	"github.com/turbolent/prettier"
)

// Print renders p in canonical form to w, wrapping lines past
// maxLineWidth where the Doc algebra allows it. It is the structured
// counterpart to Dumper: Dumper renders the tree shape for debugging,
// Print renders valid Dieter source for reformatting.
func Print(w io.Writer, p *Program, maxLineWidth int) {
	docs := make([]prettier.Doc, len(p.Declarations))
	for i, decl := range p.Declarations {
		docs[i] = decl.Doc()
	}
	doc := prettier.Join(prettier.Concat{prettier.HardLine{}, prettier.HardLine{}}, docs...)
	bw := bufio.NewWriter(w)
	prettier.Prettier(bw, doc, maxLineWidth, "  ")
	bw.Flush()
}
