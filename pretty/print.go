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

// Package pretty renders a checker diagnostic (or a whole CheckerError)
// as a short excerpt of the offending source with a caret underneath the
// offending range, in the style of a compiler error, not a stack trace.
package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"

	"github.com/catseye/Dieter/ast"
	"github.com/catseye/Dieter/common"
	"github.com/catseye/Dieter/errors"
)

// ErrorPrettyPrinter writes human-readable diagnostics to w, colorizing
// them with aurora when colorize is true (i.e. w is a terminal), plain
// text otherwise.
type ErrorPrettyPrinter struct {
	writer   io.Writer
	colorize bool
}

func NewErrorPrettyPrinter(writer io.Writer, colorize bool) *ErrorPrettyPrinter {
	return &ErrorPrettyPrinter{writer: writer, colorize: colorize}
}

// PrettyPrintError prints err. If err is a ParentError (e.g. a
// CheckerError aggregating every diagnostic from one Check call), each
// child error is printed in turn. codes is consulted for source
// excerpts, keyed by the location the individual error occurred at --
// for now Dieter checks a single file, so location is the same for
// every diagnostic, but the map shape leaves room for imports later.
func (p *ErrorPrettyPrinter) PrettyPrintError(err error, location common.Location, codes map[common.Location]string) error {
	if parentErr, ok := err.(errors.ParentError); ok {
		for _, childErr := range parentErr.ChildErrors() {
			if err := p.PrettyPrintError(childErr, location, codes); err != nil {
				return err
			}
		}
		return nil
	}

	return p.printSingle("error", err.Error(), err, location, codes)
}

func (p *ErrorPrettyPrinter) printSingle(label, message string, err error, location common.Location, codes map[common.Location]string) error {
	if secondary, ok := err.(errors.SecondaryError); ok {
		message = fmt.Sprintf("%s: %s", message, secondary.SecondaryError())
	}

	if err := p.writeLine(fmt.Sprintf("%s: %s", label, message), label == "error"); err != nil {
		return err
	}

	if positioned, ok := err.(ast.HasPosition); ok {
		if err := p.printExcerpt(positioned, location, codes[location]); err != nil {
			return err
		}
	}

	if notesErr, ok := err.(errors.ErrorNotes); ok {
		for _, note := range notesErr.ErrorNotes() {
			noteMessage := note.Message()
			var notePositioned ast.HasPosition
			if positioned, ok := note.(ast.HasPosition); ok {
				notePositioned = positioned
			}
			if err := p.printNote(noteMessage, notePositioned, location, codes); err != nil {
				return err
			}
		}
	}

	return nil
}

func (p *ErrorPrettyPrinter) printNote(message string, positioned ast.HasPosition, location common.Location, codes map[common.Location]string) error {
	if err := p.writeLine(fmt.Sprintf("note: %s", message), false); err != nil {
		return err
	}
	if positioned == nil {
		return nil
	}
	return p.printExcerpt(positioned, location, codes[location])
}

func (p *ErrorPrettyPrinter) writeLine(line string, isError bool) error {
	if p.colorize {
		if isError {
			line = aurora.Red(line).Bold().String()
		} else {
			line = aurora.Cyan(line).String()
		}
	}
	_, err := fmt.Fprintf(p.writer, "%s\n", line)
	return err
}

func (p *ErrorPrettyPrinter) printExcerpt(positioned ast.HasPosition, location common.Location, code string) error {
	startPos := positioned.StartPosition()
	endPos := positioned.EndPosition()

	arrow := fmt.Sprintf(" --> %s:%d:%d", locationString(location), startPos.Line, startPos.Column)
	if _, err := fmt.Fprintf(p.writer, "%s\n", arrow); err != nil {
		return err
	}

	if code == "" {
		return nil
	}

	lines := strings.Split(code, "\n")
	if startPos.Line < 1 || startPos.Line > len(lines) {
		return nil
	}

	gutterWidth := len(strconv.Itoa(endPos.Line))
	gutter := strings.Repeat(" ", gutterWidth)

	if _, err := fmt.Fprintf(p.writer, "%s |\n", gutter); err != nil {
		return err
	}

	lastLine := endPos.Line
	if lastLine > len(lines) {
		lastLine = len(lines)
	}

	for lineNo := startPos.Line; lineNo <= lastLine; lineNo++ {
		sourceLine := lines[lineNo-1]
		lineNoStr := strconv.Itoa(lineNo)
		padding := strings.Repeat(" ", gutterWidth-len(lineNoStr))
		if _, err := fmt.Fprintf(p.writer, "%s%s | %s\n", padding, lineNoStr, sourceLine); err != nil {
			return err
		}

		if lineNo != startPos.Line {
			continue
		}

		column := startPos.Column
		if column > len(sourceLine) {
			column = len(sourceLine)
		}
		caretLen := endPos.Column - startPos.Column + 1
		if lineNo != lastLine || caretLen < 1 {
			caretLen = len(sourceLine) - column
		}
		if caretLen < 1 {
			caretLen = 1
		}

		prefix := sourceLine[:column]
		carets := strings.Repeat("^", caretLen)
		if _, err := fmt.Fprintf(p.writer, "%s | %s%s\n", gutter, prefix, carets); err != nil {
			return err
		}
	}

	return nil
}

func locationString(location common.Location) string {
	if location == nil {
		return ""
	}
	return location.String()
}
