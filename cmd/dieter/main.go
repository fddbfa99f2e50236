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

// Command dieter parses and checks one or more Dieter source files,
// reporting OK or the diagnostics the checker produced, grounded on the
// original driver's load()/main() and the teacher's cmd.must() pattern.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/catseye/Dieter/ast"
	"github.com/catseye/Dieter/check"
	"github.com/catseye/Dieter/common"
	"github.com/catseye/Dieter/parser"
	"github.com/catseye/Dieter/pretty"
)

func main() {
	dumpAST := flag.Bool("a", false, "dump AST after source is parsed")
	flag.BoolVar(dumpAST, "dump-ast", false, "dump AST after source is parsed")
	dumpSymtab := flag.Bool("s", false, "dump symbol table after checking")
	flag.BoolVar(dumpSymtab, "dump-symtab", false, "dump symbol table after checking")
	reformat := flag.Bool("p", false, "reformat source in canonical form instead of checking")
	flag.BoolVar(reformat, "pretty", false, "reformat source in canonical form instead of checking")
	lineWidth := flag.Int("line-width", 80, "maximum line width used by -pretty")
	noColor := flag.Bool("no-color", false, "disable colorized diagnostics")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: dieter [options] file.dtr ...")
		os.Exit(1)
	}

	ok := true
	for _, filename := range flag.Args() {
		if !run(filename, *dumpAST, *dumpSymtab, *reformat, *lineWidth, !*noColor && isTerminal(os.Stderr)) {
			ok = false
		}
	}
	if !ok {
		os.Exit(1)
	}
}

func run(filename string, dumpAST, dumpSymtab, reformat bool, lineWidth int, colorize bool) bool {
	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", filename, err)
		return false
	}

	location := common.StringLocation(filename)
	codes := map[common.Location]string{location: string(source)}

	program, parseErrs := parser.ParseProgram(string(source))
	if len(parseErrs) > 0 {
		printAll(parseErrs, location, codes, colorize)
		return false
	}

	if dumpAST {
		fmt.Printf("--- AST: %s ---\n", filename)
		ast.NewDumper(os.Stdout).DumpProgram(program)
	}

	if reformat {
		ast.Print(os.Stdout, program, lineWidth)
		return true
	}

	checker := check.NewChecker()
	checkErr := checker.Check(program)

	if dumpSymtab {
		fmt.Printf("--- Symbol Table: %s ---\n", filename)
		checker.DumpSymbolTable(os.Stdout)
	}

	if checkErr != nil {
		printErr := pretty.NewErrorPrettyPrinter(os.Stderr, colorize).PrettyPrintError(checkErr, location, codes)
		if printErr != nil {
			fmt.Fprintln(os.Stderr, printErr)
		}
		return false
	}

	fmt.Printf("%s: OK\n", filename)
	return true
}

func printAll(errs []error, location common.Location, codes map[common.Location]string, colorize bool) {
	printer := pretty.NewErrorPrettyPrinter(os.Stderr, colorize)
	for _, err := range errs {
		if printErr := printer.PrettyPrintError(err, location, codes); printErr != nil {
			fmt.Fprintln(os.Stderr, printErr)
		}
	}
}

// isTerminal reports whether f looks like an interactive terminal. It
// is deliberately conservative: anything it can't identify as a
// character device is treated as non-interactive, so redirected output
// never carries ANSI escapes into a file or pipe.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
