// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/ianlewis/regions"
	"github.com/ianlewis/regions/simpleregex"
)

// grammars maps a --grammar flag value to a builtin phrase graph
// constructor.
var grammars = map[string]func() *regions.RootPhrase{
	"brackets": bracketsGrammar,
	"expr":     exprGrammar,
}

func grammarNames() []string {
	names := make([]string, 0, len(grammars))
	for name := range grammars {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// bracketsGrammar recognizes nothing but recursively nested
// parentheses, the smallest non-trivial grammar the crawler can drive.
func bracketsGrammar() *regions.RootPhrase {
	root := regions.NewRootPhrase("#root")

	bracket := simpleregex.New("bracket", regexp.MustCompile(`\(`), regexp.MustCompile(`\)`))
	bracket.AddSelf()
	root.AddPhrase(bracket)

	return root
}

// exprGrammar assembles a small expression grammar: bracketed
// sub-expressions, function calls, string literals with embedded curly
// braces, variables, arithmetic operators, and a ">>>" console-line
// phrase that masks the rest of the row. Go's regexp package (RE2) has
// no negative lookahead, so the "variable" pattern is a plain
// identifier rather than one that excludes names immediately followed
// by a call's opening parenthesis.
func exprGrammar() *regions.RootPhrase {
	root := regions.NewRootPhrase("#root")

	bracket := simpleregex.New("bracket", regexp.MustCompile(`\(`), regexp.MustCompile(`\)`))
	funcall := simpleregex.New("function", regexp.MustCompile(`\w+\s*\(`), regexp.MustCompile(`\)`))
	consoleline := simpleregex.NewConsoleLine("consoleline")
	variable := simpleregex.NewAtom("variable", regexp.MustCompile(`[A-Za-z_]\w*`))
	operation := simpleregex.NewAtom("operation", regexp.MustCompile(`[-+*/]`))
	curlyBrackets := simpleregex.New("curly brackets", regexp.MustCompile(`\{`), regexp.MustCompile(`\}`))
	str := simpleregex.New("string", regexp.MustCompile(`'`), regexp.MustCompile(`'`))

	bracket.AddSelf()
	str.AddPhrase(curlyBrackets)
	bracket.AddPhrases(variable, operation, str, funcall)
	root.AddPhrases(bracket, variable, operation, str, consoleline)

	for p := range root.SubPhrases() {
		// consoleline is itself one of root's sub-phrases; skip adding
		// it as its own child so a console line can't nest inside
		// another console line.
		if p != consoleline {
			consoleline.AddPhrase(p)
		}

		funcall.AddPhrase(p)
	}

	return root
}

func lookupGrammar(name string) (*regions.RootPhrase, error) {
	build, ok := grammars[name]
	if !ok {
		return nil, fmt.Errorf("unknown grammar %q (available: %v)", name, grammarNames())
	}

	return build(), nil
}
