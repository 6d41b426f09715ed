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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ianlewis/regions"
	"github.com/ianlewis/regions/render"
)

var _ pflag.Value = (*viewpointBase)(nil)

var parseFlags = struct {
	grammar  *string
	viewBase viewpointBase
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <input file>",
		Short:   "Parse a text file against a builtin grammar",
		Example: `  regionsdemo parse --grammar expr source.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	parseFlags.grammar = cmd.Flags().StringP("grammar", "g", "brackets", fmt.Sprintf("builtin grammar to parse with: one of %v", grammarNames()))
	cmd.Flags().Var(&parseFlags.viewBase, "viewpoint-base", "report row/column/offset numbers starting from 0 or 1")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	root, err := lookupGrammar(*parseFlags.grammar)
	if err != nil {
		return err
	}

	rows, err := readRows(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	tree, err := regions.Parse(rows, root)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	fmt.Fprint(os.Stdout, render.PrettyXMLBase(tree, int(parseFlags.viewBase)))

	return nil
}

// readRows reads path line by line, preserving each line's own
// terminator-free content as one crawler row.
func readRows(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rows = append(rows, scanner.Text())
	}

	if err := scanner.Err(); err != nil && err != io.EOF { //nolint:errorlint // bufio.Scanner never wraps io.EOF
		return nil, err
	}

	return rows, nil
}

// viewpointBase is a pflag.Value restricting --viewpoint-base to 0 or
// 1.
type viewpointBase int

func (v *viewpointBase) String() string { return fmt.Sprintf("%d", int(*v)) }

func (v *viewpointBase) Set(s string) error {
	switch s {
	case "0":
		*v = 0
	case "1":
		*v = 1
	default:
		return fmt.Errorf("viewpoint-base must be 0 or 1, got %q", s)
	}

	return nil
}

func (v *viewpointBase) Type() string { return "int" }
