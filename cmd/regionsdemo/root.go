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
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "regionsdemo",
	Short: "Parse text against a builtin region grammar and print the tree",
	Long: `regionsdemo drives the regions crawler over a text file using one
of a few builtin grammars assembled from regions/simpleregex phrases,
and prints the resulting Token/NodeToken/Branch tree as XML.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command, returning any error encountered.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}

	return nil
}
