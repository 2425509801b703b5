// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/Aphrosmeteorite/algorithm-road/pkg/poly"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print [flags] poly_file [name...]",
	Short: "print named polynomials as formatted term sequences.",
	Long: `Print one or more polynomials from the given definition file,
one term sequence per line.  When no names are given, every
polynomial in the file is printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		configureLogging(cmd)
		//
		precision := GetUint(cmd, "precision")
		width := GetUint(cmd, "width")
		// Read in polynomial definitions
		file := readPolyFile(args[0])
		//
		names := args[1:]
		if len(names) == 0 {
			names = file.Names()
		}
		//
		for _, name := range names {
			p := readNamedPoly(file, name)
			//
			w := width
			if w == 0 {
				w = autoWidth(p.Len())
			}
			//
			if len(names) > 1 {
				fmt.Printf("%s:\n", name)
			}
			//
			if err := p.Print(os.Stdout, precision, w); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().Uint("precision", poly.DefaultPrecision, "Set number of significant digits")
	printCmd.Flags().Uint("width", 0, "Set coefficient field width (0 = derive from terminal)")
}
