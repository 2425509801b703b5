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
	"github.com/Aphrosmeteorite/algorithm-road/pkg/polyfile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [flags] poly_file lhs rhs",
	Short: "add two named polynomials.",
	Long: `Add two polynomials named in the given definition file,
printing the resulting term sequence.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCombineCmd(cmd, args, false)
	},
}

var subCmd = &cobra.Command{
	Use:   "sub [flags] poly_file lhs rhs",
	Short: "subtract two named polynomials.",
	Long: `Subtract the second named polynomial from the first,
printing the resulting term sequence.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCombineCmd(cmd, args, true)
	},
}

func runCombineCmd(cmd *cobra.Command, args []string, subtract bool) {
	if len(args) != 3 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	// Configure log level
	configureLogging(cmd)
	//
	precision := GetUint(cmd, "precision")
	width := GetUint(cmd, "width")
	out := GetString(cmd, "out")
	// Read in polynomial definitions
	file := readPolyFile(args[0])
	lhs := readNamedPoly(file, args[1])
	rhs := readNamedPoly(file, args[2])
	//
	var result poly.Polynomial[poly.Real]
	//
	if subtract {
		result = lhs.Sub(rhs)
	} else {
		result = lhs.Add(rhs)
	}
	//
	log.Debugf("combined %s (%d terms) and %s (%d terms) into %d terms",
		args[1], lhs.Len(), args[2], rhs.Len(), result.Len())
	// Write result back (if requested)
	if out != "" {
		file.Set(GetString(cmd, "name"), result)
		//
		if err := polyfile.Save(out, file); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	if width == 0 {
		width = autoWidth(result.Len())
	}
	//
	if err := result.Print(os.Stdout, precision, width); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	//
	for _, cmd := range []*cobra.Command{addCmd, subCmd} {
		cmd.Flags().Uint("precision", poly.DefaultPrecision, "Set number of significant digits")
		cmd.Flags().Uint("width", 0, "Set coefficient field width (0 = derive from terminal)")
		cmd.Flags().String("out", "", "Write result back into the given definition file")
		cmd.Flags().String("name", "result", "Name under which to record the result")
	}
}
