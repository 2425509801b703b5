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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] poly_file name",
	Short: "evaluate a named polynomial at a point.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		configureLogging(cmd)
		//
		at := GetFloat64(cmd, "at")
		// Read in polynomial definitions
		file := readPolyFile(args[0])
		p := readNamedPoly(file, args[1])
		//
		log.Debugf("evaluating %s (%d terms) at %g", args[1], p.Len(), at)
		//
		fmt.Println(p.Eval(poly.Real(at)))
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Float64("at", 0, "Point at which to evaluate the polynomial")
}
