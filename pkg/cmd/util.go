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
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetFloat64 gets an expected float flag, or panic if an error arises.
func GetFloat64(cmd *cobra.Command, flag string) float64 {
	r, err := cmd.Flags().GetFloat64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// configureLogging sets the logging level for a given command invocation.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// readPolyFile parses a given polynomial definition file, exiting on error.
func readPolyFile(filename string) *polyfile.File {
	file, err := polyfile.Load(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("read %d polynomial(s) from %s", len(file.Polynomials), filename)
	//
	return file
}

// readNamedPoly extracts a named polynomial from a definition file, exiting
// on error.
func readNamedPoly(file *polyfile.File, name string) poly.Polynomial[poly.Real] {
	p, err := file.Polynomial(name)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return p
}

// autoWidth derives a per-term coefficient field width from the terminal
// size, falling back to the default when stdout is not a terminal (or the
// polynomial is empty).
func autoWidth(nterms uint) uint {
	fd := int(os.Stdout.Fd())
	//
	if nterms == 0 || !term.IsTerminal(fd) {
		return poly.DefaultWidth
	}
	//
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return poly.DefaultWidth
	}
	// Leave room for the "x^n " suffix on every term.
	width := uint(cols) / nterms
	if width > 4 {
		width -= 4
	}
	//
	if width < poly.DefaultWidth {
		return poly.DefaultWidth
	} else if width > 24 {
		return 24
	}
	//
	return width
}
