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

// Package polyfile provides declarative YAML descriptions of named
// polynomials, as consumed by the command-line tools.  A definition file
// lists terms per polynomial, for example:
//
//	polynomials:
//	  p:
//	    - {coef: 3, exp: 2}
//	    - {coef: 5, exp: 0}
//
// Term order in the file is irrelevant, and terms sharing an exponent are
// merged on load.
package polyfile

import (
	"fmt"
	"os"
	"slices"

	"github.com/Aphrosmeteorite/algorithm-road/pkg/poly"
	"gopkg.in/yaml.v3"
)

// TermDef describes a single term of a polynomial definition.
type TermDef struct {
	Coef float64 `yaml:"coef"`
	Exp  int     `yaml:"exp"`
}

// File holds the contents of a polynomial definition file.
type File struct {
	Polynomials map[string][]TermDef `yaml:"polynomials"`
}

// Load reads and parses a polynomial definition file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	//
	return Parse(data)
}

// Parse a polynomial definition from raw bytes.
func Parse(data []byte) (*File, error) {
	var file File
	//
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	//
	if file.Polynomials == nil {
		file.Polynomials = make(map[string][]TermDef)
	}
	//
	return &file, nil
}

// Save writes a polynomial definition file back to disk.
func Save(path string, file *File) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}
	//
	return os.WriteFile(path, data, 0644)
}

// Names returns the names of all defined polynomials, sorted for determinism.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Polynomials))
	//
	for name := range f.Polynomials {
		names = append(names, name)
	}
	//
	slices.Sort(names)
	//
	return names
}

// Polynomial constructs the named polynomial.  Terms are inserted one at a
// time, hence duplicate exponents in the file merge and exact cancellations
// disappear.
func (f *File) Polynomial(name string) (poly.Polynomial[poly.Real], error) {
	var p poly.Polynomial[poly.Real]
	//
	defs, ok := f.Polynomials[name]
	if !ok {
		return p, fmt.Errorf("unknown polynomial %q", name)
	}
	//
	for _, def := range defs {
		p.Insert(poly.NewTerm(poly.Real(def.Coef), def.Exp))
	}
	//
	return p, nil
}

// Set records a polynomial under a given name, replacing any previous
// definition.
func (f *File) Set(name string, p poly.Polynomial[poly.Real]) {
	defs := make([]TermDef, 0, p.Len())
	//
	for _, t := range p.Terms() {
		defs = append(defs, TermDef{float64(t.Coefficient()), t.Exponent()})
	}
	//
	if f.Polynomials == nil {
		f.Polynomials = make(map[string][]TermDef)
	}
	//
	f.Polynomials[name] = defs
}
