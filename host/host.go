// Copyright 2025 go-paxsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package host describes the machine a benchmark runs on, so timing logs
// from different machines can be told apart.
package host

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Level is the widest vector instruction set the CPU reports.
type Level int

const (
	// LevelGeneric indicates no vector extension worth reporting.
	LevelGeneric Level = iota

	// LevelAVX2 indicates AVX2 (256-bit) on x86-64.
	LevelAVX2

	// LevelAVX512 indicates AVX-512 (512-bit) on x86-64.
	LevelAVX512

	// LevelNEON indicates ARM NEON (128-bit).
	LevelNEON

	// LevelSVE indicates ARM SVE (scalable vector).
	LevelSVE
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelGeneric:
		return "generic"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// currentLevel and currentFeatures are set by init() in host_*.go files.
var (
	currentLevel    Level
	currentFeatures []string
)

// CurrentLevel returns the detected instruction set level.
func CurrentLevel() Level {
	return currentLevel
}

// Features returns the names of the detected CPU features, in a fixed order.
func Features() []string {
	return append([]string(nil), currentFeatures...)
}

// Arch returns the GOARCH the binary was built for.
func Arch() string {
	return runtime.GOARCH
}

// Describe returns a one-line summary such as "amd64/avx2 (avx2,fma,popcnt)".
func Describe() string {
	s := Arch() + "/" + currentLevel.String()
	if len(currentFeatures) > 0 {
		s += " (" + strings.Join(currentFeatures, ",") + ")"
	}
	return s
}

// GenericEnv checks if the PAXSORT_GENERIC_HOST environment variable is set.
// When set, detection is skipped and the host reports LevelGeneric.
func GenericEnv() bool {
	val := os.Getenv("PAXSORT_GENERIC_HOST")
	if val == "" {
		return false
	}
	// "0" and "false" leave detection on; anything unparseable forces generic.
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setGeneric() {
	currentLevel = LevelGeneric
	currentFeatures = nil
}

// feature appends name to currentFeatures when has is true.
func feature(has bool, name string) {
	if has {
		currentFeatures = append(currentFeatures, name)
	}
}
