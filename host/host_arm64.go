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

//go:build arm64

package host

import "golang.org/x/sys/cpu"

func init() {
	if GenericEnv() {
		setGeneric()
		return
	}
	detect()
}

func detect() {
	setGeneric()

	// Note: cpu.ARM64.HasASIMD is always true for ARMv8+
	switch {
	case cpu.ARM64.HasSVE:
		currentLevel = LevelSVE
	case cpu.ARM64.HasASIMD:
		currentLevel = LevelNEON
	}

	feature(cpu.ARM64.HasSVE, "sve")
	feature(cpu.ARM64.HasSVE2, "sve2")
	feature(cpu.ARM64.HasASIMD, "asimd")
	feature(cpu.ARM64.HasASIMDHP, "asimdhp")
	feature(cpu.ARM64.HasATOMICS, "atomics")
}
