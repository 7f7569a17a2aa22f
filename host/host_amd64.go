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

//go:build amd64

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

	switch {
	case cpu.X86.HasAVX512:
		currentLevel = LevelAVX512
	case cpu.X86.HasAVX2:
		currentLevel = LevelAVX2
	}

	feature(cpu.X86.HasAVX512, "avx512")
	feature(cpu.X86.HasAVX2, "avx2")
	feature(cpu.X86.HasFMA, "fma")
	feature(cpu.X86.HasBMI2, "bmi2")
	feature(cpu.X86.HasSSE42, "sse4.2")
	feature(cpu.X86.HasPOPCNT, "popcnt")
}
