// Copyright 2025 go-highway Authors
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

package hwy

import "unsafe"

// LaneWidths returns the lane counts that have named per-width entry points
// for T: 2, 4, 8 and 16 for single precision, 2, 4 and 8 for double. Every
// width fits a 512-bit register.
func LaneWidths[T Floats]() []int {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return []int{2, 4, 8, 16}
	}
	return []int{2, 4, 8}
}
