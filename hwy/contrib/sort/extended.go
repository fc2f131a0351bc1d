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

package sort

import "github.com/go-jbm/jbm/hwy"

// IndexExtended orders data from highest to lowest and collapses equal
// values. It returns the distinct values in descending order and, for each
// element of data, the position of its value in that list. All NaN values
// collapse into one trailing NaN entry.
func IndexExtended[T hwy.Floats](data []T) (values []T, index []int) {
	index = make([]int, len(data))
	for _, i := range Index(data) {
		v := data[i]
		if n := len(values); n == 0 || !same(values[n-1], v) {
			values = append(values, v)
		}
		index[i] = len(values) - 1
	}
	return values, index
}

func same[T hwy.Floats](a, b T) bool {
	return a == b || (a != a && b != b)
}
