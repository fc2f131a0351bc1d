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

import (
	stdmath "math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var algorithms = []struct {
	name string
	fn   func([]float64) []int
}{
	{"Interchange", IndexInterchange[float64]},
	{"Insertion", IndexInsertion[float64]},
	{"Flash", IndexFlash[float64]},
	{"Index", Index[float64]},
}

// reference orders indices with the standard library stable sort.
func reference(data []float64) []int {
	idx := identity(len(data))
	slices.SortStableFunc(idx, func(i, j int) int {
		a, b := data[i], data[j]
		switch an, bn := stdmath.IsNaN(a), stdmath.IsNaN(b); {
		case an && bn:
			return 0
		case an:
			return 1
		case bn:
			return -1
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
	return idx
}

func randomData(r *rand.Rand, n, distinct int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(r.IntN(distinct)) - float64(distinct)/2 + 0.25
	}
	return data
}

func TestIndexSmall(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want []int
	}{
		{"empty", nil, []int{}},
		{"single", []float64{3}, []int{0}},
		{"ascending", []float64{1, 2, 3, 4}, []int{3, 2, 1, 0}},
		{"descending", []float64{4, 3, 2, 1}, []int{0, 1, 2, 3}},
		{"ties", []float64{1, 5, 1, 5, 3}, []int{1, 3, 4, 0, 2}},
		{"all equal", []float64{2, 2, 2}, []int{0, 1, 2}},
		{"NaN last", []float64{stdmath.NaN(), 1, stdmath.Inf(-1), stdmath.NaN(), stdmath.Inf(1)}, []int{4, 1, 2, 0, 3}},
	}
	for _, alg := range algorithms {
		for _, tt := range tests {
			t.Run(alg.name+"/"+tt.name, func(t *testing.T) {
				if diff := cmp.Diff(tt.want, alg.fn(tt.data)); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestIndexRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	for _, n := range []int{2, 7, 9, 63, 64, 65, 200, 1000, 5000} {
		for _, distinct := range []int{3, n + 1, 10 * n} {
			data := randomData(r, n, distinct)
			want := reference(data)
			for _, alg := range algorithms {
				if alg.name == "Interchange" && n > 1000 {
					continue
				}
				got := alg.fn(data)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("%s n=%d distinct=%d mismatch (-want +got):\n%s", alg.name, n, distinct, diff)
				}
				if !IsDescending(Gather(data, got)) {
					t.Fatalf("%s n=%d: gathered data not descending", alg.name, n)
				}
			}
		}
	}
}

func TestIndexFlashSpecial(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 14))
	data := randomData(r, 500, 1000)
	data[17] = stdmath.NaN()
	data[3] = stdmath.Inf(1)
	data[400] = stdmath.NaN()
	if diff := cmp.Diff(reference(data), IndexFlash(data)); diff != "" {
		t.Errorf("infinite range mismatch (-want +got):\n%s", diff)
	}
	data[3] = stdmath.MaxFloat64
	data[4] = -stdmath.MaxFloat64
	if diff := cmp.Diff(reference(data), IndexFlash(data)); diff != "" {
		t.Errorf("overflowing range mismatch (-want +got):\n%s", diff)
	}
	clustered := make([]float64, 300)
	for i := range clustered {
		clustered[i] = 1 + float64(i%5)*1e-12
	}
	clustered[299] = 1e6
	if diff := cmp.Diff(reference(clustered), IndexFlash(clustered)); diff != "" {
		t.Errorf("clustered mismatch (-want +got):\n%s", diff)
	}
}

// TestIndexIdempotent sorts the already ordered data again: the second
// permutation must be the identity.
func TestIndexIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(15, 16))
	data := randomData(r, 700, 40)
	sorted := Gather(data, Index(data))
	if diff := cmp.Diff(identity(len(sorted)), Index(sorted)); diff != "" {
		t.Errorf("second sort moved elements (-want +got):\n%s", diff)
	}
}

func TestIndexFloat32(t *testing.T) {
	r := rand.New(rand.NewPCG(17, 18))
	data := make([]float32, 300)
	for i := range data {
		data[i] = r.Float32()
	}
	if got := Gather(data, IndexFlash(data)); !IsDescending(got) {
		t.Errorf("float32 result not descending: %v", got)
	}
}

func TestIndexExtended(t *testing.T) {
	data := []float64{2, 7, 2, 1, 7, stdmath.NaN(), 1, stdmath.NaN()}
	values, index := IndexExtended(data)
	if diff := cmp.Diff([]float64{7, 2, 1, stdmath.NaN()}, values, cmp.Comparer(same[float64])); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 0, 1, 2, 0, 3, 2, 3}, index); diff != "" {
		t.Errorf("index mismatch (-want +got):\n%s", diff)
	}

	r := rand.New(rand.NewPCG(19, 20))
	long := randomData(r, 2000, 50)
	values, index = IndexExtended(long)
	if !IsDescending(values) || len(values) > 50 {
		t.Fatalf("%d values, descending=%v", len(values), IsDescending(values))
	}
	for i, v := range long {
		if values[index[i]] != v {
			t.Fatalf("element %d: values[%d] = %v, want %v", i, index[i], values[index[i]], v)
		}
	}
}

func TestIsDescending(t *testing.T) {
	tests := []struct {
		data []float64
		want bool
	}{
		{nil, true},
		{[]float64{1}, true},
		{[]float64{stdmath.NaN()}, false},
		{[]float64{9, 8, 8, 7, 6, 5, 4, 3, 2, 1, 0, -1}, true},
		{[]float64{9, 8, 8, 7, 6, 5, 4, 3, 2, 1, 0, 1}, false},
		{[]float64{9, 8, 8, 7, 6, 5, 4, 3, 2, 1, 0, stdmath.NaN()}, false},
		{[]float64{9, 8, 9, 7, 6, 5, 4, 3, 2, 1, 0, -1}, false},
	}
	for _, tt := range tests {
		if got := IsDescending(tt.data); got != tt.want {
			t.Errorf("IsDescending(%v) = %v, want %v", tt.data, got, tt.want)
		}
	}
}
