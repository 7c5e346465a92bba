// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package interval_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rsyntax/rsyntax/internal/interval"
)

func TestInsert(t *testing.T) {
	t.Parallel()
	type in struct {
		start, end int
		value      string
	}
	type out = interval.Entry[int, string]

	tests := []struct {
		name   string
		ranges []in
		want   []out
	}{
		{
			name:   "empty-map",
			ranges: []in{{0, 9, "foo"}},
			want:   []out{{0, 9, "foo"}},
		},
		{
			name:   "disjoint",
			ranges: []in{{30, 39, "bar"}, {0, 9, "foo"}},
			want:   []out{{0, 9, "foo"}, {30, 39, "bar"}},
		},
		{
			name:   "nested-middle",
			ranges: []in{{0, 9, "foo"}, {3, 5, "bar"}},
			want:   []out{{0, 2, "foo"}, {3, 5, "bar"}, {6, 9, "foo"}},
		},
		{
			name:   "nested-prefix",
			ranges: []in{{0, 9, "foo"}, {0, 5, "bar"}},
			want:   []out{{0, 5, "bar"}, {6, 9, "foo"}},
		},
		{
			name:   "nested-suffix",
			ranges: []in{{0, 9, "foo"}, {5, 9, "bar"}},
			want:   []out{{0, 4, "foo"}, {5, 9, "bar"}},
		},
		{
			name:   "same",
			ranges: []in{{0, 9, "foo"}, {0, 9, "bar"}},
			want:   []out{{0, 9, "bar"}},
		},
		{
			name: "tree",
			ranges: []in{
				{0, 20, "root"},
				{0, 9, "a"},
				{0, 2, "a.0"},
				{6, 9, "a.1"},
				{12, 20, "b"},
			},
			want: []out{
				{0, 2, "a.0"},
				{3, 5, "a"},
				{6, 9, "a.1"},
				{10, 11, "root"},
				{12, 20, "b"},
			},
		},
		{
			name:   "spanning",
			ranges: []in{{0, 3, "foo"}, {6, 9, "bar"}, {2, 7, "baz"}},
			want:   []out{{0, 1, "foo"}, {2, 7, "baz"}, {8, 9, "bar"}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var m interval.Paint[int, string]
			for _, r := range test.ranges {
				m.Insert(r.start, r.end, r.value)
			}
			t.Log(fmt.Sprintf("%v", &m))

			assert.Equal(t, test.want, slices.Collect(m.Entries()))
			assert.Equal(t, len(test.want), m.Len())
			for _, e := range test.want {
				for p := e.Start; p <= e.End; p++ {
					got, ok := m.Get(p)
					assert.True(t, ok)
					assert.Equal(t, e.Value, got.Value, "at %d", p)
				}
			}
		})
	}
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	var m interval.Paint[int, string]
	_, ok := m.Get(0)
	assert.False(t, ok)

	m.Insert(5, 9, "foo")
	_, ok = m.Get(4)
	assert.False(t, ok)
	_, ok = m.Get(10)
	assert.False(t, ok)
	e, ok := m.Get(5)
	assert.True(t, ok)
	assert.True(t, e.Contains(9))
}
