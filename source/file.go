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

package source

import (
	"slices"
	"sync"
	"unicode"
)

// File is an immutable source code file.
//
// It contains additional book-keeping information for resolving span
// locations. Files may be shared across goroutines.
//
// A nil *File behaves like an empty file with the path name "".
type File struct {
	path, text string
	runes      []rune

	once sync.Once
	// The rune offset of the start of each line. Given an offset, the line it
	// is on can be recovered with a binary search on this list.
	lineIndex []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text, runes: []rune(text)}
}

// Path returns this file's filesystem path.
//
// It doesn't need to be a real path; it is only used for diagnostics.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Len returns the length of this file in runes.
func (f *File) Len() int {
	if f == nil {
		return 0
	}
	return len(f.runes)
}

// Runes returns the rune view of this file that all offsets index into.
//
// The returned slice must not be modified.
func (f *File) Runes() []rune {
	if f == nil {
		return nil
	}
	return f.runes
}

// At returns the rune at the given offset, or -1 if it is out of bounds.
func (f *File) At(offset int) rune {
	if offset < 0 || offset >= f.Len() {
		return -1
	}
	return f.runes[offset]
}

// Slice returns the text between two rune offsets. Out-of-bounds offsets
// are clamped.
func (f *File) Slice(start, end int) string {
	n := f.Len()
	start = min(max(start, 0), n)
	end = min(max(end, start), n)
	return string(f.runes[start:end])
}

// Span is a shorthand for creating a new Span.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}
	return Span{f, start, end}
}

// EOF returns a zero-length Span pointing to the end of the file.
func (f *File) EOF() Span {
	return f.Span(f.Len(), f.Len())
}

// Location converts a rune offset into a full Location.
//
// This operation is O(log n).
func (f *File) Location(offset int) Location {
	if f == nil || offset <= 0 {
		return Location{Offset: max(offset, 0), Line: 1, Column: 1}
	}

	offset = min(offset, f.Len())
	line := f.LineByOffset(offset)
	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: offset - f.lines()[line] + 1,
	}
}

// LineByOffset returns the zero-based line number containing the given rune
// offset.
//
// This operation is O(log n).
func (f *File) LineByOffset(offset int) int {
	lines := f.lines()

	// Find the largest index such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}
	return max(line, 0)
}

// Lines returns the number of lines in this file. An empty file has one
// line.
func (f *File) Lines() int {
	return len(f.lines())
}

// Line returns the given line without its line terminator.
//
// line is expected to be 1-indexed.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	for end > start && (f.runes[end-1] == '\n' || f.runes[end-1] == '\r') {
		end--
	}
	return string(f.runes[start:end])
}

// LineOffsets returns the rune offsets for the given line, including its
// line terminator.
//
// line is expected to be 1-indexed.
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lines()
	if len(lines) == line {
		return lines[line-1], f.Len()
	}
	return lines[line-1], lines[line]
}

// Indentation returns the leading whitespace of the line containing offset.
func (f *File) Indentation(offset int) string {
	start, end := f.LineOffsets(f.LineByOffset(offset) + 1)
	i := start
	for i < end && f.runes[i] != '\n' && f.runes[i] != '\r' && unicode.IsSpace(f.runes[i]) {
		i++
	}
	return string(f.runes[start:i])
}

func (f *File) lines() []int {
	if f == nil {
		return []int{0}
	}

	f.once.Do(func() {
		f.lineIndex = append(f.lineIndex, 0)
		for i := 0; i < len(f.runes); i++ {
			switch f.runes[i] {
			case '\r':
				if i+1 < len(f.runes) && f.runes[i+1] == '\n' {
					i++
				}
			case '\n':
			default:
				continue
			}
			f.lineIndex = append(f.lineIndex, i+1)
		}
	})
	return f.lineIndex
}
