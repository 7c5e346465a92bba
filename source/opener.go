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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// Opener is a mechanism for opening files.
type Opener interface {
	// Open opens a file, potentially returning an error.
	//
	// A return value of [fs.ErrNotExist] is given special treatment by some
	// Opener adapters, such as the [Openers] type.
	Open(path string) (*File, error)
}

// Map implements [Opener] via lookup of an in-memory map from paths to file
// contents.
//
// Missing entries result in [fs.ErrNotExist].
type Map map[string]string

// Add adds a new file to this map.
func (m Map) Add(path, text string) {
	m[path] = text
}

// Open implements [Opener].
func (m Map) Open(path string) (*File, error) {
	text, ok := m[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return NewFile(path, text), nil
}

// FS wraps an [fs.FS] to give it an [Opener] interface.
type FS struct {
	fs.FS

	// If not nil, paths are passed to this function before being forwarded
	// to fs.
	PathMapper func(string) string
}

// Open implements [Opener].
func (fs *FS) Open(path string) (*File, error) {
	mapped := path
	if fs.PathMapper != nil {
		mapped = fs.PathMapper(path)
	}

	file, err := fs.FS.Open(mapped)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(path, file)
}

// Read reads all of r into a new [File] with the given path.
func Read(path string, r io.Reader) (*File, error) {
	var buf strings.Builder
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return NewFile(path, buf.String()), nil
}

// Openers wraps a sequence of [Opener]s.
//
// When calling Open, it calls each Opener in sequence until one does not return
// [fs.ErrNotExist].
type Openers []Opener

// Open implements [Opener].
func (o Openers) Open(path string) (*File, error) {
	for _, opener := range o {
		file, err := opener.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return file, err
	}
	return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
}
