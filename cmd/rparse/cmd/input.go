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

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/rsyntax/rsyntax/source"
)

// The path under which standard input is parsed.
const stdinPath = "<stdin>"

// inputs expands the path arguments of a command into a list of paths and an
// opener that can open all of them.
func inputs(cmd *cobra.Command, args []string) ([]string, source.Opener, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	stdin := source.Map{}
	seen := make(map[string]bool)
	var paths []string
	for _, arg := range args {
		var matches []string
		switch {
		case arg == "-":
			if _, ok := stdin[stdinPath]; !ok {
				text, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return nil, nil, fmt.Errorf("reading standard input: %w", err)
				}
				stdin.Add(stdinPath, string(text))
			}
			matches = []string{stdinPath}

		case strings.ContainsAny(arg, "*?[{"):
			var err error
			matches, err = doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil {
				return nil, nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
			}
			if len(matches) == 0 {
				return nil, nil, fmt.Errorf("no files match %q", arg)
			}

		default:
			matches = []string{arg}
		}

		for _, path := range matches {
			if !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
		}
	}

	return paths, source.Openers{stdin, osOpener{}}, nil
}

// osOpener opens files from the operating system's file system.
type osOpener struct{}

func (osOpener) Open(path string) (*source.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return source.Read(path, f)
}
