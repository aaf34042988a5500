// Copyright 2026 The reviewmd Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package output abstracts the destination of the rendered document:
// stdout or a file on disk.
package output

import (
	"fmt"
	"io"
	"os"
)

// Writer writes the rendered markdown document to its destination.
type Writer struct {
	output    io.Writer
	closeFunc func() error

	// Path is the destination file path, empty for stdout.
	Path string
}

// NewWriter creates a writer targeting an arbitrary io.Writer (stdout in
// production, buffers in tests).
func NewWriter(w io.Writer) *Writer {
	return &Writer{output: w}
}

// NewFileWriter creates a writer targeting a file. The caller must call
// Close() when done.
func NewFileWriter(filename string) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		output:    file,
		closeFunc: file.Close,
		Path:      filename,
	}, nil
}

// WriteDocument writes the document to the destination.
func (w *Writer) WriteDocument(doc string) error {
	if _, err := io.WriteString(w.output, doc); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Close closes the underlying writer if it's a file.
func (w *Writer) Close() error {
	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}
