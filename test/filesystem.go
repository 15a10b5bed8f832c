// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"io"
	"io/fs"
)

var _ fs.ReadDirFS = (*MockFS)(nil)

// MockFS provides a mock implementation of the fs.ReadDirFS interface.
type MockFS struct {
	// OpenFunc allows for customizing the behavior of the Open method.
	OpenFunc func(name string) (fs.File, error)
	// ReadDirFunc allows for customizing the behavior of the ReadDir method.
	ReadDirFunc func(name string) ([]fs.DirEntry, error)
}

// Open calls the OpenFunc field of the MockFS struct.
func (m *MockFS) Open(name string) (fs.File, error) {
	return m.OpenFunc(name)
}

// ReadDir calls the ReadDirFunc field of the MockFS struct.
func (m *MockFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return m.ReadDirFunc(name)
}

// MockFile is a mock implementation of the fs.File interface.
type MockFile struct {
	// Content simulates the content of the file. Read operations will return data from this slice.
	Content []byte
	// ReadErr is returned once all of Content has been read instead of io.EOF.
	ReadErr error
	// readPos tracks the current position in Content, simulating the file's read pointer.
	readPos int

	// CloseFunc is an optional function that simulates closing the file. It allows users to
	// specify custom behavior for the Close method, including simulating errors.
	CloseFunc func() error
}

// Read copies bytes from Content into b, starting at the current read position.
func (mf *MockFile) Read(b []byte) (int, error) {
	if mf.readPos >= len(mf.Content) {
		if mf.ReadErr != nil {
			return 0, mf.ReadErr
		}
		return 0, io.EOF
	}
	n := copy(b, mf.Content[mf.readPos:])
	mf.readPos += n
	return n, nil
}

// Close simulates closing the file.
func (mf *MockFile) Close() error {
	if mf.CloseFunc != nil {
		return mf.CloseFunc()
	}
	return nil
}

// Stat returns an error, forcing readers to fall back to plain reads.
func (mf *MockFile) Stat() (fs.FileInfo, error) {
	return nil, fs.ErrInvalid
}
