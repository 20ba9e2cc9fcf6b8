// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

package vm

import (
	"bufio"
	"io"
	"os"

	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Image encapsulates a VM's memory. Its size is fixed: reads and writes
// outside of [0, len) fail with ErrAddressOutOfBounds.
type Image []Cell

// Read returns the value stored at address addr.
func (img Image) Read(addr int) (Cell, error) {
	if addr < 0 || addr >= len(img) {
		return 0, errors.Wrapf(ErrAddressOutOfBounds, "read @%d/%d", addr, len(img))
	}
	return img[addr], nil
}

// Write stores v at address addr.
func (img Image) Write(addr int, v Cell) error {
	if addr < 0 || addr >= len(img) {
		return errors.Wrapf(ErrAddressOutOfBounds, "write @%d/%d", addr, len(img))
	}
	img[addr] = v
	return nil
}

// Clone returns a copy of the image that shares no memory with img.
func (img Image) Clone() Image {
	if img == nil {
		return nil
	}
	c := make(Image, len(img))
	copy(c, img)
	return c
}

// grow returns an image of at least size cells. The returned image is img if
// no allocation was needed.
func (img Image) grow(size int) Image {
	if size <= len(img) {
		return img
	}
	if size <= cap(img) {
		img = img[:size]
		return img
	}
	t := make(Image, size)
	copy(t, img)
	return t
}

// Dump writes the image to w as comma separated decimal integers, followed
// by a new line.
func (img Image) Dump(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	ici.WriteCells(ew, ",", img)
	_, err := ew.Write([]byte{'\n'})
	return err
}

// Load loads an image from file fileName. The image size will be the largest of
// the program size and minSize parameter.
func Load(fileName string, minSize int) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	img, err := Parse(fileName, bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	return img.grow(minSize), nil
}
