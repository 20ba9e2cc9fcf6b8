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

package vm_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	img, err := vm.Parse("test", strings.NewReader(" 1, -2 ,+3,\n1002,\t99\n"))
	require.NoError(t, err)
	assert.Equal(t, vm.Image{1, -2, 3, 1002, 99}, img)

	img, err = vm.Parse("test", strings.NewReader("-9223372036854775808,9223372036854775807"))
	require.NoError(t, err)
	assert.Equal(t, vm.Image{math.MinInt64, math.MaxInt64}, img)
}

// check some errors. We're not checking the messages, rather that they point at
// the correct place.
func TestParse_errors(t *testing.T) {
	var tests = [...]struct {
		code string
		pos  []string
	}{
		{"", []string{"test:1:1"}},
		{"1,,2", []string{"test:1:3"}},
		{"1,2,", []string{"test:1:5"}},
		{"1 2", []string{"test:1:3"}},
		{"1,x,3", []string{"test:1:3"}},
		{"1,\n0x10,3,-", []string{"test:2:1", "test:2:9"}},
		{"1,99999999999999999999", []string{"test:1:3"}},
		{"-9223372036854775809", []string{"test:1:2"}},
	}
	for _, test := range tests {
		_, err := vm.Parse("test", strings.NewReader(test.code))
		if !assert.Error(t, err, "%q", test.code) {
			continue
		}
		errs, ok := err.(vm.ErrParse)
		require.True(t, ok, "%q: %T", test.code, err)
		var pos []string
		for _, e := range errs {
			pos = append(pos, e.Pos.String())
		}
		assert.Equal(t, test.pos, pos, "%q: %v", test.code, err)
	}
}

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "prog.txt")
	require.NoError(t, os.WriteFile(name, []byte("3,0,4,0,99\n"), 0644))

	img, err := vm.Load(name, 0)
	require.NoError(t, err)
	assert.Equal(t, vm.Image{3, 0, 4, 0, 99}, img)

	img, err = vm.Load(name, 8)
	require.NoError(t, err)
	assert.Equal(t, vm.Image{3, 0, 4, 0, 99, 0, 0, 0}, img)

	_, err = vm.Load(filepath.Join(t.TempDir(), "missing"), 0)
	assert.Error(t, err)
}
