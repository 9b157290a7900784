// Copyright (c) 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctbytes

import (
	"bytes"
	mathrand "math/rand"
	"testing"
	"testing/quick"
)

func TestEqualMatchesBytesEqual(t *testing.T) {
	f := func(x, y []byte) bool {
		return Equal(x, y) == bytes.Equal(x, y)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestEqualLengthMismatch(t *testing.T) {
	if Equal([]byte{1, 2, 3}, []byte{1, 2}) {
		t.Fatal("Equal reported true for different-length slices")
	}
	if Equal(nil, []byte{0}) {
		t.Fatal("Equal reported true for nil vs non-empty")
	}
	if !Equal(nil, nil) {
		t.Fatal("Equal reported false for two nil slices")
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(make([]byte, 32)) {
		t.Fatal("IsZero false for all-zero buffer")
	}
	if IsZero(nil) != true {
		t.Fatal("IsZero should be vacuously true for an empty slice")
	}

	rand := mathrand.New(mathrand.NewSource(1))
	for i := 0; i < 64; i++ {
		buf := make([]byte, 32)
		idx := rand.Intn(32)
		buf[idx] = byte(1 + rand.Intn(255))
		if IsZero(buf) {
			t.Fatalf("IsZero true for buffer with non-zero byte at %d", idx)
		}
	}
}
