// Copyright 2025 The stackpaint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tinygo && tinygo.riscv

// TinyGo RISC-V register and linker-symbol access.
//
// This is the real target configuration: the stack block is laid out by
// a riscv-rt style linker script exporting _stack_start (top of the
// whole block) and _hart_stack_size (per-hart slice, encoded as the
// symbol's address).

package hw

import (
	"device/riscv"
	"unsafe"

	"github.com/kolkov/stackpaint/internal/stack/layout"
)

// Linker symbols. Only their addresses are meaningful; _hart_stack_size
// in particular carries its value in its address, so it must never be
// dereferenced.
//
//go:extern _stack_start
var stackStartSym [0]byte

//go:extern _hart_stack_size
var hartStackSizeSym [0]byte

func readStackPointer() uintptr {
	return riscv.AsmFull("mv {}, sp", nil)
}

func readHartID() uint {
	return uint(riscv.AsmFull("csrr {}, mhartid", nil))
}

func linkerLayout() (layout.Layout, bool) {
	l := layout.New(
		uintptr(unsafe.Pointer(&stackStartSym)),
		uintptr(unsafe.Pointer(&hartStackSizeSym)),
	)
	return l, l.Valid()
}
