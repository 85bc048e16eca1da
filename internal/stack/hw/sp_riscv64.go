// Copyright 2025 The stackpaint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build riscv64 && !tinygo

// riscv64 under the standard gc toolchain: the stack pointer comes from
// an assembly stub (sp_riscv64.s). There is no M-mode CSR access from
// user code, so the hart id is reported as 0, and no riscv-rt linker
// symbols exist, so the layout must be supplied explicitly.

package hw

import "github.com/kolkov/stackpaint/internal/stack/layout"

// readStackPointer is implemented in sp_riscv64.s.
func readStackPointer() uintptr

func readHartID() uint {
	return 0
}

func linkerLayout() (layout.Layout, bool) {
	return layout.Layout{}, false
}
