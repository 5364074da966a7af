// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weierct

import "errors"

// Error kinds, named after the taxonomy in spec §6/§7.
var (
	ErrNull          = errors.New("weierct: null argument")
	ErrNotEnoughData = errors.New("weierct: not enough data")
	ErrValue         = errors.New("weierct: invalid value")
	ErrMemory        = errors.New("weierct: memory error")
	ErrPoint         = errors.New("weierct: point not on curve")
	ErrCurve         = errors.New("weierct: mismatched curve contexts")
)
