// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainindex

import "github.com/pkg/errors"

// ErrBlockNotFound is returned by Snapshot.ReadBlock when the requested
// height has no block — either it never existed or a concurrent
// disconnect raced the snapshot (spec.md §5 treats this as a clean
// not-found, never a crash).
var ErrBlockNotFound = errors.New("chainindex: block not found")
