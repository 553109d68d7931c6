// Copyright 2026 Interlink Data, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package interlink

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// Assign distributes a split sequence across n workers
// deterministically, based on the identity of each split
// rather than its position, so that re-planning the same
// input assigns the same split to the same worker.
// Relative split order is preserved within each worker's
// share.
func Assign(splits []Split, n int) [][]Split {
	const (
		k0    = 0x5d1ec810febed702
		k1    = 0x40fd7fee17262f71
		clamp = ^uint64(0)
	)
	ret := make([][]Split, n)
	var tmp []byte
	for i := range splits {
		s := &splits[i]
		tmp = append(tmp[:0], s.ETag...)
		tmp = append(tmp, s.Path...)
		tmp = binary.LittleEndian.AppendUint64(tmp, uint64(s.Start))
		h := siphash.Hash(k0, k1, tmp)
		w := int(h / (clamp / uint64(n)))
		if w >= n {
			w = n - 1
		}
		ret[w] = append(ret[w], *s)
	}
	return ret
}
