// Copyright 2021 Goran Devic. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nummethods

import "golang.org/x/exp/constraints"

func abs[T constraints.Float | constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// monotoneDesc reports whether s is strictly decreasing.
func monotoneDesc[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] >= s[i-1] {
			return false
		}
	}
	return true
}
