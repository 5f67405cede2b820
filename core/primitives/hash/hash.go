// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package hash

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// Fingerprint is a stable structural hash rendered as 16 hex digits.
type Fingerprint string

func Fmt(h uint64) Fingerprint {
	return Fingerprint(fmt.Sprintf("%016x", h))
}

func Compute(v any) (uint64, error) {
	return hashstructure.Hash(v, hashstructure.FormatV2, nil)
}

// Of fingerprints v. Values hashstructure cannot walk yield an empty fingerprint.
func Of(v any) Fingerprint {
	h, err := Compute(v)
	if err != nil {
		return ""
	}
	return Fmt(h)
}
