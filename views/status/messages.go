// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package statusview

import "time"

// Msg carries a fresh Info read by the poller.
type Msg struct {
	Info Info
}

type SpinnerTickMsg time.Time
