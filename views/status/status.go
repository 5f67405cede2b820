// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package statusview

import applog "github.com/PasqualeAiello/io-app/utils/log"

func l() *applog.AppLogger {
	return applog.L().With("view", "status")
}
