// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	_ "github.com/PasqualeAiello/io-app/commands/command"
)
