// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

// SubmitMsg is emitted when the user presses Enter in command mode.
type SubmitMsg struct {
	Command string
}
