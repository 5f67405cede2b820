// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

import "github.com/PasqualeAiello/io-app/activation"

// View name constants for type-safe navigation. The activation screens use
// the route names of the activation package.
const (
	NameHome                   = "home"
	NameHelp                   = "help"
	NameActivationLoading      = string(activation.RouteLoading)
	NameActivationCompleted    = string(activation.RouteCompleted)
	NameActivationTimeout      = string(activation.RouteTimeout)
	NameActivationExpired      = string(activation.RouteEligibilityExpired)
	NameActivationAlreadyExist = string(activation.RouteExists)
)
