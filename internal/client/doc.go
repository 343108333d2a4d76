// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements walletctl, the command-line UI context of the
// wallet coordinator.
//
// Every command is a thin call through [adapter.CoordinatorAdapter], or
// through an [adapter.RelayAdapter] bound to one origin for the relay
// commands. Results are written to stdout; prompts and logs go to stderr.
package client
