// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package golf

import "fmt"

// RoundStatus is the lifecycle state of a round.
type RoundStatus int

const (
	// InProgress is the initial state; the round is being played or edited.
	InProgress RoundStatus = iota
	// Finished means the round was completed and its score frozen.
	Finished
	// Aborted means the round was abandoned.
	Aborted
)

// Short wire codes, shared with the storage layer and API responses.
const (
	codeInProgress = "ip"
	codeFinished   = "f"
	codeAborted    = "a"
)

// Code returns the short serialization code for the status.
func (s RoundStatus) Code() string {
	switch s {
	case Finished:
		return codeFinished
	case Aborted:
		return codeAborted
	default:
		return codeInProgress
	}
}

func (s RoundStatus) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Finished:
		return "finished"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("RoundStatus(%d)", int(s))
	}
}

// ParseRoundStatus maps a short code back to a status.
func ParseRoundStatus(code string) (RoundStatus, error) {
	switch code {
	case codeInProgress:
		return InProgress, nil
	case codeFinished:
		return Finished, nil
	case codeAborted:
		return Aborted, nil
	default:
		return InProgress, fmt.Errorf("unknown round status code %q", code)
	}
}
