// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usage

import "fmt"

// DuplicateNameError is returned during compilation when two descriptors
// derive the same display name. It indicates a programming error in the
// descriptor declarations: callers must treat it as fatal at registration
// time, never as a runtime input error.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate element name %q", e.Name)
}

// HelpError is returned when the matcher recognized a help or version
// request. Text holds the full rendered document (or the version string).
// Status is the caller-configured parsing-error marker shared with
// MismatchError, so boundary layers can branch on one field.
type HelpError struct {
	Text   string
	Status int
}

func (e *HelpError) Error() string { return "help requested" }

// MismatchError is returned when the supplied arguments do not satisfy
// the compiled grammar: a missing required element, an unknown token, or
// a malformed value.
type MismatchError struct {
	Msg    string
	Status int
}

func (e *MismatchError) Error() string { return e.Msg }
