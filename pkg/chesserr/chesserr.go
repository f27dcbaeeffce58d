// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package chesserr declares the error taxonomy shared by pkg/move and
// pkg/board: every error raised by parsing or validating a position or a
// move is either an InvalidInput (malformed data, or a move that isn't
// legal in the current position) or an OutOfBounds (a numeric, square,
// or piece index outside its valid range).
package chesserr

import "fmt"

// Kind classifies an Error.
type Kind uint8

// the two error kinds.
const (
	// InvalidInput means the input was malformed or doesn't apply to the
	// situation at hand: wrong length, bad characters, a move that isn't
	// legal in the current position.
	InvalidInput Kind = iota
	// OutOfBounds means a numeric, square, or piece index fell outside
	// its valid range during conversion.
	OutOfBounds
)

// String names a Kind.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case OutOfBounds:
		return "out of bounds"
	default:
		return "unknown error"
	}
}

// Error is a chesscore error tagged with a Kind.
type Error struct {
	Kind    Kind
	Context string
	Message string
}

// New creates an Error with the given kind, reporting context (typically
// the function or operation name), and message.
func New(kind Kind, context, message string) *Error {
	return &Error{Kind: kind, Context: context, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Context, e.Message)
}

// Is reports whether target is a chesserr Error with the same Kind,
// supporting errors.Is(err, chesserr.InvalidInput)-style checks via
// errors.Is(err, &Error{Kind: k}).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && e.Kind == other.Kind
}
