/*
 * vhdlblock
 *
 * Copyright 2024 vhdlblock authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package block

import (
	"errors"
	"fmt"

	"github.com/krotik/vhdlblock/token"
)

/*
Block parser error types - to be used for equality checks against
ParserError.Type, grounded on the teacher's util/error.go sentinel set.
*/
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrBracketMismatch = errors.New("bracket mismatch")
	ErrUnexpectedEnd   = errors.New("unexpected end of document")
	ErrUnreachableState = errors.New("unreachable state")
)

/*
ParserError is a structured error raised by the block engine, carrying the
offending token for diagnostics.
*/
type ParserError struct {
	Source string       // Name of the input which was given to the engine
	Type   error        // Error type (for equality checks)
	Detail string       // Human readable detail message
	Token  *token.Token // Token where the error occurred
	Line   int
	Pos    int
}

/*
newParserError creates a new ParserError rooted at tok.
*/
func newParserError(source string, t error, detail string, tok *token.Token) *ParserError {
	pe := &ParserError{Source: source, Type: t, Detail: detail, Token: tok}

	if tok != nil {
		pe.Line = tok.Start.Line
		pe.Pos = tok.Start.Column
	}

	return pe
}

/*
Error returns a human-readable string representation of this error.
*/
func (pe *ParserError) Error() string {
	ret := fmt.Sprintf("%v error in %v: %v", pe.Type, pe.Source, pe.Detail)

	if pe.Line != 0 {
		ret = fmt.Sprintf("%s (Line:%d Pos:%d)", ret, pe.Line, pe.Pos)
	}

	return ret
}
