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

import "github.com/krotik/vhdlblock/token"

/*
triviaKind maps a tokenizer trivia kind to the block kind it is emitted as.
Space and indentation collapse onto a single whitespace block kind; the
distinction only matters for the "silently consumed" rule below.
*/
func triviaKind(k token.Kind) Kind {
	switch k {
	case token.KindSpace, token.KindIndentation:
		return KindWhitespace
	case token.KindLinebreak:
		return KindLinebreak
	case token.KindSingleLineComment:
		return KindSingleLineComment
	case token.KindMultiLineComment:
		return KindMultiLineComment
	}
	return KindWhitespace
}

/*
isIndentationToSkip reports whether tok is an indentation token that must be
silently consumed because its predecessor is a linebreak or a single-line
comment (spec.md §4.4 whitespace semantics) - it becomes part of whatever
block follows rather than a block of its own. Only handleOwnedTrivia applies
this rule; handleDocumentTrivia always emits indentation as its own block.
*/
func isIndentationToSkip(tok *token.Token) bool {
	if tok.Kind != token.KindIndentation {
		return false
	}
	p := tok.Previous()
	return p != nil && (p.Kind == token.KindLinebreak || p.Kind == token.KindSingleLineComment)
}

/*
emitTriviaBlock emits the current token as a standalone trivia block of the
kind matching its tokenizer classification and clears the marker so the next
token starts a fresh block.
*/
func emitTriviaBlock(s *State, multiPart bool) {
	tok := s.EffectiveToken()
	s.Emit(triviaKind(s.Token().Kind), tok, tok, multiPart)
	s.ClearMarker()
}

/*
flushFragment closes out the run of significant tokens accumulated since the
marker was last (re)established, as a multi-part fragment of ownerKind, if
any such run exists. Called right before a trivia block interrupts an
owning multi-part construct (spec.md §4.4/§4.7): the fragment plus the
trivia block that follows it are each their own Block, linked by
Block.NextFragment's same-kind walk.
*/
func flushFragment(s *State, ownerKind Kind) {
	m := s.Marker()
	if m != nil && m != s.Token() {
		s.Emit(ownerKind, m, s.Token().Previous(), true)
	}
}

/*
handleDocumentTrivia implements the document dispatcher's trivia handling
(spec.md §4.3): whitespace, indentation, linebreak and comments each become
their own standalone block. Returns true if tok was trivia and has been
fully handled.
*/
func handleDocumentTrivia(s *State) bool {
	tok := s.Token()

	switch tok.Kind {
	case token.KindSpace, token.KindIndentation, token.KindLinebreak,
		token.KindSingleLineComment, token.KindMultiLineComment:
		emitTriviaBlock(s, false)
		return true
	}

	return false
}

/*
handleOwnedTrivia implements the expression/return/list "stateWhitespace1"
trivia handling (spec.md §4.4): indentation, linebreak and comment tokens
interrupt the owning multi-part construct (ownerKind) - flushing whatever
significant-token run preceded them as a multi-part fragment - except a
linebreak immediately after a multi-line comment, which is emitted as a bare
(non-continuation) linebreak block instead, ending the group.

absorbSpace distinguishes the two shapes that share this trivia handling: a
single delimiting space between two fixed tokens (a header's name and "is",
"return" and its value, a list keyword and "(") still gets its own
whitespace block, but a space *inside* an expression's own token run is
absorbed into that run instead of splitting it - callers pass true only from
the expression state machine. A space immediately after a multi-line comment
always gets its own block regardless, the same as the comment itself.
Returns true if tok was trivia and has been fully handled; false means the
caller should continue as if tok were ordinary content (an absorbed space,
or not trivia at all).
*/
func handleOwnedTrivia(s *State, ownerKind Kind, absorbSpace bool) bool {
	tok := s.Token()

	switch tok.Kind {
	case token.KindIndentation:
		if !isIndentationToSkip(tok) {
			flushFragment(s, ownerKind)
			emitTriviaBlock(s, true)
		}
		return true

	case token.KindLinebreak:
		afterMultiLine := tok.Previous() != nil && tok.Previous().Kind == token.KindMultiLineComment
		flushFragment(s, ownerKind)
		emitTriviaBlock(s, !afterMultiLine)
		return true

	case token.KindSpace:
		afterMultiLine := tok.Previous() != nil && tok.Previous().Kind == token.KindMultiLineComment
		if absorbSpace && !afterMultiLine {
			return false
		}
		flushFragment(s, ownerKind)
		emitTriviaBlock(s, true)
		return true

	case token.KindSingleLineComment, token.KindMultiLineComment:
		flushFragment(s, ownerKind)
		emitTriviaBlock(s, true)
		return true
	}

	return false
}
