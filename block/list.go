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
	"fmt"

	"github.com/krotik/vhdlblock/token"
)

/*
listConfig parameterizes the generic/port list state machine (spec.md
§4.5) by keyword and by the four block kinds it produces. A header
transitions into a list by rewriting its keyword, arranging its own
continuation via Goto, Push-ing cfg.stateListKeyword, and then setting the
marker to the rewritten keyword (Push clears it) - the list's final
Pop(1, nil) resumes that continuation once the closing ";" has been consumed.
*/
type listConfig struct {
	keyword   string
	openKind  Kind
	itemKind  Kind
	delimKind Kind
	closeKind Kind
}

var genericList = &listConfig{
	keyword:   "generic",
	openKind:  KindGenericOpen,
	itemKind:  KindGenericItem,
	delimKind: KindGenericDelimiter,
	closeKind: KindGenericClose,
}

var portList = &listConfig{
	keyword:   "port",
	openKind:  KindPortOpen,
	itemKind:  KindPortItem,
	delimKind: KindPortDelimiter,
	closeKind: KindPortClose,
}

func (cfg *listConfig) stateListKeywordFunc() stateFunc        { return cfg.stateListKeyword }
func (cfg *listConfig) stateOpeningParenthesisFunc() stateFunc { return cfg.stateOpeningParenthesis }
func (cfg *listConfig) stateItemRemainderFunc() stateFunc      { return cfg.stateItemRemainder }
func (cfg *listConfig) stateItemDelimiterFunc() stateFunc      { return cfg.stateItemDelimiter }
func (cfg *listConfig) stateClosingParenthesisFunc() stateFunc { return cfg.stateClosingParenthesis }

/*
stateListKeyword implements the open protocol's lead-in: trivia after the
keyword is consumed and attached as a multi-part continuation of the
OpenBlock-to-be; "(" closes the OpenBlock and starts the opening-parenthesis
protocol.
*/
func (cfg *listConfig) stateListKeyword(s *State) error {
	tok := s.Token()

	if handleOwnedTrivia(s, cfg.openKind, false) {
		s.Goto(cfg.stateListKeywordFunc())
		return nil
	}

	if tok.Kind == token.KindCharacter && tok.Value == "(" {
		open := s.Rewrite(token.KindBoundary, "(")
		s.Emit(cfg.openKind, s.ResolvedMarker(open), open, false)
		s.SetCounter(1)
		s.ClearMarker()
		s.Goto(cfg.stateOpeningParenthesisFunc())
		return nil
	}

	return s.Fail(ErrUnexpectedToken, fmt.Sprintf("expected '(' after %s", cfg.keyword))
}

/*
stateOpeningParenthesis handles an empty list, trivia between items, and a
word starting a new item (spec.md §4.5 "Opening-parenthesis protocol").
*/
func (cfg *listConfig) stateOpeningParenthesis(s *State) error {
	tok := s.Token()

	if tok.Kind == token.KindCharacter && tok.Value == ")" {
		return cfg.closeParen(s)
	}

	if handleDocumentTrivia(s) {
		s.Goto(cfg.stateOpeningParenthesisFunc())
		return nil
	}

	if tok.Kind == token.KindWord {
		id := s.Rewrite(token.KindIdentifier, tok.Value)
		s.SetMarker(id)
		s.Goto(cfg.stateItemRemainderFunc())
		return nil
	}

	return s.Fail(ErrUnexpectedToken, "expected an identifier or ')'")
}

/*
closeParen handles a ")" that ends the list, whether reached with an empty
list or immediately after the last item: it starts the CloseBlock span and
defers emitting CloseBlock itself until the terminating ";" is seen.
*/
func (cfg *listConfig) closeParen(s *State) error {
	closeTok := s.Rewrite(token.KindBoundary, ")")
	s.SetCounter(0)
	s.SetMarker(closeTok)
	s.Goto(cfg.stateClosingParenthesisFunc())
	return nil
}

/*
stateItemRemainder tracks nested-parenthesis depth within one item, closing
the item on ";" at depth 1 (the item/delimiter boundary) or on ")" once
depth returns to 0 (the item/close boundary); spec.md §4.5 "Item-remainder
protocol".
*/
func (cfg *listConfig) stateItemRemainder(s *State) error {
	tok := s.Token()

	if tok.Kind == token.KindCharacter {
		switch tok.Value {
		case "(":
			s.Rewrite(token.KindBoundary, "(")
			if err := s.AdjustCounter(1, false); err != nil {
				return err
			}
			s.Goto(cfg.stateItemRemainderFunc())
			return nil

		case ")":
			itemEnd := tok.Previous()
			if err := s.AdjustCounter(-1, false); err != nil {
				return err
			}
			if s.Counter() == 0 {
				s.Emit(cfg.itemKind, s.Marker(), itemEnd, false)
				closeTok := s.Rewrite(token.KindBoundary, ")")
				s.SetMarker(closeTok)
				s.Goto(cfg.stateClosingParenthesisFunc())
				return nil
			}
			s.Goto(cfg.stateItemRemainderFunc())
			return nil

		case ";":
			if s.Counter() == 1 {
				itemEnd := tok.Previous()
				s.Emit(cfg.itemKind, s.Marker(), itemEnd, false)
				delim := s.Rewrite(token.KindBoundary, ";")
				s.Emit(cfg.delimKind, delim, delim, false)
				s.Goto(cfg.stateItemDelimiterFunc())
				return nil
			}
		}
	}

	s.Goto(cfg.stateItemRemainderFunc())
	return nil
}

/*
stateItemDelimiter implements the delimiter protocol: whitespace/comments
between the delimiter and the next item are emitted as standalone trivia
blocks; a word (with or without intervening trivia) is handled by the
opening-parenthesis protocol, which already recognizes both an item start
and an immediate close (spec.md §4.5 "Delimiter protocol").
*/
func (cfg *listConfig) stateItemDelimiter(s *State) error {
	s.Goto(cfg.stateOpeningParenthesisFunc())
	s.Reissue()
	return nil
}

/*
stateClosingParenthesis implements the close protocol: trivia after ")" is
accepted, ";" emits CloseBlock and pops back to the construct that entered
the list (spec.md §4.5 "Close protocol").
*/
func (cfg *listConfig) stateClosingParenthesis(s *State) error {
	tok := s.Token()

	if handleDocumentTrivia(s) {
		s.Goto(cfg.stateClosingParenthesisFunc())
		return nil
	}

	if tok.Kind == token.KindCharacter && tok.Value == ";" {
		end := s.Rewrite(token.KindBoundary, ";")
		s.Emit(cfg.closeKind, s.ResolvedMarker(end), end, false)
		return s.Pop(1, nil)
	}

	return s.Fail(ErrUnexpectedToken, "expected ';' to close the list")
}
