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
	"strings"

	"github.com/krotik/vhdlblock/token"
)

/*
loopRangeLowExpr parses the range's lower bound, terminating on "to" or
"downto" (spec.md §4.4 variant 4) and emitting the KindLoopDirection block
that records which one was used.
*/
var loopRangeLowExpr = exprConfigDefaults(exprConfig{
	variant: exprEndedByKeywordOrToOrDownto,
	rangeKeywords: map[string]token.Kind{
		"to":     token.KindKeywordTo,
		"downto": token.KindKeywordDownto,
	},
	popOnTerminate: 1,
})

/*
loopRangeHighExpr parses the range's upper bound, terminating on the "loop"
keyword (spec.md §4.4 variant 3).
*/
var loopRangeHighExpr = exprConfigDefaults(exprConfig{
	variant:         exprEndedByKeywordOrCloseParen,
	exitKeyword:     "loop",
	exitKeywordKind: token.KindKeywordLoop,
	popOnTerminate:  1,
})

/*
stateLoopStatementInitial is the loop statement's initial state, entered
right after the "for" keyword token has been rewritten and marked: it
expects the loop index identifier.
*/
func stateLoopStatementInitial(s *State) error {
	tok := s.Token()

	if handleOwnedTrivia(s, KindLoopStatement, false) {
		s.Goto(stateLoopStatementInitial)
		return nil
	}

	if tok.Kind == token.KindWord {
		s.Rewrite(token.KindIdentifier, tok.Value)
		s.Goto(stateLoopStatementIn)
		return nil
	}

	return s.Fail(ErrUnexpectedToken, "expected the loop index identifier")
}

/*
stateLoopStatementIn expects the "in" keyword, which closes the loop
statement's header fragment group, then hands off to the range expressions.
*/
func stateLoopStatementIn(s *State) error {
	tok := s.Token()

	if handleOwnedTrivia(s, KindLoopStatement, false) {
		s.Goto(stateLoopStatementIn)
		return nil
	}

	if tok.Kind == token.KindWord && strings.ToLower(tok.Value) == "in" {
		inTok := s.Rewrite(token.KindKeywordIn, "in")
		s.Emit(KindLoopStatement, s.ResolvedMarker(inTok), inTok, false)
		s.Goto(stateLoopStatementRangeHigh)
		if err := s.Push(loopRangeLowExpr.stateExpressionFunc()); err != nil {
			return err
		}
		return nil
	}

	return s.Fail(ErrUnexpectedToken, "expected 'in'")
}

/*
stateLoopStatementRangeHigh is the continuation reached once the range's
lower bound has closed on "to"/"downto"; it pushes the upper-bound
expression and reissues the current token into it (spec.md §9's reissue
pattern, the same shape as the return statement's stateWhitespace1).
*/
func stateLoopStatementRangeHigh(s *State) error {
	s.Goto(stateLoopStatementBody)
	if err := s.Push(loopRangeHighExpr.stateExpressionFunc()); err != nil {
		return err
	}
	s.SetMarker(s.Token())
	s.Reissue()

	return nil
}

/*
stateLoopStatementBody dispatches statements inside the loop (nested
return and for statements) and recognizes the closing "end".
*/
func stateLoopStatementBody(s *State) error {
	tok := s.Token()

	if handleDocumentTrivia(s) {
		s.Goto(stateLoopStatementBody)
		return nil
	}

	if tok.Kind == token.KindWord {
		switch strings.ToLower(tok.Value) {
		case "return":
			s.Rewrite(token.KindKeywordReturn, "return")
			s.Goto(stateLoopStatementBody)
			if err := s.Push(stateReturnKeyword); err != nil {
				return err
			}
			s.SetMarker(s.EffectiveToken())
			return nil

		case "for":
			s.Rewrite(token.KindKeywordFor, "for")
			s.Goto(stateLoopStatementBody)
			if err := s.Push(stateLoopStatementInitial); err != nil {
				return err
			}
			s.SetMarker(s.EffectiveToken())
			return nil

		case "end":
			endTok := s.Rewrite(token.KindKeywordEnd, "end")
			s.SetMarker(endTok)
			s.Goto(stateLoopStatementEnd)
			return nil
		}
	}

	return s.Fail(ErrUnexpectedToken, "expected a statement or 'end'")
}

/*
stateLoopStatementEnd expects the mandatory "loop" keyword that closes a
loop statement (unlike a header's end clause, the construct keyword is not
optional here).
*/
func stateLoopStatementEnd(s *State) error {
	tok := s.Token()

	if handleOwnedTrivia(s, KindEndOfLoop, false) {
		s.Goto(stateLoopStatementEnd)
		return nil
	}

	if tok.Kind == token.KindWord && strings.ToLower(tok.Value) == "loop" {
		s.Rewrite(token.KindKeywordLoop, "loop")
		s.Goto(stateLoopStatementEndLoop)
		return nil
	}

	return s.Fail(ErrUnexpectedToken, "expected 'loop'")
}

/*
stateLoopStatementEndLoop expects the final ";", emits KindEndOfLoop, and
pops back to whatever pushed this loop statement.
*/
func stateLoopStatementEndLoop(s *State) error {
	tok := s.Token()

	if handleOwnedTrivia(s, KindEndOfLoop, false) {
		s.Goto(stateLoopStatementEndLoop)
		return nil
	}

	if tok.Kind == token.KindCharacter && tok.Value == ";" {
		end := s.Rewrite(token.KindBoundary, ";")
		s.Emit(KindEndOfLoop, s.ResolvedMarker(end), end, false)
		return s.Pop(1, nil)
	}

	return s.Fail(ErrUnexpectedToken, "expected ';' to close the loop")
}
