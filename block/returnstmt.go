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
returnExpr is the ended-by-semicolon expression machine used for a return
statement's optional value (spec.md §4.6). popOnTerminate is 2: it unwinds
both the expression's own frame and the error-trap frame stateReturnKeyword
pushed alongside it, landing back on whatever called into the return
statement.
*/
var returnExpr = exprConfigDefaults(exprConfig{
	variant:        exprEndedBySemicolon,
	endKind:        KindEndOfReturn,
	popOnTerminate: 2,
})

/*
stateReturnKeyword is the return statement's initial state, entered right
after the "return" keyword token has been rewritten and marked (spec.md
§4.6 "Initial").
*/
func stateReturnKeyword(s *State) error {
	tok := s.Token()

	if tok.Kind == token.KindCharacter && tok.Value == ";" {
		end := s.Rewrite(token.KindBoundary, ";")
		s.EmitTerminated(KindReturnStatement, KindEndOfReturn, end)
		return s.Pop(1, nil)
	}

	if tok.Kind == token.KindCharacter && tok.Value == "(" {
		open := s.Rewrite(token.KindBoundary, "(")
		s.Emit(KindReturnStatement, s.ResolvedMarker(open), open, true)
		if err := s.Push(returnExpr.stateExpressionFunc()); err != nil {
			return err
		}
		if err := s.AdjustCounter(1, false); err != nil {
			return err
		}
		return nil
	}

	if handleOwnedTrivia(s, KindReturnStatement, false) {
		s.Goto(stateWhitespace1)
		return nil
	}

	return s.Fail(ErrUnreachableState, "unexpected token after 'return'")
}

/*
stateWhitespace1 is the return statement's own whitespace state (spec.md
§4.6 "stateWhitespace1"): ";" still closes with no expression; trivia is
handled like the shared expression whitespace state; anything else means
the current token belongs to the return value expression, so whatever
"return" fragment is still pending is flushed, the expression state is
pushed, and the token is reissued into it without advancing - the only
place this engine re-invokes a state without advancing (spec.md §4.6, §9).
*/
func stateWhitespace1(s *State) error {
	tok := s.Token()

	if tok.Kind == token.KindCharacter && tok.Value == ";" {
		end := s.Rewrite(token.KindBoundary, ";")
		s.EmitTerminated(KindReturnStatement, KindEndOfReturn, end)
		return s.Pop(1, nil)
	}

	if handleOwnedTrivia(s, KindReturnStatement, false) {
		s.Goto(stateWhitespace1)
		return nil
	}

	flushFragment(s, KindReturnStatement)
	if err := s.Push(returnExpr.stateExpressionFunc()); err != nil {
		return err
	}
	s.SetMarker(s.Token())
	s.Reissue()

	return nil
}
