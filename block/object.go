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
Object declarations (signal/variable/constant) are treated, like the library
and use clauses, as a single ended-by-semicolon span (spec.md §4.4 variant
1) covering the identifier, optional type mark and optional default value
together - the same representative level of detail the return statement
gives its expression, rather than a full type-mark grammar (grounded on
original_source/pyVHDLParser/Groups/Object.py's existence without usable
content).
*/
var objectDeclarationExpr = exprConfigDefaults(exprConfig{
	variant:        exprEndedBySemicolon,
	blockKind:      KindObjectDeclaration,
	popOnTerminate: 1,
})

var objectDeclarationKeywords = map[string]token.Kind{
	"signal":   token.KindKeywordSignal,
	"variable": token.KindKeywordVariable,
	"constant": token.KindKeywordConstant,
}

/*
stateObjectDeclarationInitial recognizes the signal/variable/constant
keyword and hands the remainder of the declaration to the shared
ended-by-semicolon expression machine.
*/
func stateObjectDeclarationInitial(s *State) error {
	tok := s.Token()

	if tok.Kind == token.KindWord {
		if kind, ok := objectDeclarationKeywords[strings.ToLower(tok.Value)]; ok {
			s.Rewrite(kind, strings.ToLower(tok.Value))
			s.Goto(objectDeclarationExpr.stateExpressionFunc())
			return nil
		}
	}

	return s.Fail(ErrUnexpectedToken, "expected signal, variable or constant")
}
