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

/*
Library/use/context clauses are single-statement blocks terminated by ";",
grounded on spec.md §4.4 variant 1 (ended-by-semicolon) applied to the
dotted-name list between the keyword and the terminator. Each clause's whole
span - keyword through ";" - is emitted as one block of the clause's own
Kind; "popOnTerminate: 1" unwinds the single frame the document dispatcher
pushed for it, returning control to stateDocument.
*/
var libraryClauseExpr = exprConfigDefaults(exprConfig{
	variant:        exprEndedBySemicolon,
	blockKind:      KindLibraryClause,
	popOnTerminate: 1,
})

var useClauseExpr = exprConfigDefaults(exprConfig{
	variant:        exprEndedBySemicolon,
	blockKind:      KindUseClause,
	popOnTerminate: 1,
})

var contextClauseExpr = exprConfigDefaults(exprConfig{
	variant:        exprEndedBySemicolon,
	blockKind:      KindContextClause,
	popOnTerminate: 1,
})

func stateLibraryClauseInitial(s *State) error { return libraryClauseExpr.stateExpression(s) }
func stateUseClauseInitial(s *State) error     { return useClauseExpr.stateExpression(s) }
func stateContextClauseInitial(s *State) error { return contextClauseExpr.stateExpression(s) }
