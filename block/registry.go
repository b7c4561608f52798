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
blockClass is the registry entry for one concrete block Kind: its initial
state function and the names of every state function involved in producing
it. Grounded on the teacher's astNodeMap (parser/parser.go init()); because
Go has no reflection-free way to enumerate a family's "state…" methods the
way the original's metaclass does, States is populated by explicit literal
registration (spec.md §4.8 "no runtime role in parsing").
*/
type blockClass struct {
	Kind    Kind
	Initial stateFunc
	States  []string
}

var registry = map[Kind]*blockClass{}

/*
register adds one block family's metadata to the package registry. Called
from each family's own init().
*/
func register(kind Kind, initial stateFunc, states []string) {
	registry[kind] = &blockClass{Kind: kind, Initial: initial, States: states}
}

/*
Registry exposes the block class metadata read-only, for test generators and
documentation. It plays no role in parsing itself.
*/
func Registry() map[Kind]*blockClass {
	out := make(map[Kind]*blockClass, len(registry))
	for k, v := range registry {
		out[k] = v
	}
	return out
}

func init() {
	register(KindStartOfDocument, nil, []string{"stateDocument"})

	register(KindLibraryClause, stateLibraryClauseInitial, []string{
		"stateLibraryClauseInitial",
	})
	register(KindUseClause, stateUseClauseInitial, []string{
		"stateUseClauseInitial",
	})
	register(KindContextClause, stateContextClauseInitial, []string{
		"stateContextClauseInitial",
	})

	register(KindEntityHeader, stateEntityHeaderInitial, []string{
		"stateEntityHeaderInitial", "headerTail.stateExpectIs",
	})
	register(KindArchitectureHeader, stateArchitectureHeaderInitial, []string{
		"stateArchitectureHeaderInitial", "stateArchitectureHeaderOf",
		"stateArchitectureHeaderEntityName", "headerTail.stateExpectIs",
	})
	register(KindPackageHeader, statePackageHeaderInitial, []string{
		"statePackageHeaderInitial", "headerTail.stateExpectIs",
	})
	register(KindPackageBodyHeader, statePackageHeaderInitial, []string{
		"statePackageHeaderInitial", "statePackageHeaderBodyName", "headerTail.stateExpectIs",
	})

	register(KindGenericOpen, nil, []string{
		"listConfig.stateListKeyword", "listConfig.stateOpeningParenthesis",
		"listConfig.stateItemRemainder", "listConfig.stateItemDelimiter",
		"listConfig.stateClosingParenthesis",
	})
	register(KindPortOpen, nil, []string{
		"listConfig.stateListKeyword", "listConfig.stateOpeningParenthesis",
		"listConfig.stateItemRemainder", "listConfig.stateItemDelimiter",
		"listConfig.stateClosingParenthesis",
	})

	register(KindObjectDeclaration, stateObjectDeclarationInitial, []string{
		"stateObjectDeclarationInitial", "exprConfig.stateExpression", "exprConfig.stateWhitespace1",
	})

	register(KindReturnStatement, stateReturnKeyword, []string{
		"stateReturnKeyword", "stateWhitespace1",
		"exprConfig.stateExpression", "exprConfig.stateWhitespace1",
	})

	register(KindLoopStatement, stateLoopStatementInitial, []string{
		"stateLoopStatementInitial", "stateLoopStatementIn", "stateLoopStatementRangeHigh",
		"stateLoopStatementBody", "stateLoopStatementEnd", "stateLoopStatementEndLoop",
		"exprConfig.stateExpression", "exprConfig.stateWhitespace1",
	})
}
