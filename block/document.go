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
	"strings"

	"github.com/krotik/vhdlblock/token"
)

/*
documentKeyword is one entry of the start-of-document dispatch table
(spec.md §4.3), keyed by the keyword's canonical spelling: the token kind a
matching word rewrites to, and the state the construct is entered through.
*/
type documentKeyword struct {
	kind  token.Kind
	enter stateFunc
}

var documentKeywords = map[string]documentKeyword{
	"library":      {token.KindKeywordLibrary, stateLibraryClauseInitial},
	"use":          {token.KindKeywordUse, stateUseClauseInitial},
	"context":      {token.KindKeywordContext, stateContextClauseInitial},
	"entity":       {token.KindKeywordEntity, stateEntityHeaderInitial},
	"architecture": {token.KindKeywordArchitecture, stateArchitectureHeaderInitial},
	"package":      {token.KindKeywordPackage, statePackageHeaderInitial},
	"return":       {token.KindKeywordReturn, stateReturnKeyword},
}

/*
documentKeywordNames is the fixed keyword list, in dispatch-table order, quoted in the
dispatcher's "expected one of ..." failure (spec.md §4.3).
*/
var documentKeywordNames = []string{
	"library", "use", "context", "entity", "architecture", "package", "return",
}

/*
stateDocument is the start-of-document dispatcher (spec.md §4.3): it
recognizes top-level VHDL constructs by lowercase keyword match, emits
trivia blocks, and closes the document on end-of-document.
*/
func stateDocument(s *State) error {
	tok := s.Token()

	if handleDocumentTrivia(s) {
		s.Goto(stateDocument)
		return nil
	}

	if tok.Kind == token.KindEndOfDocument {
		end := s.EffectiveToken()
		s.Emit(KindEndOfDocument, end, end, false)
		return nil
	}

	if tok.Kind == token.KindWord {
		word := strings.ToLower(tok.Value)
		if kw, ok := documentKeywords[word]; ok {
			s.Rewrite(kw.kind, word)
			s.Goto(stateDocument)

			if err := s.Push(kw.enter); err != nil {
				return err
			}
			s.SetMarker(s.EffectiveToken())

			return nil
		}
	}

	return s.Fail(ErrUnexpectedToken, fmt.Sprintf(
		"expected one of %s but found %s", strings.Join(documentKeywordNames, ", "), describeToken(tok)))
}

func describeToken(tok *token.Token) string {
	if tok.Kind == token.KindWord {
		return fmt.Sprintf("%q", tok.Value)
	}
	return tok.Kind.String()
}
