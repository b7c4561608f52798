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
declPart is the declarative-part + end-clause dispatcher shared by every
header construct (entity, architecture, package, package body): after the
header's "is" it recognizes generic/port lists, object declarations, and the
construct's closing "end" clause.
*/
type declPart struct {
	endKeyword     string
	endKeywordKind token.Kind
}

var entityDeclPart = &declPart{endKeyword: "entity", endKeywordKind: token.KindKeywordEntity}
var architectureDeclPart = &declPart{endKeyword: "architecture", endKeywordKind: token.KindKeywordArchitecture}
var packageDeclPart = &declPart{endKeyword: "package", endKeywordKind: token.KindKeywordPackage}

func (d *declPart) stateBodyFunc() stateFunc { return d.stateBody }
func (d *declPart) stateEndFunc() stateFunc  { return d.stateEnd }

/*
stateBody dispatches on the declarative part between a header's "is" and its
closing "end" clause (SPEC_FULL.md §7): generic/port lists and
signal/variable/constant declarations are each pushed as their own
construct, returning here when done; "end" starts the end clause.
*/
func (d *declPart) stateBody(s *State) error {
	tok := s.Token()

	if handleDocumentTrivia(s) {
		s.Goto(d.stateBodyFunc())
		return nil
	}

	if tok.Kind == token.KindWord {
		switch strings.ToLower(tok.Value) {
		case "generic":
			s.Rewrite(token.KindKeywordGeneric, "generic")
			s.Goto(d.stateBodyFunc())
			if err := s.Push(genericList.stateListKeywordFunc()); err != nil {
				return err
			}
			s.SetMarker(s.EffectiveToken())
			return nil

		case "port":
			s.Rewrite(token.KindKeywordPort, "port")
			s.Goto(d.stateBodyFunc())
			if err := s.Push(portList.stateListKeywordFunc()); err != nil {
				return err
			}
			s.SetMarker(s.EffectiveToken())
			return nil

		case "signal", "variable", "constant":
			s.Goto(d.stateBodyFunc())
			if err := s.Push(stateObjectDeclarationInitial); err != nil {
				return err
			}
			s.SetMarker(tok)
			s.Reissue()
			return nil

		case "return":
			s.Rewrite(token.KindKeywordReturn, "return")
			s.Goto(d.stateBodyFunc())
			if err := s.Push(stateReturnKeyword); err != nil {
				return err
			}
			s.SetMarker(s.EffectiveToken())
			return nil

		case "for":
			s.Rewrite(token.KindKeywordFor, "for")
			s.Goto(d.stateBodyFunc())
			if err := s.Push(stateLoopStatementInitial); err != nil {
				return err
			}
			s.SetMarker(s.EffectiveToken())
			return nil

		case "end":
			endTok := s.Rewrite(token.KindKeywordEnd, "end")
			s.SetMarker(endTok)
			s.Goto(d.stateEndFunc())
			return nil
		}
	}

	return s.Fail(ErrUnexpectedToken, "expected generic, port, a declaration or end")
}

/*
stateEnd consumes the optional repeated construct keyword and/or name before
the closing ";", emitting the KindEndClause block and popping back to the
construct's caller (the document dispatcher, spec.md §4.3).
*/
func (d *declPart) stateEnd(s *State) error {
	tok := s.Token()

	if handleOwnedTrivia(s, KindEndClause, false) {
		s.Goto(d.stateEndFunc())
		return nil
	}

	if tok.Kind == token.KindWord {
		word := strings.ToLower(tok.Value)
		if word == d.endKeyword {
			s.Rewrite(d.endKeywordKind, word)
		} else {
			s.Rewrite(token.KindIdentifier, tok.Value)
		}
		s.Goto(d.stateEndFunc())
		return nil
	}

	if tok.Kind == token.KindCharacter && tok.Value == ";" {
		end := s.Rewrite(token.KindBoundary, ";")
		s.Emit(KindEndClause, s.ResolvedMarker(end), end, false)
		return s.Pop(1, nil)
	}

	return s.Fail(ErrUnexpectedToken, "expected ';' to close the end clause")
}

/*
headerTail is the shared tail of every header construct: consume trivia
until the word "is", emit the header block from the construct's keyword
through "is", then hand off to the declarative part.
*/
type headerTail struct {
	kind     Kind
	declPart *declPart
}

var entityTail = &headerTail{kind: KindEntityHeader, declPart: entityDeclPart}
var architectureTail = &headerTail{kind: KindArchitectureHeader, declPart: architectureDeclPart}
var packageTail = &headerTail{kind: KindPackageHeader, declPart: packageDeclPart}
var packageBodyTail = &headerTail{kind: KindPackageBodyHeader, declPart: packageDeclPart}

func (h *headerTail) stateExpectIsFunc() stateFunc { return h.stateExpectIs }

func (h *headerTail) stateExpectIs(s *State) error {
	tok := s.Token()

	if handleOwnedTrivia(s, h.kind, false) {
		s.Goto(h.stateExpectIsFunc())
		return nil
	}

	if tok.Kind == token.KindWord && strings.ToLower(tok.Value) == "is" {
		isTok := s.Rewrite(token.KindKeywordIs, "is")
		s.Emit(h.kind, s.ResolvedMarker(isTok), isTok, false)
		s.ClearMarker()
		s.Goto(h.declPart.stateBodyFunc())
		return nil
	}

	return s.Fail(ErrUnexpectedToken, "expected 'is'")
}

// --- entity ---------------------------------------------------------------

func stateEntityHeaderInitial(s *State) error {
	tok := s.Token()

	if handleOwnedTrivia(s, KindEntityHeader, false) {
		s.Goto(stateEntityHeaderInitial)
		return nil
	}

	if tok.Kind == token.KindWord {
		s.Rewrite(token.KindIdentifier, tok.Value)
		s.Goto(entityTail.stateExpectIsFunc())
		return nil
	}

	return s.Fail(ErrUnexpectedToken, "expected an entity name")
}

// --- architecture ----------------------------------------------------------

func stateArchitectureHeaderInitial(s *State) error {
	tok := s.Token()

	if handleOwnedTrivia(s, KindArchitectureHeader, false) {
		s.Goto(stateArchitectureHeaderInitial)
		return nil
	}

	if tok.Kind == token.KindWord {
		s.Rewrite(token.KindIdentifier, tok.Value)
		s.Goto(stateArchitectureHeaderOf)
		return nil
	}

	return s.Fail(ErrUnexpectedToken, "expected an architecture name")
}

func stateArchitectureHeaderOf(s *State) error {
	tok := s.Token()

	if handleOwnedTrivia(s, KindArchitectureHeader, false) {
		s.Goto(stateArchitectureHeaderOf)
		return nil
	}

	if tok.Kind == token.KindWord && strings.ToLower(tok.Value) == "of" {
		s.Rewrite(token.KindKeywordOf, "of")
		s.Goto(stateArchitectureHeaderEntityName)
		return nil
	}

	return s.Fail(ErrUnexpectedToken, "expected 'of'")
}

func stateArchitectureHeaderEntityName(s *State) error {
	tok := s.Token()

	if handleOwnedTrivia(s, KindArchitectureHeader, false) {
		s.Goto(stateArchitectureHeaderEntityName)
		return nil
	}

	if tok.Kind == token.KindWord {
		s.Rewrite(token.KindIdentifier, tok.Value)
		s.Goto(architectureTail.stateExpectIsFunc())
		return nil
	}

	return s.Fail(ErrUnexpectedToken, "expected the entity name")
}

// --- package / package body -------------------------------------------------

/*
statePackageHeaderInitial does not yet know whether it is building a plain
package header or a package body header, so trivia seen here is not emitted
as a block of its own: it stays inside the pending span that starts at the
"package" keyword, and that span becomes the first fragment of whichever
header Kind is decided (at "body", or at the package name).
*/
func statePackageHeaderInitial(s *State) error {
	tok := s.Token()

	switch tok.Kind {
	case token.KindSpace, token.KindIndentation, token.KindLinebreak,
		token.KindSingleLineComment, token.KindMultiLineComment:
		s.Goto(statePackageHeaderInitial)
		return nil
	}

	if tok.Kind == token.KindWord {
		if strings.ToLower(tok.Value) == "body" {
			s.Rewrite(token.KindKeywordBody, "body")
			s.Goto(statePackageHeaderBodyName)
			return nil
		}
		s.Rewrite(token.KindIdentifier, tok.Value)
		s.Goto(packageTail.stateExpectIsFunc())
		return nil
	}

	return s.Fail(ErrUnexpectedToken, "expected a package name or 'body'")
}

func statePackageHeaderBodyName(s *State) error {
	tok := s.Token()

	if handleOwnedTrivia(s, KindPackageBodyHeader, false) {
		s.Goto(statePackageHeaderBodyName)
		return nil
	}

	if tok.Kind == token.KindWord {
		s.Rewrite(token.KindIdentifier, tok.Value)
		s.Goto(packageBodyTail.stateExpectIsFunc())
		return nil
	}

	return s.Fail(ErrUnexpectedToken, "expected a package name")
}
