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

import "testing"

func TestLibraryClauseRoundTrips(t *testing.T) {
	src := "library ieee;\n"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)

	var found bool
	for _, b := range blocks {
		if b.Kind == KindLibraryClause && !b.MultiPart {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a closing library-clause block, got %+v", blocks)
	}
}

func TestUseClauseRoundTrips(t *testing.T) {
	src := "use ieee.std_logic_1164.all;\n"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)
}

func TestContextClauseRoundTrips(t *testing.T) {
	src := "context my_context;\n"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)
}

/*
TestLibraryClauseWithTrailingSpaceBeforeSemicolon exercises a space directly
before the terminating ";": the expression machine absorbs it into the
clause's own span, which then runs from the keyword through that space.
*/
func TestLibraryClauseWithTrailingSpaceBeforeSemicolon(t *testing.T) {
	src := "library ieee ;\n"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)
}

func TestMultipleClausesInSequence(t *testing.T) {
	src := "library ieee;\nuse ieee.std_logic_1164.all;\n\ncontext foo;\n"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)

	if blocks[0].Kind != KindStartOfDocument {
		t.Fatalf("expected the first block to be start-of-document, got %s", blocks[0].Kind)
	}
	if last := blocks[len(blocks)-1]; last.Kind != KindEndOfDocument {
		t.Fatalf("expected the last block to be end-of-document, got %s", last.Kind)
	}
}

func TestUnknownTopLevelKeywordFails(t *testing.T) {
	err := parseExpectError(t, "t", "bogus foo;\n")

	pe, ok := err.(*ParserError)
	if !ok {
		t.Fatalf("expected a *ParserError, got %T: %v", err, err)
	}
	if pe.Type != ErrUnexpectedToken {
		t.Fatalf("expected ErrUnexpectedToken, got %v", pe.Type)
	}
}

/*
TestDocumentEndingMidClauseFails checks that a document that ends before a
clause's terminating ";" is reported as a failure: end-of-document reaches
the clause's expression dispatch like any other unrecognized token, so it
surfaces as ErrUnreachableState rather than a dedicated "unexpected end"
case (spec.md §4.4 "dispatch").
*/
func TestDocumentEndingMidClauseFails(t *testing.T) {
	err := parseExpectError(t, "t", "library ieee")

	pe, ok := err.(*ParserError)
	if !ok {
		t.Fatalf("expected a *ParserError, got %T: %v", err, err)
	}
	if pe.Type != ErrUnreachableState {
		t.Fatalf("expected ErrUnreachableState, got %v", pe.Type)
	}
}
