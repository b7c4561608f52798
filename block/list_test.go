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

/*
TestPortListRoundTrips is scenario 4 of spec.md §8, embedded in an entity
header (the only context a port list can appear in): open, two items, a
delimiter and a close, each carrying the exact raw source text of its span.
*/
func TestPortListRoundTrips(t *testing.T) {
	src := "entity e is port (x : in std_logic; y : out std_logic);\nend e;"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)

	var items []string
	var sawOpen, sawDelim, sawClose bool
	for _, b := range blocks {
		switch b.Kind {
		case KindPortOpen:
			sawOpen = true
		case KindPortItem:
			items = append(items, blockText(b))
		case KindPortDelimiter:
			sawDelim = true
		case KindPortClose:
			sawClose = true
		}
	}

	if !sawOpen || !sawDelim || !sawClose {
		t.Fatalf("missing port-list structural blocks: open=%v delim=%v close=%v", sawOpen, sawDelim, sawClose)
	}
	wantItems := []string{"x : in std_logic", "y : out std_logic"}
	if len(items) != len(wantItems) {
		t.Fatalf("items = %v, want %v", items, wantItems)
	}
	for i := range wantItems {
		if items[i] != wantItems[i] {
			t.Fatalf("item[%d] = %q, want %q", i, items[i], wantItems[i])
		}
	}
}

func TestGenericListRoundTrips(t *testing.T) {
	src := "entity e is generic (width : integer);\nend e;"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)
}

/*
TestPortListEmpty exercises the opening-parenthesis protocol's immediate-
close path: a list with no items at all.
*/
func TestPortListEmpty(t *testing.T) {
	src := "entity e is port ();\nend e;"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)

	var sawItem bool
	for _, b := range blocks {
		if b.Kind == KindPortItem {
			sawItem = true
		}
	}
	if sawItem {
		t.Fatalf("an empty list must not produce any item blocks")
	}
}

/*
TestPortListItemWithNestedParens exercises the item-remainder protocol's
counter: an item containing its own "( ... )" must not be split at the
inner ";"-free parenthesis boundary.
*/
func TestPortListItemWithNestedParens(t *testing.T) {
	src := "entity e is port (x : std_logic_vector(7 downto 0));\nend e;"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)

	var item string
	for _, b := range blocks {
		if b.Kind == KindPortItem {
			item = blockText(b)
		}
	}
	if want := "x : std_logic_vector(7 downto 0)"; item != want {
		t.Fatalf("item = %q, want %q", item, want)
	}
}

/*
TestPortListTruncatedDocumentFails checks that a document ending mid-list
(the state stack still holds the list's suspended frames) is reported as
an unexpected end-of-document rather than parsing cleanly.
*/
func TestPortListTruncatedDocumentFails(t *testing.T) {
	err := parseExpectError(t, "t", "entity e is port (x : std_logic_vector(7 downto 0)")

	pe, ok := err.(*ParserError)
	if !ok {
		t.Fatalf("expected a *ParserError, got %T: %v", err, err)
	}
	if pe.Type != ErrUnexpectedEnd {
		t.Fatalf("expected ErrUnexpectedEnd, got %v", pe.Type)
	}
}
