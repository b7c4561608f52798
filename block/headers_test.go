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
	"testing"
)

func TestEntityHeaderRoundTrips(t *testing.T) {
	src := "entity counter is\nend entity;"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)

	var header []string
	for _, b := range blocks {
		if b.Kind == KindEntityHeader {
			header = append(header, blockText(b))
		}
	}
	if len(header) == 0 {
		t.Fatalf("expected an entity-header block, got %v", blocks)
	}
	if got := strings.Join(header, "|"); got != "entity|counter|is" {
		t.Fatalf("entity header fragments = %q", got)
	}
}

/*
TestArchitectureHeaderRoundTrips exercises the "architecture NAME of NAME
is" shape, which needs two distinct identifier states before the shared
headerTail takes over.
*/
func TestArchitectureHeaderRoundTrips(t *testing.T) {
	src := "architecture rtl of counter is\nend architecture;"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)

	var header []string
	for _, b := range blocks {
		if b.Kind == KindArchitectureHeader {
			header = append(header, blockText(b))
		}
	}
	if len(header) == 0 {
		t.Fatalf("expected an architecture-header block, got %v", blocks)
	}
	if got := strings.Join(header, "|"); got != "architecture|rtl|of|counter|is" {
		t.Fatalf("architecture header fragments = %q", got)
	}
}

func TestArchitectureHeaderMissingOfFails(t *testing.T) {
	err := parseExpectError(t, "t", "architecture rtl counter is\nend architecture;")

	pe, ok := err.(*ParserError)
	if !ok {
		t.Fatalf("expected a *ParserError, got %T: %v", err, err)
	}
	if pe.Type != ErrUnexpectedToken {
		t.Fatalf("expected ErrUnexpectedToken, got %v", pe.Type)
	}
}

func TestPackageHeaderRoundTrips(t *testing.T) {
	src := "package types is\nend package;"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)

	var found bool
	for _, b := range blocks {
		if b.Kind == KindPackageHeader {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a package-header block, got %v", blocks)
	}
}

/*
TestPackageBodyHeaderRoundTrips exercises the only document-level construct
whose block Kind is decided after a multi-token lookahead ("package" then
"body"): the package-header/package-body-header split (headers.go's
statePackageHeaderInitial).
*/
func TestPackageBodyHeaderRoundTrips(t *testing.T) {
	src := "package body types is\nend package body;"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)

	var found bool
	for _, b := range blocks {
		if b.Kind == KindPackageBodyHeader {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a package-body-header block, got %v", blocks)
	}
}

func TestEntityHeaderEndWithMatchingNameRoundTrips(t *testing.T) {
	src := "entity counter is\nend entity counter;"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)
}
