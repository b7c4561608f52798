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

func TestKindString(t *testing.T) {
	if s := KindLibraryClause.String(); s != "library-clause" {
		t.Errorf("unexpected Kind name: %s", s)
	}
	if s := Kind(9999).String(); s != "Kind(9999)" {
		t.Errorf("unexpected Kind name for unknown kind: %s", s)
	}
}

/*
TestNextFragmentSkipsInterleavedTrivia builds a block chain by hand - a
multi-part construct interrupted by a differently-kinded trivia block -
and checks that NextFragment walks past the trivia to the fragment that
closes the group (spec.md §4.7).
*/
func TestNextFragmentSkipsInterleavedTrivia(t *testing.T) {
	b1 := New(KindLibraryClause, nil, nil, nil, true)
	b2 := New(KindWhitespace, b1, nil, nil, true)
	b3 := New(KindLibraryClause, b2, nil, nil, true)
	b4 := New(KindLibraryClause, b3, nil, nil, false)

	if got := b1.NextFragment(); got != b4 {
		t.Fatalf("expected NextFragment to reach the closing fragment, got %v", got)
	}

	if got := b4.NextFragment(); got != b4 {
		t.Fatalf("a non-multi-part block must return itself, got %v", got)
	}
}

/*
TestNextFragmentUnterminatedGroupReturnsNil checks that a multi-part chain
with no closing fragment (the chain simply ends) reports nil rather than
panicking or looping.
*/
func TestNextFragmentUnterminatedGroupReturnsNil(t *testing.T) {
	b1 := New(KindLibraryClause, nil, nil, nil, true)
	New(KindWhitespace, b1, nil, nil, false)

	if got := b1.NextFragment(); got != nil {
		t.Fatalf("expected nil for an unterminated fragment group, got %v", got)
	}
}
