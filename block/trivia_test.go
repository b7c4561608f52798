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
TestEmptyLineCollapse checks spec.md §8's empty-line collapse invariant: two
adjacent linebreaks never both surface as linebreak blocks, the second
becomes an empty-line block.
*/
func TestEmptyLineCollapse(t *testing.T) {
	src := "library ieee;\n\n\nuse ieee.std_logic_1164.all;\n"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}

	var linebreaks, emptyLines int
	for i, b := range blocks {
		switch b.Kind {
		case KindLinebreak:
			linebreaks++
			if i > 0 && blocks[i-1].Kind == KindLinebreak {
				t.Fatalf("two adjacent linebreak blocks at index %d", i)
			}
		case KindEmptyLine:
			emptyLines++
		}
	}
	if linebreaks == 0 {
		t.Fatalf("expected at least one linebreak block")
	}
	if emptyLines == 0 {
		t.Fatalf("expected the second consecutive linebreak to collapse into an empty-line block")
	}
}

/*
TestMultiLineCommentFollowedByLinebreak checks spec.md §4.4: a linebreak
immediately after a multi-line comment is a bare linebreak block, not a
continuation fragment of the owning expression.
*/
func TestMultiLineCommentFollowedByLinebreak(t *testing.T) {
	src := "return a /* c */\n + b;"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}

	var commentIdx = -1
	for i, b := range blocks {
		if b.Kind == KindMultiLineComment {
			commentIdx = i
		}
	}
	if commentIdx < 0 {
		t.Fatalf("expected a multi-line-comment block, got %v", blocks)
	}
	next := blocks[commentIdx+1]
	if next.Kind != KindLinebreak {
		t.Fatalf("expected the linebreak right after the comment, got %s", next.Kind)
	}
	if next.MultiPart {
		t.Fatalf("a linebreak directly after a multi-line comment must not be a continuation fragment")
	}
}

/*
TestMultiLineCommentFollowedBySpace checks spec.md §4.4: a space
immediately after a multi-line comment attaches to that comment rather
than being absorbed as a continuation of the owning expression.
*/
func TestMultiLineCommentFollowedBySpace(t *testing.T) {
	src := "return a /* c */ + b;"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)
}

func TestSingleLineCommentInsideExpression(t *testing.T) {
	src := "return a + -- trailing\n  b;"
	blocks := parseToBlocks(t, "t", src)

	if got := reconstruct(blocks); got != src {
		t.Fatalf("reconstruct mismatch:\n got:  %q\n want: %q", got, src)
	}
	assertFragmentGroupsClose(t, blocks)
}

func TestIdempotentReparse(t *testing.T) {
	src := "library ieee;\nuse ieee.std_logic_1164.all;\n\nentity e is\nend e;"

	first := parseToBlocks(t, "t", src)
	out := reconstruct(first)

	second := parseToBlocks(t, "t", out)

	kindsOf := func(bs []*Block) []Kind {
		ks := make([]Kind, len(bs))
		for i, b := range bs {
			ks[i] = b.Kind
		}
		return ks
	}

	k1, k2 := kindsOf(first), kindsOf(second)
	if len(k1) != len(k2) {
		t.Fatalf("re-parse produced a different block count: %d vs %d", len(k1), len(k2))
	}
	for i := range k1 {
		if k1[i] != k2[i] {
			t.Fatalf("block[%d] kind differs on re-parse: %s vs %s", i, k1[i], k2[i])
		}
	}
}
