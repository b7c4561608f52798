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

	"github.com/krotik/vhdlblock/token"
)

/*
parseToBlocks runs the full lexer-to-block pipeline over src and returns
every block in source order, failing the test on the first parse error.
*/
func parseToBlocks(t *testing.T, name, src string) []*Block {
	t.Helper()

	it := Parse(name, token.Lex(name, src), nil)

	var out []*Block
	for {
		b, err, ok := it.Next()
		if err != nil {
			t.Fatalf("parse error: %v", err)
		}
		if !ok {
			break
		}
		out = append(out, b)
	}

	return out
}

/*
parseExpectError runs the pipeline over src and returns the error the
iterator stopped on, failing the test if parsing completed cleanly.
*/
func parseExpectError(t *testing.T, name, src string) error {
	t.Helper()

	it := Parse(name, token.Lex(name, src), nil)

	for {
		_, err, ok := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			t.Fatalf("expected a parse error but the document parsed cleanly")
		}
	}
}

/*
blockText concatenates the raw source text spanned by b.
*/
func blockText(b *Block) string {
	var sb strings.Builder
	for _, tok := range b.Tokens() {
		sb.WriteString(tok.Value)
	}
	return sb.String()
}

/*
reconstruct concatenates the raw text of every block in order, which must
equal the original source: every token is covered by exactly one block,
with no gaps and no overlaps (spec.md §4.2 "Emit").
*/
func reconstruct(blocks []*Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(blockText(b))
	}
	return sb.String()
}

/*
assertFragmentGroupsClose walks every block and, for each multi-part
fragment, checks that NextFragment eventually resolves to a closing
(non-multi-part) fragment of the same Kind - the invariant consumers rely
on to rejoin an interrupted construct (spec.md §4.7).
*/
func assertFragmentGroupsClose(t *testing.T, blocks []*Block) {
	t.Helper()

	for _, b := range blocks {
		if !b.MultiPart {
			continue
		}
		next := b.NextFragment()
		if next == nil {
			t.Fatalf("fragment group starting at %s never closes", b.String())
		}
		if next.Kind != b.Kind {
			t.Fatalf("NextFragment returned mismatched kind %s for %s", next.Kind, b.Kind)
		}
	}
}
