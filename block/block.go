/*
 * vhdlblock
 *
 * Copyright 2024 vhdlblock authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package block implements the token-to-block engine: a cooperative pushdown
state machine that consumes a lazy sequence of classified tokens and emits a
lazy sequence of typed, contiguous token spans ("blocks") corresponding to
VHDL syntactic constructs.
*/
package block

import (
	"bytes"
	"fmt"

	"github.com/krotik/vhdlblock/token"
)

/*
Kind identifies the concrete type of a block.
*/
type Kind int

/*
Block kinds. The kinds that open a construct are registered with their
state-function family in the package registry (see registry.go); trivia and
terminator kinds are not registered.
*/
const (
	KindStartOfDocument Kind = iota
	KindEndOfDocument

	// Trivia
	KindWhitespace
	KindLinebreak
	KindEmptyLine
	KindSingleLineComment
	KindMultiLineComment

	// Library/use/context clauses
	KindLibraryClause
	KindUseClause
	KindContextClause

	// Headers
	KindEntityHeader
	KindArchitectureHeader
	KindPackageHeader
	KindPackageBodyHeader
	KindEndClause

	// Generic/port lists
	KindGenericOpen
	KindGenericItem
	KindGenericDelimiter
	KindGenericClose
	KindPortOpen
	KindPortItem
	KindPortDelimiter
	KindPortClose

	// Object declarations
	KindObjectDeclaration

	// Expressions and their delimiters
	KindExpression
	KindEndOfExpression
	KindLoopDirection

	// Return statement
	KindReturnStatement
	KindEndOfReturn

	// Loop statement
	KindLoopStatement
	KindEndOfLoop
)

var kindNames = map[Kind]string{
	KindStartOfDocument:   "start-of-document",
	KindEndOfDocument:     "end-of-document",
	KindWhitespace:        "whitespace",
	KindLinebreak:         "linebreak",
	KindEmptyLine:         "empty-line",
	KindSingleLineComment: "single-line-comment",
	KindMultiLineComment:  "multi-line-comment",

	KindLibraryClause: "library-clause",
	KindUseClause:     "use-clause",
	KindContextClause: "context-clause",

	KindEntityHeader:        "entity-header",
	KindArchitectureHeader:  "architecture-header",
	KindPackageHeader:       "package-header",
	KindPackageBodyHeader:   "package-body-header",
	KindEndClause:           "end-clause",

	KindGenericOpen:       "generic-open",
	KindGenericItem:       "generic-item",
	KindGenericDelimiter:  "generic-delimiter",
	KindGenericClose:      "generic-close",
	KindPortOpen:          "port-open",
	KindPortItem:          "port-item",
	KindPortDelimiter:     "port-delimiter",
	KindPortClose:         "port-close",

	KindObjectDeclaration: "object-declaration",

	KindExpression:       "expression",
	KindEndOfExpression:  "end-of-expression",
	KindLoopDirection:    "loop-direction",

	KindReturnStatement: "return-statement",
	KindEndOfReturn:     "end-of-return",

	KindLoopStatement: "loop-statement",
	KindEndOfLoop:     "end-of-loop",
}

/*
String returns a human readable name for a Kind.
*/
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

/*
Block represents a contiguous span of tokens corresponding to one VHDL
syntactic construct (or fragment of one, when MultiPart is set).
*/
type Block struct {
	Kind Kind

	start *token.Token
	end   *token.Token

	previous *Block
	next     *Block

	// nextBlock chains secondary blocks constructed by the same state
	// function turn (spec.md §4.2 "Emit"), drained by the driver before the
	// next token is read.
	nextBlock *Block

	// MultiPart is true on every fragment of an interrupted construct
	// except (possibly) the last.
	MultiPart bool
}

/*
New creates a block spanning from start to end (inclusive), linked after
previous (which may be nil for the first block in a chain).
*/
func New(kind Kind, previous *Block, start, end *token.Token, multiPart bool) *Block {
	b := &Block{Kind: kind, start: start, end: end, previous: previous, MultiPart: multiPart}
	if previous != nil {
		previous.next = b
	}
	return b
}

/*
Start returns the first token of this block.
*/
func (b *Block) Start() *token.Token { return b.start }

/*
End returns the last token of this block.
*/
func (b *Block) End() *token.Token { return b.end }

/*
Previous returns the block immediately before this one in the chain.
*/
func (b *Block) Previous() *Block { return b.previous }

/*
Next returns the block immediately after this one in the chain.
*/
func (b *Block) Next() *Block { return b.next }

/*
Length returns the number of characters spanned by this block.
*/
func (b *Block) Length() int {
	return b.end.End.Absolute - b.start.Start.Absolute + 1
}

/*
Tokens returns every token from Start to End inclusive, in order.
*/
func (b *Block) Tokens() []*token.Token {
	var toks []*token.Token
	for t := b.start; t != nil; t = t.Next() {
		toks = append(toks, t)
		if t == b.end {
			break
		}
	}
	return toks
}

/*
ReverseTokens returns every token from End to Start inclusive, reverse order.
*/
func (b *Block) ReverseTokens() []*token.Token {
	var toks []*token.Token
	for t := b.end; t != nil; t = t.Previous() {
		toks = append(toks, t)
		if t == b.start {
			break
		}
	}
	return toks
}

/*
NextFragment walks forward - past any interleaved trivia blocks - until it
finds the fragment of the same dynamic Kind as b that closes the group
(MultiPart == false), the way downstream consumers rejoin a multi-part
construct (spec.md §4.7). Returns b itself if b is not a multi-part
fragment.
*/
func (b *Block) NextFragment() *Block {
	if !b.MultiPart {
		return b
	}

	last := b
	for cur := b.next; cur != nil; cur = cur.next {
		if cur.Kind != last.Kind {
			continue
		}
		if !cur.MultiPart {
			return cur
		}
		last = cur
	}

	return nil
}

/*
String renders the block the way the teacher's ASTNode.levelString renders
AST nodes: kind name followed by the raw token text it spans.
*/
func (b *Block) String() string {
	var buf bytes.Buffer
	buf.WriteString(b.Kind.String())

	if b.Kind != KindStartOfDocument && b.Kind != KindEndOfDocument {
		var text bytes.Buffer
		for _, t := range b.Tokens() {
			text.WriteString(t.Value)
		}
		buf.WriteString(fmt.Sprintf("(%q)", text.String()))
	}

	if b.MultiPart {
		buf.WriteString("*")
	}

	return buf.String()
}
