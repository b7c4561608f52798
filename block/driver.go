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
	"github.com/krotik/vhdlblock/config"
	"github.com/krotik/vhdlblock/internal/diag"
	"github.com/krotik/vhdlblock/token"
)

/*
Result is one item of the block output sequence: either a completed block or
a terminal error. Once Err is non-nil the sequence is over.
*/
type Result struct {
	Block *Block
	Err   error
}

/*
Iterator is a pull-style view over the block output sequence, for callers
that prefer Next() over a channel.
*/
type Iterator struct {
	ch   <-chan Result
	done bool
}

/*
Next returns the next block in source order. ok is false once the sequence
is exhausted (successfully or with err set).
*/
func (it *Iterator) Next() (b *Block, err error, ok bool) {
	if it.done {
		return nil, nil, false
	}

	r, open := <-it.ch
	if !open {
		it.done = true
		return nil, nil, false
	}

	if r.Err != nil {
		it.done = true
		return nil, r.Err, false
	}

	return r.Block, nil, true
}

/*
Parse returns a pull iterator over the blocks recognized in tokens. logger
may be nil.
*/
func Parse(source string, tokens <-chan *token.Token, logger diag.Logger) *Iterator {
	return &Iterator{ch: ParseStreaming(source, tokens, logger)}
}

/*
ParseStreaming runs the driver loop (spec.md §4.1) and returns a channel of
Results in strict source order, one per emitted block, terminated by either
channel closure (clean end of document) or a single Result carrying Err. The
token stream is consumed through a token.LABuffer sized by
config.LookAheadSize (SPEC_FULL.md §2.4/§6). The buffer is local to the
driver goroutine; neither callers nor state functions can peek into it.
*/
func ParseStreaming(source string, tokens <-chan *token.Token, logger diag.Logger) <-chan Result {
	out := make(chan Result)

	go func() {
		defer close(out)

		s := newState(source, logger)
		la := token.NewLABuffer(tokens, config.Int(config.LookAheadSize))

		fail := func(err error) {
			s.logger.LogError(err)
			out <- Result{Err: err}
		}

		t, open := la.Next()
		if !open {
			fail(s.Fail(ErrUnexpectedEnd, "token stream was empty"))
			return
		}
		if t.Kind != token.KindStartOfDocument {
			fail(newParserError(source, ErrUnexpectedToken, "expected start of document", t))
			return
		}

		// Lifecycle: consume the start-of-document token and emit its
		// block directly - this precedes the first invocation of any
		// state function (spec.md §3 "Lifecycle").
		s.token = t
		sod := New(KindStartOfDocument, nil, t, t, false)
		s.lastBlock = sod
		out <- Result{Block: sod}
		s.marker = nil
		s.nextState = stateDocument

		for {
			t, open := la.Next()
			if !open {
				break
			}
			s.token = t

			if err := stepToken(s, out); err != nil {
				fail(err)
				return
			}

			if t.Kind == token.KindEndOfDocument {
				if s.StackDepth() != 0 {
					fail(s.Fail(ErrUnexpectedEnd, "end of document reached mid-construct"))
					return
				}
				if s.lastBlock == nil || s.lastBlock.Kind != KindEndOfDocument {
					fail(s.Fail(ErrUnexpectedEnd, "end of document reached without a terminating block"))
					return
				}
				return
			}
		}

		fail(s.Fail(ErrUnexpectedEnd, "token stream closed before end of document"))
	}()

	return out
}

/*
stepToken implements one driver turn for a freshly read token: the splice
step, lazy marker establishment, draining pending blocks, invoking the
current state, and following any reissue request (spec.md §4.1 steps 2-5).
*/
func stepToken(s *State, out chan<- Result) error {
	t := s.token

	// Step 2: splice a pending rewrite into the chain.
	if s.newToken != nil {
		if s.marker == t.Previous() {
			s.marker = s.newToken
		}
		s.newToken.SpliceBefore(t)
		s.newToken = nil
	}

	// Step 3: lazy marker establishment.
	if s.marker == nil {
		s.marker = t
	}

	// Step 4: drain any blocks queued by the previous turn.
	drain(s, out)

	// Step 5: run the current state.
	if err := s.nextState(s); err != nil {
		return err
	}

	for s.reissue {
		s.reissue = false
		drain(s, out)
		if err := s.nextState(s); err != nil {
			return err
		}
	}

	drain(s, out)

	return nil
}

/*
drain yields every block queued on state.newBlock, collapsing a linebreak
that immediately follows another linebreak or an empty-line into an
empty-line block (spec.md §4.1 step 4).
*/
func drain(s *State, out chan<- Result) {
	for s.newBlock != nil {
		nb := s.newBlock
		s.newBlock = nb.nextBlock

		if nb.Kind == KindLinebreak && s.lastBlock != nil &&
			(s.lastBlock.Kind == KindLinebreak || s.lastBlock.Kind == KindEmptyLine) {
			nb.Kind = KindEmptyLine
		}

		s.lastBlock = nb
		out <- Result{Block: nb}
	}
	s.newBlockTail = nil
}
