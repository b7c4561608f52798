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
	"reflect"
	"runtime"
	"strings"

	"github.com/krotik/vhdlblock/config"
	"github.com/krotik/vhdlblock/internal/diag"
	"github.com/krotik/vhdlblock/token"
)

/*
stateFunc is a state of the block engine: it reads State.Token() and may
rewrite it, emit blocks, adjust the marker/counter/stack, and choose the
next state to run. Grounded on the teacher's lexFunc / stateLex idiom,
generalized from rune input to token input and from a single return value to
an explicit error return (spec.md §9 "Exceptions for control flow → result-
typed returns").
*/
type stateFunc func(*State) error

/*
frame is one suspended (state, counter) pair on the parser state's stack.
*/
type frame struct {
	state   stateFunc
	counter int
}

/*
State is the mutable context threaded through state functions, as described
in spec.md §3 "Parser state".
*/
type State struct {
	Source string

	token    *token.Token
	newToken *token.Token

	newBlock     *Block
	newBlockTail *Block
	lastBlock    *Block

	marker *token.Token

	counter int
	stack   []frame

	nextState stateFunc
	reissue   bool

	logger diag.Logger
}

/*
newState creates the initial parser state. The caller still owes it the
start-of-document token and an initial nextState (set by the driver).
*/
func newState(source string, logger diag.Logger) *State {
	if logger == nil {
		logger = diag.NewNullLogger()
	}
	return &State{Source: source, logger: logger}
}

/*
Token returns the token currently being processed.
*/
func (s *State) Token() *token.Token {
	return s.token
}

/*
EffectiveToken returns the token that will represent the current position in
the chain once any pending rewrite has taken effect: newToken if a rewrite
is pending, else token. Block end-tokens and markers should generally be
taken from here so a rewritten token is the one referenced, not the
generic word/character it replaced.
*/
func (s *State) EffectiveToken() *token.Token {
	if s.newToken != nil {
		return s.newToken
	}
	return s.token
}

/*
Rewrite replaces the current token in the chain with a new token of the
given kind and value, effective on the next driver turn (spec.md §4.2
"Rewrite").
*/
func (s *State) Rewrite(kind token.Kind, value string) *token.Token {
	nt := s.token.Rewrite(kind, value)
	s.newToken = nt
	return nt
}

/*
Marker returns the first token of the block currently under construction.
*/
func (s *State) Marker() *token.Token {
	return s.marker
}

/*
SetMarker explicitly sets the block-under-construction start token.
*/
func (s *State) SetMarker(t *token.Token) {
	s.marker = t
}

/*
ClearMarker clears the marker; the driver will set it to the next token read
(spec.md §4.1 step 3, "lazy marker establishment").
*/
func (s *State) ClearMarker() {
	s.marker = nil
}

/*
Counter returns the current nesting counter.
*/
func (s *State) Counter() int {
	return s.counter
}

/*
SetCounter overwrites the nesting counter.
*/
func (s *State) SetCounter(v int) {
	s.counter = v
}

/*
AdjustCounter adds delta to the nesting counter and fails with a bracket
mismatch if it would go below the allowed floor (-1 when belowZeroOK is set,
for the constructs that treat a lone unmatched ")" at depth 0 as a soft
exit; 0 otherwise) or above config.MaxNestingDepth.
*/
func (s *State) AdjustCounter(delta int, belowZeroOK bool) error {
	floor := 0
	if belowZeroOK {
		floor = -1
	}

	next := s.counter + delta
	if next < floor {
		return s.Fail(ErrBracketMismatch, "unmatched closing parenthesis")
	}
	if next > config.Int(config.MaxNestingDepth) {
		return s.Fail(ErrBracketMismatch, "nesting depth limit exceeded")
	}

	s.counter = next
	return nil
}

/*
Goto sets the state function to run on the next token.
*/
func (s *State) Goto(next stateFunc) {
	s.logTransition(s.nextState, next)
	s.nextState = next
}

/*
Reissue marks the current token for re-dispatch: after the active state
function returns, the driver will invoke the (possibly just-changed)
nextState again on the same token, without advancing, per spec.md §4.6/§9.
This is the only place the engine re-invokes a state without advancing.
*/
func (s *State) Reissue() {
	s.reissue = true
}

/*
Push suspends the state function that would otherwise run next (i.e. the
current value of nextState, which the caller is expected to have already
pointed at the desired return continuation) together with the current
counter, then transitions to next and clears the marker (spec.md §4.2
"Push").
*/
func (s *State) Push(next stateFunc) error {
	if len(s.stack) >= config.Int(config.MaxNestingDepth) {
		return s.Fail(ErrBracketMismatch, "nesting depth limit exceeded")
	}

	s.stack = append(s.stack, frame{state: s.nextState, counter: s.counter})
	s.nextState = next
	s.marker = nil

	return nil
}

/*
Pop pops n suspended frames; the last popped frame's state and counter are
restored. If marker is non-nil it overrides the default (cleared) marker
(spec.md §4.2 "Pop").
*/
func (s *State) Pop(n int, marker *token.Token) error {
	if n <= 0 || n > len(s.stack) {
		return s.Fail(ErrUnreachableState, "pop count exceeds stack depth")
	}

	var last frame
	for i := 0; i < n; i++ {
		last = s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
	}

	s.nextState = last.state
	s.counter = last.counter
	s.marker = marker

	return nil
}

/*
StackDepth returns the number of suspended frames, used by the driver to
detect an unexpected end-of-document mid-construct.
*/
func (s *State) StackDepth() int {
	return len(s.stack)
}

/*
ResolvedMarker returns the marker, unless the marker has raced ahead - via
the lazy marker establishment in stepToken - to reference the very token
being rewritten into end in this same call. A rewrite only splices
backward (Token.Rewrite inherits the old previous pointer; SpliceBefore
only ever updates the token ahead of it and the new token itself), so a
forward walk starting from that pre-rewrite token would never reach end.
When that happens there was no significant token between the marker and
the terminator, so end stands in for both ends of the span.
*/
func (s *State) ResolvedMarker(end *token.Token) *token.Token {
	if s.marker == s.token {
		return end
	}
	return s.marker
}

/*
EmitTerminated emits the pair every construct-closing terminator produces: an
owning block running from the marker up to end.Previous() (end itself is
excluded so the owning block and the terminator's own block never overlap),
followed by the terminator's own block spanning just end. The owning block is
skipped entirely when the marker raced ahead to equal the pre-rewrite current
token (the same degenerate case ResolvedMarker accounts for): with nothing
between the marker and the terminator there is no owning span to emit.
*/
func (s *State) EmitTerminated(ownerKind, endKind Kind, end *token.Token) {
	if s.marker != s.token {
		s.Emit(ownerKind, s.marker, end.Previous(), false)
	}
	s.Emit(endKind, end, end, false)
}

/*
Emit constructs a block spanning [start, end] and appends it to the chain of
blocks pending emission this turn (spec.md §4.2 "Emit").
*/
func (s *State) Emit(kind Kind, start, end *token.Token, multiPart bool) *Block {
	var prev *Block
	if s.newBlockTail != nil {
		prev = s.newBlockTail
	} else {
		prev = s.lastBlock
	}

	b := New(kind, prev, start, end, multiPart)

	if s.newBlock == nil {
		s.newBlock = b
	} else {
		s.newBlockTail.nextBlock = b
	}
	s.newBlockTail = b

	return b
}

/*
Fail raises a block-parser error referencing the current token.
*/
func (s *State) Fail(t error, detail string) error {
	return newParserError(s.Source, t, detail, s.token)
}

/*
FailAt raises a block-parser error referencing an explicit token, used when
the offending token is not state.token (e.g. a bracket mismatch discovered
while closing a list item whose opening paren has already been consumed).
*/
func (s *State) FailAt(t error, detail string, tok *token.Token) error {
	return newParserError(s.Source, t, detail, tok)
}

/*
logTransition names the states either side of a Goto, grounded on the
teacher's pervasive "from -> to" debug logging in engine/processor.go. from
is nil on the very first Goto of a parse, before any state has run yet.
*/
func (s *State) logTransition(from, to stateFunc) {
	s.logger.LogDebug(fmt.Sprintf("state transition %s -> %s on %s",
		stateFuncName(from), stateFuncName(to), s.token.String()))
}

/*
stateFuncName resolves a stateFunc (a bound method value on most of this
package's state machines) to a short, readable name for logging.
*/
func stateFuncName(f stateFunc) string {
	if f == nil {
		return "<none>"
	}
	name := runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
