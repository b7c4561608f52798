/*
 * vhdlblock
 *
 * Copyright 2024 vhdlblock authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package token

import "github.com/krotik/common/datautil"

/*
LABuffer models a look-ahead buffer over a token channel, grounded on the
teacher's parser/helper.go LABuffer. It lets a caller peek ahead of the
token the driver is currently processing without letting state functions
themselves look further than one token, per the block engine's look-ahead
rule.
*/
type LABuffer struct {
	tokens <-chan *Token
	buffer *datautil.RingBuffer
}

/*
NewLABuffer creates a new look-ahead buffer of the given size, fed from c.
*/
func NewLABuffer(c <-chan *Token, size int) *LABuffer {
	if size < 1 {
		size = 1
	}

	ret := &LABuffer{tokens: c, buffer: datautil.NewRingBuffer(size)}

	for ret.buffer.Size() < size {
		v, more := <-ret.tokens
		if !more {
			break
		}
		ret.buffer.Add(v)
		if v.Kind == KindEndOfDocument {
			break
		}
	}

	return ret
}

/*
Next returns the next item in the buffer, refilling from the channel.
*/
func (b *LABuffer) Next() (*Token, bool) {
	ret := b.buffer.Poll()

	if v, more := <-b.tokens; more {
		b.buffer.Add(v)
	}

	if ret == nil {
		return nil, false
	}

	return ret.(*Token), true
}

/*
Peek looks inside the buffer starting with 0 as the next item to be
returned by Next.
*/
func (b *LABuffer) Peek(pos int) (*Token, bool) {
	if pos >= b.buffer.Size() {
		return nil, false
	}

	return b.buffer.Get(pos).(*Token), true
}
