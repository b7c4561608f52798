/*
 * vhdlblock
 *
 * Copyright 2024 vhdlblock authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"testing"
)

func TestConfig(t *testing.T) {

	if res := Str(MaxNestingDepth); res != "256" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(MaxNestingDepth); res != 256 {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(LookAheadSize); res != 3 {
		t.Error("Unexpected result:", res)
		return
	}
}
