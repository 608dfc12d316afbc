/*
 * Copyright 2026 The Tabulab Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIfFunction(t *testing.T) {
	assert.Equal(t, "yes", call(t, "IF", 1.0, "yes", "no"))
	assert.Equal(t, "no", call(t, "IF", 0.0, "yes", "no"))
	// Truthiness follows the lenient boolean rules.
	assert.Equal(t, "no", call(t, "IF", "", "yes", "no"))
	assert.Equal(t, "no", call(t, "IF", nil, "yes", "no"))
	assert.Equal(t, "yes", call(t, "IF", "anything", "yes", "no"))
	assert.Error(t, callErr(t, "IF", 1.0, "yes"))
}

func TestSwitch(t *testing.T) {
	assert.Equal(t, "one", call(t, "SWITCH", 1.0, 1.0, "one", 2.0, "two"))
	assert.Equal(t, "two", call(t, "SWITCH", 2.0, 1.0, "one", 2.0, "two"))
	assert.Nil(t, call(t, "SWITCH", 3.0, 1.0, "one", 2.0, "two"))
	// Odd trailing argument is the default.
	assert.Equal(t, "other", call(t, "SWITCH", 3.0, 1.0, "one", "other"))
	// Matching uses the same loose equality as "=": "1" matches 1.
	assert.Equal(t, "one", call(t, "SWITCH", "1", 1.0, "one"))
	assert.Equal(t, "b", call(t, "SWITCH", "b", "a", "a", "b", "b"))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "x", call(t, "COALESCE", nil, "", "x", "y"))
	assert.Equal(t, 0.0, call(t, "COALESCE", nil, 0.0, "x"))
	assert.Nil(t, call(t, "COALESCE", nil, ""))
}
