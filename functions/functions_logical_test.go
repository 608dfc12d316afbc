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

func TestAndOr(t *testing.T) {
	assert.Equal(t, 1.0, call(t, "AND", 1.0, "yes", 5.0))
	assert.Equal(t, 0.0, call(t, "AND", 1.0, 0.0))
	assert.Equal(t, 0.0, call(t, "AND", 1.0, nil))
	assert.Equal(t, 1.0, call(t, "OR", 0.0, "", 2.0))
	assert.Equal(t, 0.0, call(t, "OR", 0.0, "", nil))
}

func TestNot(t *testing.T) {
	assert.Equal(t, 0.0, call(t, "NOT", 1.0))
	assert.Equal(t, 1.0, call(t, "NOT", 0.0))
	assert.Equal(t, 1.0, call(t, "NOT", nil))
}

func TestBooleanConstants(t *testing.T) {
	assert.Equal(t, 1.0, call(t, "TRUE"))
	assert.Equal(t, 0.0, call(t, "FALSE"))
}
