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


package coerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected float64
	}{
		{"nil is zero", nil, 0},
		{"float passthrough", 12.5, 12.5},
		{"bool true", true, 1},
		{"bool false", false, 0},
		{"plain string", "42", 42},
		{"currency decoration", "$1,234.50", 1234.5},
		{"percent decoration", "12%", 12},
		{"garbage is zero, never NaN", "abc", 0},
		{"empty string", "", 0},
		{"integer input", 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToNumber(tt.input))
		})
	}
}

func TestToText(t *testing.T) {
	assert.Equal(t, "", ToText(nil))
	assert.Equal(t, "12", ToText(12.0))
	assert.Equal(t, "12.5", ToText(12.5))
	assert.Equal(t, "1", ToText(true))
	assert.Equal(t, "0", ToText(false))
	assert.Equal(t, "x", ToText("x"))
	ts := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15 09:30:00", ToText(ts))
}

func TestToBool(t *testing.T) {
	falsy := []interface{}{nil, 0.0, "", "0", "false", "FALSE", false}
	for _, v := range falsy {
		assert.False(t, ToBool(v), "%v should be falsy", v)
	}
	truthy := []interface{}{1.0, -1.0, "x", "true", true, "0.0"}
	for _, v := range truthy {
		assert.True(t, ToBool(v), "%v should be truthy", v)
	}
}

func TestToTime(t *testing.T) {
	got, ok := ToTime("2024-03-15")
	require.True(t, ok)
	assert.Equal(t, 2024, got.Year())

	got, ok = ToTime("2024-03-15 09:30:00")
	require.True(t, ok)
	assert.Equal(t, 9, got.Hour())

	// Numbers are Unix milliseconds.
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got, ok = ToTime(float64(want.UnixMilli()))
	require.True(t, ok)
	assert.True(t, got.Equal(want))

	_, ok = ToTime("not a date")
	assert.False(t, ok)
	_, ok = ToTime(nil)
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	assert.Nil(t, Normalize(nil))
	assert.Equal(t, 3.0, Normalize(3))
	assert.Equal(t, 3.0, Normalize(int64(3)))
	assert.Equal(t, 3.0, Normalize(uint8(3)))
	assert.Equal(t, 1.0, Normalize(true))
	assert.Equal(t, "x", Normalize("x"))
	ts := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15 00:00:00", Normalize(ts))
}
