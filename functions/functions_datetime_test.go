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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() *FunctionContext {
	fixed := time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC)
	return &FunctionContext{Now: func() time.Time { return fixed }}
}

func TestDateComponents(t *testing.T) {
	assert.Equal(t, 2024.0, call(t, "YEAR", "2024-03-15"))
	assert.Equal(t, 3.0, call(t, "MONTH", "2024-03-15"))
	assert.Equal(t, 15.0, call(t, "DAY", "2024-03-15"))
}

func TestDateComponentsRejectGarbage(t *testing.T) {
	err := callErr(t, "YEAR", "not a date")
	require.Error(t, err)
}

func TestTodayAndNow(t *testing.T) {
	ctx := fixedClock()

	today, _ := Lookup("TODAY")
	result, err := today.Execute(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-26", result)

	now, _ := Lookup("NOW")
	result, err = now.Execute(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-26 10:30:00", result)
}

func TestDateDiff(t *testing.T) {
	assert.Equal(t, 30.0, call(t, "DATEDIFF", "2024-01-01", "2024-01-31"))
	assert.Equal(t, -30.0, call(t, "DATEDIFF", "2024-01-31", "2024-01-01"))
	assert.Equal(t, 0.0, call(t, "DATEDIFF", "2024-01-01", "2024-01-01"))
	// Partial days floor toward negative infinity.
	assert.Equal(t, 0.0, call(t, "DATEDIFF", "2024-01-01 00:00:00", "2024-01-01 18:00:00"))
}

func TestDateDiffAcceptsTimestamps(t *testing.T) {
	// Numbers are Unix milliseconds.
	start := float64(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli())
	end := float64(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC).UnixMilli())
	assert.Equal(t, 7.0, call(t, "DATEDIFF", start, end))
}
