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

// Package coerce implements the formula language's loose scalar
// conversions. Every operator and builtin funnels through these
// helpers so that coercion behaves identically everywhere.
package coerce

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// numberCleaner strips the decorations users paste into numeric cells.
var numberCleaner = strings.NewReplacer("$", "", ",", "", "%", "")

// ToNumber converts any cell value to a float64. Strings are cleaned
// of currency/thousands/percent decoration first. Anything that still
// does not parse yields 0, never an error: arithmetic in the formula
// language is total.
func ToNumber(v interface{}) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return x
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(numberCleaner.Replace(x))
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0
		}
		return f
	}
}

// ToText converts any cell value to its display string. nil becomes
// the empty string, numbers drop a trailing ".0" (5.0 renders as "5").
func ToText(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "1"
		}
		return "0"
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	default:
		return cast.ToString(v)
	}
}

// ToBool applies formula truthiness: nil, 0, "", "0" and "false" are
// false, everything else is true.
func ToBool(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		s := strings.TrimSpace(x)
		return s != "" && s != "0" && !strings.EqualFold(s, "false")
	default:
		return ToNumber(v) != 0
	}
}

// ToTime parses a cell value as a point in time. Numbers are Unix
// milliseconds; strings go through the lenient multi-layout parse.
// ok is false when the value has no date interpretation.
func ToTime(v interface{}) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case float64:
		return time.UnixMilli(int64(x)), true
	case int:
		return time.UnixMilli(int64(x)), true
	case int64:
		return time.UnixMilli(x), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		if t, err := cast.StringToDate(s); err == nil {
			return t, true
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// Normalize folds an arbitrary row cell into the engine's Value domain:
// float64, string or nil. Integer and float widths collapse to float64,
// booleans to 1/0, times to their display string.
func Normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		return x
	case string:
		return x
	case bool:
		if x {
			return float64(1)
		}
		return float64(0)
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case time.Time:
		return ToText(x)
	default:
		return cast.ToString(v)
	}
}
