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

// Package types defines the tabular data model shared by the formula
// engine and its callers: rows, column metadata and the scalar Value
// produced by evaluation.
package types

import "strings"

// ColumnType is advisory display metadata. The engine never enforces
// that evaluated values match it; only the type inferencer and the
// callers' formatting layers consult it.
type ColumnType string

const (
	ColumnString  ColumnType = "string"
	ColumnNumber  ColumnType = "number"
	ColumnDate    ColumnType = "date"
	ColumnBoolean ColumnType = "boolean"
)

// Column describes one column of the table a formula runs against.
type Column struct {
	ID   string     `yaml:"id"`
	Name string     `yaml:"name"`
	Type ColumnType `yaml:"type"`
}

// Row maps column ids to loosely typed cell values: numbers, strings,
// booleans, date strings, or nil/absent.
type Row map[string]interface{}

// Value is the result of evaluating a formula against one row. It is
// always a float64, a string, or nil; booleans are folded to 1/0 by
// the evaluator before they ever reach a caller.
type Value = interface{}

// ResolveColumn finds a column by reference name: exact id match, then
// exact name match, then case-insensitive id/name match, first hit
// wins. ok is false when nothing matches.
func ResolveColumn(columns []Column, ref string) (Column, bool) {
	for _, c := range columns {
		if c.ID == ref {
			return c, true
		}
	}
	for _, c := range columns {
		if c.Name == ref {
			return c, true
		}
	}
	for _, c := range columns {
		if strings.EqualFold(c.ID, ref) || strings.EqualFold(c.Name, ref) {
			return c, true
		}
	}
	return Column{}, false
}
