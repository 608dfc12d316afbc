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


// Command formula evaluates spreadsheet-style formulas against tabular
// data from the command line. Rows come from a CSV file, column
// metadata from a YAML file of {id, name, type} entries; without a
// column file the CSV header is used as both id and name.
//
//	formula compute '[Revenue] - [Cost]' --rows data.csv
//	formula validate '[Revenue] * 1.1' --columns columns.yaml
//	formula infer 'IF([Revenue] > 1000, "High", "Low")' --rows data.csv
package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tabulab/formula"
	"github.com/tabulab/formula/coerce"
	"github.com/tabulab/formula/logger"
	"github.com/tabulab/formula/types"
)

var (
	rowsPath    string
	columnsPath string
	debug       bool
)

func main() {
	root := &cobra.Command{
		Use:           "formula",
		Short:         "Evaluate spreadsheet-style formulas over tabular data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&rowsPath, "rows", "", "CSV file of rows (first line is the header)")
	root.PersistentFlags().StringVar(&columnsPath, "columns", "", "YAML file of column metadata")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log downgraded evaluation failures")

	root.AddCommand(computeCmd(), validateCmd(), inferCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "formula:", err)
		os.Exit(1)
	}
}

func newEngine() *formula.Engine {
	opts := []formula.Option{}
	if debug {
		opts = append(opts, formula.WithDebug(), formula.WithLogOutput(logger.DEBUG, os.Stderr))
	}
	return formula.New(opts...)
}

func computeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compute <formula>",
		Short: "Compute the formula for every row and print the column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, columns, err := loadTable()
			if err != nil {
				return err
			}
			values, err := newEngine().ComputeColumn(args[0], rows, columns)
			if err != nil {
				return err
			}
			for _, v := range values {
				if v == nil {
					fmt.Println()
					continue
				}
				fmt.Println(coerce.ToText(v))
			}
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <formula>",
		Short: "Check syntax and column references without evaluating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, columns, err := loadTable()
			if err != nil {
				return err
			}
			result := newEngine().ValidateFormula(args[0], columns)
			if !result.Valid {
				return fmt.Errorf("invalid: %s", result.Error)
			}
			fmt.Println("valid")
			return nil
		},
	}
}

func inferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "infer <formula>",
		Short: "Classify the formula's output type from sample rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, columns, err := loadTable()
			if err != nil {
				return err
			}
			fmt.Println(newEngine().InferFormulaType(args[0], columns, rows))
			return nil
		},
	}
}

// loadTable reads the CSV rows and the column metadata. Either file
// may be absent: validate works from columns alone, and columns
// default to the CSV header.
func loadTable() ([]types.Row, []types.Column, error) {
	var columns []types.Column
	if columnsPath != "" {
		data, err := os.ReadFile(columnsPath)
		if err != nil {
			return nil, nil, err
		}
		if err := yaml.Unmarshal(data, &columns); err != nil {
			return nil, nil, fmt.Errorf("parse %s: %w", columnsPath, err)
		}
	}

	if rowsPath == "" {
		if columns == nil {
			return nil, nil, fmt.Errorf("at least one of --rows or --columns is required")
		}
		return nil, columns, nil
	}

	f, err := os.Open(rowsPath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", rowsPath, err)
	}
	if len(records) == 0 {
		return nil, columns, nil
	}

	header := records[0]
	if columns == nil {
		for _, name := range header {
			columns = append(columns, types.Column{ID: name, Name: name, Type: types.ColumnString})
		}
	}

	rows := make([]types.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := types.Row{}
		for i, cell := range record {
			if i < len(header) {
				row[header[i]] = cell
			}
		}
		rows = append(rows, row)
	}
	return rows, columns, nil
}
