package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	errNoColumns = errors.New("input needs at least an x and a y column")
	errNoRows    = errors.New("input has no data rows")
)

// table is parsed CSV input: the x column and one or more y columns.
type table struct {
	header []string
	x      []float64
	ys     [][]float64
}

// openInput returns the named file, or stdin when args is empty or "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// readTable parses comma or whitespace separated columns. Lines starting
// with '#' are skipped; a first row that does not parse as numbers is taken
// as the header.
func readTable(r io.Reader) (*table, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	t := &table{}
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		line++
		if len(rec) == 1 {
			rec = strings.Fields(rec[0])
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("line %d: %w", line, errNoColumns)
		}

		vals, err := parseRow(rec)
		if err != nil {
			if line == 1 {
				t.header = rec
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if t.ys == nil {
			t.ys = make([][]float64, len(vals)-1)
		}
		if len(vals)-1 != len(t.ys) {
			return nil, fmt.Errorf("line %d: got %d columns, want %d", line, len(vals), len(t.ys)+1)
		}
		t.x = append(t.x, vals[0])
		for i, v := range vals[1:] {
			t.ys[i] = append(t.ys[i], v)
		}
	}
	if len(t.x) == 0 {
		return nil, errNoRows
	}
	if len(t.header) != len(t.ys)+1 {
		t.header = []string{"x"}
		for i := range t.ys {
			t.header = append(t.header, fmt.Sprintf("y%d", i+1))
		}
	}
	return t, nil
}

func parseRow(rec []string) ([]float64, error) {
	out := make([]float64, len(rec))
	for i, s := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func loadTable(cmd *cobra.Command, args []string) (*table, error) {
	in, err := openInput(cmd, args)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return readTable(in)
}
