package domain

import "iter"

// Table is an in-memory delimited file: a header and rows of cells.
// Every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]Value
}

func NewTable(columns []string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

func (t *Table) Len() int { return len(t.Rows) }

func (t *Table) Index(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

func (t *Table) Has(name string) bool {
	_, ok := t.Index(name)
	return ok
}

// AppendRow pads or truncates cells to the header width.
func (t *Table) AppendRow(cells []Value) {
	row := make([]Value, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Get returns Missing for an unknown column.
func (t *Table) Get(row int, name string) Value {
	i, ok := t.Index(name)
	if !ok {
		return Missing()
	}
	return t.Rows[row][i]
}

func (t *Table) Set(row int, name string, v Value) bool {
	i, ok := t.Index(name)
	if !ok {
		return false
	}
	t.Rows[row][i] = v
	return true
}

// Rename applies old -> new names. Unknown old names are ignored.
func (t *Table) Rename(names map[string]string) {
	for i, c := range t.Columns {
		if n, ok := names[c]; ok {
			t.Columns[i] = n
		}
	}
}

// Drop removes the named columns that exist and returns them in header order.
func (t *Table) Drop(names ...string) []string {
	del := make(map[string]bool, len(names))
	for _, n := range names {
		del[n] = true
	}

	keep := make([]int, 0, len(t.Columns))
	var dropped []string
	for i, c := range t.Columns {
		if del[c] {
			dropped = append(dropped, c)
			continue
		}
		keep = append(keep, i)
	}
	if len(dropped) == 0 {
		return nil
	}

	cols := make([]string, len(keep))
	for j, i := range keep {
		cols[j] = t.Columns[i]
	}
	for r, row := range t.Rows {
		out := make([]Value, len(keep))
		for j, i := range keep {
			out[j] = row[i]
		}
		t.Rows[r] = out
	}
	t.Columns = cols
	return dropped
}

// AddColumn appends a column (or overwrites an existing one) with fill(row).
func (t *Table) AddColumn(name string, fill func(row int) Value) {
	i, ok := t.Index(name)
	if !ok {
		t.Columns = append(t.Columns, name)
		i = len(t.Columns) - 1
		for r := range t.Rows {
			t.Rows[r] = append(t.Rows[r], Missing())
		}
	}
	for r := range t.Rows {
		t.Rows[r][i] = fill(r)
	}
}

// Column yields (row, value) for a column; nothing for an unknown name.
func (t *Table) Column(name string) iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		i, ok := t.Index(name)
		if !ok {
			return
		}
		for r, row := range t.Rows {
			if !yield(r, row[i]) {
				return
			}
		}
	}
}
