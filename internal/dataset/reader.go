package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"jobposts-engine/internal/domain"
)

type Options struct {
	// Comma is the field delimiter; 0 means ','.
	Comma rune
	// NA lists cell values read as Missing in addition to the empty cell.
	// Matching is exact.
	NA []string
	// OnLongRow, when set, is called for every row with more fields than
	// the header, before the extra fields are discarded.
	OnLongRow func(line, fields int)
}

func (o Options) comma() rune {
	if o.Comma == 0 {
		return ','
	}
	return o.Comma
}

// ReadFile loads a delimited file with a header row. The returned error
// wraps os.ErrNotExist when the file is absent.
func ReadFile(path string, opt Options) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, opt)
}

// Read parses a delimited stream. A leading byte-order mark is dropped,
// empty and NA cells become Missing, short rows are padded and long rows
// truncated to the header width.
func Read(r io.Reader, opt Options) (*domain.Table, error) {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(dec)
	cr.Comma = opt.comma()
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewTable(nil), nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	na := make(map[string]bool, len(opt.NA))
	for _, s := range opt.NA {
		na[s] = true
	}

	t := domain.NewTable(header)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		if len(rec) > len(header) && opt.OnLongRow != nil {
			opt.OnLongRow(line, len(rec))
		}

		cells := make([]domain.Value, len(rec))
		for i, s := range rec {
			if s == "" || na[s] {
				cells[i] = domain.Missing()
				continue
			}
			cells[i] = domain.Text(s)
		}
		t.AppendRow(cells)
	}
	return t, nil
}
