// Package dataset loads delimited text files into column definitions and rows.
package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thenoetrevino/colgrid/internal/models"
	"github.com/thenoetrevino/colgrid/internal/types"
)

// Width bounds applied when measuring columns
const (
	DefaultMinColumnWidth = 4
	DefaultMaxColumnWidth = 40
	cellPadding           = 2
)

// Dataset is a loaded table. Rows are aligned with Columns.
type Dataset struct {
	Name    types.GridName
	Source  string
	Columns []models.ColumnDef
	Rows    [][]string

	index map[types.ColumnID]int
}

// LoadOptions control parsing and width measurement
type LoadOptions struct {
	Delimiter      rune // 0 detects tab or comma from the header line
	MinColumnWidth int
	MaxColumnWidth int
}

func (o LoadOptions) withDefaults() LoadOptions {
	if o.MinColumnWidth <= 0 {
		o.MinColumnWidth = DefaultMinColumnWidth
	}
	if o.MaxColumnWidth <= 0 {
		o.MaxColumnWidth = DefaultMaxColumnWidth
	}
	if o.MaxColumnWidth < o.MinColumnWidth {
		o.MaxColumnWidth = o.MinColumnWidth
	}
	return o
}

// GridNameFor derives a grid name from a file path: the base name without
// its extension.
func GridNameFor(path string) types.GridName {
	base := filepath.Base(path)
	return types.GridName(strings.TrimSuffix(base, filepath.Ext(base)))
}

// Load reads the file at path
func Load(path string, opts LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Read(f, GridNameFor(path), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ds.Source = path
	return ds, nil
}

// Read parses delimited text from r. The first record is the header row.
func Read(r io.Reader, name types.GridName, opts LoadOptions) (*Dataset, error) {
	opts = opts.withDefaults()
	br := bufio.NewReader(r)

	delim := opts.Delimiter
	if delim == 0 {
		var err error
		if delim, err = detectDelimiter(br); err != nil {
			return nil, err
		}
	}

	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	ds := &Dataset{Name: name, Columns: headerDefs(header)}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(ds.Rows)+1, err)
		}
		ds.Rows = append(ds.Rows, normalizeRow(rec, len(ds.Columns)))
	}

	ds.measure(opts)
	ds.reindex()
	return ds, nil
}

// detectDelimiter peeks at the header line and picks tab when it holds more
// tabs than commas
func detectDelimiter(br *bufio.Reader) (rune, error) {
	line, err := br.Peek(br.Size())
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if bytes.Count(line, []byte{'\t'}) > bytes.Count(line, []byte{','}) {
		return '\t', nil
	}
	return ',', nil
}

// headerDefs turns header cells into definitions. Blank names become colN and
// repeated names get a numeric suffix so ids stay unique.
func headerDefs(header []string) []models.ColumnDef {
	defs := make([]models.ColumnDef, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		title := strings.TrimSpace(h)
		name := title
		if name == "" {
			name = "col" + strconv.Itoa(i+1)
		}
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = name + "_" + strconv.Itoa(n+1)
		}
		seen[name]++

		defs[i] = models.ColumnDef{Name: name}
		if title != "" && title != name {
			defs[i].DisplayName = title
		}
	}
	return defs
}

func normalizeRow(rec []string, n int) []string {
	if len(rec) == n {
		return rec
	}
	row := make([]string, n)
	copy(row, rec)
	return row
}

func (ds *Dataset) measure(opts LoadOptions) {
	for i := range ds.Columns {
		w := DisplayWidth(ds.Columns[i].Title())
		for _, row := range ds.Rows {
			w = max(w, DisplayWidth(row[i]))
		}
		ds.Columns[i].Width = min(max(w+cellPadding, opts.MinColumnWidth), opts.MaxColumnWidth)
	}
}

func (ds *Dataset) reindex() {
	ds.index = make(map[types.ColumnID]int, len(ds.Columns))
	for i, c := range ds.Columns {
		ds.index[types.ColumnID(c.Name)] = i
	}
}

// Cell returns the value of column id in row, or "" when either is unknown
func (ds *Dataset) Cell(row int, id types.ColumnID) string {
	i, ok := ds.index[id]
	if !ok || row < 0 || row >= len(ds.Rows) {
		return ""
	}
	return ds.Rows[row][i]
}

// ApplyOverrides merges configured definitions onto the loaded ones by name.
// Zero-valued override fields keep the loaded value. An override naming no
// column is reported with ErrUnknownOverride after the rest are applied.
func (ds *Dataset) ApplyOverrides(overrides []models.ColumnDef) error {
	var unknown []string
	for _, o := range overrides {
		i, ok := ds.index[types.ColumnID(o.Name)]
		if !ok {
			unknown = append(unknown, o.Name)
			continue
		}
		def := &ds.Columns[i]
		if o.DisplayName != "" {
			def.DisplayName = o.DisplayName
		}
		if o.Width > 0 {
			def.Width = o.Width
		}
		if o.Visible != nil {
			def.Visible = models.BoolPtr(*o.Visible)
		}
		if o.EnableColumnMoving != nil {
			def.EnableColumnMoving = models.BoolPtr(*o.EnableColumnMoving)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(unknown, ", "), ErrUnknownOverride)
	}
	return nil
}
