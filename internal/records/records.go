// Package records loads CSV tables into keyed records. Headers are
// upper-cased and reduced to ASCII; an optional schema coerces columns to
// int or float.
package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Kind is a column type.
type Kind int

const (
	String Kind = iota
	Int
	Float
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return "str"
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "str", "string", "":
		return String, nil
	case "int", "integer":
		return Int, nil
	case "float", "double", "number":
		return Float, nil
	}
	return String, fmt.Errorf("%w: unknown type %q", ErrSchema, s)
}

// Schema maps a sanitised header to its column type.
type Schema map[string]Kind

// ParseSchema reads "HEADER: type" entries. Headers are sanitised the same
// way as the CSV header row.
func ParseSchema(entries []string) (Schema, error) {
	s := make(Schema, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) == "" {
			continue
		}
		name, typ, ok := strings.Cut(e, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q has no ':'", ErrSchema, e)
		}
		k, err := ParseKind(typ)
		if err != nil {
			return nil, err
		}
		s[SanitizeHeader(name)] = k
	}
	return s, nil
}

var asciiHeader = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// SanitizeHeader upper-cases h, folds accents and drops any remaining
// non-ASCII runes. Inner whitespace becomes '_'.
func SanitizeHeader(h string) string {
	out, _, err := transform.String(asciiHeader, h)
	if err != nil {
		out = h
	}
	return strings.ToUpper(strings.Join(strings.Fields(out), "_"))
}

// Record is one row keyed by header.
type Record map[string]any

func (r Record) Text(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func (r Record) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func (r Record) Int(key string) (int, bool) {
	v, ok := r[key].(int)
	return v, ok
}

// Table is a loaded CSV.
type Table struct {
	Headers []string
	Records []Record
}

// Read parses a CSV with a header row. Cells are trimmed; empty cells in
// typed columns are stored as nil.
func Read(r io.Reader, schema Schema) (*Table, error) {
	cr := csv.NewReader(transform.NewReader(r, xunicode.BOMOverride(xunicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	t := &Table{Headers: make([]string, len(header))}
	for i, h := range header {
		t.Headers[i] = SanitizeHeader(h)
	}

	row := 1
	for {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}
		rec := make(Record, len(t.Headers))
		for i, h := range t.Headers {
			var cell string
			if i < len(cells) {
				cell = strings.TrimSpace(cells[i])
			}
			v, err := coerce(cell, schema[h])
			if err != nil {
				return nil, &CellError{Row: row, Column: h, Value: cell, Kind: schema[h]}
			}
			rec[h] = v
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

func coerce(cell string, k Kind) (any, error) {
	if k == String {
		return cell, nil
	}
	if cell == "" {
		return nil, nil
	}
	switch k {
	case Int:
		if i, err := strconv.Atoi(cell); err == nil {
			return i, nil
		}
		// "3.0" is an acceptable integer.
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil || f != float64(int(f)) {
			return nil, ErrCoerce
		}
		return int(f), nil
	default:
		return strconv.ParseFloat(cell, 64)
	}
}

// Load reads a CSV file. A malformed file is logged and yields an empty
// table; only a file that cannot be opened or a bad schema is an error.
func Load(path string, datatypes []string, log *zap.Logger) (*Table, error) {
	if log == nil {
		log = zap.NewNop()
	}
	schema, err := ParseSchema(datatypes)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	t, err := Read(f, schema)
	if err != nil {
		log.Warn("csv not loaded", zap.String("path", path), zap.Error(err))
		return &Table{}, nil
	}
	log.Debug("csv loaded", zap.String("path", path), zap.Int("records", len(t.Records)))
	return t, nil
}
