// Package parser turns a delimited dataset file into a core.ChartData.
//
// The expected file layout is four metadata lines, each prefixed with "#",
// followed by numeric data rows:
//
//	# <graph title>
//	# <x-axis label>
//	# <y-axis label>
//	# <x-col-label>, <series1>, <series2>, ...
//	<x0>, <y0_1>, <y0_2>, ...
//
// The first four non-empty lines are consumed as metadata in that fixed
// order; blank lines anywhere in the file are skipped. Parsing is a single
// pass with no side effects beyond reading the input.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/StudioSol/set"
	"github.com/samber/lo"

	"github.com/ukaji3/csviz/internal/core"
)

const (
	// metadataLines is the fixed number of comment lines before the data rows.
	metadataLines = 4

	// marker prefixes every metadata line.
	marker = "#"

	// DefaultDelimiter separates fields when no other delimiter is configured.
	DefaultDelimiter = ','
)

// Parser reads dataset files with a configurable field delimiter.
type Parser struct {
	delimiter rune
}

// Option configures a Parser.
type Option func(*Parser)

// WithDelimiter sets the field delimiter used for the header row and
// the data rows.
func WithDelimiter(delimiter rune) Option {
	return func(p *Parser) {
		p.delimiter = delimiter
	}
}

// New creates a Parser with the provided options.
func New(options ...Option) *Parser {
	p := &Parser{delimiter: DefaultDelimiter}

	for _, option := range options {
		option(p)
	}

	return p
}

// ParseFile opens and parses the dataset at path. The file handle is
// released before returning on every path.
func (p *Parser) ParseFile(path string) (*core.ChartData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// Parse reads the full input and returns the populated ChartData. The
// returned data preserves file order: no sorting, no coercion of bad tokens.
func (p *Parser) Parse(r io.Reader) (*core.ChartData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")

	meta, bodyStart, err := p.splitMetadata(lines)
	if err != nil {
		return nil, err
	}

	names, err := p.seriesNames(meta[3])
	if err != nil {
		return nil, err
	}

	data := &core.ChartData{
		Title:      meta[0],
		XAxisLabel: meta[1],
		YAxisLabel: meta[2],
		Series: lo.Map(names, func(name string, _ int) core.Series {
			return core.Series{Name: name}
		}),
	}

	if err := p.parseRows(data, lines[bodyStart:], bodyStart); err != nil {
		return nil, err
	}

	return data, nil
}

// splitMetadata consumes the first four non-empty lines as metadata and
// returns them together with the index of the first body line.
func (p *Parser) splitMetadata(lines []string) ([]string, int, error) {
	meta := make([]string, 0, metadataLines)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if !strings.HasPrefix(trimmed, marker) {
			return nil, 0, fmt.Errorf("%w: line %d: metadata line must start with %q",
				ErrMalformedHeader, i+1, marker)
		}

		meta = append(meta, strings.TrimSpace(strings.TrimPrefix(trimmed, marker)))
		if len(meta) == metadataLines {
			return meta, i + 1, nil
		}
	}

	return nil, 0, fmt.Errorf("%w: expected %d metadata lines, found %d",
		ErrMalformedHeader, metadataLines, len(meta))
}

// seriesNames splits the header row and returns the series names. The first
// token labels the x column and is discarded.
func (p *Parser) seriesNames(header string) ([]string, error) {
	tokens := lo.Map(strings.Split(header, string(p.delimiter)), func(tok string, _ int) string {
		return strings.TrimSpace(tok)
	})

	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: header row declares no series columns", ErrMalformedHeader)
	}

	names := tokens[1:]
	seen := set.NewLinkedHashSetString()

	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty series name in header row", ErrMalformedHeader)
		}
		if seen.InArray(name) {
			return nil, fmt.Errorf("%w: duplicate series name %q", ErrMalformedHeader, name)
		}
		seen.Add(name)
	}

	return names, nil
}

// parseRows reads the data section. lineOffset is the number of physical
// lines already consumed, used to report positions in file coordinates.
func (p *Parser) parseRows(data *core.ChartData, body []string, lineOffset int) error {
	reader := csv.NewReader(strings.NewReader(strings.Join(body, "\n")))
	reader.Comma = p.delimiter
	reader.FieldsPerRecord = len(data.Series) + 1
	reader.TrimLeadingSpace = true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
				return &RowShapeError{
					Line: lineOffset + parseErr.Line,
					Got:  len(record),
					Want: len(data.Series) + 1,
				}
			}
			return fmt.Errorf("read data rows: %w", err)
		}

		for i, token := range record {
			value, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
			if err != nil {
				line, _ := reader.FieldPos(i)
				return &NumericParseError{
					Line:   lineOffset + line,
					Column: i + 1,
					Token:  strings.TrimSpace(token),
				}
			}

			if i == 0 {
				data.XValues = append(data.XValues, value)
			} else {
				data.Series[i-1].YValues = append(data.Series[i-1].YValues, value)
			}
		}
	}
}
