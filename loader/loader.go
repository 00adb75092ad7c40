package loader

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mason-leap-lab/distributions/common/logger"
)

var (
	registry = make(map[string]Loader)
	log      = logger.NilLogger
)

// Loader reads a sequence of numbers from a text stream.
type Loader interface {
	Load(r io.Reader) ([]float64, error)
}

// SetLogger installs the logger used by loaders.
func SetLogger(l logger.ILogger) {
	if l == nil {
		l = logger.NilLogger
	}
	log = l
}

// Get returns the loader registered under name.
func Get(name string) (Loader, bool) {
	loader, ok := registry[name]
	return loader, ok
}

// Register registers a loader under name, replacing any existing one.
func Register(name string, loader Loader) {
	registry[name] = loader
}

// LoadFile opens source, loads all values with l and closes the source before returning.
func LoadFile(l Loader, source string) ([]float64, error) {
	reader, err := Open(source)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	values, err := l.Load(reader)
	if err != nil {
		log.Warn("Failed to load %s: %v", source, err)
		return nil, err
	}
	log.Debug("Loaded %d values from %s", len(values), source)
	return values, nil
}

// LineLoader Loads one value per line. Lines are whitespace-trimmed; blank lines are allowed at the end only.
type LineLoader struct {
}

func (l *LineLoader) Load(r io.Reader) ([]float64, error) {
	return scan(r, func(line string) string {
		return line
	})
}

// CsvLoader Loads the value of one comma-separated column per line.
type CsvLoader struct {
	Column int
}

func (l *CsvLoader) Load(r io.Reader) ([]float64, error) {
	if l.Column < 0 {
		return nil, fmt.Errorf("invalid column %d", l.Column)
	}
	return scan(r, func(line string) string {
		fields := strings.Split(line, ",")
		if l.Column >= len(fields) {
			return ""
		}
		return fields[l.Column]
	})
}

func scan(r io.Reader, extract func(string) string) ([]float64, error) {
	values := make([]float64, 0)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	blank := 0 // First blank line not yet followed by data.
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			if blank == 0 {
				blank = lineNo
			}
			continue
		} else if blank > 0 {
			// Only trailing blank lines are allowed.
			return nil, &DataFormatError{Line: blank, Text: "", Err: ErrBlankLine}
		}

		text := strings.TrimSpace(extract(line))
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &DataFormatError{Line: lineNo, Text: text, Err: err}
		} else if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, &DataFormatError{Line: lineNo, Text: text, Err: ErrNonFinite}
		}
		values = append(values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func init() {
	registry["line"] = &LineLoader{}
	registry["csv"] = &CsvLoader{}
}
