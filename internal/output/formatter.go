package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lifeplan/lifeplan-simulator/internal/domain"
)

// Formatter defines a pluggable report formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(data domain.CashFlowData) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter, resolving aliases.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"pretty": "console",
	"table":  "console",
	"text":   "console",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if resolved, ok := aliasMap[n]; ok {
		return resolved
	}
	return n
}

// WriteFormatted runs a formatter and writes the report to a timestamped
// file, returning the file name.
func WriteFormatted(f Formatter, data domain.CashFlowData, ext string) (string, error) {
	out, err := f.Format(data)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("lifeplan_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, out, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}
