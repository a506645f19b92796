package checker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arnavsurve/minipas/internal/checker/lexer"
	"github.com/arnavsurve/minipas/internal/checker/parser"
)

// DefaultExt is the source file extension the CLI accepts unless overridden.
const DefaultExt = ".pas"

// Report is the outcome of one analysis run: a success, or the diagnostics
// collected up to the first abort in each phase.
type Report struct {
	Diagnostics []string
}

func (r Report) OK() bool {
	return len(r.Diagnostics) == 0
}

func (r Report) String() string {
	if r.OK() {
		return "Analysis successful: No errors found."
	}
	return "Errors found:\n- " + strings.Join(r.Diagnostics, "\n- ")
}

// Analyze validates one source text. It owns no state across calls: each run
// builds its own token sequence and symbol table.
func Analyze(src string) Report {
	tokens := lexer.Tokenize(src)
	if len(tokens) == 0 {
		return Report{Diagnostics: []string{"Empty program"}}
	}

	p := parser.NewParser(tokens)
	p.Parse()
	return Report{Diagnostics: p.Errors()}
}

// CheckFile loads a source file and analyzes it. ext is the required file
// extension, including the dot.
func CheckFile(path, ext string) (Report, error) {
	src, err := LoadSource(path, ext)
	if err != nil {
		return Report{}, err
	}
	return Analyze(src), nil
}

// LoadSource validates the extension and reads the file.
func LoadSource(path, ext string) (string, error) {
	if filepath.Ext(path) != ext {
		return "", fmt.Errorf("source must have %s extension", ext)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}
	return string(b), nil
}
