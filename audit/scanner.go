package audit

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Kind classifies a violation.
type Kind string

const (
	// KindLiteral is a numeric literal outside the allow-list.
	KindLiteral Kind = "ghost-literal"
	// KindParsedString is a numeric string handed to strconv.Parse*.
	KindParsedString Kind = "parsed-string"
	// KindImport is an import of a forbidden constants package.
	KindImport Kind = "forbidden-import"
)

// Violation is one sterility finding.
type Violation struct {
	File    string  `json:"file"`
	Line    int     `json:"line"`
	Column  int     `json:"column"`
	Literal string  `json:"literal"`
	Value   float64 `json:"value,omitempty"`
	Kind    Kind    `json:"kind"`
}

// Scan walks every .go file under root and returns the sterility report.
// Hidden directories, directories starting with an underscore, and vendor/
// are skipped; files matching a Config exemption suffix are skipped too.
func Scan(root string, cfg Config) (*Report, error) {
	report := &Report{Root: root}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		if cfg.exempt(path) {
			logrus.Debugf("audit: exempt %s", path)
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %q: %w", path, err)
		}
		violations, err := ScanFile(path, src, cfg)
		if err != nil {
			return err
		}
		report.FilesScanned++
		report.Violations = append(report.Violations, violations...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", root, err)
	}

	report.Sterile = len(report.Violations) == 0
	return report, nil
}

// ScanFile parses one Go source file and returns its violations in source
// order.
func ScanFile(path string, src []byte, cfg Config) ([]Violation, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, 0)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}

	var violations []Violation

	for _, imp := range file.Imports {
		impPath, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		if cfg.forbiddenImport(impPath) {
			pos := fset.Position(imp.Pos())
			violations = append(violations, Violation{
				File:    path,
				Line:    pos.Line,
				Column:  pos.Column,
				Literal: impPath,
				Kind:    KindImport,
			})
		}
	}

	// Positions of literals already accounted for by an enclosing
	// negation, so -1.5 is reported once, not as both -1.5 and 1.5.
	consumed := make(map[token.Pos]bool)

	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.UnaryExpr:
			lit, ok := node.X.(*ast.BasicLit)
			if !ok || node.Op != token.SUB {
				return true
			}
			v, ok := numericValue(lit)
			if !ok {
				return true
			}
			consumed[lit.Pos()] = true
			if !cfg.allowed(-v) {
				pos := fset.Position(node.Pos())
				violations = append(violations, Violation{
					File:    path,
					Line:    pos.Line,
					Column:  pos.Column,
					Literal: "-" + lit.Value,
					Value:   -v,
					Kind:    KindLiteral,
				})
			}
		case *ast.CallExpr:
			if v, ok := parsedStringViolation(fset, node, path, cfg); ok {
				violations = append(violations, v)
			}
		case *ast.BasicLit:
			if consumed[node.Pos()] {
				return true
			}
			v, ok := numericValue(node)
			if !ok {
				return true
			}
			if !cfg.allowed(v) {
				pos := fset.Position(node.Pos())
				violations = append(violations, Violation{
					File:    path,
					Line:    pos.Line,
					Column:  pos.Column,
					Literal: node.Value,
					Value:   v,
					Kind:    KindLiteral,
				})
			}
		}
		return true
	})

	return violations, nil
}

// numericValue evaluates an INT or FLOAT literal. Other literal kinds
// (strings, runes, imaginary) are outside the audit's scope.
func numericValue(lit *ast.BasicLit) (float64, bool) {
	switch lit.Kind {
	case token.INT:
		i, err := strconv.ParseInt(lit.Value, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(i), true
	case token.FLOAT:
		f, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// parsedStringViolation flags numeric strings handed to strconv.ParseFloat
// or strconv.ParseInt, the Go analog of wrapping a magic number in a
// high-precision decimal constructor.
func parsedStringViolation(fset *token.FileSet, call *ast.CallExpr, path string, cfg Config) (Violation, bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || len(call.Args) == 0 {
		return Violation{}, false
	}
	pkg, ok := sel.X.(*ast.Ident)
	if !ok || pkg.Name != "strconv" {
		return Violation{}, false
	}
	if sel.Sel.Name != "ParseFloat" && sel.Sel.Name != "ParseInt" {
		return Violation{}, false
	}
	lit, ok := call.Args[0].(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return Violation{}, false
	}
	raw, err := strconv.Unquote(lit.Value)
	if err != nil {
		return Violation{}, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Violation{}, false
	}
	if cfg.allowed(v) {
		return Violation{}, false
	}
	pos := fset.Position(lit.Pos())
	return Violation{
		File:    path,
		Line:    pos.Line,
		Column:  pos.Column,
		Literal: raw,
		Value:   v,
		Kind:    KindParsedString,
	}, true
}
