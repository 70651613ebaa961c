package modules

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFeatureModulesDoNotImportSiblingModules(t *testing.T) {
	t.Parallel()

	entries, err := filepath.Glob(filepath.Join("*", "*.go"))
	if err != nil {
		t.Fatalf("glob module files: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("no module files found")
	}
	fset := token.NewFileSet()
	for _, file := range entries {
		parsed, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse imports for %s: %v", file, err)
		}
		for _, imp := range parsed.Imports {
			path := strings.Trim(imp.Path.Value, "\"")
			if strings.Contains(path, "/internal/services/web/modules/") {
				t.Fatalf("file %s imports sibling module path %q", file, path)
			}
		}
	}
}

func TestFeatureModulesFollowTemplate(t *testing.T) {
	t.Parallel()

	areas := []string{"signup", "home"}
	requiredFiles := []string{"module.go", "module_test.go", "routes.go", "routes_test.go", "handlers.go"}
	for _, area := range areas {
		for _, file := range requiredFiles {
			path := filepath.Join(area, file)
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("module %q missing required file %q: %v", area, file, err)
			}
		}
	}
}

func TestHandlersDoNotCallGatewaysDirectly(t *testing.T) {
	t.Parallel()

	// Sign-up handlers reach the account gateway only through the controller.
	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, filepath.Join("signup", "handlers.go"), nil, 0)
	if err != nil {
		t.Fatalf("parse handlers: %v", err)
	}
	ast.Inspect(parsed, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if ok && sel.Sel.Name == "CreateAccount" {
			t.Fatalf("signup/handlers.go calls CreateAccount at %s", fset.Position(sel.Pos()))
		}
		return true
	})
}
