package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	fset := token.NewFileSet()
	root := filepath.Join("..", "modules")
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		slash := filepath.ToSlash(path)
		module := moduleName(slash)
		layer := detectLayer(slash)
		if module == "" || layer == "" {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if !strings.Contains(importPath, "worksphere/internal/modules/") {
				continue
			}
			if violatesLayerRule(module, layer, importPath) {
				t.Fatalf("forbidden import in %s (%s): %s", slash, layer, importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk modules: %v", err)
	}
}

func moduleName(path string) string {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

func detectLayer(path string) string {
	for _, layer := range []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"} {
		if strings.Contains(path, "/"+layer+"/") {
			return layer
		}
	}
	return ""
}

func hasSegment(path, segment string) bool {
	return strings.Contains(path, "/"+segment+"/") || strings.HasSuffix(path, "/"+segment)
}

func isPortIn(path string) bool {
	return hasSegment(path, "port/in")
}

func isDTO(path string) bool {
	return hasSegment(path, "dto")
}

func isInner(path string) bool {
	return hasSegment(path, "service") || hasSegment(path, "adapter/in") || hasSegment(path, "adapter/out") || hasSegment(path, "usecase")
}

func violatesLayerRule(module, layer, importPath string) bool {
	sameModule := strings.Contains(importPath, "/internal/modules/"+module+"/")
	if !sameModule {
		if isInner(importPath) {
			return true
		}
		if isPortIn(importPath) || isDTO(importPath) {
			return false
		}
	}

	switch layer {
	case "adapter/in":
		return !isPortIn(importPath) && !isDTO(importPath)
	case "usecase":
		return hasSegment(importPath, "adapter/in") || hasSegment(importPath, "adapter/out")
	case "service":
		return hasSegment(importPath, "adapter/in") || hasSegment(importPath, "adapter/out") || hasSegment(importPath, "usecase")
	case "domain":
		return isInner(importPath) || hasSegment(importPath, "port/out")
	default:
		return false
	}
}

func TestViolatesLayerRule(t *testing.T) {
	t.Parallel()
	const base = "worksphere/internal/modules/"
	tests := []struct {
		module, layer, imp string
		want               bool
	}{
		{"dashboard", "adapter/out", base + "auth/port/in", false},
		{"auth", "port/out", base + "session/dto", false},
		{"dashboard", "adapter/out", base + "auth/service", true},
		{"auth", "usecase", base + "auth/service", false},
		{"auth", "usecase", base + "auth/adapter/out", true},
		{"session", "service", base + "session/usecase", true},
		{"session", "domain", base + "session/port/out", true},
		{"auth", "adapter/in", base + "auth/domain", true},
		{"auth", "adapter/in", base + "session/dto", false},
	}
	for _, tt := range tests {
		if got := violatesLayerRule(tt.module, tt.layer, tt.imp); got != tt.want {
			t.Fatalf("violatesLayerRule(%s, %s, %s) = %v, want %v", tt.module, tt.layer, tt.imp, got, tt.want)
		}
	}
}
