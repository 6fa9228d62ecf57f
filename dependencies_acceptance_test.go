package backoffice_test

import (
	"os"
	"regexp"
	"testing"
)

func TestModuleDependencies_GinPresent(t *testing.T) {
	testModulePresence(t, "github.com/gin-gonic/gin")
}

func TestModuleDependencies_KoanfPresent(t *testing.T) {
	testModulePresence(t, "github.com/knadh/koanf/v2")
}

func TestModuleDependencies_JWTPresent(t *testing.T) {
	testModulePresence(t, "github.com/golang-jwt/jwt/v5")
}

func TestModuleDependencies_GORMPresent(t *testing.T) {
	testModulePresence(t, "gorm.io/gorm")
}

func TestModuleDependencies_XSyncPresent(t *testing.T) {
	testModulePresence(t, "golang.org/x/sync")
}

func testModulePresence(t *testing.T, module string) {
	t.Helper()

	t.Run("happy_present_in_real_go_mod", func(t *testing.T) {
		goMod, err := os.ReadFile("go.mod")
		if err != nil {
			t.Fatalf("read go.mod: %v", err)
		}
		if !moduleRequired(string(goMod), module) {
			t.Fatalf("expected module %q to be present in go.mod", module)
		}
	})

	t.Run("error_missing_module_in_fixture", func(t *testing.T) {
		fixture := `module example.com/demo

go 1.25.0

require (
	github.com/google/uuid v1.6.0
)`
		if moduleRequired(fixture, module) {
			t.Fatalf("expected fixture to not contain module %q", module)
		}
	})
}

func moduleRequired(goModContent, module string) bool {
	re := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(module) + `\s+v\S+`)
	return re.MatchString(goModContent)
}
