package compat

import (
	"testing"

	"github.com/vladinator1000/cssselect/internal/css_ast"
)

func TestIsVersionSupported(t *testing.T) {
	ranges := []versionRange{{start: v{10, 0, 0}, end: v{20, 0, 0}}, {start: v{30, 0, 0}}}
	if isVersionSupported(ranges, v{9, 9, 9}) {
		t.Fatalf("expected 9.9.9 to be unsupported")
	}
	if !isVersionSupported(ranges, v{10, 0, 0}) {
		t.Fatalf("expected 10.0.0 to be supported")
	}
	if isVersionSupported(ranges, v{20, 0, 0}) {
		t.Fatalf("expected 20.0.0 to be unsupported (end is exclusive)")
	}
	if !isVersionSupported(ranges, v{30, 5, 0}) {
		t.Fatalf("expected 30.5.0 to be supported (open-ended range)")
	}
}

func TestDefaultOracleIsCompatible(t *testing.T) {
	oracle := DefaultOracle{}

	if oracle.IsCompatible(CssMatchesPseudo, nil) {
		t.Fatalf("expected absent targets to be incompatible")
	}

	modern := &Browsers{Chrome: &Version{Major: 100}, Firefox: &Version{Major: 100}, Safari: &Version{Major: 16}}
	if !oracle.IsCompatible(CssMatchesPseudo, modern) {
		t.Fatalf("expected modern targets to support :is()")
	}

	old := &Browsers{IE: &Version{Major: 11}}
	if oracle.IsCompatible(CssMatchesPseudo, old) {
		t.Fatalf("expected IE11 to not support :is()")
	}
}

func TestDefaultOraclePrefixesFor(t *testing.T) {
	oracle := DefaultOracle{}

	old := &Browsers{Chrome: &Version{Major: 20}}
	prefixes := oracle.PrefixesFor(CssMatchesPseudo, old)
	if !prefixes.Contains(css_ast.VendorWebKit) {
		t.Fatalf("expected old Chrome to require the webkit prefix for :is()")
	}
}
