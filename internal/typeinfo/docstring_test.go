package typeinfo_test

import (
	"testing"

	"github.com/mugwort-rc/py2cpp/internal/typeinfo"
)

func TestParseTypeExprSimple(t *testing.T) {
	got := typeinfo.ParseTypeExpr("list of str")
	if got.Head != "list" || got.Of == nil || got.Of.Head != "str" || got.Of.Of != nil {
		t.Fatalf("got %+v", got)
	}
}

func TestParseTypeExprNestedCompound(t *testing.T) {
	got := typeinfo.ParseTypeExpr("list of map of (str, str)")
	if got.Head != "list" {
		t.Fatalf("head = %q, want list", got.Head)
	}
	mid := got.Of
	if mid == nil || mid.Head != "map" {
		t.Fatalf("mid = %+v, want head map", mid)
	}
	if mid.Of == nil || mid.Of.Head != "(str, str)" || mid.Of.Of != nil {
		t.Fatalf("leaf = %+v, want (str, str)", mid.Of)
	}
}

func TestParseParamLine(t *testing.T) {
	p, ok := typeinfo.ParseParamLine(":param T n: doc")
	if !ok {
		t.Fatal("expected match")
	}
	if p.Type != "T" || p.Name != "n" || p.Doc != "doc" {
		t.Fatalf("got %+v", p)
	}
}

func TestParseParamLineWithoutType(t *testing.T) {
	p, ok := typeinfo.ParseParamLine(":param n: doc")
	if !ok {
		t.Fatal("expected match")
	}
	if p.Type != "" || p.Name != "n" {
		t.Fatalf("got %+v", p)
	}
}

func TestParseNonMatchingLine(t *testing.T) {
	if _, ok := typeinfo.ParseParamLine("just some prose"); ok {
		t.Fatal("expected no match")
	}
	if _, ok := typeinfo.ParseRTypeLine("just some prose"); ok {
		t.Fatal("expected no match")
	}
}

func TestParseDocstringCollectsAll(t *testing.T) {
	doc := "Adds two numbers.\n\n:param int a: left operand\n:param int b: right operand\n:rtype: int\n"
	parsed := typeinfo.Parse(doc)
	if len(parsed.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(parsed.Params))
	}
	if parsed.RType == nil || parsed.RType.Head != "int" {
		t.Fatalf("rtype = %+v", parsed.RType)
	}
}

func TestRegistryDetectKnown(t *testing.T) {
	r := typeinfo.NewRegistry()
	tests := map[string]string{
		"bool":      "bool",
		"int":       "int",
		"long":      "long",
		"float":     "double",
		"complex":   "std::complex<double>",
		"str":       "std::string",
		"bytearray": "std::string",
		"List[int]": "std::vector<int>",
	}
	for source, want := range tests {
		if got := r.Detect(source, false); got != want {
			t.Errorf("Detect(%q, false) = %q, want %q", source, got, want)
		}
	}
}

func TestRegistryDetectFallback(t *testing.T) {
	r := typeinfo.NewRegistry()
	if got := r.Detect("Unknown", false); got != typeinfo.PlaceholderType {
		t.Fatalf("param fallback = %q, want %q", got, typeinfo.PlaceholderType)
	}
	if got := r.Detect("Unknown", true); got != typeinfo.VoidType {
		t.Fatalf("return fallback = %q, want %q", got, typeinfo.VoidType)
	}
}

func TestRegistrySeed(t *testing.T) {
	r := typeinfo.NewRegistry()
	r.Seed(map[string]string{"QWidget": "QWidget*"})
	if got := r.Detect("QWidget", false); got != "QWidget*" {
		t.Fatalf("got %q", got)
	}
}
