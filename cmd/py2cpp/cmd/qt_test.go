package cmd

import "testing"

func TestQtSeedFromEnvReadsPrefixedVars(t *testing.T) {
	t.Setenv("PY2CPP_TYPE_QWidget", "QWidget*")
	t.Setenv("PY2CPP_TYPE_MyType", "MyType*")
	t.Setenv("UNRELATED_VAR", "ignored")

	binds := qtSeedFromEnv()

	if got, want := binds["QWidget"], "QWidget*"; got != want {
		t.Fatalf("binds[QWidget] = %q, want %q", got, want)
	}
	if got, want := binds["MyType"], "MyType*"; got != want {
		t.Fatalf("binds[MyType] = %q, want %q", got, want)
	}
	if _, ok := binds["UNRELATED_VAR"]; ok {
		t.Fatal("qtSeedFromEnv() must not pick up vars outside its prefix")
	}
}

func TestQtSeedFromEnvIgnoresBarePrefix(t *testing.T) {
	t.Setenv("PY2CPP_TYPE_", "should be ignored, empty source name")

	if _, ok := qtSeedFromEnv()[""]; ok {
		t.Fatal("qtSeedFromEnv() must not install a binding for an empty source name")
	}
}
