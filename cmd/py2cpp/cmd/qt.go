package cmd

import (
	"os"
	"strings"
)

// typeEnvPrefix is the environment-variable prefix qtSeedFromEnv scans
// for, matching termfx-morfx's "MORFX_"-style config-from-env
// convention (internal/config/config.go).
const typeEnvPrefix = "PY2CPP_TYPE_"

// qtSeedFromEnv reads additional source-to-target type bindings from the
// environment (and, via godotenv.Load() in root.go's init, from a .env
// file in the working directory). A variable "PY2CPP_TYPE_QWidget=QWidget*"
// seeds the binding "QWidget" -> "QWidget*", the same shape --using-qt's
// hardcoded list installs, so a project can extend or override it without
// a code change.
func qtSeedFromEnv() map[string]string {
	binds := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		source, ok := strings.CutPrefix(name, typeEnvPrefix)
		if !ok || source == "" {
			continue
		}
		binds[source] = value
	}
	return binds
}

// qtSeedBindings returns the §6 "--using-qt" convention: every class name
// commonly found in Qt bindings resolves to the matching pointer type
// instead of falling through to the placeholder/value-type default. This
// list is deliberately small and hand-picked rather than derived from a
// live Qt metadata source; extend it as real sources need more names.
func qtSeedBindings() map[string]string {
	names := []string{
		"QObject",
		"QWidget",
		"QApplication",
		"QMainWindow",
		"QDialog",
		"QPushButton",
		"QLabel",
		"QLayout",
		"QVBoxLayout",
		"QHBoxLayout",
		"QString",
		"QTimer",
	}
	binds := make(map[string]string, len(names))
	for _, name := range names {
		binds[name] = name + "*"
	}
	return binds
}
