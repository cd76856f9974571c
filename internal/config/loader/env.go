package loader

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix scanned by NewEnvLoader callers in sadie.
const DefaultEnvPrefix = "SADIE_"

// EnvLoader loads configuration from environment variables.
//
// Explicit mappings win; any other prefixed variable maps its first
// underscore-separated word to a section and the rest to a snake_case key,
// so SADIE_CANVAS_RANDOM_SEED sets canvas.random_seed.
type EnvLoader struct {
	prefix  string
	mapping map[string]string // env var -> config path
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix, which
// should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		environ: os.Environ,
	}
}

// NewEnvLoaderFrom reads variables from a fixed list of KEY=value pairs
// instead of the process environment.
func NewEnvLoaderFrom(prefix string, environ []string) *EnvLoader {
	l := NewEnvLoader(prefix)
	l.environ = func() []string { return environ }
	return l
}

// Shorthand aliases for the most common settings.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "DEBUG":   "log.level",
		prefix + "SEED":    "canvas.random_seed",
		prefix + "CHARSET": "charset.preset",
		prefix + "PALETTE": "palette.preset",
		prefix + "SCRIPT":  "canvas.script",
	}
}

// Load reads the environment and returns a configuration map. Empty
// values count as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		if path, mapped := l.mapping[name]; mapped {
			if path == "log.level" {
				value = debugLevel(value)
			}
			setByPath(config, path, parseValue(value))
			continue
		}

		path := l.envToPath(name)
		if path == "" {
			continue
		}
		if _, exists := Lookup(config, path); exists {
			// An explicit mapping already set it.
			continue
		}
		setByPath(config, path, parseValue(value))
	}

	return config, nil
}

// SADIE_DEBUG=1 is a shortcut for debug logging.
func debugLevel(v string) string {
	if b, ok := parseBool(v); ok {
		if b {
			return "debug"
		}
		return "info"
	}
	return v
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// RemoveMapping removes an environment variable mapping.
func (l *EnvLoader) RemoveMapping(envVar string) {
	delete(l.mapping, envVar)
}

// envToPath converts SADIE_PALETTE_SQUARE_WIDTH to palette.square_width.
// Variables without a key part map to nothing.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return section + "." + key
}

// parseValue converts an environment string into the closest config type.
// Numbers stay numbers, so "0" and "1" are ints rather than booleans.
func parseValue(s string) any {
	if s == "" {
		return s
	}
	if b, ok := parseBool(s); ok && !isDigits(s) {
		return b
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}
	return s
}

func parseBool(s string) (value, ok bool) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// splitPath splits a dot-separated config path.
func splitPath(path string) []string {
	return strings.Split(path, ".")
}
