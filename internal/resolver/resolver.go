package resolver

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// DotenvFileName is the fixed dotenv file name, resolved against the
// working directory.
const DotenvFileName = ".env"

// EnvSource supplies process environment entries in KEY=VALUE form.
// Injecting it keeps resolution deterministic under test.
type EnvSource interface {
	Environ() []string
}

// OSEnv reads the real process environment.
type OSEnv struct{}

func (OSEnv) Environ() []string {
	return os.Environ()
}

// Environment is the merged view of variable values for one run. It is
// built once and read-only afterwards.
type Environment map[string]string

// Lookup returns the raw value for name and whether it is present.
func (e Environment) Lookup(name string) (string, bool) {
	v, ok := e[name]
	return v, ok
}

// Resolve merges dotenv values with the process environment. Process
// entries win for shared keys. A missing dotenv file contributes nothing;
// a malformed one contributes nothing and logs a warning.
func Resolve(dotenvPath string, src EnvSource) Environment {
	env := make(Environment)
	for k, v := range loadDotenv(dotenvPath) {
		env[k] = v
	}
	for _, kv := range src.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}
	return env
}

func loadDotenv(path string) map[string]string {
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("file", path).Warn("could not read dotenv file")
		}
		return nil
	}
	vars, err := godotenv.Unmarshal(filterAssignments(string(content)))
	if err != nil {
		log.WithError(err).WithField("file", path).Warn("could not parse dotenv file, ignoring its contents")
		return nil
	}
	return vars
}

// filterAssignments drops blank lines, comments, and lines without an
// assignment so a stray token does not fail the whole file.
func filterAssignments(content string) string {
	var keep []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || !strings.Contains(trimmed, "=") {
			continue
		}
		keep = append(keep, line)
	}
	return strings.Join(keep, "\n")
}
