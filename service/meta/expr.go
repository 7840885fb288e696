package meta

import (
	"os"
	"regexp"
)

var envExpr = regexp.MustCompile(`\$\{env\.([A-Za-z0-9_]*)\}`)

// expandEnvExpr replaces every well-formed ${env.KEY} occurrence with the
// value of the environment variable KEY (empty when unset). Malformed
// expressions are left as literal text.
func expandEnvExpr(value string) string {
	return envExpr.ReplaceAllStringFunc(value, func(match string) string {
		key := envExpr.FindStringSubmatch(match)[1]
		if key == "" {
			return ""
		}
		return os.Getenv(key)
	})
}
