package builder

import (
	"strings"
	"time"

	"github.com/carlosnayan/hrmanager/internal/logger"
)

// SlowQueryThreshold is the duration above which a statement is logged as slow
var SlowQueryThreshold = time.Second

// detectQueryType returns the statement verb (SELECT, INSERT, UPDATE, DELETE)
func detectQueryType(query string) string {
	upper := strings.ToUpper(strings.TrimSpace(query))

	for _, verb := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(upper, verb) {
			return verb
		}
	}

	return "UNKNOWN"
}

// LogStatement logs an executed statement on l
func LogStatement(l *logger.Logger, query string, args []any, start time.Time) {
	if l == nil {
		return
	}
	duration := time.Since(start)

	l.Query(query, args, duration)

	queryType := detectQueryType(query)
	l.Info("%s executed in %v", queryType, duration)

	if duration > SlowQueryThreshold {
		l.Warn("Slow query detected: %s took %v", queryType, duration)
	}
}
