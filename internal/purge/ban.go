package purge

import (
	"purger/pkg/varnish"
	"regexp"
	"strings"
)

// Operator compares an object header against a pattern in a ban expression.
type Operator string

const (
	// OpMatch is a regular expression match.
	OpMatch Operator = "~"
	// OpEqual is an exact string comparison.
	OpEqual Operator = "=="
)

const (
	// ajaxEndpoint is the platform's AJAX entrypoint script.
	ajaxEndpoint = "admin-ajax.php"
	// timeArchivePattern matches month/year query archives and date-structured
	// paths: /YYYY/, /YYYY/MM/ and /YYYY/MM/DD/.
	timeArchivePattern = `((\?|&)m=|(\?|&)y=|^/[0-9]{4}(/[0-9]{2})?(/[0-9]{2})?/$)`
	feedPattern        = "/feed/"
	rootPath           = "/"
)

// Escape quotes every regular expression metacharacter in s.
func Escape(s string) string {
	return regexp.QuoteMeta(s)
}

// HostPattern anchors an escaped host with an optional "www." prefix.
func HostPattern(host string) string {
	return `^(www\.)?` + Escape(host) + `$`
}

// HostClause matches the object's host against any of hosts.
func HostClause(hosts []string) string {
	seen := make(map[string]struct{}, len(hosts))
	patterns := make([]string, 0, len(hosts))
	for _, h := range hosts {
		p := HostPattern(h)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		patterns = append(patterns, p)
	}

	return varnish.HostKey + " " + string(OpMatch) + " (" + strings.Join(patterns, "|") + ")"
}

// PathClause compares the object's URL with pattern using op.
func PathClause(op Operator, pattern string) string {
	return varnish.URLKey + " " + string(op) + " " + pattern
}

// ParamPattern matches key=value appearing as a query string parameter.
func ParamPattern(key, value string) string {
	return `(\?|&)` + Escape(key) + "=" + Escape(value) + `(&|$)`
}

// PrefixPattern matches any URL starting with path.
func PrefixPattern(path string) string {
	return "^" + Escape(path)
}

// Expression ANDs the host clause for hosts with clauses.
func Expression(hosts []string, clauses ...string) string {
	parts := make([]string, 0, len(clauses)+1)
	parts = append(parts, HostClause(hosts))
	parts = append(parts, clauses...)

	return strings.Join(parts, " && ")
}

// homeClauses matches exactly the root path.
func homeClauses() []string {
	return []string{PathClause(OpEqual, rootPath)}
}

// urlClauses matches every URL below path, including pagination and query strings.
func urlClauses(path string) []string {
	return []string{PathClause(OpMatch, PrefixPattern(path))}
}

// ajaxClauses matches AJAX requests for action, further narrowed by one
// clause per parameter in params' order.
func ajaxClauses(action string, params paramIterator) []string {
	clauses := []string{
		PathClause(OpMatch, Escape(ajaxEndpoint)+".*"+ParamPattern("action", action)),
	}
	params.Each(func(k, v string) {
		clauses = append(clauses, PathClause(OpMatch, ParamPattern(k, v)))
	})

	return clauses
}

func timeArchiveClauses() []string {
	return []string{"( " + PathClause(OpMatch, timeArchivePattern) + " )"}
}

func rssClauses() []string {
	return []string{PathClause(OpMatch, feedPattern)}
}

func allClauses() []string {
	return []string{PathClause(OpMatch, rootPath)}
}

type paramIterator interface {
	Each(fn func(key, value string))
}
