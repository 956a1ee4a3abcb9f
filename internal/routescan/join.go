package routescan

import "strings"

// JoinPaths composes a router prefix with a route path. The result always
// starts with a slash and never ends with one, except for the root "/".
func JoinPaths(prefix, p string) string {
	if prefix == "" {
		return normalizePath(p)
	}
	prefix = normalizePath(prefix)
	p = normalizePath(p)
	switch {
	case p == "/":
		return prefix
	case prefix == "/":
		return p
	default:
		return prefix + p
	}
}

func normalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p = strings.TrimRight(p, "/"); p == "" {
		return "/"
	}
	return p
}
