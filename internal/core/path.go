package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func ValidateRoutePath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.Contains(p, "*") {
		return fmt.Errorf("path cannot contain wildcards")
	}

	return nil
}

// RouteForContentFile maps a markdown file inside the content tree to the
// route it is served on: index.md is "/", docs/index.md is "/docs" and
// docs/api/students.md is "/docs/api/students".
func RouteForContentFile(name string) (string, bool) {
	name = strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(name, "\\", "/")), "/")
	if path.Ext(name) != ".md" {
		return "", false
	}

	route := strings.TrimSuffix(name, ".md")
	if route == "index" {
		return "/", true
	}
	route = strings.TrimSuffix(route, "/index")

	return NormalizePath(route), true
}

// OutputFileForRoute is the file a route is written to in a static export.
func OutputFileForRoute(route string) string {
	route = NormalizePath(route)
	if route == "/" {
		return "index.html"
	}
	return strings.TrimPrefix(route, "/") + "/index.html"
}
