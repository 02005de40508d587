package generator

import "strings"

// Dependency is one required mod dependency in the generated manifest.
type Dependency struct {
	ID       string `json:"id"`
	Version  string `json:"version"`
	Required bool   `json:"required"`
}

// ParseDependency parses a single dependency token of the form "id" or
// "id@version". The split uses the LAST '@' so scoped identifiers that start
// with '@' keep their prefix; a leading '@' is not a version separator.
// A missing version defaults to "*".
func ParseDependency(token string) Dependency {
	token = strings.TrimSpace(token)

	at := strings.LastIndex(token, "@")
	if at <= 0 {
		return Dependency{ID: token, Version: "*", Required: true}
	}

	id := strings.TrimSpace(token[:at])
	version := strings.TrimSpace(token[at+1:])
	if version == "" {
		version = "*"
	}
	return Dependency{ID: id, Version: version, Required: true}
}

// ParseDependencyList parses a comma-separated dependency string, dropping
// empty tokens.
func ParseDependencyList(s string) []Dependency {
	var out []Dependency
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		out = append(out, ParseDependency(token))
	}
	return out
}

// splitTags splits a comma-separated tag string, trimming whitespace and
// dropping empty tokens.
func splitTags(s string) []string {
	var out []string
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}
