package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/kbukum/confkit/decode"
)

// configFileNames are tried in order inside every search directory.
var configFileNames = []string{"config.yml", "config.yaml", "config.json", "config.toml"}

// Resolver finds config and env files for a service in standard locations.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths. An empty
// path means nothing was found.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// NewResolver returns a Resolver over the real filesystem.
func NewResolver() *Resolver {
	return &Resolver{FileSystem: RealFileSystem{}}
}

// ResolveFiles finds config and env files for a service. Paths already set
// in explicit are returned unchanged; the others are searched for.
func (cr *Resolver) ResolveFiles(serviceName string, explicit ResolvedFiles) ResolvedFiles {
	resolved := explicit
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = cr.findConfigFile(serviceName)
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = cr.findEnvFile(serviceName)
	}
	return resolved
}

// findConfigFile searches service directories first, then shared ones.
func (cr *Resolver) findConfigFile(serviceName string) string {
	shortName := shortServiceName(serviceName)

	dirs := []string{
		fmt.Sprintf("./cmd/%s", serviceName),
		fmt.Sprintf("./cmd/%s", shortName),
		fmt.Sprintf("../cmd/%s", serviceName),
		fmt.Sprintf("../cmd/%s", shortName),
		fmt.Sprintf("../../cmd/%s", serviceName),
		fmt.Sprintf("../../cmd/%s", shortName),
		"./config",
		"../config",
		".",
	}

	for _, dir := range removeDuplicates(dirs) {
		for _, name := range configFileNames {
			p := dir + "/" + name
			if cr.FileSystem.Exists(p) {
				return p
			}
		}
	}
	return ""
}

// findEnvFile prefers .env.<service> over .env at every location.
func (cr *Resolver) findEnvFile(serviceName string) string {
	shortName := shortServiceName(serviceName)

	envFiles := []string{
		fmt.Sprintf(".env.%s", serviceName),
		".env",
	}

	searchPaths := buildEnvSearchPaths(serviceName)
	if shortName != serviceName {
		searchPaths = append(searchPaths, buildEnvSearchPaths(shortName)...)
	}
	searchPaths = removeDuplicates(searchPaths)

	for _, envFile := range envFiles {
		for _, basePath := range searchPaths {
			fullPath := envFile
			if basePath != "" {
				fullPath = basePath + "/" + envFile
			}
			if cr.FileSystem.Exists(fullPath) {
				return fullPath
			}
		}
	}
	return ""
}

// AddResolved registers discovered files: the config file decoded by its
// extension and the env file as a dotenv overlay.
func (b *Builder[T]) AddResolved(files ResolvedFiles) *Builder[T] {
	if files.ConfigFile != "" {
		b.AddFile(files.ConfigFile, decode.ForPath(files.ConfigFile))
	}
	if files.EnvFile != "" {
		b.AddEnvFile(files.EnvFile)
	}
	return b
}

// shortServiceName returns the part after the last dash ("my-svc" -> "svc").
func shortServiceName(serviceName string) string {
	if idx := strings.LastIndex(serviceName, "-"); idx != -1 {
		return serviceName[idx+1:]
	}
	return serviceName
}

// buildEnvSearchPaths lists directories to search for .env files.
func buildEnvSearchPaths(serviceName string) []string {
	var paths []string
	paths = append(paths, pathsByPrefix(path.Join("cmd", serviceName))...)
	paths = append(paths, pathsByPrefix(path.Join("config", serviceName))...)
	paths = append(paths, pathsByPrefix("config")...)
	paths = append(paths, pathsByPrefix("")...)
	return paths
}

func pathsByPrefix(prefix string) []string {
	if prefix == "" {
		return []string{".", "..", "../..", ""}
	}
	return []string{
		"./" + prefix,
		"../" + prefix,
		"../../" + prefix,
	}
}

// removeDuplicates removes duplicate strings from a slice, keeping order.
func removeDuplicates(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}
