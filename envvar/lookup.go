package envvar

import (
	"os"

	"github.com/joho/godotenv"
)

// Lookup reads environment variables. The boolean reports whether the
// variable is set; an empty value is still set.
type Lookup interface {
	LookupEnv(name string) (string, bool)
}

// OS reads the process environment.
type OS struct{}

// LookupEnv implements Lookup.
func (OS) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Map is a fixed set of variables.
type Map map[string]string

// LookupEnv implements Lookup.
func (m Map) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Chain consults each Lookup in order and returns the first hit.
type Chain []Lookup

// LookupEnv implements Lookup.
func (c Chain) LookupEnv(name string) (string, bool) {
	for _, l := range c {
		if l == nil {
			continue
		}
		if v, ok := l.LookupEnv(name); ok {
			return v, true
		}
	}
	return "", false
}

// ReadDotenv parses a .env file without touching the process environment.
func ReadDotenv(path string) (Map, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, err
	}
	return Map(vars), nil
}

// ParseDotenv parses .env content.
func ParseDotenv(data []byte) (Map, error) {
	vars, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, err
	}
	return Map(vars), nil
}
