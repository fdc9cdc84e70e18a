package validation

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/kbukum/confkit/record"
)

func TestCollectorCheck(t *testing.T) {
	c := NewCollector()
	c.Check(true, []string{"name"}, CodeCustom, "should pass")
	if c.HasErrors() {
		t.Error("expected no error for true condition")
	}
	if c.Err() != nil {
		t.Error("expected nil error without issues")
	}

	c.Check(false, []string{"db", "port"}, "min", "must be positive")
	if !c.HasErrors() {
		t.Fatal("expected error for false condition")
	}
	issue := c.Issues()[0]
	if !slices.Equal(issue.Path, []string{"db", "port"}) || issue.Code != "min" {
		t.Errorf("unexpected issue %+v", issue)
	}
}

func TestCollectorRequired(t *testing.T) {
	r := record.Record{"db": record.Record{"host": "x"}}
	c := NewCollector().
		Required(r, []string{"db", "host"}).
		Required(r, []string{"db", "port"})

	issues := c.Issues()
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].PathString() != "db.port" || issues[0].Code != CodeRequired {
		t.Errorf("unexpected issue %+v", issues[0])
	}
}

func TestCollectorAddCopiesPath(t *testing.T) {
	path := []string{"a", "b"}
	c := NewCollector().Add(path, CodeCustom, "x")
	path[0] = "changed"
	if c.Issues()[0].Path[0] != "a" {
		t.Error("expected collector to keep its own copy of the path")
	}
}

func TestErrorMessage(t *testing.T) {
	err := NewCollector().
		Add([]string{"name"}, CodeRequired, "is required").
		Add(nil, CodeInvalidType, "expected object").
		Err()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "name: is required") || !strings.Contains(msg, "(root): expected object") {
		t.Errorf("unexpected message %q", msg)
	}
}

type database struct {
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
}

type appConfig struct {
	Name     string   `mapstructure:"name" validate:"required,min=2"`
	Mode     string   `mapstructure:"mode" validate:"omitempty,oneof=dev prod"`
	Database database `mapstructure:"database"`
	Hidden   string   `mapstructure:"-" validate:"required"`
	Region   string   `validate:"required"`
}

func TestStructValid(t *testing.T) {
	cfg := appConfig{Name: "svc", Mode: "dev", Region: "eu", Database: database{Host: "db", Port: 5432}}
	if err := Struct(cfg); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructInvalid(t *testing.T) {
	cfg := appConfig{Name: "s", Mode: "test", Database: database{Port: 70000}}
	err := Struct(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}

	byPath := make(map[string]Issue)
	for _, issue := range verr.Issues {
		byPath[issue.PathString()] = issue
	}

	tests := []struct {
		path    string
		code    string
		message string
	}{
		{"name", "min", "must be at least 2 characters"},
		{"mode", "oneof", "must be one of: dev prod"},
		{"database.host", "required", "is required"},
		{"database.port", "max", "must be at most 65535"},
		{"Region", "required", "is required"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			issue, ok := byPath[tc.path]
			if !ok {
				t.Fatalf("missing issue for %s in %v", tc.path, verr.Issues)
			}
			if issue.Code != tc.code {
				t.Errorf("expected code %q, got %q", tc.code, issue.Code)
			}
			if issue.Message != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, issue.Message)
			}
		})
	}
	if len(verr.Issues) != len(tests) {
		t.Errorf("expected %d issues, got %v", len(tests), verr.Issues)
	}
}

func TestStructNonStruct(t *testing.T) {
	var verr *Error
	if err := Struct("not a struct"); !errors.As(err, &verr) {
		t.Fatalf("expected *Error for non-struct input, got %v", err)
	}
	if verr.Issues[0].Code != CodeInvalidType {
		t.Errorf("expected invalid_type, got %q", verr.Issues[0].Code)
	}
}

type Base struct {
	Name string `mapstructure:"name" validate:"required"`
}

type server struct {
	Host string `mapstructure:"host" validate:"required"`
}

type serviceConfig struct {
	Base     `mapstructure:",squash"`
	Named    Base      `mapstructure:",squash"`
	Servers  []server  `mapstructure:"servers" validate:"dive"`
	Internal *Base     `mapstructure:"-"`
	Database *database `mapstructure:"db"`
}

func TestStructPaths(t *testing.T) {
	cfg := serviceConfig{
		Servers:  []server{{Host: "a"}, {}},
		Internal: &Base{},
		Database: &database{Host: "db"},
	}
	var verr *Error
	if err := Struct(&cfg); !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %v", err)
	}

	var got []string
	for _, issue := range verr.Issues {
		got = append(got, issue.PathString())
	}
	slices.Sort(got)
	want := []string{"db.port", "name", "name", "servers.1.host"}
	if !slices.Equal(got, want) {
		t.Errorf("expected paths %v, got %v", want, got)
	}
}

func TestStructOnlySkippedFieldsFail(t *testing.T) {
	type cfg struct {
		Hidden string `mapstructure:"-" validate:"required"`
	}
	if err := Struct(cfg{}); err != nil {
		t.Errorf("expected fields tagged \"-\" to be ignored, got %v", err)
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"port", []string{"port"}},
		{"db.poolSize", []string{"db", "poolSize"}},
		{"servers[1].host", []string{"servers", "1", "host"}},
		{"labels[env]", []string{"labels", "env"}},
		{"grid[0][2]", []string{"grid", "0", "2"}},
	}
	for _, tc := range tests {
		if got := ParsePath(tc.in); !slices.Equal(got, tc.want) {
			t.Errorf("ParsePath(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
