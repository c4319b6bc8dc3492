// Command endpointgen renders the endpoint catalog schema into Go descriptor
// variables and typed client methods.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const header = "// Code generated by endpointgen; DO NOT EDIT.\n"

var (
	errNoPackage       = errors.New("schema package name is empty")
	errDuplicateName   = errors.New("duplicate endpoint name")
	errUnknownSecurity = errors.New("unknown security class")
	errUnknownMethod   = errors.New("unknown HTTP method")
	errMissingField    = errors.New("missing required field")

	securityClasses = map[string]bool{
		"Public":     true,
		"Trade":      true,
		"UserData":   true,
		"UserStream": true,
		"Margin":     true,
		"MarketData": true,
	}
	httpMethods = map[string]bool{"GET": true, "POST": true, "PUT": true, "DELETE": true}
)

// Schema is the catalog file
type Schema struct {
	Package string  `yaml:"package"`
	REST    []Entry `yaml:"rest"`
	WS      []Entry `yaml:"ws"`
}

// Entry is a single REST endpoint or websocket API method
type Entry struct {
	Name     string `yaml:"name"`
	Method   string `yaml:"method"`
	Path     string `yaml:"path"`
	Security string `yaml:"security"`
	Params   string `yaml:"params"`
	Response string `yaml:"response"`
	Doc      string `yaml:"doc"`
}

// ParamsType is the descriptor's parameter type
func (e Entry) ParamsType() string {
	if e.Params == "" {
		return "endpoint.Empty"
	}
	return e.Params
}

// MethodConst is the net/http constant suffix for the HTTP verb
func (e Entry) MethodConst() string {
	return cases.Title(language.Und).String(e.Method)
}

var tmpl = template.Must(template.New("endpoints").Parse(header + `
package {{.Package}}

import (
	"context"
	"net/http"

	"github.com/thrasher-corp/binance-connector/exchanges/endpoint"
)

// REST endpoints
var (
{{- range $i, $e := .REST}}
{{- if $i}}
{{end}}
	// {{.Name}}Endpoint {{.Doc}}
	{{.Name}}Endpoint = endpoint.New[{{.ParamsType}}, {{.Response}}](http.Method{{.MethodConst}}, "{{.Path}}", endpoint.{{.Security}})
{{- end}}
)

// Websocket API methods
var (
{{- range $i, $e := .WS}}
{{- if $i}}
{{end}}
	// {{.Name}}Method {{.Doc}}
	{{.Name}}Method = endpoint.NewMethod[{{.ParamsType}}, {{.Response}}]("{{.Method}}", endpoint.{{.Security}})
{{- end}}
)
{{range .REST}}
// {{.Name}} {{.Doc}}
func (c *Client) {{.Name}}(ctx context.Context{{if .Params}}, params {{.Params}}{{end}}) ({{.Response}}, error) {
	return {{.Name}}Endpoint.Do(ctx, c, {{if .Params}}params{{else}}endpoint.Empty{}{{end}})
}
{{end}}
{{- range .WS}}
// {{.Name}} {{.Doc}}
func (w *WSAPI) {{.Name}}(ctx context.Context{{if .Params}}, params {{.Params}}{{end}}) ({{.Response}}, error) {
	return {{.Name}}Method.Do(ctx, w, {{if .Params}}params{{else}}endpoint.Empty{}{{end}})
}
{{end}}`))

func main() {
	var in, out string
	flag.StringVar(&in, "in", "endpoints.yaml", "catalog schema to read")
	flag.StringVar(&out, "out", "endpoints_gen.go", "Go file to write")
	flag.Parse()

	data, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "endpointgen:", err)
		os.Exit(1)
	}
	src, err := generate(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "endpointgen:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "endpointgen:", err)
		os.Exit(1)
	}
}

// generate parses the schema and returns the formatted Go source
func generate(data []byte) ([]byte, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, &s); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func (s *Schema) validate() error {
	if s.Package == "" {
		return errNoPackage
	}
	for kind, entries := range map[string][]Entry{"rest": s.REST, "ws": s.WS} {
		seen := make(map[string]bool, len(entries))
		for i := range entries {
			e := &entries[i]
			if e.Name == "" || e.Method == "" || e.Response == "" {
				return fmt.Errorf("%s entry %d: %w", kind, i, errMissingField)
			}
			if seen[e.Name] {
				return fmt.Errorf("%s %s: %w", kind, e.Name, errDuplicateName)
			}
			seen[e.Name] = true
			if !securityClasses[e.Security] {
				return fmt.Errorf("%s %s: %w %q", kind, e.Name, errUnknownSecurity, e.Security)
			}
			if kind == "rest" {
				if !httpMethods[e.Method] {
					return fmt.Errorf("%s %s: %w %q", kind, e.Name, errUnknownMethod, e.Method)
				}
				if !strings.HasPrefix(e.Path, "/") {
					return fmt.Errorf("%s %s: path %w", kind, e.Name, errMissingField)
				}
			}
		}
	}
	return nil
}
