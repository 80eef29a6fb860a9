package main

import (
	"bytes"
	"go/format"
	"text/template"

	"github.com/pkg/errors"

	"github.com/quantumauth-io/quantum-go-cryptosvc/services"
)

type constant struct {
	Name    services.Name
	Enabled bool
}

type fileData struct {
	Profile string
	// Groups holds the flags split by family, in catalogue order.
	Groups [][]constant
	Flags  []constant
}

var fileTemplate = template.Must(template.New("flags").Parse(`// Code generated by cryptogen from profile {{printf "%q" .Profile}}; DO NOT EDIT.

package enablement

import "github.com/quantumauth-io/quantum-go-cryptosvc/services"

// Profile is the build profile these constants were generated from.
const Profile = {{printf "%q" .Profile}}

const (
{{range $i, $g := .Groups}}{{if $i}}
{{end}}{{range $g}}	{{.Name}} = {{.Enabled}}
{{end}}{{end}})

// IsEnabled reports whether name is compiled in. Unknown names report false.
func IsEnabled(name services.Name) bool {
	switch name {
{{range .Flags}}	case services.{{.Name}}:
		return {{.Name}}
{{end}}	default:
		return false
	}
}
`))

// render returns the gofmt'ed source of package enablement for a resolved
// profile.
func render(profileName string, resolved map[services.Name]bool) ([]byte, error) {
	data := fileData{Profile: profileName}
	var last services.Family
	for _, d := range services.Catalogue() {
		f := constant{Name: d.Name, Enabled: resolved[d.Name]}
		if len(data.Groups) == 0 || d.Family != last {
			data.Groups = append(data.Groups, nil)
			last = d.Family
		}
		data.Groups[len(data.Groups)-1] = append(data.Groups[len(data.Groups)-1], f)
		data.Flags = append(data.Flags, f)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "failed to execute template")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "generated code does not parse")
	}
	return src, nil
}
