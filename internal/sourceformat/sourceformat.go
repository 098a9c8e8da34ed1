// Package sourceformat renders a compiled DAFSA byte array as Go source
// text, the Go-native analogue of the upstream tool's to_cxx: a generated,
// read-only byte array a calling program can embed directly instead of
// loading the raw binary at runtime.
package sourceformat

import (
	"strings"

	"github.com/projectdiscovery/fasttemplate"
)

const tmpl = `// Code generated by dafsagen. DO NOT EDIT.

package {{package}}

var {{name}} = [...]byte{
{{rows}}}
`

const rowTmpl = "\t{{bytes}}\n"

// Options controls the rendered Go source.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// Name is the identifier the byte array is assigned to.
	Name string
}

// Render renders data as a Go source file declaring a byte array literal,
// one row of up to 12 bytes per line, mirroring the upstream to_cxx's
// twelve-bytes-per-row layout.
func Render(data []byte, opts Options) string {
	var rows strings.Builder
	for i := 0; i < len(data); i += 12 {
		end := i + 12
		if end > len(data) {
			end = len(data)
		}
		rows.WriteString(renderRow(data[i:end]))
	}

	values := map[string]interface{}{
		"package": opts.Package,
		"name":    opts.Name,
		"rows":    rows.String(),
	}
	return fasttemplate.ExecuteStringStd(tmpl, "{{", "}}", values)
}

func renderRow(row []byte) string {
	parts := make([]string, len(row))
	for i, b := range row {
		parts[i] = "0x" + hexByte(b)
	}
	values := map[string]interface{}{
		"bytes": strings.Join(parts, ", ") + ",",
	}
	return fasttemplate.ExecuteStringStd(rowTmpl, "{{", "}}", values)
}

const hexDigits = "0123456789abcdef"

func hexByte(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0F]})
}
