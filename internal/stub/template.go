// Package stub renders the tiny C# helper programs and drives the .NET
// compiler that turns them into native executables.
package stub

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

//go:embed cs/*.tmpl
var sources embed.FS

// Kind selects which helper program is generated.
type Kind string

const (
	// LauncherKind is a console exe placed next to the untouched game.
	LauncherKind Kind = "launcher"
	// WrapperKind is a windowless exe installed under the game's own name.
	WrapperKind Kind = "wrapper"
)

// Data fills a helper template.
type Data struct {
	// TargetExe is the file name (not path) started by the helper, resolved
	// against the helper's own directory at run time.
	TargetExe string
	// Args is the forced argument string, passed verbatim.
	Args string
}

var (
	tmplOnce sync.Once
	tmpl     *template.Template
	tmplErr  error
)

func templates() (*template.Template, error) {
	tmplOnce.Do(func() {
		tmpl, tmplErr = template.ParseFS(sources, "cs/*.tmpl")
		if tmplErr != nil {
			tmplErr = fmt.Errorf("parse helper templates: %w", tmplErr)
		}
	})
	return tmpl, tmplErr
}

// csEscaper makes a value safe inside a regular C# string literal.
var csEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", `\r`, "\n", `\n`)

// Render returns the C# source for kind with d substituted.
func Render(kind Kind, d Data) (string, error) {
	t, err := templates()
	if err != nil {
		return "", err
	}
	name := string(kind) + ".cs.tmpl"
	if t.Lookup(name) == nil {
		return "", fmt.Errorf("unknown helper kind %q", kind)
	}
	esc := Data{TargetExe: csEscaper.Replace(d.TargetExe), Args: csEscaper.Replace(d.Args)}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, esc); err != nil {
		return "", fmt.Errorf("render %s: %w", kind, err)
	}
	return buf.String(), nil
}
