package emit

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/slpbuild/internal/codegen"
)

// DefaultExposedName is the public entry symbol used when the program does
// not carry one (non-JS targets skip the packager).
const DefaultExposedName = "App"

// JS assembles an initialization program into a JavaScript IIFE. Output is
// deterministic: map literals are rendered with sorted keys.
type JS struct{}

// NewJS returns the JavaScript assembler.
func NewJS() *JS { return &JS{} }

// Assemble renders the program. Actions split into three sections: top-level
// statements in program order, the body of the init function, and the
// trailing main-entry statements.
func (*JS) Assemble(p *codegen.Program) (string, error) {
	exposed := p.ExposedName
	if exposed == "" {
		exposed = DefaultExposedName
	}

	var top, init, tail []string
	for _, action := range p.Actions {
		switch a := action.(type) {
		case codegen.Import:
			top = append(top, fmt.Sprintf("app.require(%s);", jsString(a.Name)))
		case codegen.BuildArgsMap:
			if a.Var == codegen.ParamsVar {
				top = append(top, fmt.Sprintf("app.params = %s;", jsObject(a.Entries)))
			} else {
				top = append(top, fmt.Sprintf("var %s = %s;", a.Var, jsObject(a.Entries)))
			}
		case codegen.RegisterComponent:
			if a.ArgsVar != "" {
				top = append(top, fmt.Sprintf("app.register(%s, %s);", jsString(a.Name), a.ArgsVar))
			} else {
				top = append(top, fmt.Sprintf("app.register(%s);", jsString(a.Name)))
			}
		case codegen.AssignEmbeddedHTML:
			top = append(top, fmt.Sprintf("app.embeddedHtml = %s;", jsString(a.Literal)))
			init = append(init, fmt.Sprintf("app.%s.innerHTML = app.embeddedHtml;", a.Target))
		case codegen.SetOnLoadLaunch:
			top = append(top, `global.addEventListener("load", function () { app.launch(); });`)
		case codegen.AppendLaunchCall:
			init = append(init, "app.launch();")
		case codegen.AppendMainInitCall:
			tail = append(tail, "app.init();")
		default:
			return "", fmt.Errorf("unknown initialization action %T", action)
		}
	}

	var sb strings.Builder
	sb.WriteString("// Code generated by slpbuild. DO NOT EDIT.\n")
	sb.WriteString("(function (global) {\n")
	sb.WriteString("    \"use strict\";\n\n")
	fmt.Fprintf(&sb, "    var app = global.%s = global.%s || {};\n", exposed, exposed)
	fmt.Fprintf(&sb, "    app.flags = %s;\n\n", jsFlags(p.Flags))

	for _, line := range top {
		sb.WriteString("    " + line + "\n")
	}

	sb.WriteString("\n    app.init = function () {\n")
	for _, line := range init {
		sb.WriteString("        " + line + "\n")
	}
	sb.WriteString("    };\n")

	if len(tail) > 0 {
		sb.WriteString("\n")
		for _, line := range tail {
			sb.WriteString("    " + line + "\n")
		}
	}

	sb.WriteString("}(this));\n")
	return sb.String(), nil
}

// jsString renders s as a JavaScript string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// jsObject renders a string map as an object literal with sorted keys.
func jsObject(entries map[string]string) string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", jsString(k), jsString(entries[k])))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// jsFlags renders the compile-flag set with sorted keys.
func jsFlags(flags map[string]bool) string {
	keys := make([]string, 0, len(flags))
	for k := range flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: true", jsString(k)))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
