// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
	"io"
	"strings"
)

// Usage renders a help message for the options declared on p. name is the
// program name shown in the USAGE line; when empty the AppName of the last
// Parse call is used.
func Usage(p *Parser, name string) string {
	if name == "" {
		name = p.AppName()
	}
	var positionals, named []*Option
	for _, o := range p.options {
		if o.IsPositional() {
			positionals = append(positionals, o)
		} else {
			named = append(named, o)
		}
	}

	var b strings.Builder

	b.WriteString("USAGE:\n")
	usageStr := fmt.Sprintf("    %s", name)
	if len(named) > 0 {
		usageStr += " [OPTIONS]"
	}
	for _, o := range positionals {
		argName := positionalLabel(o)
		if o.required {
			usageStr += fmt.Sprintf(" <%s>", argName)
		} else {
			usageStr += fmt.Sprintf(" [%s]", argName)
		}
	}
	b.WriteString(usageStr)
	b.WriteString("\n\n")

	if len(positionals) > 0 {
		b.WriteString("ARGUMENTS:\n")
		for _, o := range positionals {
			b.WriteString(formatEntry("    "+positionalLabel(o), o))
		}
		b.WriteString("\n")
	}

	b.WriteString("OPTIONS:\n")
	for _, o := range named {
		var flagStr string
		if o.shortName != "" {
			flagStr = fmt.Sprintf("    -%s, --%s", o.shortName, o.longName)
		} else {
			flagStr = fmt.Sprintf("        --%s", o.longName)
		}
		if o.kind != KindBool && o.kind != KindUnset {
			flagStr += " " + strings.ToUpper(o.kind.String())
		}
		b.WriteString(formatEntry(flagStr, o))
	}
	b.WriteString(fmt.Sprintf("%-28s %s\n", fmt.Sprintf("    %s, %s", helpFlagShort, helpFlagLong), "Show this help message"))

	return b.String()
}

// WriteUsage writes Usage(p, name) to w.
func WriteUsage(w io.Writer, p *Parser, name string) error {
	_, err := io.WriteString(w, Usage(p, name))
	return err
}

func positionalLabel(o *Option) string {
	if o.position > 0 {
		return fmt.Sprintf("ARG%d", o.position)
	}
	return "ARG"
}

func formatEntry(label string, o *Option) string {
	var b strings.Builder
	if o.description != "" {
		b.WriteString(fmt.Sprintf("%-28s %s", label, o.description))
	} else {
		b.WriteString(label)
	}
	if o.def != nil {
		b.WriteString(fmt.Sprintf(" (default: %s)", o.def))
	}
	if o.required {
		b.WriteString(" (required)")
	}
	b.WriteString("\n")
	return b.String()
}
