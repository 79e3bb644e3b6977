// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optschema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/cmdline/pkg/cmdline"
)

const tomlSchema = `
name = "app"

[[option]]
description = "A required filename"
required = true

[[option]]
name = "someoption"
short = "s"
kind = "int32"
default = 10
description = "My description of someoption"

[[option]]
name = "flag"
default = false

[[option]]
name = "ratio"
default = 0.5

[[option]]
name = "big"
default = 10000000000
`

const yamlSchema = `
name: app
option:
  - description: A required filename
    required: true
  - name: someoption
    short: s
    kind: int32
    default: 10
    description: My description of someoption
  - name: flag
    default: false
  - name: ratio
    default: 0.5
  - name: big
    default: 10000000000
`

func TestDecodeFormats(t *testing.T) {
	want := &Schema{
		Name: "app",
		Options: []OptionDecl{
			{Description: "A required filename", Required: true},
			{Name: "someoption", Short: "s", Kind: "int32", Default: int64(10), Description: "My description of someoption"},
			{Name: "flag", Default: false},
			{Name: "ratio", Default: 0.5},
			{Name: "big", Default: int64(10000000000)},
		},
	}

	got, err := Decode([]byte(tomlSchema), FormatTOML)
	if err != nil {
		t.Fatalf("Decode(toml) error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("toml schema mismatch (-want +got):\n%s", diff)
	}

	got, err = Decode([]byte(yamlSchema), FormatYAML)
	if err != nil {
		t.Fatalf("Decode(yaml) error = %v", err)
	}
	// yaml.v3 decodes small integers as int.
	want.Options[1].Default = 10
	want.Options[4].Default = 10000000000
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("yaml schema mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeUnknownKeys(t *testing.T) {
	if _, err := Decode([]byte("[[option]]\nnmae = \"x\"\n"), FormatTOML); err == nil {
		t.Error("Decode(toml) accepted an unknown key")
	}
	if _, err := Decode([]byte("option:\n  - nmae: x\n"), FormatYAML); err == nil {
		t.Error("Decode(yaml) accepted an unknown key")
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	s, err := Decode(nil, FormatYAML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(s.Options) != 0 {
		t.Errorf("Options = %v, want none", s.Options)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"app.toml": tomlSchema,
		"app.yaml": yamlSchema,
		"app.yml":  yamlSchema,
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", name, err)
		}
		if s.Name != "app" || len(s.Options) != 5 {
			t.Errorf("Load(%s) = %+v", name, s)
		}
	}

	if _, err := Load(filepath.Join(dir, "app.json")); err == nil {
		t.Error("Load(app.json) succeeded")
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing.toml) error = %v, want ErrNotExist", err)
	}
}

func TestBuildAndParse(t *testing.T) {
	s, err := Decode([]byte(tomlSchema), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	p := cmdline.NewParser()
	b, err := s.Build(p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if err := p.Parse([]string{"./app", "input.txt", "-s", "3", "--flag"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []Result{
		{Name: "arg1", Kind: "string", Value: "input.txt", Given: true},
		{Name: "someoption", Kind: "int32", Value: int32(3), Given: true},
		{Name: "flag", Kind: "bool", Value: true, Given: true},
		{Name: "ratio", Kind: "float64", Value: 0.5},
		{Name: "big", Kind: "int64", Value: int64(10000000000)},
	}
	if diff := cmp.Diff(want, b.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRequiredMissing(t *testing.T) {
	s, err := Decode([]byte(yamlSchema), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	p := cmdline.NewParser()
	if _, err := s.Build(p); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if err := p.Parse([]string{"./app", "--ratio", "1.25"}); !errors.Is(err, cmdline.ErrUnsatisfiedRequired) {
		t.Fatalf("Parse() error = %v, want ErrUnsatisfiedRequired", err)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		decl OptionDecl
		want error
	}{
		{"bad name", OptionDecl{Name: "dry-run"}, cmdline.ErrName},
		{"required with default", OptionDecl{Name: "x", Required: true, Default: "v"}, cmdline.ErrConflict},
		{"short on positional", OptionDecl{Short: "s"}, cmdline.ErrConflict},
		{"default out of int32 range", OptionDecl{Name: "n", Kind: "int32", Default: int64(1) << 40}, cmdline.ErrTypeMismatch},
		{"default of wrong kind", OptionDecl{Name: "n", Kind: "bool", Default: "yes"}, cmdline.ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Schema{Options: []OptionDecl{tt.decl}}
			if _, err := s.Build(cmdline.NewParser()); !errors.Is(err, tt.want) {
				t.Fatalf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}

	s := &Schema{Options: []OptionDecl{{Name: "x", Kind: "uint8"}}}
	if _, err := s.Build(cmdline.NewParser()); err == nil {
		t.Error("Build() accepted kind uint8")
	}
}

func TestDeclKindInference(t *testing.T) {
	tests := []struct {
		decl OptionDecl
		want cmdline.Kind
	}{
		{OptionDecl{}, cmdline.KindString},
		{OptionDecl{Default: "x"}, cmdline.KindString},
		{OptionDecl{Default: true}, cmdline.KindBool},
		{OptionDecl{Default: 1.5}, cmdline.KindFloat64},
		{OptionDecl{Default: 3}, cmdline.KindInt64},
		{OptionDecl{Default: int64(3)}, cmdline.KindInt64},
		{OptionDecl{Kind: "int", Default: 3}, cmdline.KindInt32},
	}
	for _, tt := range tests {
		got, err := declKind(tt.decl)
		if err != nil || got != tt.want {
			t.Errorf("declKind(%+v) = %v, %v; want %v", tt.decl, got, err, tt.want)
		}
	}
	if _, err := declKind(OptionDecl{Default: []any{1}}); err == nil {
		t.Error("declKind accepted a list default")
	}
}

func TestFloatDefaultFromInteger(t *testing.T) {
	var decl = OptionDecl{Name: "ratio", Kind: "float64", Default: int64(2)}
	s := &Schema{Options: []OptionDecl{decl}}
	p := cmdline.NewParser()
	b, err := s.Build(p)
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Values()[0].Value; got != 2.0 {
		t.Errorf("Value = %v, want 2.0", got)
	}
}
