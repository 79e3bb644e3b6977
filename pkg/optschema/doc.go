// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optschema declares cmdline options from a TOML or YAML document.
//
//	name = "app"
//
//	[[option]]
//	description = "Input file"
//	required = true
//
//	[[option]]
//	name = "count"
//	short = "c"
//	kind = "int32"
//	default = 10
//
// An option without a name is positional. The kind is taken from "kind", or
// inferred from "default" (integers become int64), or defaults to string.
//
//	s, err := optschema.Load("app.toml")
//	p := cmdline.NewParser()
//	b, err := s.Build(p)
//	err = p.Parse(os.Args)
//	for _, r := range b.Values() { ... }
package optschema
