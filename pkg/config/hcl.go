// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// HCL schema. Pointers tell an absent attribute apart from an explicit zero.
type hclSpaces struct {
	Faces    *float64 `hcl:"faces,optional"`
	Actions  *float64 `hcl:"actions,optional"`
	Stutters *float64 `hcl:"stutters,optional"`
	Enabled  *bool    `hcl:"enabled,optional"`
}

type hclModifiers struct {
	Words        *float64   `hcl:"words,optional"`
	Exclamations *float64   `hcl:"exclamations,optional"`
	Spaces       *hclSpaces `hcl:"spaces,block"`
}

type hclStore struct {
	Driver string  `hcl:"driver"`
	Path   *string `hcl:"path,optional"`
}

type hclConfig struct {
	Modifiers       *hclModifiers `hcl:"modifiers,block"`
	EdgeCases       *[]string     `hcl:"edge_cases,optional"`
	ReservedChannel *string       `hcl:"reserved_channel,optional"`
	Store           *hclStore     `hcl:"store,block"`
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_reserved_channel": cty.StringVal(DefaultReservedChannel),
		},
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Overlay onto defaults
	cfg := Default()

	if m := hclCfg.Modifiers; m != nil {
		setFloat(&cfg.Modifiers.Words, m.Words)
		setFloat(&cfg.Modifiers.Exclamations, m.Exclamations)
		if s := m.Spaces; s != nil {
			setFloat(&cfg.Modifiers.Spaces.Faces, s.Faces)
			setFloat(&cfg.Modifiers.Spaces.Actions, s.Actions)
			setFloat(&cfg.Modifiers.Spaces.Stutters, s.Stutters)
			if s.Enabled != nil {
				cfg.Modifiers.Spaces.Enabled = *s.Enabled
			}
		}
	}

	if hclCfg.EdgeCases != nil {
		cfg.EdgeCases = *hclCfg.EdgeCases
	}

	if hclCfg.ReservedChannel != nil {
		cfg.ReservedChannel = *hclCfg.ReservedChannel
	}

	if s := hclCfg.Store; s != nil {
		cfg.Store.Driver = s.Driver
		cfg.Store.Path = ""
		if s.Path != nil {
			cfg.Store.Path = *s.Path
		}
	}

	return cfg, nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
