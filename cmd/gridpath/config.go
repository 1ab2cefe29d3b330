package main

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pingcap/errors"
)

// Profile holds the maze cost model and the wall rune.
type Profile struct {
	StepCost int
	TurnCost int
	Wall     string
}

// DefaultProfile charges 1 per step and 1000 per quarter turn, with '#'
// walls.
func DefaultProfile() Profile {
	return Profile{StepCost: 1, TurnCost: 1000, Wall: "#"}
}

// hclProfile is the decoding target; nil fields keep their defaults.
type hclProfile struct {
	StepCost *int    `hcl:"step_cost,optional"`
	TurnCost *int    `hcl:"turn_cost,optional"`
	Wall     *string `hcl:"wall,optional"`
}

// LoadProfile reads an HCL cost profile. An empty path or a missing file
// yields DefaultProfile.
func LoadProfile(path string) (Profile, bool, error) {
	p := DefaultProfile()
	if path == "" {
		return p, false, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return p, false, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return p, false, errors.Annotatef(diags, "parse profile %s", path)
	}
	var raw hclProfile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return p, false, errors.Annotatef(diags, "decode profile %s", path)
	}

	if raw.StepCost != nil {
		p.StepCost = *raw.StepCost
	}
	if raw.TurnCost != nil {
		p.TurnCost = *raw.TurnCost
	}
	if raw.Wall != nil {
		p.Wall = *raw.Wall
	}
	if err := p.validate(); err != nil {
		return p, false, errors.Annotatef(err, "profile %s", path)
	}

	return p, true, nil
}

func (p Profile) validate() error {
	if p.StepCost < 0 || p.TurnCost < 0 {
		return errors.Errorf("costs must be non-negative, got step_cost=%d turn_cost=%d", p.StepCost, p.TurnCost)
	}
	if p.Wall == "" {
		return errors.New("wall must not be empty")
	}
	return nil
}
