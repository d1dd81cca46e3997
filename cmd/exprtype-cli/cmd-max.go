package main

import (
	"fmt"

	"github.com/grafana/exprtype/pkg/exprtype"
)

type maxCmd struct {
	A string `arg:"" help:"first type"`
	B string `arg:"" help:"second type"`
}

func (cmd *maxCmd) Run(opts *globalOptions) error {
	types, err := parseTypes([]string{cmd.A, cmd.B})
	if err != nil {
		return err
	}

	t, err := exprtype.Max(types[0], types[1])
	if err != nil {
		return err
	}

	fmt.Fprintln(opts.out, t)
	return nil
}
