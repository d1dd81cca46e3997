package main

import (
	"fmt"
)

type distanceCmd struct {
	From string `arg:"" help:"type to widen from"`
	To   string `arg:"" help:"type to widen to"`
	Int  bool   `help:"print the integer encoding (0 identical, 2147483647 impossible)"`
}

func (cmd *distanceCmd) Run(opts *globalOptions) error {
	types, err := parseTypes([]string{cmd.From, cmd.To})
	if err != nil {
		return err
	}

	d := types[0].DistanceTo(types[1])
	if cmd.Int {
		fmt.Fprintln(opts.out, d.Int())
		return nil
	}

	fmt.Fprintln(opts.out, d)
	return nil
}
