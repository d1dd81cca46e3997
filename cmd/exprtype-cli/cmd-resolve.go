package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

type resolveCmd struct {
	Function string   `arg:"" help:"function name"`
	Args     []string `arg:"" optional:"" help:"argument types"`
}

func (cmd *resolveCmd) Run(opts *globalOptions) error {
	args, err := parseTypes(cmd.Args)
	if err != nil {
		return err
	}

	r, err := opts.registry()
	if err != nil {
		return err
	}

	m, err := r.Resolve(cmd.Function, args)
	if err != nil {
		return err
	}

	fmt.Fprintln(opts.out, "overload:", m.Signature)
	fmt.Fprintln(opts.out, "distance:", m.Distance)

	if len(args) == 0 {
		return nil
	}

	out := make([][]string, 0, len(args))
	for i, a := range args {
		out = append(out, []string{
			strconv.Itoa(i),
			a.String(),
			m.Casts[i].String(),
			a.DistanceTo(m.Casts[i]).String(),
		})
	}

	w := tablewriter.NewWriter(opts.out)
	w.Header("arg", "type", "cast to", "distance")
	if err := w.Bulk(out); err != nil {
		return err
	}
	return w.Render()
}
