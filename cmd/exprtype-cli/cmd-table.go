package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/grafana/exprtype/pkg/exprtype"
)

type tableCmd struct {
	From string `help:"only print edges leaving this type"`
}

func (cmd *tableCmd) Run(opts *globalOptions) error {
	var from exprtype.Type
	filter := cmd.From != ""
	if filter {
		t, err := exprtype.ParseType(cmd.From)
		if err != nil {
			return err
		}
		from = t
	}

	out := make([][]string, 0)
	for _, e := range exprtype.Edges() {
		if filter && e.From != from {
			continue
		}
		out = append(out, []string{e.From.String(), e.To.String(), strconv.Itoa(e.Weight)})
	}

	w := tablewriter.NewWriter(opts.out)
	w.Header("from", "to", "weight")
	if err := w.Bulk(out); err != nil {
		return err
	}
	return w.Render()
}
