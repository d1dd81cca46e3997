package main

import (
	"fmt"

	"github.com/grafana/exprtype/pkg/typecheck"
)

type binaryCmd struct {
	Op  string `arg:"" help:"operator, e.g. + or like"`
	LHS string `arg:"" name:"lhs" help:"type of the left operand"`
	RHS string `arg:"" name:"rhs" help:"type of the right operand"`
}

func (cmd *binaryCmd) Run(opts *globalOptions) error {
	op, err := typecheck.ParseOperator(cmd.Op)
	if err != nil {
		return err
	}

	types, err := parseTypes([]string{cmd.LHS, cmd.RHS})
	if err != nil {
		return err
	}

	e := typecheck.NewBinaryOperation(op, typecheck.NewColumn("lhs", types[0]), typecheck.NewColumn("rhs", types[1]))

	c := typecheck.NewChecker(nil)
	t, err := c.TypeOf(e)
	if err != nil {
		return err
	}
	rewritten, err := c.Rewrite(e)
	if err != nil {
		return err
	}

	fmt.Fprintf(opts.out, "%s -> %s\n", rewritten, t)
	return nil
}
