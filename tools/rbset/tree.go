package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rdeusser/rbset/set"
)

func (a *app) treeCommand() *cobra.Command {
	var remove []int

	cmd := &cobra.Command{
		Use:   "tree [values...]",
		Short: "Print the tree built from the given values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.tree(args, remove)
		},
	}

	cmd.Flags().IntSliceVar(&remove, "remove", nil, "values to remove after inserting")

	return cmd
}

func (a *app) tree(args []string, remove []int) error {
	s := set.New()

	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("parse %q: %w", arg, err)
		}

		if !s.Add(v) {
			a.log.Debug("duplicate ignored", zap.Int("value", v))
		}
	}

	for _, v := range remove {
		if !s.Remove(v) {
			a.log.Debug("not present", zap.Int("value", v))
		}
	}

	if err := s.Verify(); err != nil {
		return err
	}

	a.log.Debug("tree built", zap.Array("items", s))

	if err := s.Display(a.out); err != nil {
		return err
	}

	return s.Fprint(a.out)
}
