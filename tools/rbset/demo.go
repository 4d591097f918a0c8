package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rdeusser/rbset/set"
)

func (a *app) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every set operation on {1, 3, 5} and {3, 5, 7}",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.demo()
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func (a *app) demo() error {
	set1 := set.New(1, 3, 5)
	set2 := set.New(3, 5, 7)

	a.log.Debug("built sets", zap.Array("set1", set1), zap.Array("set2", set2))

	intersection := set1.Intersect(set2)
	union := set1.Union(set2)

	lines := []string{
		"Set 1: " + set1.String(),
		"Set 2: " + set2.String(),
		"Intersection: " + intersection.String(),
		"Union: " + union.String(),
		"Is 3 in Set 1? " + yesNo(set1.Contains(3)),
		"Are sets equal? " + yesNo(set1.Equal(set2)),
	}

	set1.Remove(3)
	lines = append(lines, "Set 1 after removing 3: "+set1.String())

	set3 := set1.Clone()
	lines = append(lines,
		"Set 3 (copy of Set 1): "+set3.String(),
		fmt.Sprintf("Set 1 == Set 2: %t", set1.Equal(set2)),
		fmt.Sprintf("Set 1 != Set 2: %t", set1.NotEqual(set2)),
	)

	for _, line := range lines {
		if _, err := fmt.Fprintln(a.out, line); err != nil {
			return err
		}
	}

	for _, pos := range []int{0, 10} {
		item, err := set1.At(pos)
		if err != nil {
			a.log.Warn("item lookup failed", zap.Int("position", pos), zap.Error(err))
			if _, err := fmt.Fprintf(a.out, "Item at position %d in Set 1: %v\n", pos, err); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(a.out, "Item at position %d in Set 1: %d\n", pos, item); err != nil {
			return err
		}
	}

	return nil
}
