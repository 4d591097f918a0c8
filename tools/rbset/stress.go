package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rdeusser/rbset/set"
)

func (a *app) stressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Insert 1..count in random order, remove them in another, verifying the tree after every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.stress(a.v.GetInt("count"), a.v.GetInt64("seed"))
		},
	}

	cmd.Flags().Int("count", 1000, "number of items")
	cmd.Flags().Int64("seed", 0, "random seed; 0 picks one from the clock")

	_ = a.v.BindPFlag("count", cmd.Flags().Lookup("count"))
	_ = a.v.BindPFlag("seed", cmd.Flags().Lookup("seed"))

	return cmd
}

func (a *app) stress(count int, seed int64) error {
	if count < 0 {
		return fmt.Errorf("count must not be negative, got %d", count)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log := a.log.With(zap.Int("count", count), zap.Int64("seed", seed))
	rnd := rand.New(rand.NewSource(seed))
	start := time.Now()

	s := set.New()
	step := count / 10
	if step == 0 {
		step = 1
	}

	for i, v := range rnd.Perm(count) {
		if !s.Add(v + 1) {
			return fmt.Errorf("add %d: reported as duplicate", v+1)
		}

		if err := s.Verify(); err != nil {
			return fmt.Errorf("after adding %d: %w", v+1, err)
		}

		if (i+1)%step == 0 {
			log.Debug("adding", zap.Int("size", s.Length()))
		}
	}

	for i, v := range rnd.Perm(count) {
		if !s.Remove(v + 1) {
			return fmt.Errorf("remove %d: reported as missing", v+1)
		}

		if err := s.Verify(); err != nil {
			return fmt.Errorf("after removing %d: %w", v+1, err)
		}

		if (i+1)%step == 0 {
			log.Debug("removing", zap.Int("size", s.Length()))
		}
	}

	if s.Length() != 0 {
		return fmt.Errorf("%d items left after removing everything", s.Length())
	}

	log.Info("stress passed", zap.Duration("elapsed", time.Since(start)))

	_, err := fmt.Fprintf(a.out, "ok: %d items, seed %d\n", count, seed)
	return err
}
