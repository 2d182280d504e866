package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/argb"
	"github.com/unkn0wn-root/argb/internal/backend"
	"github.com/unkn0wn-root/argb/palette"
)

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print a stored color property",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var setCmd = &cobra.Command{
	Use:   "set <name> <text>",
	Short: "Store a color property",
	Long: `Parses <text> and stores it under <name>. The write is skipped with an
error if another editor changed the property in the meantime.`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

var invalidateCmd = &cobra.Command{
	Use:   "invalidate <name>",
	Short: "Drop a stored color property",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvalidate,
}

func withStore(ctx context.Context, fn func(*env, palette.Store) error) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.close()

	s, err := backend.Open(ctx, e.cfg, e.log, e.hooks)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(ctx); err != nil {
			e.log.Warn("store close failed", argb.Fields{"err": err})
		}
	}()
	return fn(e, s)
}

func runGet(cmd *cobra.Command, args []string) error {
	return withStore(cmd.Context(), func(_ *env, s palette.Store) error {
		c, ok, err := s.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("property %q not found", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), argb.Format(c))
		return nil
	})
}

func runSet(cmd *cobra.Command, args []string) error {
	name, text := args[0], args[1]
	return withStore(cmd.Context(), func(e *env, s palette.Store) error {
		conv := argb.NewConverter(argb.ConverterOptions{Logger: e.log, Hooks: e.hooks})
		c, err := conv.ConvertFrom(text)
		if err != nil {
			return err
		}
		rev := s.SnapshotRev(name)
		if err := s.SetWithRev(cmd.Context(), name, c, rev, e.cfg.TTL); err != nil {
			if errors.Is(err, palette.ErrConflict) {
				return fmt.Errorf("property %q changed while writing; retry", name)
			}
			return err
		}
		e.log.Info("property stored", argb.Fields{"name": name, "rev": rev})
		fmt.Fprintln(cmd.OutOrStdout(), argb.Format(c))
		return nil
	})
}

func runInvalidate(cmd *cobra.Command, args []string) error {
	return withStore(cmd.Context(), func(_ *env, s palette.Store) error {
		return s.Invalidate(cmd.Context(), args[0])
	})
}
