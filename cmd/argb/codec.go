package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/argb"
)

var flagEmpty bool

var formatCmd = &cobra.Command{
	Use:   "format <alpha> <red> <green> <blue>",
	Short: "Print the canonical text of a color",
	Long:  `Channels are decimal integers in 0..255. Use --empty for the empty color.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if flagEmpty {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(4)(cmd, args)
	},
	RunE: runFormat,
}

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Validate color text and print its canonical form",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	formatCmd.Flags().BoolVar(&flagEmpty, "empty", false, "Print the empty color")
}

func runFormat(cmd *cobra.Command, args []string) error {
	if flagEmpty {
		fmt.Fprintln(cmd.OutOrStdout(), argb.Format(argb.Empty))
		return nil
	}
	var ch [4]uint8
	names := [4]string{"alpha", "red", "green", "blue"}
	for i, a := range args {
		u, err := strconv.ParseUint(a, 10, 8)
		if err != nil {
			return fmt.Errorf("%s channel %q: must be an integer in 0..255", names[i], a)
		}
		ch[i] = uint8(u)
	}
	fmt.Fprintln(cmd.OutOrStdout(), argb.Format(argb.New(ch[0], ch[1], ch[2], ch[3])))
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.close()

	conv := argb.NewConverter(argb.ConverterOptions{Logger: e.log, Hooks: e.hooks})
	c, err := conv.ConvertFrom(args[0])
	if err != nil {
		return err
	}
	txt, err := conv.ConvertTo(c, argb.KindText)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, txt)
	if v, ok := argb.Concrete(c); ok {
		fmt.Fprintf(out, "packed: #%08X\n", v.Packed())
	}
	return nil
}
