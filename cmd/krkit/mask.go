package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/krkit/pkg/krid"
	"github.com/dmitrymomot/krkit/pkg/logger"
	"github.com/dmitrymomot/krkit/pkg/sanitizer"
	"github.com/dmitrymomot/krkit/pkg/validator"
)

func newMaskCmd(a *app) *cobra.Command {
	var (
		maskType int
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "mask <number>...",
		Short: "Mask registration numbers for display",
		Long: `Mask the serial part of registration numbers.

  --type 1   880415-*******
  --type 2   880415-1******

The default type comes from KRKIT_MASK_TYPE.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Apply(validator.ValidMaskType("type", maskType)); err != nil {
				return fmt.Errorf("%w: %v", errInvalidInput, err)
			}
			typ, err := krid.ParseMaskType(maskType)
			if err != nil {
				return err
			}

			ctx := a.commandContext(cmd)
			out := cmd.OutOrStdout()

			for _, arg := range args {
				if strict {
					if err := validator.Apply(validator.ValidSSN("number", sanitizer.NormalizeSSN(arg))); err != nil {
						a.log.WarnContext(ctx, "refusing to mask invalid number", logger.Error(err))
						return fmt.Errorf("%w: %v", errInvalidInput, err)
					}
				}
				fmt.Fprintln(out, sanitizer.MaskSSNKR(arg, typ))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&maskType, "type", "t", a.cfg.MaskType, "mask type: 1 hides all serial digits, 2 keeps the code digit")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject numbers that fail the checksum")

	return cmd
}
