package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/krkit/pkg/logger"
	"github.com/dmitrymomot/krkit/pkg/sanitizer"
	"github.com/dmitrymomot/krkit/pkg/validator"
)

func newPhoneCmd(a *app) *cobra.Command {
	var (
		mask   bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "phone <number>...",
		Short: "Hyphenate domestic phone numbers",
		Long: `Format domestic phone numbers: 01043219876 becomes 010-4321-9876 and
023334444 becomes 02-333-4444. Numbers that cannot be formatted are printed
unchanged unless --strict is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.commandContext(cmd)
			out := cmd.OutOrStdout()

			for _, arg := range args {
				if strict {
					if err := validator.Apply(validator.ValidKoreanPhone("number", sanitizer.NormalizePhone(arg))); err != nil {
						a.log.WarnContext(ctx, "unformattable phone number", logger.Error(err))
						return fmt.Errorf("%w: %v", errInvalidInput, err)
					}
				}

				if mask {
					fmt.Fprintln(out, sanitizer.MaskPhoneKR(arg))
				} else {
					fmt.Fprintln(out, sanitizer.FormatPhoneKR(arg))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&mask, "mask", "m", false, "hide the middle segment")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject numbers that are not 9-11 digits starting with 0")

	return cmd
}
