package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/krkit/pkg/krid"
	"github.com/dmitrymomot/krkit/pkg/logger"
	"github.com/dmitrymomot/krkit/pkg/sanitizer"
	"github.com/dmitrymomot/krkit/pkg/validator"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		kind  string
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "check <number>...",
		Short: "Validate resident and foreign registration numbers",
		Long: `Validate 13-digit registration numbers and print the kind of each one
(rrn, frn or invalid). Hyphens, spaces and full-width digits are ignored.
Exits non-zero if any number is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := checkRule(kind)
			if err != nil {
				return err
			}

			ctx := a.commandContext(cmd)
			out := cmd.OutOrStdout()

			rules := make([]validator.Rule, 0, len(args))
			for i, arg := range args {
				ssn := sanitizer.NormalizeSSN(arg)
				rules = append(rules, rule(strconv.Itoa(i+1), ssn))

				k := krid.Classify(ssn)
				a.log.DebugContext(ctx, "number checked", logger.Kind(k.String()), maskedAttr(ssn))
				if !quiet {
					fmt.Fprintf(out, "%s\t%s\n", arg, k)
				}
			}

			if err := validator.Apply(rules...); err != nil {
				verrs := validator.ExtractValidationErrors(err)
				a.log.InfoContext(ctx, "validation failed", logger.Event("check_failed"), slog.Int("failed", len(verrs)))
				return fmt.Errorf("%w: %d of %d numbers rejected", errInvalidInput, len(verrs), len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "any", "required kind: any, rrn or frn")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress output, report through the exit status only")

	return cmd
}

func checkRule(kind string) (func(field, value string) validator.Rule, error) {
	switch kind {
	case "any", "":
		return validator.ValidSSN, nil
	case "rrn":
		return validator.ValidRRN, nil
	case "frn":
		return validator.ValidFRN, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q, want any, rrn or frn", errInvalidInput, kind)
	}
}

// maskedAttr never echoes input that is not 13 digits: MaskSSNKR would pass it
// through unchanged, so only its length is logged.
func maskedAttr(ssn string) slog.Attr {
	if len(ssn) != krid.SSNLength {
		return slog.Int("length", len(ssn))
	}
	return logger.Masked(krid.MaskSSN(ssn, krid.MaskRevealCode))
}
