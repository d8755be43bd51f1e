package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/delimtok/delimtok/pkg/delim"
)

var (
	FlagNameCount       = "count"
	FlagNameDelimiters  = "delimiters"
	FlagNameTerminators = "terminators"
	FlagNameMasked      = "masked"
)

// fieldsCmd extracts fixed-size field groups regardless of row structure.
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Extract fixed-size field groups from delimited data",
	Long: `fields reads groups of exactly --count fields from the input, treating
--delimiters, --terminators and --masked as sets of bytes, and writes one
group per output line. Empty fields are always an error.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)

		count, _ := cmd.Flags().GetInt(FlagNameCount)
		if count < 1 {
			return fmt.Errorf("%w: --count must be positive, got %d", delim.ErrInvalidArgument, count)
		}

		onUnderfull := cmd.Flag(FlagNameOnUnderfull).Value.String()
		opts := delim.DefaultFieldOptions()
		opts.Delimiters = cmd.Flag(FlagNameDelimiters).Value.String()
		opts.Terminators = cmd.Flag(FlagNameTerminators).Value.String()
		opts.Masked = cmd.Flag(FlagNameMasked).Value.String()
		warnOnSkip := false
		switch onUnderfull {
		case "error":
			// defaults already enforce
		case "warn":
			warnOnSkip = true
			fallthrough
		case "skip":
			opts.EnforceFieldNumber = false
			opts.IgnoreUnderfullData = true
		case "keep":
			opts.EnforceFieldNumber = false
			opts.IgnoreUnderfullData = false
		default:
			return fmt.Errorf("unknown on-underfull mode %q", onUnderfull)
		}
		if err := opts.Validate(); err != nil {
			return err
		}

		input, closeInput, err := getInputStream(cmd.Flag(FlagNameInput).Value.String())
		if err != nil {
			return fmt.Errorf("cannot create input stream: %w", err)
		}
		defer closeInput()
		output, closeOutput, err := getOutputStream(cmd.Flag(FlagNameOutput).Value.String())
		if err != nil {
			return fmt.Errorf("cannot create output stream: %w", err)
		}
		defer closeOutput()

		return runFields(input, output, opts, count, warnOnSkip, log)
	},
}

func init() {
	fieldsCmd.Flags().IntP(FlagNameCount, "n", 1, "number of fields per group")
	fieldsCmd.Flags().String(FlagNameDelimiters, "\t", "set of delimiter bytes")
	fieldsCmd.Flags().String(FlagNameTerminators, "\n", "set of terminator bytes")
	fieldsCmd.Flags().String(FlagNameMasked, "", "set of bytes to drop while reading")
	fieldsCmd.Flags().String(FlagNameOnUnderfull, "error", "underfull-group mode: error|skip|warn|keep")
	rootCmd.AddCommand(fieldsCmd)
}
