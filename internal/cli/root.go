// Package cli implements the delimtok command line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/delimtok/delimtok/internal/config"
	"github.com/delimtok/delimtok/pkg/delim"
)

var (
	FlagNameInput       = "input"
	FlagNameOutput      = "output"
	FlagNameConfig      = "config"
	FlagNameDelimiter   = "delimiter"
	FlagNameSniff       = "sniff"
	FlagNameMinFields   = "min-fields"
	FlagNameMaxFields   = "max-fields"
	FlagNameOnUnderfull = "on-underfull"
	FlagNameOnOverfull  = "on-overfull"
	FlagNameVerbose     = "verbose"
)

// rootCmd reads delimited rows from the input, applies the configured
// field-count policy and per-column transformations, and writes the
// accepted rows to the output.
var rootCmd = &cobra.Command{
	Use:   "delimtok",
	Short: "Tokenize streams of delimiter-separated rows",
	Long: `delimtok reads rows of delimited data from a file or stdin, splits them
into fields, applies per-column transformations, enforces field-count
policy, and writes the surviving rows to a file or stdout.

Policy modes for --on-underfull and --on-overfull:
  error  fail on the first violating row
  skip   silently drop violating rows
  warn   drop violating rows and log a warning
  keep   deliver violating rows (as-is when underfull, truncated when overfull)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)

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

		opts, warnOnSkip, err := rowOptionsFromCommand(cmd)
		if err != nil {
			return err
		}

		sniff, _ := cmd.Flags().GetBool(FlagNameSniff)
		if sniff {
			buffered, delimiter := sniffDelimiter(input)
			input = buffered
			opts.Delimiter = delimiter
			log.Debugf("sniffed delimiter %q", delimiter)
		}

		return runRows(input, output, opts, warnOnSkip, log)
	},
}

// rowOptionsFromCommand builds tokenizer options from the config file when
// one is given, otherwise from the policy flags.
func rowOptionsFromCommand(cmd *cobra.Command) (delim.RowOptions, bool, error) {
	configFilename := cmd.Flag(FlagNameConfig).Value.String()
	if configFilename != "" {
		profile, err := config.Load(configFilename)
		if err != nil {
			return delim.RowOptions{}, false, err
		}
		opts, err := profile.RowOptions()
		return opts, false, err
	}

	onUnderfull := cmd.Flag(FlagNameOnUnderfull).Value.String()
	onOverfull := cmd.Flag(FlagNameOnOverfull).Value.String()
	warnOnSkip := onUnderfull == "warn" || onOverfull == "warn"

	minFields, _ := cmd.Flags().GetInt(FlagNameMinFields)
	maxFields, _ := cmd.Flags().GetInt(FlagNameMaxFields)
	profile := config.Profile{
		Delimiter:   cmd.Flag(FlagNameDelimiter).Value.String(),
		MinFields:   minFields,
		MaxFields:   maxFields,
		OnUnderfull: demoteWarn(onUnderfull),
		OnOverfull:  demoteWarn(onOverfull),
	}
	opts, err := profile.RowOptions()
	return opts, warnOnSkip, err
}

// demoteWarn maps the CLI-only warn mode onto the profile's skip mode; the
// warning itself is emitted by the row loop.
func demoteWarn(mode string) string {
	if mode == "warn" {
		return config.ModeSkip
	}
	return mode
}

func newLogger(cmd *cobra.Command) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(cmd.ErrOrStderr())
	if verbose, _ := cmd.Flags().GetBool(FlagNameVerbose); verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

func getInputStream(filename string) (io.Reader, func() error, error) {
	if filename == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open file: %w", err)
	}
	return f, f.Close, nil
}

func getOutputStream(filename string) (io.Writer, func() error, error) {
	if filename == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create file: %w", err)
	}
	return f, f.Close, nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !isatty.IsTerminal(os.Stderr.Fd()) {
			color.NoColor = true
		}
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP(FlagNameInput, "i", "", "input file (if not set stdin is used)")
	rootCmd.PersistentFlags().StringP(FlagNameOutput, "o", "", "output file (if not set stdout is used)")
	rootCmd.PersistentFlags().BoolP(FlagNameVerbose, "v", false, "enable debug logging")
	rootCmd.Flags().StringP(FlagNameConfig, "c", "", "profile file (overrides policy flags)")
	rootCmd.Flags().StringP(FlagNameDelimiter, "d", "", "field delimiter (single character, default tab)")
	rootCmd.Flags().Bool(FlagNameSniff, false, "detect the delimiter from the input")
	rootCmd.Flags().Int(FlagNameMinFields, 0, "minimum fields per row (0 disables the bound)")
	rootCmd.Flags().Int(FlagNameMaxFields, 0, "maximum fields per row (0 disables the bound)")
	rootCmd.Flags().String(FlagNameOnUnderfull, "error", "underfull-row mode: error|skip|warn|keep")
	rootCmd.Flags().String(FlagNameOnOverfull, "error", "overfull-row mode: error|skip|warn|keep")
}
