package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/safepwdgen/pkg/logger"
	"github.com/dmitrymomot/safepwdgen/pkg/pwdgen"
)

const (
	clipboardCopiedMsg  = "\nThe generated password was copied to your system clipboard."
	passwordTooLongMsg  = "Requested password size too big, reset to %d\n"
	specialCharsFlagUse = "Set to true if special chars !-_?=@/+* are desired, else false; overrides SAFEPWDGEN_SPECIAL_CHARS"
)

// app carries the process collaborators so tests can replace them.
type app struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	clipboard Sink
}

func defaultApp() *app {
	return &app{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		clipboard: ClipboardSink{},
	}
}

type flags struct {
	seed         string
	service      string
	length       int
	specialChars string
	noClipboard  bool
	normalize    bool
	envFile      string
	verbose      bool
}

func newRootCmd(a *app) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "safepwdgen -i <service> [flags]",
		Short: "Deterministically generate a password from a seed password and a service identifier",
		Long: `safepwdgen derives a password from a secret seed password and a public
service identifier such as facebook.com. The same inputs always produce the
same password, so nothing has to be stored.

When --seed-password is omitted the seed is read from standard input, without
echo on a terminal. Passing it as a flag exposes it to other local users
through the process list.

Defaults for length, special chars and clipboard use can be set with
SAFEPWDGEN_LENGTH, SAFEPWDGEN_SPECIAL_CHARS and SAFEPWDGEN_CLIPBOARD.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Usage is printed for flag errors only.
			cmd.SilenceUsage = true
			return a.run(cmd, f)
		},
	}

	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	fs := cmd.Flags()
	fs.StringVarP(&f.seed, "seed-password", "s", "", "Password used as a seed (prompted when omitted)")
	fs.StringVarP(&f.service, "service-identifier", "i", "", "The service that the password is created for, e.g. facebook.com")
	fs.IntVarP(&f.length, "pwd-length", "l", pwdgen.DefaultLength, "Length of the password in characters; overrides SAFEPWDGEN_LENGTH")
	fs.StringVarP(&f.specialChars, "special-chars", "c", "", specialCharsFlagUse)
	fs.BoolVar(&f.noClipboard, "no-clipboard", false, "Do not copy the password to the system clipboard")
	fs.BoolVar(&f.normalize, "normalize", false, "Apply Unicode NFC normalization to the inputs before hashing")
	fs.StringVar(&f.envFile, "env-file", "", "Load configuration from this .env file")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	_ = cmd.MarkFlagRequired("service-identifier")

	return cmd
}

func (a *app) run(cmd *cobra.Command, f flags) error {
	var envFiles []string
	if f.envFile != "" {
		envFiles = append(envFiles, f.envFile)
	}
	cfg, err := LoadConfig(envFiles...)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, f.verbose, a.stderr)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cmd, f, cfg)
	if err != nil {
		return err
	}

	if f.service == "" {
		return ErrMissingService
	}

	seed := f.seed
	if !cmd.Flags().Changed("seed-password") {
		if seed, err = promptSeed(a.stdin, a.stderr); err != nil {
			return err
		}
	}
	if seed == "" {
		return ErrMissingSeed
	}

	length := opts.length
	if limit := pwdgen.MaxLength(opts.specialChars); length > limit {
		fmt.Fprintf(a.stderr, passwordTooLongMsg, limit)
		length = limit
	}

	genOpts := []pwdgen.Option{
		pwdgen.WithLength(length),
		pwdgen.WithSpecialChars(opts.specialChars),
	}
	if f.normalize {
		genOpts = append(genOpts, pwdgen.WithNormalization(norm.NFC))
	}

	pwd, err := pwdgen.Generate(seed, f.service, genOpts...)
	if err != nil {
		return err
	}
	log.Debug("password derived",
		logger.Service(f.service),
		logger.RequestedLength(opts.length),
		logger.Length(len(pwd)),
		logger.Mode(opts.specialChars),
	)

	if err := (WriterSink{W: a.stdout}).Deliver(pwd); err != nil {
		return fmt.Errorf("print password: %w", err)
	}

	if opts.clipboard && a.clipboard != nil {
		if err := a.clipboard.Deliver(pwd); err != nil {
			log.Warn("could not copy password to clipboard", logger.Sink("clipboard"), logger.Error(err))
			return nil
		}
		fmt.Fprintln(a.stdout, clipboardCopiedMsg)
	}

	return nil
}

type resolved struct {
	length       int
	specialChars bool
	clipboard    bool
}

// resolveOptions merges configuration defaults with explicitly set flags.
func resolveOptions(cmd *cobra.Command, f flags, cfg Config) (resolved, error) {
	r := resolved{
		length:       cfg.Length,
		specialChars: cfg.SpecialChars,
		clipboard:    cfg.Clipboard && !f.noClipboard,
	}

	fs := cmd.Flags()
	if fs.Changed("pwd-length") {
		r.length = f.length
	}
	if fs.Changed("special-chars") {
		v, err := strconv.ParseBool(f.specialChars)
		if err != nil {
			return resolved{}, fmt.Errorf("%w: %q", ErrInvalidSpecialChars, f.specialChars)
		}
		r.specialChars = v
	}

	return r, nil
}

func newLogger(cfg Config, verbose bool, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrLoadConfig, err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, errors.Join(ErrLoadConfig, err)
	}

	return logger.New(
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithVerbose(verbose),
		logger.WithAttr(logger.Component("safepwdgen")),
	), nil
}
