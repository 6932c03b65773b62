package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Drolfothesgnir/bbforum/bbcode"
	"github.com/Drolfothesgnir/bbforum/markup"
	"github.com/Drolfothesgnir/bbforum/sanitize"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run renders the inputs, or stdin if there are none, and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		formatName string
		username   string
		sanitized  bool
		dumpTokens bool
		verbose    bool
		routes     bbcode.Routes
	)

	flags := pflag.NewFlagSet("bbrender", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&formatName, "format", "f", string(markup.FormatBBCode), "Input format: plaintext|bbcode|bbcode+html|markdown|markdown+html")
	flags.StringVarP(&username, "user", "u", "", "Render as the signed in viewer with this username")
	flags.BoolVarP(&sanitized, "sanitize", "s", false, "Pass the output through the UGC sanitizer")
	flags.BoolVarP(&dumpTokens, "tokens", "t", false, "Print the BBCode token stream instead of HTML")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log the render steps to stderr")
	flags.StringVar(&routes.Leaving, "leaving-url", "", "Prefix of the leaving-redirect links")
	flags.StringVar(&routes.Profile, "profile-url", "", "Prefix of the user profile links")
	flags.StringVar(&routes.EmojiBase, "emoji-base-url", "", "Base path of the emoticon images")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: bbrender [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, the text is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).Level(level).With().Timestamp().Logger()

	format, err := markup.ParseFormat(formatName)
	if err != nil {
		logger.Error().Err(err).Msg("cannot render")
		return 2
	}

	text, err := readInputs(flags.Args(), stdin)
	if err != nil {
		logger.Error().Err(err).Msg("cannot read input")
		return 1
	}
	logger.Debug().Int("bytes", len(text)).Str("format", string(format)).Msg("input read")

	if dumpTokens {
		for _, tok := range bbcode.Tokenize(text) {
			fmt.Fprintf(stdout, "%d\t%s\t%q", tok.Pos, tok.Kind, tok.Raw)
			if len(tok.Captures) > 0 {
				fmt.Fprintf(stdout, "\t%q", tok.Captures)
			}
			if tok.Synthetic {
				fmt.Fprint(stdout, "\tsynthetic")
			}
			fmt.Fprintln(stdout)
		}
		return 0
	}

	var viewer *bbcode.UserRef
	if username != "" {
		viewer = &bbcode.UserRef{Username: username}
	}

	out := markup.NewRenderer(routes, nil).Render(text, format, nil, viewer)
	if sanitized {
		out = sanitize.NewPolicy().Sanitize(out)
		logger.Debug().Msg("output sanitized")
	}

	fmt.Fprintln(stdout, out)
	return 0
}

// readInputs concatenates the named files, "-" stands for stdin.
func readInputs(paths []string, stdin io.Reader) (string, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}

	var sb strings.Builder
	for _, path := range paths {
		var (
			data []byte
			err  error
		)
		if path == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		sb.Write(data)
	}

	return sb.String(), nil
}
