package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/WindSoilder/uv/pkg/errutils"
	"github.com/WindSoilder/uv/pkg/platform"
	"github.com/spf13/cobra"
)

type parseResult struct {
	Kind      string `json:"kind" yaml:"kind"`
	Input     string `json:"input" yaml:"input"`
	Canonical string `json:"canonical" yaml:"canonical"`
}

// parsers maps each parse kind to a function returning the canonical token.
var parsers = map[string]func(string) (string, error){
	"os": func(s string) (string, error) {
		o, err := platform.ParseOs(s)
		return o.String(), err
	},
	"arch": func(s string) (string, error) {
		a, err := platform.ParseArch(s)
		return a.String(), err
	},
	"variant": func(s string) (string, error) {
		v, ok := platform.ParseArchVariant(s)
		if !ok {
			return "", errutils.ErrUnknownVariantWithValue(s)
		}
		return v.String(), nil
	},
	"libc": func(s string) (string, error) {
		l, err := platform.ParseLibc(s)
		return l.String(), err
	},
	"platform": func(s string) (string, error) {
		p, err := platform.ParsePlatform(s)
		return p.String(), err
	},
}

var parseKinds = []string{"os", "arch", "variant", "libc", "platform"}

// Number of arguments expected by the parse command.
const parseCommandArgs = 2

// NewParseCmd creates the parse command.
func NewParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "parse KIND TOKEN",
		Short:     "Parse a platform token into its canonical form",
		Long:      "Parse a token of the given kind (" + strings.Join(parseKinds, ", ") + ") and print its canonical form",
		Args:      cobra.ExactArgs(parseCommandArgs),
		ValidArgs: parseKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	return cmd
}

func runParse(w io.Writer, kind, token string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	parse, ok := parsers[kind]
	if !ok {
		return fmt.Errorf("unknown kind %q, must be one of: %s", kind, strings.Join(parseKinds, ", "))
	}

	canonical, err := parse(token)
	if err != nil {
		return err
	}

	result := parseResult{Kind: kind, Input: token, Canonical: canonical}
	return writeOutput(w, cfg.Settings.OutputFormat, result, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, canonical)
		return err
	})
}
