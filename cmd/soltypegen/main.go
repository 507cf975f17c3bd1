package main

import (
	"context"
	"os"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"

	"github.com/mathieupost/soltype"
	"github.com/mathieupost/soltype/generate"
	"github.com/mathieupost/soltype/log"
	sinkfile "github.com/mathieupost/soltype/sink/file"
	sourcefile "github.com/mathieupost/soltype/source/file"
	"github.com/mathieupost/soltype/tracing"
)

func main() {
	cmd := newRootCommand(viper.New())
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "soltypegen",
		Short: "Generate TypeScript definitions from a Solidity ABI",
		Long: `Generate TypeScript definitions from a Solidity ABI.

The input is either a bare ABI list or a compilation output file carrying it
under "abi". Every flag can also be set with a SOLTYPE_ environment variable
(e.g. SOLTYPE_RESPONSE_TYPE) or in a config file.`,
		Example: `  soltypegen -f Token.json
  soltypegen -f abi.json -o contract.d.ts --interface token`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.StringP("abi", "f", "", "Solidity ABI or compilation output file")
	flags.StringP("output", "o", "", "Output file name. Defaults to stdout. Will ALWAYS override")
	flags.String("interface", generate.DefaultInterfaceName, "Name of the generated contract interface")
	flags.String("response-type", generate.DefaultResponseType, "Type returned by state-changing functions")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("trace-endpoint", "", "OTLP/HTTP endpoint to export traces to")
	flags.String("config", "", "Config file (yaml, toml or json)")
	_ = v.BindPFlags(flags)

	return cmd
}

func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix("SOLTYPE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", path)
		}
	}

	log.SetOutput(os.Stderr, true)
	if err := log.SetLevel(v.GetString("log-level")); err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	return nil
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	path := v.GetString("abi")
	if path == "" {
		return errors.New("ABI file is required (--abi)")
	}

	tp, shutdown, err := tracing.NewProvider(v.GetString("trace-endpoint"), "soltypegen")
	if err != nil {
		return err
	}
	defer shutdown()
	otel.SetTracerProvider(tp)

	sink := sinkfile.NewSink(v.GetString("output"))
	sink.Stdout = cmd.OutOrStdout()

	g := soltype.NewGenerator(
		sourcefile.NewSource(path),
		sink,
		generate.WithInterfaceName(strcase.ToCamel(v.GetString("interface"))),
		generate.WithResponseType(v.GetString("response-type")),
	)
	return g.Run(cmd.Context())
}
