// b58 encodes, decodes and verifies Base58 and Base58Check data from the
// command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Amr-9/b58check/internal/ui"
)

const version = "0.4"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries what every sub-command needs once flags are parsed.
type app struct {
	cfg     Config
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	log     *logrus.Logger
	console *ui.Console
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "b58",
		Short:         "Base58 and Base58Check encoder/decoder",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindEnv(cmd.Flags(), os.LookupEnv); err != nil {
				return err
			}
			log, err := a.cfg.newLogger(a.errOut)
			if err != nil {
				return err
			}
			a.log = log
			a.console = ui.NewConsole(a.out, !a.cfg.NoColor)
			return nil
		},
	}
	a.cfg.addFlags(root.PersistentFlags())

	root.AddCommand(
		a.encodeCommand(),
		a.decodeCommand(),
		a.checkEncodeCommand(),
		a.checkDecodeCommand(),
		a.addressCommand(),
		a.cidCommand(),
		a.hashesCommand(),
	)
	return root
}
