package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/pretext/internal/logger"
	"github.com/jmylchreest/pretext/internal/output"
	"github.com/jmylchreest/pretext/pkg/reader"
)

// addOutputFlags wires the record-sink flags shared by all reader commands.
func addOutputFlags(flags *pflag.FlagSet) {
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.StringP("format", "f", "jsonl", "output format: json, jsonl, yaml")
	flags.Bool("pretty", true, "pretty-print json output")
}

// runReader drives a reader through its lifecycle and writes every record
// it produces.
func runReader(r reader.Reader, cmd *cobra.Command) error {
	log := logger.With("reader", r.Name())

	if err := r.Initialize(); err != nil {
		log.Error("initialization failed", "error", err)
		return err
	}

	formatStr, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	pretty, _ := cmd.Flags().GetBool("pretty")
	w, err := output.NewWriter(out, format, output.WithPretty(pretty))
	if err != nil {
		return err
	}

	count := 0
	for !r.HasFinished() {
		recs, err := r.Read()
		if err != nil {
			log.Error("read failed", "error", err)
			return err
		}
		if err := w.WriteAll(recs); err != nil {
			return err
		}
		count += len(recs)
	}

	if err := r.Finalize(); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	log.Info("done", "records", count)
	return nil
}
