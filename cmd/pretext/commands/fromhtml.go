package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/pretext/internal/placeholder"
	"github.com/jmylchreest/pretext/pkg/reader/htmltext"
)

var fromHTMLCmd = &cobra.Command{
	Use:   "from-html",
	Short: "Extracts text from HTML files to use for pretraining",
	Long: `Extracts the text content of the body element of each HTML file
and emits one record per file. Malformed HTML is parsed best-effort.

Input patterns support glob syntax and the placeholders ` +
		strings.Join(placeholder.List(), ", ") + `.

Examples:
  # All HTML files in a directory, joined without a separator
  pretext from-html -i "docs/*.html"

  # Paths from a list file, one fragment per line in the output
  pretext from-html -I inputs.list -s "\n" -f jsonl -o corpus.jsonl`,
	RunE: runFromHTML,
}

func init() {
	rootCmd.AddCommand(fromHTMLCmd)

	flags := fromHTMLCmd.Flags()
	flags.StringSliceP("input", "i", nil, "path(s) to the HTML file(s) to read; glob syntax is supported")
	flags.StringSliceP("input_list", "I", nil, "path(s) to the text file(s) listing the HTML files to use")
	flags.StringP("separator", "s", "", `separator placed between text fragments; \n, \r and \t get automatically converted`)

	addOutputFlags(flags)
}

func runFromHTML(cmd *cobra.Command, args []string) error {
	source, _ := cmd.Flags().GetStringSlice("input")
	sourceList, _ := cmd.Flags().GetStringSlice("input_list")
	separator, _ := cmd.Flags().GetString("separator")

	r := htmltext.New(htmltext.Options{
		Source:     source,
		SourceList: sourceList,
		Separator:  separator,
	})
	return runReader(r, cmd)
}
