// Package htmltext implements the from-html reader: it extracts the text
// content of each HTML file's body element for use as pretraining data.
package htmltext

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"
	"golang.org/x/net/html"

	"github.com/jmylchreest/pretext/internal/input"
	"github.com/jmylchreest/pretext/internal/logger"
	"github.com/jmylchreest/pretext/pkg/reader"
)

// defaultGlob is used when an input pattern names a directory.
const defaultGlob = "*.html"

func init() {
	reader.Register("from-html", func() reader.Reader {
		return New(Options{})
	})
}

var validate = validator.New()

// Options configures the reader before Initialize. At least one of Source
// and SourceList must resolve to a file; that is checked during
// initialization, not here.
type Options struct {
	// Source holds path patterns for the HTML files to read; glob
	// syntax and placeholders are supported.
	Source []string `validate:"dive,min=1"`

	// SourceList holds paths of text files listing further HTML paths,
	// one per line.
	SourceList []string `validate:"dive,min=1"`

	// Separator is placed between the text fragments of a document.
	// The literal two-character tokens \n, \r and \t are converted to
	// their control characters.
	Separator string
}

// Reader extracts body text from HTML files, one record per file.
type Reader struct {
	opts      Options
	separator string
	seq       *reader.FileSequence
}

// New creates a reader with the given options. Initialize must be called
// before the first Read.
func New(opts Options) *Reader {
	return &Reader{
		opts: opts,
		seq:  reader.NewFileSequence(nil),
	}
}

// Name returns the reader's command-line name.
func (r *Reader) Name() string {
	return "from-html"
}

// Description returns a one-line description for help output.
func (r *Reader) Description() string {
	return "Extracts text from HTML files to use for pretraining."
}

// Initialize resolves the input files and normalizes the separator. It
// fails when no input files are found.
func (r *Reader) Initialize() error {
	if err := validate.Struct(r.opts); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	files, err := input.Locate(r.opts.Source, r.opts.SourceList, true, defaultGlob)
	if err != nil {
		return err
	}
	r.seq.SetInputs(files)
	r.separator = normalizeSeparator(r.opts.Separator)

	logger.Debug("inputs resolved", "reader", r.Name(), "count", len(files))
	return nil
}

// Read consumes the next HTML file and returns its extracted text as a
// single record. The record's meta carries the source path under "file".
func (r *Reader) Read() ([]reader.Record, error) {
	// Close out the previous file before popping the next one.
	if err := r.Finalize(); err != nil {
		return nil, err
	}

	path, ok := r.seq.Next()
	if !ok {
		return nil, fmt.Errorf("read called after all inputs were consumed")
	}
	logger.Info("reading", "file", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	content, err := r.extract(path, data)
	if err != nil {
		return nil, err
	}

	rec := reader.Record{
		Content: content,
		Meta:    map[string]string{"file": path},
	}
	return []reader.Record{rec}, nil
}

// HasFinished reports whether all input files have been consumed.
func (r *Reader) HasFinished() bool {
	return r.seq.HasFinished()
}

// Finalize clears the current-input marker. Calling it with no file in
// flight is a no-op.
func (r *Reader) Finalize() error {
	r.seq.Finalize()
	return nil
}

// extract parses the document and joins the text nodes under body with
// the configured separator. Parsing is lenient: malformed markup yields a
// best-effort tree, never an error.
func (r *Reader) extract(path string, data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		// The parser synthesizes a body for well-formed input, so this
		// only triggers on truly degenerate documents.
		logger.Warn("document has no body element", "file", path)
		return "", nil
	}

	var fragments []string
	for _, node := range body.Nodes {
		collectText(node, &fragments)
	}
	return strings.Join(fragments, r.separator), nil
}

// collectText gathers every text node beneath n in document order. All
// text nodes count, including whitespace-only runs between tags.
func collectText(n *html.Node, out *[]string) {
	if n.Type == html.TextNode {
		*out = append(*out, n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, out)
	}
}

// normalizeSeparator converts the literal escape tokens that survive
// shell quoting into real control characters, in a fixed order.
func normalizeSeparator(s string) string {
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "\r")
	s = strings.ReplaceAll(s, `\t`, "\t")
	return s
}
