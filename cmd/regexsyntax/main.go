// Command regexsyntax validates ECMAScript regular expression literals and
// prints their syntax trees.
//
//	regexsyntax '/a(b)+/g'
//	regexsyntax --format events --file literals.txt
//	grep -o '/[^/]*/[a-z]*' app.js | regexsyntax --format none --file -
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	arg "github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/auvred/regexsyntax"
	"github.com/auvred/regexsyntax/internal/batch"
	"github.com/auvred/regexsyntax/internal/dump"
)

type args struct {
	Strict      bool     `arg:"--strict" help:"disable the Annex B web-compatibility grammar"`
	EcmaVersion int      `arg:"--ecma-version" help:"ECMAScript edition: 5 or 2015 to 2022"`
	Format      string   `arg:"--format" help:"output format: yaml, events or none"`
	Verbose     bool     `arg:"-v" help:"log every literal"`
	CacheSize   int      `arg:"--cache-size" help:"number of parsed literals to remember"`
	File        string   `arg:"--file" help:"read literals from a file, one per line, or - for stdin"`
	Literals    []string `arg:"positional" help:"literals such as /ab+c/gi"`
}

func main() {
	a := args{
		EcmaVersion: int(regexsyntax.LatestEcmaVersion),
		Format:      "yaml",
		CacheSize:   1024,
	}
	p := arg.MustParse(&a)
	if err := a.validate(); err != nil {
		p.Fail(err.Error())
	}

	logger := newLogger(a.Verbose)
	os.Exit(run(a, os.Stdin, os.Stdout, logger))
}

func (a args) validate() error {
	switch a.Format {
	case "yaml", "events", "none":
	default:
		return errors.Errorf("unknown format %q", a.Format)
	}
	v := regexsyntax.EcmaVersion(a.EcmaVersion)
	if v != regexsyntax.Ecma5 && (v < regexsyntax.Ecma2015 || v > regexsyntax.LatestEcmaVersion) {
		return errors.Errorf("unsupported ECMAScript version %d", a.EcmaVersion)
	}
	if a.File == "" && len(a.Literals) == 0 {
		return errors.New("no literals given")
	}
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		config := zap.NewDevelopmentEncoderConfig()
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.Lock(os.Stderr), zapcore.DebugLevel)
		return zap.New(core)
	}
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(config), zapcore.Lock(os.Stderr), zapcore.InfoLevel)
	return zap.New(core)
}

// run processes every literal and returns the exit code. The logger is
// flushed before run returns since main exits right after.
func run(a args, stdin io.Reader, stdout io.Writer, logger *zap.Logger) int {
	defer func() { _ = logger.Sync() }()

	literals, err := readLiterals(a, stdin)
	if err != nil {
		logger.Error("reading literals", zap.Error(err))
		return 2
	}

	opts := regexsyntax.Options{
		Strict:      a.Strict,
		EcmaVersion: regexsyntax.EcmaVersion(a.EcmaVersion),
	}
	v, err := batch.New(opts, a.CacheSize)
	if err != nil {
		logger.Error("creating validator", zap.Error(err))
		return 2
	}

	w := bufio.NewWriter(stdout)
	defer w.Flush()

	failed := 0
	for i, r := range v.ParseAll(literals) {
		if r.Err != nil {
			failed++
			fields := []zap.Field{zap.Int("n", i), zap.String("literal", r.Literal)}
			var se *regexsyntax.SyntaxError
			if errors.As(r.Err, &se) {
				fields = append(fields, zap.Int("index", se.Index), zap.String("message", se.Message))
			} else {
				fields = append(fields, zap.Error(r.Err))
			}
			logger.Error("invalid literal", fields...)
			continue
		}
		logger.Debug("valid literal", zap.Int("n", i), zap.String("literal", r.Literal))

		if err := write(w, a.Format, r.Tree); err != nil {
			logger.Error("writing output", zap.Error(err))
			return 2
		}
	}

	stats := v.Stats()
	logger.Debug("done",
		zap.Int("literals", len(literals)),
		zap.Int("failed", failed),
		zap.Int("cacheHits", stats.Hits),
		zap.Int("cacheMisses", stats.Misses),
		zap.Int("cached", v.Len()),
	)
	if failed > 0 {
		return 1
	}
	return 0
}

func write(w io.Writer, format string, tree *regexsyntax.RegExpLiteral) error {
	switch format {
	case "yaml":
		out, err := dump.YAML(tree)
		if err != nil {
			return errors.Wrapf(err, "marshaling %s", tree.Raw)
		}
		if _, err := fmt.Fprintf(w, "---\n%s", out); err != nil {
			return errors.Wrap(err, "writing yaml")
		}
	case "events":
		for _, e := range dump.Events(tree) {
			if _, err := fmt.Fprintln(w, e); err != nil {
				return errors.Wrap(err, "writing events")
			}
		}
	}
	return nil
}

// readLiterals collects the positional literals followed by the non-empty
// lines of the --file input.
func readLiterals(a args, stdin io.Reader) ([]string, error) {
	literals := append([]string(nil), a.Literals...)
	if a.File == "" {
		return literals, nil
	}

	var r io.Reader = stdin
	if a.File != "-" {
		f, err := os.Open(a.File)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", a.File)
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		literals = append(literals, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", a.File)
	}
	return literals, nil
}
