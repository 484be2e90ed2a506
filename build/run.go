// Package build drives a single stylesheet generation: it reads HTML
// document, compiles rules for every class it uses and writes result to the
// location the document points to.
package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/h2non/filetype"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"mkcss/css"
	"mkcss/markup"
	"mkcss/state"
)

// DefaultInput is used when no path was given and user did not type one.
const DefaultInput = "index.html"

type options struct {
	src      string
	output   string            // overrides marker element when not empty
	toStdout bool              // print result instead of writing file
	enc      encoding.Encoding // forced input encoding
}

// Run is the action of the root command.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	opts := options{
		src:      cmd.Args().Get(0),
		output:   cmd.String("output"),
		toStdout: cmd.Bool("stdout"),
	}
	if len(opts.src) == 0 {
		if opts.src, err = askPath(env.Stdin, env.Stdout); err != nil {
			if errors.Is(err, errAborted) {
				log.Info("Aborting...")
				return nil
			}
			return fmt.Errorf("unable to get input path: %w", err)
		}
	}
	if opts.src, err = filepath.Abs(opts.src); err != nil {
		return err
	}

	if cmd.Bool("reset") {
		env.Cfg.Compiler.Reset = true
	}
	if cmd.Bool("important") {
		env.Cfg.Compiler.Important = true
	}

	if cp := cmd.String("charset"); len(cp) > 0 {
		enc, err := ianaindex.IANA.Encoding(cp)
		switch {
		case err != nil:
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
		case enc == nil:
			log.Warn("Character set is not supported. Ignoring...", zap.String("charset", cp))
		default:
			n, _ := ianaindex.IANA.Name(enc)
			log.Debug("Forcing input document encoding", zap.String("charset", n))
			opts.enc = enc
		}
	}

	log.Info("Processing starting", zap.String("source", opts.src), zap.Bool("reset", env.Cfg.Compiler.Reset))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, env, opts, log)
}

// process handles generation independently of CLI framework.
func process(ctx context.Context, env *state.LocalEnv, opts options, log *zap.Logger) error {
	cfg := &env.Cfg.Compiler

	data, err := os.ReadFile(opts.src)
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}
	if kind, _ := filetype.Match(data); kind != filetype.Unknown {
		return fmt.Errorf("input (%s) is %s, not HTML", opts.src, kind.MIME.Value)
	}
	env.Rpt.Store(reportName("source", opts.src), opts.src)

	doc, err := markup.Parse(bytes.NewReader(data), opts.enc)
	if err != nil {
		return fmt.Errorf("unable to process input (%s): %w", opts.src, err)
	}
	classes := doc.Classes()
	log.Debug("Classes collected", zap.Int("count", classes.Len()))

	if err := ctx.Err(); err != nil {
		return err
	}

	sheet := css.NewCompiler(log, css.Options{Reset: cfg.Reset, Important: cfg.Important}).Compile(classes)
	text := sheet.String()
	env.Rpt.StoreData("compiled.css", []byte(text))

	if cfg.Minify {
		text = css.Minify(text)
	}
	if cfg.Verify {
		verify(text, sheet, log)
	}

	banner, err := renderBanner(cfg.Banner, bannerValues(opts.src, len(sheet.Rules)))
	if err != nil {
		return err
	}
	if len(banner) > 0 {
		text += "\n" + banner
	}
	env.Rpt.StoreData("result.css", []byte(text))

	if opts.toStdout {
		_, err := fmt.Fprintln(env.Stdout, text)
		return err
	}

	dst := opts.output
	if len(dst) == 0 {
		href, err := doc.OutputRef(cfg.Marker)
		if errors.Is(err, markup.ErrNoMarker) {
			log.Info("No output marker found. Program will exit", zap.String("element", "link["+cfg.Marker+"]"))
			return nil
		}
		if err != nil {
			return fmt.Errorf("unable to locate output: %w", err)
		}
		dst = href
		if !filepath.IsAbs(dst) {
			dst = filepath.Join(filepath.Dir(opts.src), filepath.FromSlash(href))
		}
	}

	log.Debug("Exporting", zap.String("destination", dst))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(dst, []byte(text), 0644); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	log.Info("Stylesheet has been created successfully", zap.String("file", dst), zap.Int("rules", len(sheet.Rules)), zap.Int("dropped", len(sheet.Dropped)))
	return nil
}

// verify reports when final text does not look like what was compiled.
func verify(text string, sheet *css.Stylesheet, log *zap.Logger) {
	sum, err := css.Check([]byte(text))
	if err != nil {
		log.Warn("Generated stylesheet did not pass verification", zap.Error(err))
		return
	}
	expected := len(sheet.Rules)
	if sheet.Reset {
		if reset, err := css.Check([]byte(css.ResetStylesheet())); err == nil {
			expected += reset.Rulesets
		}
	}
	if sum.Rulesets != expected {
		log.Warn("Generated stylesheet has unexpected number of rules", zap.Int("expected", expected), zap.Int("actual", sum.Rulesets))
		return
	}
	log.Debug("Generated stylesheet verified", zap.Int("rulesets", sum.Rulesets), zap.Int("declarations", sum.Declarations))
}

// reportName keeps names of files in debug report archive safe.
func reportName(dir, path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return dir + "/" + slug.Make(strings.TrimSuffix(base, ext)) + strings.ToLower(ext)
}
