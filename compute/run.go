// Package compute implements styles command: it reads markup and style
// sheets, resolves style of every element and writes the result.
package compute

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/ny-haritina10/pdf-generator/config"
	"github.com/ny-haritina10/pdf-generator/state"
)

// Flags returns command line flags of styles command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{Name: "css", Usage: "apply style sheet from `PATH` after document styles, directory means all *.css files in it (may be repeated)"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output `TYPE` ("+strings.Join(config.OutputFormatNames(), " or ")+"), overwrites configuration"},
		&cli.BoolFlag{Name: "xhtml", Usage: "parse SOURCE as XHTML regardless of its extension"},
		&cli.StringFlag{Name: "charset", Usage: "decode SOURCE using `ENCODING` ignoring what document declares (see IANA.org for character set names)"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite DESTINATION if it exists"},
	}
}

// request describes single run independently of command line.
type request struct {
	source      string
	destination string // empty for STDOUT
	stylesheets []string
	encoding    encoding.Encoding
}

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("styles")

	req := request{
		source:      cmd.Args().Get(0),
		destination: cmd.Args().Get(1),
		stylesheets: cmd.StringSlice("css"),
	}
	if len(req.source) == 0 {
		return errors.New("no input source has been specified")
	}
	if req.source, err = filepath.Abs(req.source); err != nil {
		return err
	}
	if len(req.destination) > 0 {
		if req.destination, err = filepath.Abs(req.destination); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite, env.ForceXHTML = cmd.Bool("overwrite"), cmd.Bool("xhtml")

	if name := cmd.String("format"); len(name) > 0 {
		if format, err := config.ParseOutputFormat(name); err == nil {
			env.Format = &format
		} else {
			log.Warn("Unknown output format requested, using configured one", zap.String("format", name), zap.Stringer("configured", env.OutputFormat()))
		}
	}

	if cp := cmd.String("charset"); len(cp) > 0 {
		req.encoding, err = ianaindex.IANA.Encoding(cp)
		switch {
		case err != nil:
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			req.encoding = nil
		case req.encoding == nil:
			log.Warn("Unsupported character set. Ignoring...", zap.String("charset", cp))
		default:
			n, _ := ianaindex.IANA.Name(req.encoding)
			log.Debug("Forcefully decoding input", zap.String("charset", n))
		}
	}

	destination := req.destination
	if len(destination) == 0 {
		destination = "STDOUT"
	}
	log.Info("Processing starting", zap.String("source", req.source), zap.String("destination", destination),
		zap.Stringer("format", env.OutputFormat()), zap.Stringer("run", env.RunID))
	defer func(start time.Time) {
		if err == nil {
			log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
		}
	}(time.Now())

	if err := process(ctx, env, req, log); err != nil {
		return fmt.Errorf("unable to compute styles: %w", err)
	}
	return nil
}
