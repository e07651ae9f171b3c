package compute

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ny-haritina10/pdf-generator/cascade"
	"github.com/ny-haritina10/pdf-generator/config"
	"github.com/ny-haritina10/pdf-generator/css"
	"github.com/ny-haritina10/pdf-generator/markup"
	"github.com/ny-haritina10/pdf-generator/state"
)

// process handles the work independently of CLI framework.
func process(ctx context.Context, env *state.LocalEnv, req request, log *zap.Logger) error {
	if len(req.destination) > 0 && !env.Overwrite {
		if _, err := os.Stat(req.destination); err == nil {
			return fmt.Errorf("output file already exists: %s", req.destination)
		}
	}

	data, err := readSource(req.source)
	if err != nil {
		return err
	}
	if err := env.Rpt.StoreCopy(config.EntryName("source", req.source), req.source); err != nil {
		log.Warn("Unable to store input in report", zap.String("file", req.source), zap.Error(err))
	}

	doc, err := parseDocument(env, req, data, log)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	sheet, err := loadStylesheets(env, doc, req.stylesheets, log)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	analyzer := cascade.NewAnalyzer(log, env.Cfg.Cascade.Options()...)
	resolved := analyzer.ComputeTree(doc.Roots, sheet.Rules)
	log.Debug("Styles resolved", zap.Int("elements", len(resolved)), zap.Int("rules", len(sheet.Rules)))

	var buf bytes.Buffer
	format := env.OutputFormat()
	switch format {
	case config.OutputFormatTree:
		err = renderTree(&buf, resolved)
	default:
		err = renderYAML(&buf, resolved)
	}
	if err != nil {
		return fmt.Errorf("unable to render styles: %w", err)
	}
	env.Rpt.StoreData(config.EntryName("output", env.RunID.String()+"."+format.String()), buf.Bytes())

	return writeOutput(req.destination, buf.Bytes())
}

func parseDocument(env *state.LocalEnv, req request, data []byte, log *zap.Logger) (*markup.Document, error) {
	opts := env.Cfg.Markup.Options()
	if req.encoding != nil {
		opts = append(opts, markup.WithEncoding(req.encoding))
	}
	p := markup.NewParser(log, opts...)

	var (
		doc *markup.Document
		err error
	)
	if env.ForceXHTML || isXHTML(req.source) {
		doc, err = p.ParseXHTML(bytes.NewReader(data))
	} else {
		doc, err = p.ParseHTML(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("unable to parse document: %w", err)
	}
	if len(doc.Roots) == 0 {
		log.Warn("Document has nothing to style", zap.String("source", req.source))
	}
	return doc, nil
}

// loadStylesheets parses document style sheets followed by external ones
// and merges them in this order. Any syntax error is fatal.
func loadStylesheets(env *state.LocalEnv, doc *markup.Document, paths []string, log *zap.Logger) (*css.Stylesheet, error) {
	parser := css.NewParser(log)

	var (
		sheets []*css.Stylesheet
		errs   error
	)
	for i, text := range doc.Stylesheets {
		name := "<style " + strconv.Itoa(i+1) + ">"
		sheet, err := parser.Parse([]byte(text), name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		sheets = append(sheets, sheet)
	}

	files, err := expandStylesheets(paths)
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("unable to read style sheet: %w", err)
		}
		if err := env.Rpt.StoreCopy(config.EntryName("css", file), file); err != nil {
			log.Warn("Unable to store style sheet in report", zap.String("file", file), zap.Error(err))
		}
		sheet, err := parser.Parse(data, file)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		sheets = append(sheets, sheet)
	}
	if errs != nil {
		return nil, fmt.Errorf("unable to parse style sheets: %w", errs)
	}

	merged := css.Merge(sheets...)
	for _, w := range merged.Warnings {
		log.Warn("Style sheet content ignored", zap.String("details", w))
	}
	env.Rpt.StoreData("css/merged.css", []byte(merged.String()))
	return merged, nil
}

func writeOutput(destination string, data []byte) error {
	if len(destination) == 0 {
		_, err := os.Stdout.Write(data)
		return err
	}
	out, err := os.Create(destination)
	if err != nil {
		return fmt.Errorf("unable to create destination file '%s': %w", destination, err)
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("unable to write destination file: %w", err)
	}
	return out.Close()
}
