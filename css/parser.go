package css

import (
	"bytes"
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// maxErrors stops collecting syntax errors for hopelessly broken input.
const maxErrors = 32

// Parser parses CSS stylesheets into ordered rules.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. The optional source parameter
// names what is being parsed for logging and error messages.
//
// Syntax errors do not stop parsing, all rules which could be recovered are
// returned together with combined error (see multierr.Errors) made of
// *ParseError values.
func (p *Parser) Parse(data []byte, source ...string) (*Stylesheet, error) {
	var name string
	if len(source) > 0 {
		name = source[0]
	}
	if name != "" {
		p.log.Debug("Parsing CSS", zap.String("source", name), zap.Int("bytes", len(data)))
	}

	sheet := &Stylesheet{}

	var errs error
	nerrs := 0
	addErr := func(e *ParseError) {
		nerrs++
		errs = multierr.Append(errs, e)
	}

	if off := unterminatedComment(data); off >= 0 {
		addErr(&ParseError{Source: name, Line: lineAt(data, off), Msg: "unterminated comment"})
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for nerrs < maxErrors {
		gt, _, tdata := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.HasParseError() {
				addErr(newParseError(name, parser.Err()))
				continue
			}
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				addErr(newParseError(name, err))
			}
			return sheet, errs

		case css.BeginAtRuleGrammar:
			at := string(tdata)
			sheet.Warnings = append(sheet.Warnings, "skipped "+at+" block")
			p.log.Debug("Skipping @-rule block", zap.String("rule", at))
			p.skipAtRuleBlock(parser)

		case css.AtRuleGrammar:
			at := string(tdata)
			sheet.Warnings = append(sheet.Warnings, "skipped "+at)
			p.log.Debug("Skipping @-rule", zap.String("rule", at))

		case css.BeginRulesetGrammar:
			values := parser.Values()
			selectors := splitSelectors(tdata, values)
			stray := strayDeclaration(values) // values are reused by the next call
			decls, closed, derrs := p.parseDeclarations(parser, name)
			for _, e := range derrs {
				addErr(e)
			}
			if !closed {
				addErr(&ParseError{Source: name, Msg: "rule block for '" + strings.Join(selectors, ", ") + "' is not closed at end of input"})
			}
			if stray {
				// prelude swallowed a declaration written outside of any block,
				// whole rule is invalid
				addErr(&ParseError{Source: name, Msg: "declaration outside of rule block before '" + strings.Join(selectors, ", ") + "'"})
				p.log.Debug("Dropping rule with invalid selector", zap.Strings("selectors", selectors))
				continue
			}
			for _, sel := range selectors {
				sheet.Rules = append(sheet.Rules, Rule{
					Selector:     sel,
					Declarations: append([]Declaration(nil), decls...),
				})
			}

		case css.QualifiedRuleGrammar:
			// selector followed by comma in some inputs, collected by BeginRulesetGrammar
		}
	}
	p.log.Debug("Too many CSS errors, giving up", zap.String("source", name), zap.Int("errors", nerrs))
	return sheet, errs
}

// ParseInline parses content of "style" attribute. Broken declarations are
// dropped, it never fails.
func (p *Parser) ParseInline(style string) []Declaration {
	var decls []Declaration

	parser := css.NewParser(parse.NewInputString(style), true)
	for nerrs := 0; nerrs < maxErrors; {
		gt, _, tdata := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if parser.HasParseError() {
				nerrs++
				p.log.Debug("Dropping malformed inline declaration", zap.String("style", style), zap.Error(parser.Err()))
				continue
			}
			return decls
		case css.DeclarationGrammar:
			if d, ok := makeDeclaration(tdata, parser.Values()); ok {
				decls = append(decls, d)
			}
		}
	}
	return decls
}

// parseDeclarations reads declarations until the end of current rule block.
// closed is false when input ended before the block was closed.
func (p *Parser) parseDeclarations(parser *css.Parser, name string) (decls []Declaration, closed bool, errs []*ParseError) {
	for len(errs) < maxErrors {
		gt, tt, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.HasParseError() {
				errs = append(errs, newParseError(name, parser.Err()))
				continue
			}
			return decls, false, errs

		case css.EndRulesetGrammar:
			return decls, tt != css.ErrorToken, errs

		case css.DeclarationGrammar:
			if d, ok := makeDeclaration(data, parser.Values()); ok {
				decls = append(decls, d)
			}

		case css.CustomPropertyGrammar:
			// --var: value, not supported
			continue
		}
	}
	return decls, true, errs
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if parser.HasParseError() {
				continue
			}
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Source: source, Msg: err.Error()}
	var perr *parse.Error
	if errors.As(err, &perr) {
		pe.Line = perr.Line
		pe.Msg = perr.Message
	}
	return pe
}

func strayDeclaration(values []css.Token) bool {
	for _, v := range values {
		if v.TokenType == css.SemicolonToken {
			return true
		}
	}
	return false
}

// splitSelectors builds selector text from tokens and splits it on commas
// for grouped selectors.
func splitSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

func makeDeclaration(property []byte, tokens []css.Token) (Declaration, bool) {
	d := Declaration{Property: strings.ToLower(strings.TrimSpace(string(property)))}
	if d.Property == "" {
		return d, false
	}

	// "!important" arrives as delimiter followed by identifier
	if n := len(tokens); n >= 2 &&
		tokens[n-1].TokenType == css.IdentToken && strings.EqualFold(string(tokens[n-1].Data), "important") &&
		tokens[n-2].TokenType == css.DelimToken && string(tokens[n-2].Data) == "!" {
		d.Important = true
		tokens = tokens[:n-2]
	}

	d.Value = rawValue(tokens)
	return d, true
}

// rawValue joins tokens back into text, whitespace runs become single space
// and every comma is followed by one.
func rawValue(tokens []css.Token) string {
	var sb strings.Builder
	space := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			space = sb.Len() > 0
			continue
		}
		if space {
			sb.WriteByte(' ')
		}
		sb.Write(t.Data)
		space = t.TokenType == css.CommaToken
	}
	return sb.String()
}

// unterminatedComment returns offset of the comment which is never closed or
// -1. Comment markers inside strings are ignored.
func unterminatedComment(data []byte) int {
	var quote byte
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote || c == '\n' {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			end := bytes.Index(data[i+2:], []byte("*/"))
			if end < 0 {
				return i
			}
			i += end + 3
		}
	}
	return -1
}

func lineAt(data []byte, off int) int {
	return bytes.Count(data[:off], []byte{'\n'}) + 1
}
