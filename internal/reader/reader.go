// Package reader implements the Lyps reader (spec.md §4.2): a recursive
// descent parser with one-token lookahead that assembles the lexer's token
// stream into value.Value ASTs, expanding the reader macros ', `, , and ,@
// into wrapper lists.
package reader

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	lyperrors "github.com/rprovost11-sketch/Lyps/internal/errors"
	"github.com/rprovost11-sketch/Lyps/internal/lexer"
	"github.com/rprovost11-sketch/Lyps/internal/value"
)

// Reader reads one S-expression at a time from source text.
type Reader struct {
	lex    *lexer.Lexer
	source string
	file   string
	cur    lexer.Token
}

// New creates a Reader over src. file is used only in diagnostics; it may
// be empty.
func New(src, file string) *Reader {
	r := &Reader{lex: lexer.New(src), source: src, file: file}
	r.advance()
	return r
}

func (r *Reader) advance() {
	r.cur = r.lex.NextToken()
}

func (r *Reader) errorf(format string, args ...any) error {
	return lyperrors.NewParseError(r.cur.Pos, fmt.Sprintf(format, args...), r.source, r.file)
}

// ReadOne parses exactly one expression and requires EOF to follow
// (spec.md §4.2 "recursive descent ... entry point parses one expression
// and then requires EOF"). A second expression, or any other trailing
// token, is a parse error.
func ReadOne(src, file string) (value.Value, error) {
	r := New(src, file)
	v, err := r.readExpr()
	if err != nil {
		return nil, err
	}
	if r.cur.Type != lexer.EOF {
		return nil, r.errorf("unexpected trailing input after expression: %q", r.cur.Literal)
	}
	return v, nil
}

func (r *Reader) readExpr() (value.Value, error) {
	tok := r.cur
	switch tok.Type {
	case lexer.EOF:
		return nil, r.errorf("unexpected end of input")

	case lexer.INTEGER:
		r.advance()
		n, ok := new(big.Int).SetString(tok.Literal, 10)
		if !ok {
			return nil, lyperrors.NewParseError(tok.Pos, "malformed integer literal: "+tok.Literal, r.source, r.file)
		}
		return &value.Integer{V: n}, nil

	case lexer.FLOAT:
		r.advance()
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, lyperrors.NewParseError(tok.Pos, "malformed float literal: "+tok.Literal, r.source, r.file)
		}
		return value.NewFloat(f), nil

	case lexer.FRAC:
		r.advance()
		parts := strings.SplitN(tok.Literal, "/", 2)
		num, ok1 := new(big.Int).SetString(parts[0], 10)
		den, ok2 := new(big.Int).SetString(parts[1], 10)
		if !ok1 || !ok2 {
			return nil, lyperrors.NewParseError(tok.Pos, "malformed rational literal: "+tok.Literal, r.source, r.file)
		}
		if den.Sign() == 0 {
			return nil, lyperrors.NewParseError(tok.Pos, "rational literal with zero denominator: "+tok.Literal, r.source, r.file)
		}
		return value.NewRational(num, den), nil

	case lexer.STRING:
		r.advance()
		return value.NewString(tok.Literal), nil

	case lexer.SYMBOL:
		r.advance()
		return value.Intern(tok.Literal), nil

	case lexer.OPEN_PAREN:
		return r.readList()

	case lexer.SINGLE_QUOTE:
		return r.readWrapped("QUOTE")
	case lexer.BACK_QUOTE:
		return r.readWrapped("BACKQUOTE")
	case lexer.COMMA:
		return r.readWrapped("COMMA")
	case lexer.COMMA_AT:
		return r.readWrapped("COMMA-AT")

	case lexer.POUND, lexer.PIPE, lexer.COLON, lexer.OPEN_BRACKET, lexer.CLOSE_BRACKET:
		// Reserved placeholders for future syntax: returned as their literal
		// lexeme (spec.md §4.2).
		r.advance()
		return value.NewString(tok.Literal), nil

	case lexer.CLOSE_PAREN:
		return nil, r.errorf("unexpected ')'")

	default:
		return nil, r.errorf("unexpected token %q", tok.Literal)
	}
}

func (r *Reader) readWrapped(head string) (value.Value, error) {
	r.advance()
	inner, err := r.readExpr()
	if err != nil {
		return nil, err
	}
	return value.NewList(value.Intern(head), inner), nil
}

func (r *Reader) readList() (value.Value, error) {
	r.advance() // consume '('
	var elements []value.Value
	for {
		if r.cur.Type == lexer.EOF {
			return nil, r.errorf("unexpected end of input inside list")
		}
		if r.cur.Type == lexer.CLOSE_PAREN {
			r.advance()
			return value.NewList(elements...), nil
		}
		v, err := r.readExpr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, v)
	}
}
