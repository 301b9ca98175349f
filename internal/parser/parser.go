package parser

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/shunting-yard/internal/token"
)

// Parser turns expression text into a postfix token list.
type Parser struct {
	tokenizer token.Tokenizer
	validator token.Validator
	strict    bool
}

type Option func(*Parser)

func WithTokenizer(t token.Tokenizer) Option {
	return func(p *Parser) {
		p.tokenizer = t
	}
}

// WithStrict validates the infix stream before shunting and the postfix
// stream after it.
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

func New(opts ...Option) *Parser {
	p := &Parser{
		tokenizer: token.NewArithTokenizer(),
		validator: token.NewInfixValidator(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) Strict() bool {
	return p.strict
}

// Tokenize returns the infix stream of expression.
func (p *Parser) Tokenize(expression string) (*token.List, error) {
	return p.tokenizer.Tokenize(expression)
}

// Parse tokenizes expression and returns its postfix form.
func (p *Parser) Parse(expression string) (*token.List, error) {
	infix, err := p.tokenizer.Tokenize(expression)
	if err != nil {
		return nil, err
	}
	return p.Convert(infix)
}

// Convert shunts an already tokenized infix stream.
func (p *Parser) Convert(infix *token.List) (*token.List, error) {
	if p.strict {
		if infix == nil || infix.IsEmpty() {
			return nil, emptyExpression()
		}
		if err := p.validator.Validate(infix); err != nil {
			return nil, err
		}
	}

	postfix, err := Shunt(infix)
	if err != nil {
		return nil, err
	}

	if p.strict {
		if _, err := PostfixDepth(postfix); err != nil {
			return nil, err
		}
		if !ValidatePostfix(postfix) {
			return nil, fmt.Errorf("%w: expected a single expression", ErrMalformedPostfix)
		}
	}

	slog.Debug("expression converted", "infix", infix.String(), "postfix", postfix.String())
	return postfix, nil
}
