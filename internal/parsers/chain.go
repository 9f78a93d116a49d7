package parsers

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"docreader/internal/models"
)

// ChainParser tries each parser in order and returns the first result with
// non-empty text, grounded on chain_parser.py's FirstParser. Unlike
// FirstParser's class-factory construction, parsers are supplied as plain
// values since Go has no equivalent metaprogramming need here.
type ChainParser struct {
	Parsers []Parser
	Logger  logrus.FieldLogger
}

func (c ChainParser) Parse(ctx context.Context, r io.Reader) (Result, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Result{}, err
	}

	logger := c.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	for _, p := range c.Parsers {
		res, err := p.Parse(ctx, bytes.NewReader(content))
		if err != nil {
			logger.WithError(err).Warn("parser failed, trying next in chain")
			continue
		}
		if strings.TrimSpace(res.Text) != "" {
			return res, nil
		}
	}

	return Result{}, models.ErrParserChainExhausted
}

var _ Parser = ChainParser{}
