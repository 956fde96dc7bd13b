package driver

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"decaf/internal/diag"
	"decaf/internal/lexer"
	"decaf/internal/logs"
	"decaf/internal/source"
	"decaf/internal/token"
)

// ctxCheckEvery is how many tokens are pulled between cancellation checks.
const ctxCheckEvery = 1024

// TokenizeResult holds the outcome of one compilation unit.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	// Err is the fatal read error that aborted the unit, if any. It is also
	// reported in Bag as IOReadError.
	Err error
}

// Tokenize lexes the file at path. The returned error is for failures to
// open the file or cancellation; read errors mid-unit end up in Err.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	file, r, closer, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer closer.Close()

	res := &TokenizeResult{FileSet: fs, File: file}
	if err := tokenizeUnit(ctx, res, r, opts); err != nil {
		return nil, err
	}
	return res, nil
}

// tokenizeUnit wires one Source/Channel/Issuer triple and pulls tokens until
// EOF, a read failure or cancellation.
func tokenizeUnit(ctx context.Context, res *TokenizeResult, r io.Reader, opts Options) error {
	path := res.File.Path
	log := opts.logger()
	ctx = logs.WithUnit(ctx, path)
	defer opts.Timer.Track("lex " + path)("")

	res.Bag = diag.NewBag(opts.MaxDiagnostics)
	var sink diag.Issuer = res.Bag
	if log.Enabled(ctx, slog.LevelDebug) {
		sink = diag.MultiIssuer{res.Bag, diag.LogIssuer{Ctx: ctx, Logger: log, Path: path}}
	}

	ch := &lexer.Channel{}
	lx := lexer.New(res.File, r, lexer.Options{MaxTokens: opts.MaxTokens})
	lx.Setup(ch, diag.NewDedupIssuer(sink))

	log.DebugContext(ctx, "unit started")
	for {
		if len(res.Tokens)%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		tok, err := lx.Next()
		if err != nil {
			res.Err = err
			res.Bag.Add(diag.NewError(diag.IOReadError, lx.Pos(), err.Error()))
			log.ErrorContext(ctx, "unit aborted", "err", err)
			return nil
		}
		res.Tokens = append(res.Tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	log.DebugContext(ctx, "unit finished",
		"tokens", len(res.Tokens),
		"diagnostics", res.Bag.Len(),
		"flags", uint8(res.File.Flags),
	)
	return nil
}
