package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shadigest/internal/digest"
	"shadigest/internal/report"
	"shadigest/internal/source"
)

// ErrChecksumMismatch is returned by Check when any line fails.
var ErrChecksumMismatch = errors.New("checksum mismatch")

const readChunk = 32 << 10

type App struct {
	cfg    Config
	opener *source.Opener
	log    *zap.Logger
}

func New(cfg Config) *App {
	cfg = cfg.withDefaults()
	return &App{
		cfg:    cfg,
		opener: &source.Opener{Codec: cfg.Codec, Stdin: cfg.Stdin},
		log:    cfg.Logger,
	}
}

// Format returns the configured output format.
func (a *App) Format() report.Format { return a.cfg.Format }

// Algorithm names the digest reported by Sum.
func (a *App) Algorithm() string {
	if a.cfg.Double {
		return report.AlgSHA256d
	}
	return report.AlgSHA256
}

// Sum hashes every named input, at most cfg.Jobs at a time. Per-input
// failures are recorded on the entry; the error is non-nil only when ctx
// is cancelled. Entries keep the order of names. Stdin is read by the
// first "-" only; any later "-" hashes as empty input.
func (a *App) Sum(ctx context.Context, names []string) ([]report.Entry, error) {
	entries := make([]report.Entry, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Jobs)

	for i, name := range names {
		open := func() (io.ReadCloser, error) { return a.opener.Open(name) }
		if name == source.Stdin {
			// Claimed here, in argument order, not by whichever goroutine runs first.
			rc, err := a.opener.Open(name)
			open = func() (io.ReadCloser, error) { return rc, err }
		}

		g.Go(func() error {
			e := report.Entry{Path: name, Algorithm: a.Algorithm()}
			d, n, err := a.hashInput(ctx, name, open)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				a.log.Warn("hash failed", zap.String("path", name), zap.Error(err))
				e.Error = err.Error()
			} else {
				e.Digest = d.String()
				e.Bytes = n
				a.log.Debug("hashed",
					zap.String("path", name),
					zap.Uint64("bytes", n),
					zap.String("digest", d.Short()))
			}
			entries[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Check recomputes each manifest line and compares it with the expected
// digest. The returned error wraps ErrChecksumMismatch when any line did
// not match or could not be read.
func (a *App) Check(ctx context.Context, lines []report.ManifestLine) ([]report.Check, error) {
	names := make([]string, len(lines))
	for i, l := range lines {
		names[i] = l.Path
	}
	entries, err := a.Sum(ctx, names)
	if err != nil {
		return nil, err
	}

	checks := make([]report.Check, len(lines))
	var mismatched, unreadable int
	for i, l := range lines {
		c := report.Check{
			Path:     l.Path,
			Expected: l.Digest.String(),
			Actual:   entries[i].Digest,
		}
		switch {
		case entries[i].Error != "":
			c.Status = report.StatusMissing
			unreadable++
		case c.Actual != c.Expected:
			c.Status = report.StatusFailed
			mismatched++
			a.log.Warn("checksum mismatch", zap.String("path", l.Path), zap.Int("line", l.Line))
		default:
			c.Status = report.StatusOK
		}
		checks[i] = c
	}

	if mismatched+unreadable > 0 {
		return checks, fmt.Errorf("%w: %d computed checksum(s) did not match, %d file(s) could not be read",
			ErrChecksumMismatch, mismatched, unreadable)
	}
	return checks, nil
}

func (a *App) hashInput(ctx context.Context, name string, open func() (io.ReadCloser, error)) (digest.Digest, uint64, error) {
	rc, err := open()
	if err != nil {
		return digest.Digest{}, 0, err
	}
	defer rc.Close()

	d, n, err := HashReader(ctx, rc)
	if err != nil {
		return digest.Digest{}, 0, fmt.Errorf("%s: %w", name, err)
	}
	if a.cfg.Double {
		d = digest.Sum(d[:])
	}
	return d, n, nil
}

// HashReader streams r through a fresh digest.State, checking ctx between
// reads.
func HashReader(ctx context.Context, r io.Reader) (digest.Digest, uint64, error) {
	s := digest.New()
	buf := make([]byte, readChunk)
	for {
		if err := ctx.Err(); err != nil {
			return digest.Digest{}, 0, err
		}
		n, err := r.Read(buf)
		if n > 0 {
			if uerr := s.Update(buf[:n]); uerr != nil {
				return digest.Digest{}, 0, uerr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return digest.Digest{}, 0, err
		}
	}
	total := s.Len()
	d, err := s.Finalize()
	return d, total, err
}
