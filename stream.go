package binparse

import (
	"context"

	"github.com/stewi1014/binparse/bplog"
	"github.com/stewi1014/binparse/source"
	"golang.org/x/sync/errgroup"
)

// StreamDecoder drives one continuous parse loop against a StreamSource,
// re-running the descriptor every time it completes an object (§4.4, §6).
// Create one with Parser.Stream, push bytes with Write, and read decoded
// objects from Objects until Close.
type StreamDecoder struct {
	p      *Parser
	src    *source.StreamSource
	objs   chan Object
	group  *errgroup.Group
	cancel context.CancelFunc
}

// Stream returns a new StreamDecoder driven by p, grounded on
// LeJamon-goXRPLd's errgroup.WithContext supervision of a background
// connection loop: the parse loop runs in its own goroutine, and a decode
// error or Close cancels it cleanly (§5).
func (p *Parser) Stream() *StreamDecoder {
	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)

	d := &StreamDecoder{
		p:      p,
		src:    source.NewStream(),
		objs:   make(chan Object),
		group:  group,
		cancel: cancel,
	}

	group.Go(func() error {
		return d.run(ctx)
	})

	return d
}

func (d *StreamDecoder) run(ctx context.Context) error {
	defer close(d.objs)

	for {
		obj, _, eof, err := d.p.parseFrom(d.src, nil)
		if err != nil {
			return err
		}
		if eof {
			return nil
		}

		select {
		case d.objs <- obj:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Write pushes a chunk of input into the stream (§4.4 step 1, §6's
// io.Writer rendering of "push chunks in"). It never blocks on the parse
// loop's progress — only on StreamSource.Write's own internal lock.
func (d *StreamDecoder) Write(p []byte) (int, error) {
	return d.src.Write(p)
}

// Objects returns the channel decoded objects arrive on. It closes once the
// parse loop exits, whether from a clean EOF after Close or from a decode
// error; check Close's return for the latter.
func (d *StreamDecoder) Objects() <-chan Object {
	return d.objs
}

// Close signals end-of-input, waits for the parse loop to drain and exit,
// and returns its error, if any. Close does not discard objects already
// decoded but not yet received from Objects: the parse loop cannot exit
// until each one is received, so Objects must be drained concurrently with
// Close (commonly by ranging over it in another goroutine), or Close
// blocks.
func (d *StreamDecoder) Close() error {
	d.src.Flush()
	err := d.group.Wait()
	d.cancel()
	if err != nil {
		bplog.Warn(d.p.cfg.logger(), "", "stream parse loop exited with error: "+err.Error())
	}
	return err
}
