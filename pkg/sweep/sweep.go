// Package sweep checks the cipher exhaustively: for each key in a range it
// encrypts all 65536 blocks, verifies that encryption is a permutation and
// that decryption restores every block.
package sweep

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"saes-go/pkg/log"
	"saes-go/pkg/saes"

	"golang.org/x/sync/errgroup"
)

const blocksPerKey = 1 << 16

// maxFailures bounds how many failures a Result keeps.
const maxFailures = 16

type Options struct {
	From    uint16
	To      uint16
	Workers int
}

func DefaultOptions() *Options {
	return &Options{
		From:    0x0000,
		To:      0xffff,
		Workers: runtime.NumCPU(),
	}
}

type Failure struct {
	Key        uint16
	Plaintext  uint16
	Ciphertext uint16
	Decrypted  uint16
	Reason     string
}

func (f Failure) String() string {
	return fmt.Sprintf("key %#04x plaintext %#04x ciphertext %#04x decrypted %#04x: %s",
		f.Key, f.Plaintext, f.Ciphertext, f.Decrypted, f.Reason)
}

type Result struct {
	Keys     int
	Blocks   uint64
	Failures []Failure
	Elapsed  time.Duration
}

// OK reports whether no failure was found.
func (r *Result) OK() bool {
	return len(r.Failures) == 0
}

type collector struct {
	mu       sync.Mutex
	failures []Failure
	keys     atomic.Int64
}

func (c *collector) add(f Failure) {
	log.Error().Str("key", saes.FormatWord(f.Key, "hex")).Str("reason", f.Reason).Msg("sweep failure")
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.failures) < maxFailures {
		c.failures = append(c.failures, f)
	}
}

// Run sweeps keys From..To inclusive. Each key gets its own RoundKeys, so
// workers share nothing but the collector.
func Run(ctx context.Context, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.From > opts.To {
		return nil, fmt.Errorf("sweep: empty key range %#04x..%#04x", opts.From, opts.To)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()
	c := &collector{}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	log.Debug().Str("from", saes.FormatWord(opts.From, "hex")).Str("to", saes.FormatWord(opts.To, "hex")).
		Int("workers", workers).Msg("sweep started")

	for k := int(opts.From); k <= int(opts.To); k++ {
		if gctx.Err() != nil {
			break
		}
		key := uint16(k)
		g.Go(func() error {
			if err := checkKey(gctx, key, c); err != nil {
				return err
			}
			c.keys.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	keys := int(c.keys.Load())
	res := &Result{
		Keys:     keys,
		Blocks:   uint64(keys) * blocksPerKey,
		Failures: c.failures,
		Elapsed:  time.Since(start),
	}
	log.Info().Int("keys", res.Keys).Uint64("blocks", res.Blocks).Int("failures", len(res.Failures)).
		Dur("elapsed", res.Elapsed).Msg("sweep finished")
	return res, nil
}

func checkKey(ctx context.Context, key uint16, c *collector) error {
	rk := saes.ExpandKey(key)
	var seen [blocksPerKey / 64]uint64
	for p := 0; p < blocksPerKey; p++ {
		if p&0x0fff == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		pt := uint16(p)
		ct := saes.Encrypt(pt, rk)
		if seen[ct>>6]&(1<<(ct&63)) != 0 {
			c.add(Failure{Key: key, Plaintext: pt, Ciphertext: ct, Reason: "ciphertext repeated"})
		}
		seen[ct>>6] |= 1 << (ct & 63)
		if dt := saes.Decrypt(ct, rk); dt != pt {
			c.add(Failure{Key: key, Plaintext: pt, Ciphertext: ct, Decrypted: dt, Reason: "round trip mismatch"})
		}
	}
	return nil
}

// Print writes a short report.
func Print(w io.Writer, r *Result) {
	fmt.Fprintf(w, "keys checked:   %d\n", r.Keys)
	fmt.Fprintf(w, "blocks checked: %d\n", r.Blocks)
	fmt.Fprintf(w, "elapsed:        %v\n", r.Elapsed.Round(time.Millisecond))
	if r.Elapsed > 0 {
		fmt.Fprintf(w, "blocks/s:       %.0f\n", float64(r.Blocks)/r.Elapsed.Seconds())
	}
	if r.OK() {
		fmt.Fprintln(w, "result:         OK")
		return
	}
	fmt.Fprintf(w, "result:         %d failure(s)\n", len(r.Failures))
	for _, f := range r.Failures {
		fmt.Fprintf(w, "  %s\n", f)
	}
}
