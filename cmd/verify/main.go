// Command verify runs the bit library's property set against whole widths:
// exhaustively for 8- and 16-bit values, structured-plus-sampled for 32- and
// 64-bit. Progress is exported as Prometheus counters; optional pprof.
//
// Exit status is nonzero if any property is violated.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/bitops/bit"
	"github.com/IvanBrykalov/bitops/internal/limits"
)

func main() {
	// ---- Flags ----
	var (
		widths  = flag.String("widths", "8,16,32,64", "comma-separated widths to verify")
		samples = flag.Int("samples", 5_000_000, "random samples per sampled width (32/64)")
		workers = flag.Int("workers", runtime.GOMAXPROCS(0), "worker goroutines per sampled width")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")

		metricsAddr = flag.String("http", "", "serve Prometheus metrics at addr (e.g. :8080); empty = disabled")
		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	m := newMetrics(nil)
	if *metricsAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	if *workers < 1 {
		*workers = 1
	}

	// ---- Verification ----
	start := time.Now()
	var checked atomic.Uint64

	g, ctx := errgroup.WithContext(context.Background())
	for _, w := range strings.Split(*widths, ",") {
		switch strings.TrimSpace(w) {
		case "8":
			g.Go(func() error { return verifyExhaustive[uint8](ctx, m, &checked) })
		case "16":
			g.Go(func() error { return verifyExhaustive[uint16](ctx, m, &checked) })
		case "32":
			for id := 0; id < *workers; id++ {
				id := id
				g.Go(func() error {
					return verifySampled[uint32](ctx, m, &checked, *samples / *workers, *seed+int64(id)*9973)
				})
			}
			g.Go(func() error { return verifyStructured[uint32](ctx, m, &checked) })
		case "64":
			for id := 0; id < *workers; id++ {
				id := id
				g.Go(func() error {
					return verifySampled[uint64](ctx, m, &checked, *samples / *workers, *seed+int64(id)*7919)
				})
			}
			g.Go(func() error { return verifyStructured[uint64](ctx, m, &checked) })
		default:
			log.Fatalf("unknown width: %q (use 8, 16, 32, 64)", w)
		}
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("FAIL after %v, %d values: %v", time.Since(start).Round(time.Millisecond), checked.Load(), err)
	}

	fmt.Printf("OK: %d values across widths [%s] in %v (seed %d)\n",
		checked.Load(), *widths, time.Since(start).Round(time.Millisecond), *seed)
}

// verifyExhaustive walks every value of T.
func verifyExhaustive[T constraints.Unsigned](ctx context.Context, m *metrics, checked *atomic.Uint64) error {
	width := widthLabel[T]()
	max := uint64(limits.Max[T]())
	for i := uint64(0); ; i++ {
		if i&0xFFF == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		if err := checkValue(T(i), m, width); err != nil {
			return err
		}
		if i == max {
			break
		}
	}
	checked.Add(max + 1)
	m.checked.WithLabelValues(width).Add(float64(max + 1))
	return nil
}

// verifyStructured covers the values random sampling is unlikely to hit:
// single bits, low and high runs, and the values next to them.
func verifyStructured[T constraints.Unsigned](ctx context.Context, m *metrics, checked *atomic.Uint64) error {
	width := widthLabel[T]()
	w := limits.Digits[T]()
	n := uint64(0)
	for k := 0; k < w; k++ {
		for _, v := range []T{
			T(1) << k, T(1)<<k - 1, T(1)<<k + 1,
			limits.Max[T]() >> k, limits.Max[T]() << k, ^(T(1) << k),
		} {
			if err := checkValue(v, m, width); err != nil {
				return err
			}
			n++
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	checked.Add(n)
	m.checked.WithLabelValues(width).Add(float64(n))
	return nil
}

// verifySampled draws uniform values from a per-worker RNG stream
// (rand.Rand is not goroutine-safe, so each worker owns one).
func verifySampled[T constraints.Unsigned](ctx context.Context, m *metrics, checked *atomic.Uint64, samples int, seed int64) error {
	width := widthLabel[T]()
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < samples; i++ {
		if i&0xFFF == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		if err := checkValue(T(r.Uint64()), m, width); err != nil {
			return err
		}
	}
	checked.Add(uint64(samples))
	m.checked.WithLabelValues(width).Add(float64(samples))
	return nil
}

// checkValue runs the whole property set for a single value. On violation it
// bumps the violation counter and returns an error naming the property.
func checkValue[T constraints.Unsigned](v T, m *metrics, width string) error {
	w := limits.Digits[T]()

	fail := func(property, format string, args ...any) error {
		m.violations.WithLabelValues(width, property).Inc()
		return fmt.Errorf("%s/%s: %s (v=%#x)", width, property, fmt.Sprintf(format, args...), uint64(v))
	}

	// Counting: zero contract, positional invariants, complement identities.
	tz, lz := bit.TrailingZeros(v), bit.LeadingZeros(v)
	if v == 0 {
		if tz != w || lz != w {
			return fail("count_zero_input", "tz=%d lz=%d, want %d", tz, lz, w)
		}
	} else {
		if tz < 0 || tz >= w || v&(T(1)<<tz) == 0 || v&(T(1)<<tz-1) != 0 {
			return fail("trailing_zeros", "tz=%d", tz)
		}
		if lz < 0 || lz >= w || v>>(w-1-lz) != 1 {
			return fail("leading_zeros", "lz=%d", lz)
		}
	}
	if bit.TrailingOnes(v) != bit.TrailingZeros(^v) || bit.LeadingOnes(v) != bit.LeadingZeros(^v) {
		return fail("complement_identity", "ones/zeros mismatch")
	}

	// Width and powers of two.
	n := bit.Len(v)
	if n != w-lz {
		return fail("len", "len=%d lz=%d", n, lz)
	}
	if got, want := bit.IsPowerOfTwo(v), v != 0 && n-1 == tz; got != want {
		return fail("single_bit", "got %v", got)
	}
	if v != 0 {
		fl := bit.Floor(v)
		if !bit.IsPowerOfTwo(fl) || fl > v || v-fl >= fl {
			return fail("floor_bracket", "floor=%#x", uint64(fl))
		}
	}
	c := bit.Ceil(v)
	switch {
	case v < 2:
		if c != 1 {
			return fail("ceil_bracket", "ceil=%#x, want 1", uint64(c))
		}
	case v <= limits.MaxPow2[T]():
		if c < v || c/2 >= v {
			return fail("ceil_bracket", "ceil=%#x", uint64(c))
		}
	default:
		if c != limits.MaxPow2[T]() {
			return fail("ceil_saturation", "ceil=%#x", uint64(c))
		}
	}

	// Rotation round-trips, including negative and overlong amounts.
	for _, k := range []int{0, 1, w - 1, w, 3*w + 5, -1, -w} {
		if bit.RotateRight(bit.RotateLeft(v, k), k) != v {
			return fail("rotate_roundtrip", "k=%d", k)
		}
		if bit.RotateLeft(v, k) != bit.RotateRight(v, -k) {
			return fail("rotate_negation", "k=%d", k)
		}
	}
	if bit.RotateLeft(v, w) != v {
		return fail("rotate_full_identity", "")
	}

	// Leading-bit scans.
	flz := bit.FirstLeadingZero(v)
	if v == limits.Max[T]() {
		if flz != 0 {
			return fail("leading_scan", "flz=%d, want 0", flz)
		}
	} else if flz != bit.LeadingOnes(v)+1 {
		return fail("leading_scan", "flz=%d", flz)
	}
	if bit.FirstLeadingOne(v) != bit.FirstLeadingZero(^v) {
		return fail("leading_scan", "first-one complement mismatch")
	}

	return nil
}

// widthLabel is the stable metric label for T's width.
func widthLabel[T constraints.Unsigned]() string {
	return fmt.Sprintf("%d", limits.Digits[T]())
}
