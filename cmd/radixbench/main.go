// Copyright (c) 2025 The uradix authors
// SPDX-License-Identifier: MIT

// Command radixbench loads a uradix tree with random keys and
// reports rough throughput numbers for the point and successor
// operations, followed by a full drain.
package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/uradix/uradix"
)

func main() {
	n := flag.Int("n", 1_000_000, "number of random keys to load")
	bits := flag.Int("bits", 28, "key width in bits")
	queries := flag.Int("q", 500_000, "number of queries per operation")
	flag.Parse()

	log.SetFlags(log.Lmicroseconds)
	p := message.NewPrinter(language.English)

	tree, err := uradix.New(*bits, 0)
	if err != nil {
		log.Fatal(err)
	}

	prng := rand.New(rand.NewPCG(42, 42))
	mask := ^uint64(0) >> (64 - *bits)

	keys := make([]uint64, *n)
	for i := range keys {
		keys[i] = prng.Uint64() & mask
	}

	ts := time.Now()
	for _, key := range keys {
		if _, err := tree.Insert(key, key|1); err != nil {
			log.Fatal(err)
		}
	}
	log.Print(p.Sprintf("insert: %d keys (%d distinct) in %v, %.0f ops/s",
		*n, tree.Size(), time.Since(ts), rate(*n, ts)))

	ts = time.Now()
	var hits int
	for range *queries {
		if tree.Get(keys[prng.IntN(len(keys))]) != 0 {
			hits++
		}
	}
	log.Print(p.Sprintf("get: %d probes (%d hits) in %v, %.0f ops/s",
		*queries, hits, time.Since(ts), rate(*queries, ts)))

	ts = time.Now()
	hits = 0
	for range *queries {
		if tree.Ceiling(prng.Uint64()&mask) != 0 {
			hits++
		}
	}
	log.Print(p.Sprintf("ceiling: %d probes (%d hits) in %v, %.0f ops/s",
		*queries, hits, time.Since(ts), rate(*queries, ts)))

	ts = time.Now()
	var count int
	for range tree.All() {
		count++
	}
	log.Print(p.Sprintf("walk: %d entries in %v, %.0f ops/s",
		count, time.Since(ts), rate(count, ts)))

	ts = time.Now()
	for _, key := range keys {
		tree.Delete(key)
	}
	log.Print(p.Sprintf("delete: %d keys in %v, %.0f ops/s",
		*n, time.Since(ts), rate(*n, ts)))

	if tree.Size() != 0 {
		log.Fatalf("tree not empty after drain, size: %d", tree.Size())
	}
	tree.Free()
}

func rate(ops int, since time.Time) float64 {
	return float64(ops) / time.Since(since).Seconds()
}
