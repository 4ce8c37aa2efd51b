/*
	Basic script that generates a churn-heavy workload to grow a real log
	file for testing.
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/dilroop-us/poeckt-kv/core"
)

const (
	// Fixed universe
	totalKeys   = 100
	totalValues = 100

	// Per-cycle behavior
	keysPerCycleWrite  = 20
	keysPerCycleDelete = 10
	totalCycles        = 500

	progressEvery = 50
)

func main() {
	dir := flag.String("dir", "./data", "store directory to fill")
	flag.Parse()

	start := time.Now()
	fmt.Println("Starting poeckt churn-heavy load generator")

	keys := makeKeys(totalKeys)
	values := makeValues(totalValues)

	store, err := core.Open(*dir)
	if err != nil {
		fmt.Printf("open error: %v\n", err)
		return
	}
	defer store.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for cycle := 1; cycle <= totalCycles; cycle++ {

		// ---- WRITE / OVERWRITE PHASE ----
		for i := 0; i < keysPerCycleWrite; i++ {
			key := keys[rng.Intn(len(keys))]
			val := values[rng.Intn(len(values))]

			if err := store.Put([]byte(key), []byte(val)); err != nil {
				fmt.Printf("PUT error: %v\n", err)
				return
			}
		}

		// ---- DELETE PHASE ----
		for i := 0; i < keysPerCycleDelete; i++ {
			key := keys[rng.Intn(len(keys))]

			if err := store.Del([]byte(key)); err != nil && !errors.Is(err, core.ErrNotFound) {
				fmt.Printf("DELETE error: %v\n", err)
				return
			}
		}

		// ---- REWRITE PHASE (forces overwrite garbage) ----
		for i := 0; i < keysPerCycleWrite/2; i++ {
			key := keys[rng.Intn(len(keys))]
			val := values[rng.Intn(len(values))]

			if err := store.Put([]byte(key), []byte(val)); err != nil {
				fmt.Printf("REWRITE error: %v\n", err)
				return
			}
		}

		if cycle%progressEvery == 0 {
			fmt.Printf("completed %d cycles, %d live keys\n", cycle, store.Len())
		}
	}

	fmt.Printf("Load finished in %v, %d live keys\n", time.Since(start), store.Len())
}

func makeKeys(n int) []string {
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = fmt.Sprintf("key-%03d", i)
	}
	return keys
}

func makeValues(n int) []string {
	values := make([]string, n)
	for i := 0; i < n; i++ {
		values[i] = fmt.Sprintf("value-%03d-xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", i)
	}
	return values
}
