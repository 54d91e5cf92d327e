package kv

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ValentinKolb/etcdc/cmd/util"
	"github.com/ValentinKolb/etcdc/kv"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for etcd clusters",
		Long:    "",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfKeyPrefix  = "__test"
	perfNumThreads = 10
	perfRequests   = 1000
	perfKeySpread  = 100
	perfSkip       = make([]string, 0)
)

func init() {
	// add flags
	key := "skip"
	perfTestCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. set,get)"))
	key = "threads"
	perfTestCmd.Flags().Int(key, 10, util.WrapString("Number of threads to use for the benchmark"))
	key = "requests"
	perfTestCmd.Flags().Int(key, 1000, util.WrapString("How many requests to issue per benchmark"))
	key = "keys"
	perfTestCmd.Flags().Int(key, 100, util.WrapString("How many different keys to use for the tests"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfNumThreads = viper.GetInt("threads")
	perfRequests = viper.GetInt("requests")
	perfKeySpread = viper.GetInt("keys")
	perfSkip = strings.Split(viper.GetString("skip"), ",")

	return nil
}

func runPerf(_ *cobra.Command, _ []string) error {

	fmt.Println("Performance testing tool for etcd clusters")

	// Print configuration
	config := util.GetClientConfig()
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(config.String())
	fmt.Printf("Threads:  %d\n", perfNumThreads)
	fmt.Printf("Requests: %d\n", perfRequests)
	fmt.Println()

	fmt.Println("starting tests...")

	runBenchmark("set", func(i int) error {
		_, err := kv.Set(c, perfKey("set", i), "test")
		return err
	})

	// prepare keys for the read benchmark
	for i := 0; i < perfKeySpread; i++ {
		if _, err := kv.Set(c, perfKey("get", i), "test"); err != nil {
			return fmt.Errorf("failed to prepare keys: %v", err)
		}
	}

	runBenchmark("get", func(i int) error {
		_, err := kv.Get(c, perfKey("get", i), kv.GetOptions{})
		return err
	})

	runBenchmark("delete", func(i int) error {
		_, err := kv.Delete(c, perfKey("get", i%perfKeySpread))
		if err != nil && !strings.Contains(err.Error(), "100") {
			return err // ignore "Key not found" for repeated deletes
		}
		return nil
	})

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(test string) bool {
	// Check if the test is in the skip list
	for _, skip := range perfSkip {
		if test == skip {
			return true
		}
	}
	return false
}

// perfKey returns a benchmark key by index (with wraparound)
func perfKey(prefix string, i int) string {
	return fmt.Sprintf("%s-%s-%d", perfKeyPrefix, prefix, i%perfKeySpread)
}

// runBenchmark runs one benchmark with perfNumThreads workers and reports
// the latency distribution
func runBenchmark(test string, op func(int) error) {
	if shouldSkip(test) {
		fmt.Printf("%-10sskipped\n", test)
		return
	}

	timer := gometrics.NewTimer()
	errors := gometrics.NewCounter()

	var wg sync.WaitGroup
	requests := make(chan int, perfRequests)
	for i := 0; i < perfRequests; i++ {
		requests <- i
	}
	close(requests)

	start := time.Now()
	for t := 0; t < perfNumThreads; t++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range requests {
				opStart := time.Now()
				if err := op(i); err != nil {
					errors.Inc(1)
					continue
				}
				timer.UpdateSince(opStart)
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	printResult(test, timer, errors.Count(), elapsed)
}

// printResult prints the result of a benchmark test in a formatted way
func printResult(test string, timer gometrics.Timer, errors int64, elapsed time.Duration) {
	if timer.Count() == 0 {
		fmt.Printf("%-10sno successful requests (%d errors)\n", test, errors)
		return
	}

	ps := timer.Percentiles([]float64{0.5, 0.95, 0.99})
	opsPerSec := float64(timer.Count()) / elapsed.Seconds()

	fmt.Printf("%-10smean=%s p50=%s p95=%s p99=%s max=%s\t%.0f ops/sec\t%d errors\n",
		test,
		time.Duration(int64(timer.Mean())),
		time.Duration(int64(ps[0])),
		time.Duration(int64(ps[1])),
		time.Duration(int64(ps[2])),
		time.Duration(timer.Max()),
		opsPerSec,
		errors,
	)
}
