package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/signature"
	"github.com/spf13/cobra"
)

// diamondPack is one purchasable top-up used to vary the load
type diamondPack struct {
	Name    string
	Diamond int64
	Amount  int64
}

var diamondPacks = []diamondPack{
	{"Pack 86", 86, 15000},
	{"Pack 172", 172, 29000},
	{"Pack 257", 257, 43000},
	{"Pack 706", 706, 115000},
}

// loadResult contains metrics for a single scenario run
type loadResult struct {
	Pack         string
	Success      bool
	ResponseTime time.Duration
	Err          error
}

// loadStats contains aggregated test statistics
type loadStats struct {
	mu sync.Mutex

	Total         int
	Successful    int
	Failed        int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	ErrorCounts   map[string]int
	PackCounts    map[string]int
}

func (s *loadStats) add(r loadResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.PackCounts[r.Pack]++
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	if r.Success {
		s.Successful++
		return
	}
	s.Failed++
	msg := "unknown"
	if r.Err != nil {
		msg = r.Err.Error()
	}
	s.ErrorCounts[msg]++
}

// percentile returns the p-th percentile of sorted durations
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// loadRunner drives create and, optionally, signed settle requests
type loadRunner struct {
	baseURL      string
	callbackPath string
	codec        *signature.Codec
	delay        time.Duration
	client       *http.Client
}

func loadtestCmd() *cobra.Command {
	var (
		baseURL      string
		concurrency  int
		total        int
		delay        time.Duration
		settle       bool
		callbackPath string
		key          string
		keyFile      string
	)

	cmd := &cobra.Command{
		Use:   "loadtest",
		Short: "Create transactions concurrently against a running server",
		Long: `Create transactions from a pool of workers and report throughput and latency.
With --settle each created transaction is also paid through a signed webhook,
which needs the provider private key.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if concurrency < 1 || total < 1 {
				return fmt.Errorf("-c and -n must be positive")
			}

			runner := &loadRunner{
				baseURL:      strings.TrimRight(baseURL, "/"),
				callbackPath: callbackPath,
				delay:        delay,
				client:       &http.Client{Timeout: 10 * time.Second},
			}
			if settle {
				privatePEM, err := readKey(key, keyFile)
				if err != nil {
					return err
				}
				codec, err := signature.NewCodec(privatePEM, "")
				if err != nil {
					return err
				}
				if !codec.HasPrivateKey() {
					return fmt.Errorf("--settle needs --private-key or ZENOS_PRIVATE_KEY")
				}
				runner.codec = codec
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Load testing %s with %d workers, %d scenarios, settle=%t\n", runner.baseURL, concurrency, total, settle)

			stats := runner.run(cmd.Context(), concurrency, total)
			printLoadResults(out, stats)

			if stats.Failed > 0 {
				return fmt.Errorf("%d of %d scenarios failed", stats.Failed, stats.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the server")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 5, "Number of concurrent workers")
	cmd.Flags().IntVarP(&total, "requests", "n", 100, "Total number of scenarios to run")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Delay before each scenario in a worker")
	cmd.Flags().BoolVar(&settle, "settle", false, "Pay each transaction through a signed webhook")
	cmd.Flags().StringVar(&callbackPath, "callback-path", envOr("ZENOS_WEBHOOK_ENDPOINT", "/api/transactions/webhook/zenospay"), "Path covered by the webhook signature")
	cmd.Flags().StringVar(&key, "private-key", envOr("ZENOS_PRIVATE_KEY", ""), "Private key PEM (default $ZENOS_PRIVATE_KEY)")
	cmd.Flags().StringVar(&keyFile, "private-key-file", "", "Read the private key from a file")

	return cmd
}

func (r *loadRunner) run(ctx context.Context, concurrency, total int) *loadStats {
	stats := &loadStats{
		Total:         total,
		ResponseTimes: make([]time.Duration, 0, total),
		ErrorCounts:   make(map[string]int),
		PackCounts:    make(map[string]int),
	}

	jobs := make(chan int, total)
	for i := 0; i < total; i++ {
		jobs <- i
	}
	close(jobs)

	start := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jobID := range jobs {
				if ctx.Err() != nil {
					return
				}
				if r.delay > 0 {
					time.Sleep(r.delay)
				}
				stats.add(r.scenario(ctx, jobID))
			}
		}()
	}
	wg.Wait()

	stats.TotalTime = time.Since(start)
	return stats
}

// scenario creates one transaction and settles it when a codec is configured
func (r *loadRunner) scenario(ctx context.Context, jobID int) loadResult {
	pack := diamondPacks[rand.Intn(len(diamondPacks))]
	result := loadResult{Pack: pack.Name}

	start := time.Now()

	body, _ := json.Marshal(map[string]any{
		"total_diamond": pack.Diamond,
		"total_amount":  pack.Amount,
		"no_wa":         fmt.Sprintf("0812%08d", jobID),
		"target_id":     100000 + jobID,
	})

	var created struct {
		Transaction struct {
			MerchantTransactionID string `json:"merchant_transaction_id"`
		} `json:"transaction"`
	}
	if err := r.post(ctx, "/api/transactions", body, nil, http.StatusCreated, &created); err != nil {
		result.Err = err
		result.ResponseTime = time.Since(start)
		return result
	}

	if r.codec != nil {
		timestamp := strconv.FormatInt(time.Now().Unix(), 10)
		signed, sig, err := r.codec.SignPayload(http.MethodPost, r.callbackPath, map[string]any{
			"merchant_transaction_id": created.Transaction.MerchantTransactionID,
			"status":                  "paid",
		}, timestamp)
		if err != nil {
			result.Err = err
			result.ResponseTime = time.Since(start)
			return result
		}
		headers := map[string]string{"X-Signature": sig, "X-Timestamp": timestamp}
		if err := r.post(ctx, r.callbackPath, signed, headers, http.StatusOK, nil); err != nil {
			result.Err = fmt.Errorf("settle: %w", err)
			result.ResponseTime = time.Since(start)
			return result
		}
	}

	result.Success = true
	result.ResponseTime = time.Since(start)
	return result
}

func (r *loadRunner) post(ctx context.Context, path string, body []byte, headers map[string]string, want int, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	if into != nil {
		return json.NewDecoder(resp.Body).Decode(into)
	}
	return nil
}

func printLoadResults(out io.Writer, stats *loadStats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = sum / time.Duration(len(sorted))
	}

	tps := 0.0
	if stats.TotalTime > 0 {
		tps = float64(stats.Successful) / stats.TotalTime.Seconds()
	}

	fmt.Fprintln(out, "\n================= TEST RESULTS =================")
	fmt.Fprintf(out, "Total Scenarios:     %d\n", stats.Total)
	fmt.Fprintf(out, "Successful:          %d\n", stats.Successful)
	fmt.Fprintf(out, "Failed:              %d\n", stats.Failed)
	fmt.Fprintf(out, "Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Fprintf(out, "Throughput:          %.2f scenarios/s\n", tps)

	fmt.Fprintln(out, "\n----------------- RESPONSE TIMES -----------------")
	fmt.Fprintf(out, "Average:             %v\n", avg)
	fmt.Fprintf(out, "P50:                 %v\n", percentile(sorted, 50))
	fmt.Fprintf(out, "P90:                 %v\n", percentile(sorted, 90))
	fmt.Fprintf(out, "P99:                 %v\n", percentile(sorted, 99))

	fmt.Fprintln(out, "\n----------------- PACK DISTRIBUTION -----------------")
	packs := make([]string, 0, len(stats.PackCounts))
	for name := range stats.PackCounts {
		packs = append(packs, name)
	}
	sort.Strings(packs)
	for _, name := range packs {
		fmt.Fprintf(out, "%-15s: %d\n", name, stats.PackCounts[name])
	}

	if stats.Failed > 0 {
		fmt.Fprintln(out, "\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Fprintf(out, "%-40s: %d\n", msg, count)
		}
	}
}
