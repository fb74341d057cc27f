package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Config holds the benchmark settings
var (
	targetURL   string
	concurrency int
	duration    time.Duration
	workload    string
)

// Metrics
var (
	totalRequests uint64
	created201    uint64
	reads200      uint64
	fail400       uint64
	failOther     uint64
)

var titles = []string{"Coffee", "Groceries", "Salary", "Rent", "Taxi", "Books"}

func init() {
	flag.StringVar(&targetURL, "url", "http://localhost:8080", "API Base URL")
	flag.IntVar(&concurrency, "workers", 10, "Number of concurrent workers")
	flag.DurationVar(&duration, "duration", 30*time.Second, "Test duration")
	flag.StringVar(&workload, "workload", "write", "Workload type: write | mixed")
}

func main() {
	flag.Parse()
	log.Printf("Starting Benchmark: %s | Workers: %d | Duration: %s", workload, concurrency, duration)

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(concurrency)

	for i := 0; i < concurrency; i++ {
		go worker(&wg, start)
	}

	wg.Wait()
	printResults(time.Since(start))
}

// worker keeps one session for its whole run: the first cookieless create
// captures the Set-Cookie and every later request replays it, so reads only
// ever see the worker's own rows.
func worker(wg *sync.WaitGroup, start time.Time) {
	defer wg.Done()
	client := &http.Client{Timeout: 5 * time.Second}

	var sessionCookie *http.Cookie
	i := 0
	for time.Since(start) < duration {
		i++
		if workload == "mixed" && sessionCookie != nil && i%5 == 0 {
			doRead(client, sessionCookie, i)
			continue
		}

		typ := "credit"
		if rand.Float32() < 0.5 {
			typ = "debit"
		}
		payload := map[string]interface{}{
			"title":  titles[rand.Intn(len(titles))],
			"amount": int64(rand.Intn(10000) + 1),
			"type":   typ,
		}
		body, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", targetURL+"/transactions", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		if sessionCookie != nil {
			req.AddCookie(sessionCookie)
		}

		resp, err := client.Do(req)
		if err != nil {
			atomic.AddUint64(&failOther, 1)
			continue
		}

		atomic.AddUint64(&totalRequests, 1)
		switch resp.StatusCode {
		case 201:
			atomic.AddUint64(&created201, 1)
			if sessionCookie == nil {
				for _, c := range resp.Cookies() {
					if c.Name == "sessionId" {
						sessionCookie = c
					}
				}
			}
		case 400:
			atomic.AddUint64(&fail400, 1)
		default:
			atomic.AddUint64(&failOther, 1)
		}
		resp.Body.Close()
	}
}

func doRead(client *http.Client, cookie *http.Cookie, i int) {
	path := "/transactions"
	if i%10 == 0 {
		path = "/transactions/summary"
	}

	req, _ := http.NewRequest("GET", targetURL+path, nil)
	req.AddCookie(cookie)

	resp, err := client.Do(req)
	if err != nil {
		atomic.AddUint64(&failOther, 1)
		return
	}

	atomic.AddUint64(&totalRequests, 1)
	if resp.StatusCode == 200 {
		atomic.AddUint64(&reads200, 1)
	} else {
		atomic.AddUint64(&failOther, 1)
	}
	resp.Body.Close()
}

func printResults(d time.Duration) {
	total := atomic.LoadUint64(&totalRequests)
	c201 := atomic.LoadUint64(&created201)
	r200 := atomic.LoadUint64(&reads200)
	f400 := atomic.LoadUint64(&fail400)
	fErr := atomic.LoadUint64(&failOther)

	tps := float64(total) / d.Seconds()

	results := map[string]interface{}{
		"workload":        workload,
		"duration_sec":    d.Seconds(),
		"total_requests":  total,
		"throughput_tps":  tps,
		"success_created": c201,
		"success_reads":   r200,
		"rejected_400":    f400,
		"errors":          fErr,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(results)

	// Also save to file
	filename := fmt.Sprintf("results_%s.json", workload)
	file, _ := os.Create(filename)
	defer file.Close()
	json.NewEncoder(file).Encode(results)
}
