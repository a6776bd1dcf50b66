package main

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

func main() {
	// Configuration
	url := "http://localhost:8080/api/v1/attendance/%d"
	contentType := "application/json"

	numEmployees := 5000
	concurrency := 50 // Number of concurrent requests to avoid local port exhaustion

	fmt.Printf("Starting load test: %d attendance marks with concurrency %d\n", numEmployees, concurrency)

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency) // Semaphore to limit concurrency

	var successCount int64
	var failCount int64

	startTime := time.Now()

	for i := 1; i <= numEmployees; i++ {
		wg.Add(1)
		sem <- struct{}{} // Acquire token

		go func(employeeID int) {
			defer wg.Done()
			defer func() { <-sem }() // Release token

			payload := []byte(`{"date": "2024-03-11", "status": "PRESENT"}`)

			req, err := http.NewRequest(http.MethodPut, fmt.Sprintf(url, employeeID), bytes.NewBuffer(payload))
			if err != nil {
				atomic.AddInt64(&failCount, 1)
				return
			}
			req.Header.Set("Content-Type", contentType)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				atomic.AddInt64(&failCount, 1)
				return
			}

			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				atomic.AddInt64(&successCount, 1)
			} else {
				atomic.AddInt64(&failCount, 1)
			}
			resp.Body.Close()
		}(i)
	}

	wg.Wait()

	elapsed := time.Since(startTime)
	fmt.Printf("Done in %s. Success: %d, Failed: %d\n", elapsed, successCount, failCount)
}
