package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

type enterResponse struct {
	EntryID  string `json:"entry_id"`
	Token    string `json:"token"`
	Position int    `json:"position"`
}

type entryResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

var (
	baseURL     = flag.String("addr", "http://localhost:8080", "Queue service base URL")
	shopID      = flag.String("shop", "", "Barbershop ID (required, must already be configured)")
	numClients  = flag.Int("clients", 30, "Number of walk-in clients to enqueue")
	numBarbers  = flag.Int("barbers", 3, "Number of barbers serving the queue")
	joinRate    = flag.Duration("join-rate", 200*time.Millisecond, "Time between client arrivals")
	serviceTime = flag.Duration("service-time", 2*time.Second, "Simulated haircut duration")
	exitRate    = flag.Float64("exit-rate", 0.1, "Probability a client leaves before being called (0.0-1.0)")
	noShowRate  = flag.Float64("no-show-rate", 0.05, "Probability a called client does not show up (0.0-1.0)")
	requestRate = flag.Float64("request-rate", 0.3, "Probability a client asks for a specific barber (0.0-1.0)")
)

var httpClient = &http.Client{Timeout: 5 * time.Second}

type counters struct {
	entered, rejected, left, served, noShows atomic.Int64
}

func main() {
	flag.Parse()

	if *shopID == "" {
		fmt.Println("Error: --shop flag is required")
		flag.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	barbers := make([]string, *numBarbers)
	for i := range barbers {
		barbers[i] = fmt.Sprintf("sim-barber-%d", i+1)
		path := fmt.Sprintf("/api/v1/barbershops/%s/barbers/%s/active", *shopID, barbers[i])
		if _, err := call(ctx, http.MethodPut, path, map[string]any{"active": true}, nil, nil); err != nil {
			fmt.Printf("Failed to activate %s: %v\n", barbers[i], err)
			os.Exit(1)
		}
	}
	fmt.Printf("Activated %d barbers in %s\n", len(barbers), *shopID)

	var c counters
	var tokensMu sync.Mutex
	var tokens []string

	arrivals, arrivalsCtx := errgroup.WithContext(ctx)
	arrivals.Go(func() error {
		for i := 0; i < *numClients; i++ {
			body := map[string]any{
				"client_name":  fmt.Sprintf("Client %03d", i+1),
				"client_phone": fmt.Sprintf("+55119%08d", rand.Intn(100000000)),
			}
			if rand.Float64() < *requestRate {
				body["requested_barber_id"] = barbers[rand.Intn(len(barbers))]
			}

			var out enterResponse
			status, err := call(arrivalsCtx, http.MethodPost, "/api/v1/barbershops/"+*shopID+"/queue", body, nil, &out)
			switch {
			case err != nil && status == 0:
				return err
			case err != nil:
				c.rejected.Add(1)
				fmt.Printf("Client %03d rejected: %v\n", i+1, err)
			default:
				c.entered.Add(1)
				tokensMu.Lock()
				tokens = append(tokens, out.Token)
				tokensMu.Unlock()
				fmt.Printf("Client %03d entered at position %d\n", i+1, out.Position)
			}

			select {
			case <-arrivalsCtx.Done():
				return nil
			case <-time.After(*joinRate):
			}
		}
		return nil
	})

	arrivals.Go(func() error {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-arrivalsCtx.Done():
				return nil
			case <-ticker.C:
				tokensMu.Lock()
				if len(tokens) == 0 || rand.Float64() >= *exitRate {
					tokensMu.Unlock()
					continue
				}
				idx := rand.Intn(len(tokens))
				token := tokens[idx]
				tokens = append(tokens[:idx], tokens[idx+1:]...)
				tokensMu.Unlock()

				if _, err := call(arrivalsCtx, http.MethodDelete, "/api/v1/status", nil, map[string]string{"X-Queue-Token": token}, nil); err == nil {
					c.left.Add(1)
				}
			}
		}
	})

	serving, servingCtx := errgroup.WithContext(ctx)
	for _, b := range barbers {
		serving.Go(func() error {
			return serve(servingCtx, b, &c)
		})
	}

	go func() {
		_ = arrivals.Wait()
	}()

	if err := serving.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Printf("Simulation stopped: %v\n", err)
	}

	fmt.Println("\n=== Simulation summary ===")
	fmt.Printf("Entered:  %d\n", c.entered.Load())
	fmt.Printf("Rejected: %d\n", c.rejected.Load())
	fmt.Printf("Left:     %d\n", c.left.Load())
	fmt.Printf("Served:   %d\n", c.served.Load())
	fmt.Printf("No-shows: %d\n", c.noShows.Load())
}

// serve loops call-next, start, finish for one barber until interrupted.
func serve(ctx context.Context, barberID string, c *counters) error {
	idle := 0
	for {
		if ctx.Err() != nil {
			return nil
		}

		var e entryResponse
		status, err := call(ctx, http.MethodPost,
			fmt.Sprintf("/api/v1/barbershops/%s/barbers/%s/call-next", *shopID, barberID), nil, nil, &e)
		if err != nil {
			if status == http.StatusNotFound || status == http.StatusServiceUnavailable {
				idle++
				if idle > 10 && c.entered.Load() > 0 {
					return nil
				}
				sleep(ctx, time.Second)
				continue
			}
			return fmt.Errorf("%s call-next: %w", barberID, err)
		}
		idle = 0

		action := map[string]any{"barber_id": barberID}
		if rand.Float64() < *noShowRate {
			if _, err := call(ctx, http.MethodPost, "/api/v1/entries/"+e.ID+"/no-show", action, nil, nil); err == nil {
				c.noShows.Add(1)
			}
			continue
		}

		if _, err := call(ctx, http.MethodPost, "/api/v1/entries/"+e.ID+"/start", action, nil, nil); err != nil {
			fmt.Printf("%s start %s: %v\n", barberID, e.ID, err)
			continue
		}
		sleep(ctx, *serviceTime)

		action["notes"] = "simulated"
		if _, err := call(ctx, http.MethodPost, "/api/v1/entries/"+e.ID+"/finish", action, nil, nil); err == nil {
			c.served.Add(1)
			fmt.Printf("%s served %s\n", barberID, e.ID)
		}
	}
}

func call(ctx context.Context, method, path string, body any, header map[string]string, out any) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, *baseURL+path, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return resp.StatusCode, fmt.Errorf("%d %s", resp.StatusCode, e.Message)
	}
	if out != nil {
		return resp.StatusCode, json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode, nil
}

func sleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
