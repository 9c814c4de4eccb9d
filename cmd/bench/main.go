package main

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/QuangTung97/loyalty/app"
	"github.com/QuangTung97/loyalty/config"
	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/pkg/fixture"
	"github.com/QuangTung97/loyalty/pkg/otellib"
	_ "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchMatchCommand(),
		benchBuyCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func newApp() *app.App {
	conf := config.Load()
	fmt.Println("MEMCACHE ADDR:", conf.Memcache.Addr(), "REMOTE:", conf.Cache.RemoteEnabled)

	logger := config.NewLogger(conf.Log)
	db := conf.MySQL.MustConnect()

	ctx := otellib.ToContext(context.Background(), logger)
	a, err := app.New(ctx, app.Deps{
		Conf:     conf,
		DB:       db,
		Logger:   logger,
		Tracer:   trace.NewNoopTracerProvider().Tracer("bench"),
		Registry: prometheus.NewRegistry(),
	})
	if err != nil {
		panic(err)
	}
	return a
}

func loadCustomers(path string) []fixture.Customer {
	file, err := fixture.Load(path)
	if err != nil {
		panic(err)
	}
	if len(file.Customers) == 0 {
		panic("fixture file has no customers")
	}
	return file.Customers
}

// runThreads calls fn numElements times in each of numThreads goroutines, collecting the durations
func runThreads(numThreads int, numElements int, fn func(thread int, i int)) [][]time.Duration {
	durations := make([][]time.Duration, numThreads)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for th := 0; th < numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < numElements; i++ {
				start := time.Now()
				fn(threadIndex, i)
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	return durations
}

func printDurations(durations [][]time.Duration) {
	var history []time.Duration

	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}
	numHistory := len(history)
	if numHistory == 0 {
		return
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	fmt.Println("P50:", history[numHistory*50/100])
	fmt.Println("P90:", history[numHistory*90/100])
	fmt.Println("P95:", history[numHistory*95/100])
	fmt.Println("P99:", history[numHistory*99/100])
	fmt.Println("P999:", history[numHistory*999/1000])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("HISTORY LEN:", numHistory)

	fmt.Println("AVG:", total/time.Duration(numHistory))
}

//=============================================================
// Identity matching
//=============================================================

func benchMatchCommand() *cobra.Command {
	var fixturePath string
	var numThreads, numElements int

	cmd := &cobra.Command{
		Use:   "match",
		Short: "benchmark customer matching through the local and remote caches",
		Run: func(cmd *cobra.Command, args []string) {
			customers := loadCustomers(fixturePath)
			a := newApp()

			durations := runThreads(numThreads, numElements, func(thread int, i int) {
				c := customers[(thread+i)%len(customers)]
				_, found, err := a.Matcher.GetID(context.Background(), model.CustomerData{
					Name:              c.Name,
					Email:             c.Email,
					Phone:             c.Phone,
					LoyaltyCardNumber: c.LoyaltyCardNumber,
				})
				if err != nil || !found {
					fmt.Println(c.ID, found, err)
				}
			})
			printDurations(durations)
		},
	}
	cmd.Flags().StringVar(&fixturePath, "fixture", "fixtures/seed.yml", "fixture file with the seeded customers")
	cmd.Flags().IntVar(&numThreads, "threads", 50, "number of goroutines")
	cmd.Flags().IntVar(&numElements, "elements", 2000, "lookups per goroutine")
	return cmd
}

//=============================================================
// Concurrent purchases
//=============================================================

func benchBuyCommand() *cobra.Command {
	var fixturePath string
	var campaignID string
	var numThreads, numElements int

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "buy one campaign concurrently and check that no coupon is sold twice",
		Run: func(cmd *cobra.Command, args []string) {
			customers := loadCustomers(fixturePath)
			a := newApp()

			var mut sync.Mutex
			outcomes := map[string]int{}
			coupons := map[string]int{}

			durations := runThreads(numThreads, numElements, func(thread int, i int) {
				c := customers[(thread*numElements+i)%len(customers)]
				result, err := a.Campaigns.Buy(context.Background(), campaignID, c.ID)

				outcome := "ok"
				if err != nil {
					_, payload := apperr.ToPayload(err)
					outcome = payload.Code
				}

				mut.Lock()
				outcomes[outcome]++
				if result.Coupon != "" {
					coupons[result.Coupon]++
				}
				mut.Unlock()
			})

			fmt.Println("OUTCOMES:", outcomes)
			for code, count := range coupons {
				if count > 1 && len(coupons) > 1 {
					fmt.Println("COUPON SOLD TWICE:", code, count)
				}
			}
			printDurations(durations)
		},
	}
	cmd.Flags().StringVar(&fixturePath, "fixture", "fixtures/seed.yml", "fixture file with the seeded customers")
	cmd.Flags().StringVar(&campaignID, "campaign", "", "campaign id")
	cmd.Flags().IntVar(&numThreads, "threads", 20, "number of goroutines")
	cmd.Flags().IntVar(&numElements, "elements", 5, "purchases per goroutine")
	_ = cmd.MarkFlagRequired("campaign")
	return cmd
}
