package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var sampleTags = []string{"ActivityManager", "PackageManager", "WindowManager", "adbd", "Zygote"}

// startProducers launches n goroutines that log through logger until ctx is
// cancelled. The returned func waits for them to exit.
func startProducers(ctx context.Context, logger *slog.Logger, n int, interval time.Duration) func() {
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			produce(ctx, logger.With("producer", id), id, interval)
		}(i)
	}
	return wg.Wait
}

func produce(ctx context.Context, logger *slog.Logger, id int, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	serial := fmt.Sprintf("emulator-%d", 5554+2*id)
	for seq := 0; ; seq++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		tag := sampleTags[seq%len(sampleTags)]
		if seq%7 == 6 {
			logger.Warn("slow response", "device", serial, "tag", tag)
			continue
		}
		logger.Info(fmt.Sprintf("%s: line %d", tag, seq), "device", serial)
	}
}
