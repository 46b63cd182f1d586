package jobs

import (
	"context"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"rr-exchange.backend/internal/domain/repositories"
)

var (
	openOrdersGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rrx_open_orders",
		Help: "Number of open sell orders per resource",
	}, []string{"resource"})

	pendingDepositsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rrx_pending_deposit_requests",
		Help: "Number of deposit requests awaiting moderation",
	})

	pendingVerificationsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rrx_pending_verification_requests",
		Help: "Number of verification requests awaiting moderation",
	})
)

// MarketStatsJob refreshes the order book and moderation queue gauges
type MarketStatsJob struct {
	orderRepo        repositories.OrderRepository
	depositRepo      repositories.DepositRepository
	verificationRepo repositories.VerificationRepository
	interval         time.Duration
	stop             chan struct{}
}

func NewMarketStatsJob(
	orderRepo repositories.OrderRepository,
	depositRepo repositories.DepositRepository,
	verificationRepo repositories.VerificationRepository,
) *MarketStatsJob {
	return &MarketStatsJob{
		orderRepo:        orderRepo,
		depositRepo:      depositRepo,
		verificationRepo: verificationRepo,
		interval:         30 * time.Second,
		stop:             make(chan struct{}),
	}
}

func (j *MarketStatsJob) Start(ctx context.Context) {
	log.Println("🕐 Starting market stats job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Market stats job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Market stats job stopped")
			return
		case <-ticker.C:
			j.refresh(ctx)
		}
	}
}

func (j *MarketStatsJob) Stop() {
	close(j.stop)
}

func (j *MarketStatsJob) refresh(ctx context.Context) {
	counts, err := j.orderRepo.OpenCounts(ctx)
	if err != nil {
		log.Printf("❌ Error refreshing open order counts: %v", err)
	} else {
		for resource, count := range counts {
			openOrdersGauge.WithLabelValues(string(resource)).Set(float64(count))
		}
	}

	if pending, err := j.depositRepo.CountPending(ctx); err != nil {
		log.Printf("❌ Error counting pending deposits: %v", err)
	} else {
		pendingDepositsGauge.Set(float64(pending))
	}

	if pending, err := j.verificationRepo.CountPending(ctx); err != nil {
		log.Printf("❌ Error counting pending verifications: %v", err)
	} else {
		pendingVerificationsGauge.Set(float64(pending))
	}
}
