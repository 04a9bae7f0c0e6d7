package background

import (
	"context"
	"log"
	"time"

	"estatehub/internal/caching"
	"estatehub/internal/repositories"

	"github.com/go-co-op/gocron/v2"
)

const warmupProjectCount = 100

// JobScheduler runs the periodic maintenance work: reactivating temporarily
// disabled sellers whose window has passed, retiring expired notices, and
// warming the project cache.
type JobScheduler struct {
	scheduler   gocron.Scheduler
	sellerRepo  repositories.SellerRepository
	noticeRepo  repositories.NoticeRepository
	projectRepo repositories.ProjectRepository
	cacheSvc    caching.CacheService
}

func NewJobScheduler(sellerRepo repositories.SellerRepository, noticeRepo repositories.NoticeRepository,
	projectRepo repositories.ProjectRepository, cacheSvc caching.CacheService) (*JobScheduler, error) {

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:   scheduler,
		sellerRepo:  sellerRepo,
		noticeRepo:  noticeRepo,
		projectRepo: projectRepo,
		cacheSvc:    cacheSvc,
	}

	if err := js.registerJobs(); err != nil {
		return nil, err
	}

	return js, nil
}

func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() error {
	if _, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.reactivateSellers, context.Background()),
		gocron.WithName("seller-reactivation-sweep"),
	); err != nil {
		return err
	}

	if _, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.retireExpiredNotices, context.Background()),
		gocron.WithName("notice-expiry-sweep"),
	); err != nil {
		return err
	}

	if _, err := js.scheduler.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(js.warmProjectCache, context.Background()),
		gocron.WithName("project-cache-warmup"),
	); err != nil {
		return err
	}

	return nil
}

func (js *JobScheduler) reactivateSellers(ctx context.Context) {
	n, err := js.sellerRepo.ReactivateExpiredDisables(ctx)
	if err != nil {
		log.Printf("Seller reactivation sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Reactivated %d temporarily disabled sellers", n)
	}
}

func (js *JobScheduler) retireExpiredNotices(ctx context.Context) {
	n, err := js.noticeRepo.SoftDeleteExpired(ctx)
	if err != nil {
		log.Printf("Notice expiry sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Retired %d expired notices", n)
	}
}

func (js *JobScheduler) warmProjectCache(ctx context.Context) {
	projects, err := js.projectRepo.List(ctx, warmupProjectCount, 0)
	if err != nil {
		log.Printf("Project cache warmup failed: %v", err)
		return
	}
	for _, project := range projects {
		if err := js.cacheSvc.SetProject(ctx, project, 15*time.Minute); err != nil {
			log.Printf("Failed to warm cache for project %d: %v", project.ID, err)
		}
	}
}
