package service

import (
	"context"
	"strings"

	"foodieframe/internal/repository"
)

// OrphanSweeper abstracts the storage-side orphan sweep.
type OrphanSweeper interface {
	SweepOrphans(referenced map[string]bool, limit int) ([]string, error)
}

// MaintenanceService removes uploaded media files no post references.
type MaintenanceService struct {
	postRepo  repository.PostRepository
	sweeper   OrphanSweeper
	batchSize int
}

// NewMaintenanceService returns a new MaintenanceService. batchSize caps how
// many files one sweep call removes; zero or negative means no cap.
func NewMaintenanceService(postRepo repository.PostRepository, sweeper OrphanSweeper, batchSize int) *MaintenanceService {
	return &MaintenanceService{postRepo: postRepo, sweeper: sweeper, batchSize: batchSize}
}

// SweepReport summarizes one orphan sweep.
type SweepReport struct {
	ImagesDeleted int      `json:"imagesDeleted"`
	VideosDeleted int      `json:"videosDeleted"`
	Deleted       []string `json:"deleted"`
}

// SweepOrphanedFiles deletes every stored upload not referenced by any post
// and reports per-type removal counts.
func (s *MaintenanceService) SweepOrphanedFiles(ctx context.Context) (*SweepReport, error) {
	urls, err := s.postRepo.AllMediaURLs(ctx)
	if err != nil {
		return nil, err
	}

	referenced := make(map[string]bool, len(urls))
	for _, url := range urls {
		referenced[url] = true
	}

	deleted, err := s.sweeper.SweepOrphans(referenced, s.batchSize)
	if err != nil {
		return nil, err
	}

	report := &SweepReport{Deleted: deleted}
	for _, url := range deleted {
		if strings.HasPrefix(url, "/uploads/images/") {
			report.ImagesDeleted++
		} else if strings.HasPrefix(url, "/uploads/videos/") {
			report.VideosDeleted++
		}
	}
	return report, nil
}
