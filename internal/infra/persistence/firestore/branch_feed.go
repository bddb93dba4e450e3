package firestore

import (
	"context"
	"log/slog"
	"sync"

	"cloud.google.com/go/firestore"

	"fellowpet/config"
	"fellowpet/internal/domain/entity"
	"fellowpet/internal/domain/repository"

	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BranchFeedParams defines the required parameters
type BranchFeedParams struct {
	fx.In
	fx.Lifecycle

	Client      *firestore.Client
	Config      *config.Config
	Logger      *slog.Logger
	ServiceRepo repository.ServiceRepository
}

// branchFeed serves the display-eligible branch set to the ranker. With
// the watcher enabled it mirrors the result of a Firestore snapshot
// listener; until the first snapshot arrives, and whenever the listener
// drops, it falls back to a direct query.
type branchFeed struct {
	serviceRepo repository.ServiceRepository
	logger      *slog.Logger

	mu     sync.RWMutex
	cached []*entity.Service
	primed bool
}

// NewBranchFeed is the constructor for branchFeed.
func NewBranchFeed(params BranchFeedParams) repository.BranchFeed {
	feed := &branchFeed{
		serviceRepo: params.ServiceRepo,
		logger:      params.Logger,
	}

	if !params.Config.Firestore.WatchEligible {
		return feed
	}

	query := params.Client.Collection(params.Config.Firestore.ServiceCollection).
		Where("display", "==", true)

	watchCtx, cancel := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go feed.watch(watchCtx, query)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return feed
}

// EligibleBranches returns the current branch set. Entities are copied so
// callers can annotate them without racing the watcher.
func (f *branchFeed) EligibleBranches(ctx context.Context) ([]*entity.Service, error) {
	f.mu.RLock()
	primed, cached := f.primed, f.cached
	f.mu.RUnlock()

	if !primed {
		return f.serviceRepo.ListDisplayEligible(ctx)
	}

	branches := make([]*entity.Service, len(cached))
	for i, branch := range cached {
		clone := *branch
		branches[i] = &clone
	}

	return branches, nil
}

func (f *branchFeed) watch(ctx context.Context, query firestore.Query) {
	iter := query.Snapshots(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err != nil {
			f.mu.Lock()
			f.primed = false
			f.mu.Unlock()

			if status.Code(err) == codes.Canceled {
				return
			}

			f.logger.Error("branch snapshot listener stopped", slog.Any("error", err))

			return
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			f.logger.Warn("failed to read branch snapshot", slog.Any("error", err))

			continue
		}

		branches := make([]*entity.Service, 0, len(docs))
		for _, doc := range docs {
			branch, err := docToServiceDomain(doc)
			if err != nil {
				f.logger.Warn("skipping malformed branch document",
					slog.String("doc", doc.Ref.ID), slog.Any("error", err))

				continue
			}
			branches = append(branches, branch)
		}

		f.mu.Lock()
		f.cached = branches
		f.primed = true
		f.mu.Unlock()

		f.logger.Debug("branch snapshot refreshed", slog.Int("count", len(branches)))
	}
}
