//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/comunidad/internal/bootstrap"
	"github.com/yanqian/comunidad/internal/domain/auth"
	"github.com/yanqian/comunidad/internal/domain/digest"
	"github.com/yanqian/comunidad/internal/domain/feeds"
	"github.com/yanqian/comunidad/internal/domain/readings"
	"github.com/yanqian/comunidad/internal/domain/scripture"
	"github.com/yanqian/comunidad/internal/infra/config"
	httpiface "github.com/yanqian/comunidad/internal/interface/http"
	"github.com/yanqian/comunidad/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideLocation,
		provideFeedsConfig,
		provideScriptureConfig,
		provideReadingsConfig,
		provideDigestConfig,
		provideAuthConfig,
		provideFeedFetcher,
		provideValkeyClient,
		provideSnapshotStore,
		provideDigestOutbox,
		provideDocumentSource,
		provideScheduleRepository,
		feeds.NewService,
		scripture.NewService,
		readings.NewService,
		digest.NewService,
		auth.NewService,
		wire.Bind(new(readings.PassageSummarizer), new(scripture.Service)),
		wire.Bind(new(digest.FeedReader), new(feeds.Service)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
