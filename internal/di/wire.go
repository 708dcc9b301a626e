//go:build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"cftracker/internal/adapter/logging"
	"cftracker/internal/adapter/web"
	"cftracker/internal/app"
	"cftracker/internal/config"
	"cftracker/internal/domain/ports"
	"cftracker/internal/usecase"
)

var analyzerSet = wire.NewSet(
	provideLogger,
	wire.Bind(new(ports.Logger), new(*logging.SLogger)),
	provideSubmissionProvider,
	provideSubmissionCache,
	usecase.NewAnalyzer,
)

// InitializeAnalyzer wires the components needed to analyse a handle.
func InitializeAnalyzer(ctx context.Context, cfg *config.Config, opts usecase.ClassifyOptions) (*usecase.Analyzer, func(), error) {
	wire.Build(analyzerSet)
	return nil, nil, nil
}

// InitializeServer wires the HTTP server.
func InitializeServer(ctx context.Context, cfg *config.Config, opts usecase.ClassifyOptions) (*web.Server, func(), error) {
	wire.Build(
		analyzerSet,
		wire.Bind(new(web.ReportSource), new(*usecase.Analyzer)),
		provideServer,
	)
	return nil, nil, nil
}

// InitializeDigestApp wires the scheduled digest.
func InitializeDigestApp(ctx context.Context, cfg *config.Config, opts usecase.ClassifyOptions) (*app.App, func(), error) {
	wire.Build(
		analyzerSet,
		provideNotifier,
		provideDigestConfig,
		usecase.NewDigest,
		wire.Bind(new(app.Job), new(*usecase.Digest)),
		provideApp,
	)
	return nil, nil, nil
}
