// Package portal wires the stores, services and shell of the campus portal.
package portal

import (
	"campus-hub/auth"
	"campus-hub/contract"
	"campus-hub/internal"
	"campus-hub/moderation"
	"campus-hub/repositories"
	"campus-hub/services"
	"campus-hub/shell"
	"campus-hub/sink"
	"campus-hub/storage"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
)

type Portal struct {
	Shell   *shell.Shell
	Session *services.Session

	log    *slog.Logger
	db     *badger.DB
	writer *bluge.Writer
}

// New builds a portal writing to out. Every store is in memory: nothing
// survives Close.
func New(ctx context.Context, log *slog.Logger, config internal.Config, out io.Writer) (*Portal, error) {
	replacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return nil, err
	}
	moderator, err := moderation.NewModerator(internal.Words(config.CensoredWords), replacement, log)
	if err != nil {
		return nil, fmt.Errorf("build moderator: %w", err)
	}

	db, err := storage.OpenBadger()
	if err != nil {
		return nil, err
	}
	writer, err := storage.OpenIndex()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	p := &Portal{log: log, db: db, writer: writer}

	clock := contract.SystemClock{}
	catalog := repositories.NewCatalogRepository(clock.Now())
	index := repositories.NewProductIndex(writer, log)
	if err = index.Index(catalog.Products()); err != nil {
		p.Close()
		return nil, err
	}
	messages := repositories.NewMessageRepository(db, log, config.LimitMessages)

	timeline := sink.NewTimeline()
	events := sink.NewFanout(log, sink.NewLogSink(log), timeline)

	p.Session = services.NewSession(log, clock, events,
		auth.NewTokenIssuer(config.SessionSigningKey, config.SessionTokenDuration),
		services.SessionConfig{EmailDomain: config.EmailDomain, LoginDelay: config.LoginDelay})

	p.Shell = shell.New(log, out, shell.Services{
		Session:     p.Session,
		Chat:        services.NewChatService(log, clock, events, p.Session, catalog, messages, moderator),
		Cart:        services.NewCartService(log, clock, events, p.Session, catalog),
		Marketplace: services.NewMarketplaceService(log, p.Session, catalog, index),
		Profile:     services.NewProfileService(log, p.Session, catalog),
		Listing:     services.NewListingService(log, clock, events, p.Session, catalog, config.ListingDelay),
		Timeline:    timeline,
	}, shell.Branding{
		UniversityName:      config.University(),
		UniversityShortName: config.UniversityShortName,
		EmailDomain:         config.EmailDomain,
	}, shell.ReadFile)

	log.DebugContext(ctx, "Portal ready", "products", len(catalog.Products()), "courses", len(catalog.Courses()))
	return p, nil
}

func (p *Portal) Close() {
	p.log.Info("Closing in-memory stores...")
	if err := p.writer.Close(); err != nil {
		p.log.Warn("Failed to close index", "error", err)
	}
	if err := p.db.Close(); err != nil {
		p.log.Warn("Failed to close badger", "error", err)
	}
}
