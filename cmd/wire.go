package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/bnema/researchai-cli/internal/adapters/processing/httpapi"
	summaryadapter "github.com/bnema/researchai-cli/internal/adapters/render/summary"
	tomlrepo "github.com/bnema/researchai-cli/internal/adapters/repo/toml"
	"github.com/bnema/researchai-cli/internal/adapters/resolver/heuristic"
	chainstore "github.com/bnema/researchai-cli/internal/adapters/session/chain"
	filestore "github.com/bnema/researchai-cli/internal/adapters/session/file"
	memorystore "github.com/bnema/researchai-cli/internal/adapters/session/memory"
	redisstore "github.com/bnema/researchai-cli/internal/adapters/session/redis"
	"github.com/bnema/researchai-cli/internal/application"
	"github.com/bnema/researchai-cli/internal/config"
	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/bnema/researchai-cli/internal/logger"
	"github.com/bnema/researchai-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg             config.Config
	logger          *zap.Logger
	sessionID       string
	sessionBackend  string
	registry        *application.DocumentRegistry
	uploads         *application.UploadService
	summaries       ports.SummaryRepository
	resolver        ports.ResponseResolver
	summaryRenderer func(domain.SummaryRecord, summaryadapter.RenderOptions) (string, error)
	now             func() time.Time
	closers         []func() error
}

func wireApp() (*app, error) {
	settings := viper.New()
	cfg, err := config.Load(settings)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log, err := logger.New(logger.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	workspace, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve workspace directory: %w", err)
	}
	fingerprint := cfg.Session.Fingerprint
	if fingerprint == "" {
		fingerprint = application.DefaultWindowFingerprint()
	}
	sessionID := application.ResolveSessionID(workspace, fingerprint)
	log = log.With(zap.String("terminal_session", sessionID))

	a := &app{
		cfg:             cfg,
		logger:          log,
		sessionID:       sessionID,
		sessionBackend:  cfg.Session.Backend,
		summaryRenderer: summaryadapter.Render,
		now:             time.Now,
	}
	a.closers = append(a.closers, func() error {
		_ = log.Sync()
		return nil
	})

	store, err := a.wireSessionStore()
	if err != nil {
		return nil, errors.Join(err, a.Close())
	}

	summaries, err := tomlrepo.NewRepository(settings)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("wire summary repository: %w", err), a.Close())
	}

	client := httpapi.Client{
		API:            httpapi.DefaultAPI(cfg.Service.BaseURL),
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.Service.RequestTimeout,
	}

	a.registry = application.NewDocumentRegistry(store, log)
	a.uploads = application.NewUploadService(client, a.registry, ports.SystemClock{}, log)
	a.summaries = summaries

	switch cfg.Chat.Resolver {
	case config.ResolverHeuristic:
		a.resolver = heuristic.Resolver{Summaries: summaries}
	default:
		a.resolver = client
	}

	return a, nil
}

func (a *app) wireSessionStore() (ports.SessionStore, error) {
	var durable ports.SessionStore
	switch a.cfg.Session.Backend {
	case config.BackendRedis:
		client := redisstore.NewClient(a.cfg.Session.RedisAddr)
		a.closers = append(a.closers, client.Close)
		durable = redisstore.NewStore(client, a.sessionID, a.cfg.Session.TTL)
	default:
		files := filestore.NewStore(a.cfg.Session.Dir, a.sessionID, a.cfg.Session.TTL)
		removed, err := files.PruneExpired(context.Background())
		if err != nil {
			a.logger.Warn("prune expired sessions failed", zap.Error(err))
		}
		if removed > 0 {
			a.logger.Info("pruned expired sessions", zap.Int("removed", removed))
		}
		durable = files
	}

	store, err := chainstore.NewStore(memorystore.NewStore(a.cfg.Session.TTL), durable)
	if err != nil {
		return nil, fmt.Errorf("wire session store chain: %w", err)
	}
	return store, nil
}

func (a *app) newChatSession() *application.ChatSession {
	return application.NewChatSession(a.resolver, a.registry, application.ChatSessionOptions{
		ResolverTimeout: a.cfg.Chat.ResolverTimeout,
		Logger:          a.logger,
	})
}

func (a *app) Close() error {
	var errs error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = errors.Join(errs, a.closers[i]())
	}
	a.closers = nil
	return errs
}
