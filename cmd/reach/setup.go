package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/internal/core"
	"github.com/sandevgo/reachout/internal/providers/llm"
	"github.com/sandevgo/reachout/internal/providers/search"
	"github.com/sandevgo/reachout/internal/service/command"
	"github.com/sandevgo/reachout/internal/service/content"
	"github.com/sandevgo/reachout/internal/service/enforcer"
	"github.com/sandevgo/reachout/internal/service/outreach"
	"github.com/sandevgo/reachout/internal/storage/sqlite"
	"github.com/sandevgo/reachout/internal/transport/mcp"
	"github.com/sandevgo/reachout/internal/transport/telegram"
	"github.com/sandevgo/reachout/pkg/log"
	"github.com/sandevgo/reachout/pkg/srv"
)

// app holds everything the subcommands share.
type app struct {
	cfg      *config.AppConfig
	rules    *config.Rules
	enforcer *enforcer.Enforcer
	svc      *outreach.Service
	router   *command.Router
	db       *sql.DB
}

func (a *app) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func newApp(ctx context.Context) (*app, error) {
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, fmt.Errorf("failed to init env: %w", err)
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	searchCfg := config.NewSearchConfig(ctx)

	rules, err := config.LoadRules(appCfg.GetRulesPath())
	if err != nil {
		return nil, err
	}
	tmpl, err := config.LoadPromptTemplate(appCfg.GetPromptPath())
	if err != nil {
		return nil, err
	}
	prompt, err := outreach.NewPromptBuilder(tmpl, rules, appCfg.PromptContextTokens, nil)
	if err != nil {
		return nil, err
	}

	// 2. Storage
	db, err := sqlite.NewDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// 3. Providers
	ai, err := llm.NewProvider(ctx, appCfg)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	searchers := search.NewSearchers(ctx, searchCfg)

	// 4. Session state and service
	limits := searchCfg.UsageLimits()
	limits[core.ServiceLLM] = appCfg.LLMUsageLimit
	session := outreach.NewSession(
		content.NewCache(searchCfg.CacheTTL, searchCfg.CacheMaxEntries),
		outreach.NewUsage(limits),
		sqlite.NewHistoryRepo(db),
	)

	enf := enforcer.New(rules, nil)
	svc := outreach.NewService(searchers, ai, enf, prompt, session, outreach.Options{
		MaxResults:        searchCfg.MaxResults,
		AuthorRecencyDays: searchCfg.AuthorRecencyDays,
		Chat: core.ChatOptions{
			MaxTokens:   appCfg.MaxTokens,
			Temperature: appCfg.Temperature,
		},
	})

	log.FromCtx(ctx).Debug().
		Str("provider", ai.Name()).
		Int("searchers", len(searchers)).
		Msg("outreach service ready")

	return &app{
		cfg:      appCfg,
		rules:    rules,
		enforcer: enf,
		svc:      svc,
		router:   command.NewRouter(svc),
		db:       db,
	}, nil
}

// services returns the enabled long-running front ends plus the storage cleanup.
func (a *app) services(ctx context.Context) ([]srv.Service, error) {
	services := []srv.Service{srv.NewCleanup(a.Close)}

	if a.cfg.EnableTelegram {
		bot, err := telegram.NewBot(ctx, config.NewTelegramConfig(ctx), a.router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}
	if a.cfg.EnableMCP {
		services = append(services, mcp.NewServer(a.svc, version))
	}

	if len(services) == 1 {
		return nil, fmt.Errorf("no front end enabled, set REACH_ENABLE_TELEGRAM or REACH_ENABLE_MCP")
	}
	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
