package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/bnema/shopassist/internal/adapters/backend"
	"github.com/bnema/shopassist/internal/adapters/intent"
	"github.com/bnema/shopassist/internal/adapters/kvstore"
	shoprender "github.com/bnema/shopassist/internal/adapters/render/shop"
	"github.com/bnema/shopassist/internal/adapters/transport"
	"github.com/bnema/shopassist/internal/application"
	"github.com/bnema/shopassist/internal/config"
	"github.com/bnema/shopassist/internal/domain"
	"github.com/bnema/shopassist/internal/logging"
	"github.com/bnema/shopassist/internal/ports"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type app struct {
	cfg        config.Config
	log        *logrus.Logger
	storefront *application.Storefront
	assistant  *application.Assistant
	history    *application.HistoryService
	monitor    *application.ConnectivityMonitor
	renderer   renderer
	closeStore func() error
}

type renderer struct {
	cart    func(domain.Cart) (string, error)
	search  func([]application.KeywordResult) (string, error)
	product func(domain.Product) (string, error)
	session func(domain.Session, string, int) (string, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.LogLevel, os.Stderr)

	backendStore, closeStore, err := kvstore.OpenBackend(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("wire state store: %w", err)
	}
	state := kvstore.NewJSONStore(backendStore, logger)

	httpClient := &http.Client{}

	proxyExecutor := &transport.Executor{
		BaseURL:    cfg.APIURL,
		StoreCode:  cfg.StoreCode,
		HTTPClient: httpClient,
		Log:        logger,
	}
	retrier := transport.NewRetrier(proxyExecutor, transport.RetryConfig{
		Timeout:    cfg.Request.Timeout,
		MaxRetries: cfg.Request.MaxRetries,
		RetryDelay: cfg.Request.RetryDelay,
	}, logger)
	proxy := backend.NewProxyClient(retrier, proxyExecutor, logger)

	graphqlExecutor := &transport.Executor{
		BaseURL:    cfg.GraphQLURL,
		StoreCode:  cfg.StoreCode,
		HTTPClient: httpClient,
		Log:        logger,
	}
	graphql := backend.NewGraphQLClient(graphqlExecutor, cfg.GraphQLTimeout, logger)

	session := application.NewSessionService(proxy, state, ports.SystemClock{}, logger)
	cart := application.NewCartService(backend.NewSelector(proxy, graphql, logger), state, session, logger)
	history := application.NewHistoryService(state)

	extractor := &intent.Extractor{
		BaseURL:    cfg.Intent.BaseURL,
		Model:      cfg.Intent.Model,
		APIKey:     cfg.Intent.APIKey,
		HTTPClient: httpClient,
		Timeout:    cfg.Request.Timeout,
		Log:        logger,
	}

	return &app{
		cfg:        cfg,
		log:        logger,
		storefront: application.NewStorefront(session, cart, proxy, logger),
		assistant:  application.NewAssistant(extractor, proxy, history, logger),
		history:    history,
		monitor:    application.NewConnectivityMonitor(proxy, logger),
		renderer: renderer{
			cart:    shoprender.RenderCart,
			search:  shoprender.RenderSearch,
			product: shoprender.RenderProduct,
			session: shoprender.RenderSession,
		},
		closeStore: closeStore,
	}, nil
}

func (a *app) close() error {
	if a.closeStore == nil {
		return nil
	}

	closeStore := a.closeStore
	a.closeStore = nil
	return closeStore()
}
