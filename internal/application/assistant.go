package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/shopassist/internal/domain"
	"github.com/bnema/shopassist/internal/ports"
	"github.com/sirupsen/logrus"
)

// Assistant turns a free-text request into catalog searches.
type Assistant struct {
	extractor ports.KeywordExtractor
	catalog   ports.CatalogGateway
	history   *HistoryService
	log       logrus.FieldLogger
}

func NewAssistant(extractor ports.KeywordExtractor, catalog ports.CatalogGateway, history *HistoryService, log logrus.FieldLogger) *Assistant {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Assistant{extractor: extractor, catalog: catalog, history: history, log: log}
}

// Ask records the message in history, extracts keywords and searches each
// one. A failed keyword search is reported in its result and does not stop
// the others.
func (a *Assistant) Ask(ctx context.Context, message string) (Answer, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Answer{}, fmt.Errorf("%w: message is empty", domain.ErrValidation)
	}

	a.history.Add(ctx, message)

	answer := Answer{Message: message, Keywords: a.extractor.Keywords(ctx, message)}
	if len(answer.Keywords) == 0 {
		return answer, domain.ErrNoKeywords
	}

	for _, keyword := range answer.Keywords {
		result, err := a.catalog.Search(ctx, keyword)
		if err != nil {
			a.log.WithError(err).WithField("keyword", keyword).Warn("keyword search failed")
		}
		answer.Results = append(answer.Results, KeywordResult{Keyword: keyword, Result: result, Err: err})
	}

	return answer, nil
}

func (a *Assistant) Search(ctx context.Context, keyword string) (domain.SearchResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return domain.SearchResult{}, fmt.Errorf("%w: keyword is empty", domain.ErrValidation)
	}

	a.history.Add(ctx, keyword)

	return a.catalog.Search(ctx, keyword)
}

func (a *Assistant) Product(ctx context.Context, sku string) (domain.Product, error) {
	if err := domain.ValidateSKU(sku); err != nil {
		return domain.Product{}, err
	}

	return a.catalog.Product(ctx, strings.TrimSpace(sku))
}
