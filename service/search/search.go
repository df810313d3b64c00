package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

var (
	instance *Service
	once     sync.Once
)

// GetService returns the singleton search service.
func GetService() *Service {
	once.Do(func() {
		instance = NewService()
	})
	return instance
}

// Service indexes and queries products in Elasticsearch. A nil client
// means ES is not configured and callers should fall back to SQL.
type Service struct {
	client *elasticsearch.Client
	index  string
}

func NewService() *Service {
	host := os.Getenv("ELASTICSEARCH_HOST")
	index := os.Getenv("ELASTICSEARCH_INDEX")
	if index == "" {
		index = "comercio_products"
	}
	if host == "" {
		return &Service{index: index}
	}

	cfg := elasticsearch.Config{
		Addresses: []string{host},
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		zap.L().Warn("elasticsearch client init failed, search disabled", zap.Error(err))
		return &Service{index: index}
	}
	return &Service{client: client, index: index}
}

func (s *Service) Enabled() bool {
	return s.client != nil
}

// ProductDoc is the indexed document shape.
type ProductDoc struct {
	ID          uint    `json:"id" mapstructure:"id"`
	StoreID     uint    `json:"store_id" mapstructure:"store_id"`
	Name        string  `json:"name" mapstructure:"name"`
	Description string  `json:"description" mapstructure:"description"`
	Category    string  `json:"category" mapstructure:"category"`
	Unit        string  `json:"unit" mapstructure:"unit"`
	Stock       float64 `json:"stock" mapstructure:"stock"`
}

// Index upserts one product document. Best effort: callers log and move
// on, the database stays the source of truth.
func (s *Service) Index(ctx context.Context, p *entity.Product) error {
	if s.client == nil {
		return nil
	}
	doc := ProductDoc{
		ID:          p.ID,
		StoreID:     p.StoreID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Unit:        p.Unit,
		Stock:       p.StockQuantity,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	res, err := s.client.Index(
		s.index,
		bytes.NewReader(body),
		s.client.Index.WithDocumentID(strconv.FormatUint(uint64(p.ID), 10)),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elasticsearch index: %s", res.Status())
	}
	return nil
}

// Delete removes one product document.
func (s *Service) Delete(ctx context.Context, productID uint) error {
	if s.client == nil {
		return nil
	}
	res, err := s.client.Delete(
		s.index,
		strconv.FormatUint(uint64(productID), 10),
		s.client.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	return nil
}

// Search queries the product index with a multi-field match, optionally
// filtered to one store.
func (s *Service) Search(ctx context.Context, storeID *uint, query string) ([]ProductDoc, error) {
	if s.client == nil {
		return nil, fmt.Errorf("elasticsearch not configured")
	}

	must := []map[string]interface{}{
		{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name^3", "category^2", "description"},
			},
		},
	}
	boolQuery := map[string]interface{}{"must": must}
	if storeID != nil {
		boolQuery["filter"] = []map[string]interface{}{
			{"term": map[string]interface{}{"store_id": *storeID}},
		}
	}
	body := map[string]interface{}{
		"size":  50,
		"query": map[string]interface{}{"bool": boolQuery},
	}
	bodyBytes, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	docs := make([]ProductDoc, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		var doc ProductDoc
		if err := mapstructure.WeakDecode(hit.Source, &doc); err != nil {
			zap.L().Warn("search hit decode failed", zap.Error(err))
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
