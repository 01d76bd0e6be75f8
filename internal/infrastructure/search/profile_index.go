package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/pkg/errors"

	"github.com/oksasatya/medlink-api/internal/domain/entity"
	"github.com/oksasatya/medlink-api/internal/domain/repository"
)

const (
	DefaultSize = 10
	MaxSize     = 50
)

// ProfileIndex stores directory entries in Elasticsearch.
type ProfileIndex struct {
	es      *elasticsearch.Client
	index   string
	timeout time.Duration
}

var _ repository.ProfileIndex = (*ProfileIndex)(nil)

func NewProfileIndex(es *elasticsearch.Client, index string) *ProfileIndex {
	return &ProfileIndex{es: es, index: index, timeout: 3 * time.Second}
}

type profileDoc struct {
	entity.DirectoryEntry
	FullName  string    `json:"fullName"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *ProfileIndex) Index(ctx context.Context, u *entity.User) error {
	b, err := json.Marshal(profileDoc{
		DirectoryEntry: u.ToDirectoryEntry(),
		FullName:       u.FullName(),
		UpdatedAt:      u.UpdatedAt,
	})
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: p.index, DocumentID: u.ID, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	res, err := req.Do(c, p.es)
	if err != nil {
		return errors.Wrap(err, "es index")
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

// ClampSize bounds a requested page size to 1..MaxSize.
func ClampSize(size int) int {
	switch {
	case size <= 0:
		return DefaultSize
	case size > MaxSize:
		return MaxSize
	}
	return size
}

func buildQuery(q repository.DirectoryQuery) map[string]any {
	var must any = map[string]any{"match_all": map[string]any{}}
	if q.Text != "" {
		must = map[string]any{
			"multi_match": map[string]any{
				"query":  q.Text,
				"fields": []string{"fullName^3", "specialization^2", "languages", "city", "country"},
			},
		}
	}
	boolQuery := map[string]any{"must": must}
	if q.ApprovedOnly {
		boolQuery["filter"] = []any{map[string]any{"term": map[string]any{"approved": true}}}
	}
	return map[string]any{
		"query": map[string]any{"bool": boolQuery},
		"size":  ClampSize(q.Size),
	}
}

func (p *ProfileIndex) Search(ctx context.Context, q repository.DirectoryQuery) ([]entity.DirectoryEntry, error) {
	b, err := json.Marshal(buildQuery(q))
	if err != nil {
		return nil, err
	}
	c, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	res, err := p.es.Search(
		p.es.Search.WithContext(c),
		p.es.Search.WithIndex(p.index),
		p.es.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "es search")
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode == 404 {
		// index not created yet
		return []entity.DirectoryEntry{}, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source entity.DirectoryEntry `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "decode es response")
	}

	out := make([]entity.DirectoryEntry, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
