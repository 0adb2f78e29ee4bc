package service

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/meilisearch/meilisearch-go"
)

const playersIndex = "players"

// PlayerDocument is the searchable projection of a player (live or reference)
// kept in Meilisearch. UserID is empty for reference players.
type PlayerDocument struct {
	DocID       string `json:"doc_id"`
	UserID      string `json:"user_id,omitempty"`
	Username    string `json:"username"`
	TotalCoins  int    `json:"total_coins"`
	Level       int    `json:"level"`
	GamesPlayed int    `json:"games_played"`
	GamesWon    int    `json:"games_won"`
}

type PlayerSearchService interface {
	IndexPlayer(doc PlayerDocument) error
	IndexPlayers(docs []PlayerDocument) error
	Search(query string, limit int) ([]PlayerDocument, error)
}

type playerSearchService struct {
	client meilisearch.ServiceManager
}

func NewPlayerSearchService(client meilisearch.ServiceManager) PlayerSearchService {
	s := &playerSearchService{client: client}
	s.initIndex()
	return s
}

func (s *playerSearchService) initIndex() {
	sortableAttrs := []string{"total_coins", "level"}
	if _, err := s.client.Index(playersIndex).UpdateSortableAttributes(&sortableAttrs); err != nil {
		log.Printf("Failed to update players sortable attributes: %v", err)
	}
}

func (s *playerSearchService) IndexPlayer(doc PlayerDocument) error {
	return s.IndexPlayers([]PlayerDocument{doc})
}

func (s *playerSearchService) IndexPlayers(docs []PlayerDocument) error {
	if len(docs) == 0 {
		return nil
	}

	if _, err := s.client.Index(playersIndex).AddDocuments(docs, strPtr("doc_id")); err != nil {
		return fmt.Errorf("failed to index players: %w", err)
	}
	return nil
}

func strPtr(s string) *string { return &s }

func (s *playerSearchService) Search(query string, limit int) ([]PlayerDocument, error) {
	resp, err := s.client.Index(playersIndex).Search(query, &meilisearch.SearchRequest{
		Limit: int64(limit),
		Sort:  []string{"total_coins:desc"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}

	docs := make([]PlayerDocument, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		raw, err := json.Marshal(hit)
		if err != nil {
			continue
		}
		var doc PlayerDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
