package service

import (
	"fmt"
	"html"
	"log"
	"strings"

	"fitfam.app/familyfit/internal/model"
	"github.com/google/uuid"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
)

type SearchService interface {
	IndexActivity(activity *model.Activity) error
	SearchActivities(userID uuid.UUID, query string, limit int) ([]ActivityDoc, error)
}

// ActivityDoc is the document shape stored in the "activities" index.
type ActivityDoc struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	ActivityType string `json:"activity_type"`
	Notes        string `json:"notes"`
	Date         string `json:"date"`
	CreatedAt    int64  `json:"created_at"`
}

type meiliSearchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewMeiliSearchService(client meilisearch.ServiceManager) SearchService {
	s := &meiliSearchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndexes()
	return s
}

func (s *meiliSearchService) initIndexes() {
	filterableAttrs := []string{"user_id"}
	filterableInterface := make([]any, len(filterableAttrs))
	for i, v := range filterableAttrs {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index("activities").UpdateFilterableAttributes(&filterableInterface); err != nil {
		log.Printf("Failed to update activities filterable attributes: %v", err)
	}

	sortableAttrs := []string{"created_at", "date"}
	if _, err := s.client.Index("activities").UpdateSortableAttributes(&sortableAttrs); err != nil {
		log.Printf("Failed to update activities sortable attributes: %v", err)
	}

	log.Println("Meilisearch indexes initialized")
}

func (s *meiliSearchService) cleanNotesForIndex(notes string) string {
	sanitized := s.sanitizer.Sanitize(notes)
	cleanText := html.UnescapeString(sanitized)

	// Normalize whitespace
	return strings.Join(strings.Fields(cleanText), " ")
}

func (s *meiliSearchService) IndexActivity(activity *model.Activity) error {
	doc := ActivityDoc{
		ID:           activity.ID.String(),
		UserID:       activity.UserID.String(),
		ActivityType: activity.ActivityType,
		Notes:        s.cleanNotesForIndex(activity.Notes),
		Date:         activity.Date,
		CreatedAt:    activity.CreatedAt.Unix(),
	}

	task, err := s.client.Index("activities").AddDocuments([]ActivityDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed activity %s, task id: %d", activity.ID, task.TaskUID)
	return nil
}

func (s *meiliSearchService) SearchActivities(userID uuid.UUID, query string, limit int) ([]ActivityDoc, error) {
	resp, err := s.client.Index("activities").Search(query, &meilisearch.SearchRequest{
		Filter: fmt.Sprintf("user_id = %q", userID.String()),
		Limit:  int64(limit),
		Sort:   []string{"date:desc", "created_at:desc"},
	})
	if err != nil {
		return nil, err
	}

	docs := make([]ActivityDoc, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		var doc ActivityDoc
		if err := hit.Decode(&doc); err != nil {
			log.Printf("Failed to decode search hit: %v", err)
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func strPtr(s string) *string {
	return &s
}
