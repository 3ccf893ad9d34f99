package store

import (
	"testing"
	"time"

	"timefilter-core/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

func TestTimeFilterNoCutoff(t *testing.T) {
	if f := TimeFilter(entity.TimeFilterDecision{FavorRecent: true}); f != nil {
		t.Errorf("expected nil filter, got %+v", f)
	}
}

func TestTimeFilterCutoff(t *testing.T) {
	cutoff := time.Date(2022, time.February, 1, 0, 0, 0, 0, time.UTC)
	f := TimeFilter(entity.TimeFilterDecision{Cutoff: &cutoff})
	if f == nil || len(f.Must) != 1 {
		t.Fatalf("expected a single must condition, got %+v", f)
	}
	field := f.Must[0].GetField()
	if field.GetKey() != createdAtField {
		t.Errorf("expected key %q, got %q", createdAtField, field.GetKey())
	}
	if got := field.GetRange().GetGte(); got != float64(cutoff.Unix()) {
		t.Errorf("expected gte %v, got %v", float64(cutoff.Unix()), got)
	}
}

func TestPointID(t *testing.T) {
	id := uuid.NewString()
	if got := pointID(id); got != id {
		t.Errorf("expected uuid ids to pass through, got %q", got)
	}
	if pointID("confluence/123") != pointID("confluence/123") {
		t.Error("expected stable ids for the same document")
	}
	if _, err := uuid.Parse(pointID("confluence/123")); err != nil {
		t.Errorf("expected a uuid, got error %v", err)
	}
	if pointID("") == pointID("") {
		t.Error("expected random ids for empty document ids")
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	created := time.Date(2023, time.May, 4, 10, 0, 0, 0, time.UTC)
	doc := entity.Document{ID: "a", Content: "hello", Metadata: map[string]string{"source": "slack"}}

	got := documentFromPayload(qdrant.NewValueMap(documentPayload(doc, created)))

	if got.ID != "a" || got.Content != "hello" || !got.CreatedAt.Equal(created) {
		t.Errorf("unexpected document %+v", got)
	}
	if got.Metadata["source"] != "slack" {
		t.Errorf("expected metadata to survive, got %v", got.Metadata)
	}
}
