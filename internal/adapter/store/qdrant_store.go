package store

import (
	"context"
	"fmt"
	"time"

	"timefilter-core/internal/domain/entity"
	"timefilter-core/internal/logger"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const createdAtField = "created_at"

// QdrantIndex stores documents with their creation time and applies hard cutoffs
// as a range condition on that field.
type QdrantIndex struct {
	client         *qdrant.Client
	collectionName string
}

func NewQdrantIndex(client *qdrant.Client, collectionName string) *QdrantIndex {
	return &QdrantIndex{
		client:         client,
		collectionName: collectionName,
	}
}

func (s *QdrantIndex) InitCollection(ctx context.Context, dim uint64) error {
	_, err := s.client.GetCollectionInfo(ctx, s.collectionName)
	if err != nil {
		st, ok := status.FromError(err)
		if !ok || st.Code() != codes.NotFound {
			return err
		}
		err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: s.collectionName,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     dim,
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
	}

	// Range filters on created_at need the integer index.
	_, err = s.client.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
		CollectionName: s.collectionName,
		FieldName:      createdAtField,
		FieldType:      qdrant.FieldType_FieldTypeInteger.Enum(),
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		logger.Named("qdrant").Warn().Err(err).Str("collection", s.collectionName).Msg("could not create created_at index (might already exist)")
	}
	return nil
}

// TimeFilter turns a decision into a Qdrant filter, nil when there is no cutoff.
// The recency preference is left to the caller.
func TimeFilter(filters entity.TimeFilterDecision) *qdrant.Filter {
	if filters.Cutoff == nil {
		return nil
	}
	return &qdrant.Filter{Must: []*qdrant.Condition{{
		ConditionOneOf: &qdrant.Condition_Field{
			Field: &qdrant.FieldCondition{
				Key: createdAtField,
				Range: &qdrant.Range{
					Gte: qdrant.PtrOf(float64(filters.Cutoff.Unix())),
				},
			},
		},
	}}}
}

func (s *QdrantIndex) Search(ctx context.Context, vector []float32, filters entity.TimeFilterDecision, limit uint64) ([]entity.SearchHit, error) {
	res, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(vector...),
		Filter:         TimeFilter(filters),
		Limit:          qdrant.PtrOf(limit),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, err
	}

	hits := make([]entity.SearchHit, 0, len(res))
	for _, p := range res {
		hits = append(hits, entity.SearchHit{Document: documentFromPayload(p.Payload), Score: p.Score})
	}
	return hits, nil
}

func (s *QdrantIndex) Index(ctx context.Context, doc entity.Document, vector []float32) error {
	createdAt := doc.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Wait:           qdrant.PtrOf(true),
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewIDUUID(pointID(doc.ID)),
				Vectors: qdrant.NewVectors(vector...),
				Payload: qdrant.NewValueMap(documentPayload(doc, createdAt)),
			},
		},
	})
	return err
}

// pointID maps arbitrary document ids onto stable UUIDs, which Qdrant requires.
func pointID(docID string) string {
	if docID == "" {
		return uuid.NewString()
	}
	if id, err := uuid.Parse(docID); err == nil {
		return id.String()
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(docID)).String()
}

func documentPayload(doc entity.Document, createdAt time.Time) map[string]any {
	meta := make(map[string]any, len(doc.Metadata))
	for k, v := range doc.Metadata {
		meta[k] = v
	}
	return map[string]any{
		"doc_id":       doc.ID,
		"content":      doc.Content,
		createdAtField: createdAt.Unix(),
		"metadata":     meta,
	}
}

func documentFromPayload(payload map[string]*qdrant.Value) entity.Document {
	doc := entity.Document{
		ID:        payload["doc_id"].GetStringValue(),
		Content:   payload["content"].GetStringValue(),
		CreatedAt: time.Unix(payload[createdAtField].GetIntegerValue(), 0).UTC(),
	}
	if fields := payload["metadata"].GetStructValue().GetFields(); len(fields) > 0 {
		doc.Metadata = make(map[string]string, len(fields))
		for k, v := range fields {
			doc.Metadata[k] = v.GetStringValue()
		}
	}
	return doc
}
