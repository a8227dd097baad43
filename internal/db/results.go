package db

import "github.com/gofrs/uuid"

// The result descriptors keep the field names the portfolio client already reads.

type InsertResult struct {
	Acknowledged bool      `json:"acknowledged"`
	InsertedID   uuid.UUID `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool       `json:"acknowledged"`
	MatchedCount  int64      `json:"matchedCount"`
	ModifiedCount int64      `json:"modifiedCount"`
	UpsertedCount int64      `json:"upsertedCount"`
	UpsertedID    *uuid.UUID `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func Inserted(id uuid.UUID) *InsertResult {
	return &InsertResult{Acknowledged: true, InsertedID: id}
}

// Upserted builds the descriptor for an INSERT ... ON CONFLICT DO UPDATE on id.
func Upserted(id uuid.UUID, inserted bool) *UpdateResult {
	if inserted {
		return &UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}
	}
	return &UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}
}

func Deleted(n int64) *DeleteResult {
	return &DeleteResult{Acknowledged: true, DeletedCount: n}
}
