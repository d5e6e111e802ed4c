package mq

import (
	"tanam/logger"

	"go.uber.org/zap"
)

type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id"`
	ItemType   string `json:"item_type"`
}

// Emit publishes a domain event for downstream indexing. Currently a log-only
// sink; the search indexer consumes these once it exists.
func Emit(eventName string, content Index) error {
	logger.L.Info("event emitted",
		zap.String("event", eventName),
		zap.String("entityType", content.EntityType),
		zap.String("entityId", content.EntityId),
		zap.String("itemType", content.ItemType),
	)
	return nil
}
