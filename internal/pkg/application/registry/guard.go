package registry

import (
	"context"
	"errors"

	"github.com/diwise/iot-asset-registry/internal/pkg/infrastructure/storage"
)

// DeletionGuard refuses to delete a record while other records still
// reference it: devices hold on to their owner and their zone, readings
// hold on to their sensor. The dependent count and the delete itself run
// in a single storage transaction.
type DeletionGuard struct {
	storage Store
}

func NewDeletionGuard(s Store) *DeletionGuard {
	return &DeletionGuard{storage: s}
}

func (g *DeletionGuard) DeleteUser(ctx context.Context, userID string) error {
	count, err := g.storage.DeleteUser(ctx, userID)
	return guardError(count, err)
}

func (g *DeletionGuard) DeleteZone(ctx context.Context, zoneID string) error {
	count, err := g.storage.DeleteZone(ctx, zoneID)
	return guardError(count, err)
}

func (g *DeletionGuard) DeleteSensor(ctx context.Context, sensorID string) error {
	count, err := g.storage.DeleteSensor(ctx, sensorID)
	return guardError(count, err)
}

func guardError(count int64, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, storage.ErrHasDependents) {
		return &DependentsError{Count: count}
	}

	if errors.Is(err, storage.ErrNoRows) {
		return ErrNotFound
	}

	return err
}
