package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddZone(ctx context.Context, zone types.Zone) error {
	data, _ := json.Marshal(zone)

	var m map[string]any
	json.Unmarshal(data, &m)

	delete(m, "id")

	data, _ = json.Marshal(m)

	args := pgx.NamedArgs{
		"zone_id": zone.ZoneID,
		"data":    string(data),
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO zones (zone_id, data)
		VALUES (@zone_id, @data)
	`, args)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}

	return nil
}

func (s *Storage) GetZone(ctx context.Context, conditions ...ConditionFunc) (types.Zone, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where("zones")

	var zoneID string
	var data json.RawMessage

	query := fmt.Sprintf(`
		SELECT zone_id, data
		FROM zones
		%s
	`, where)

	err := s.pool.QueryRow(ctx, query, args).Scan(&zoneID, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Zone{}, ErrNoRows
		}
		return types.Zone{}, err
	}

	var zone types.Zone
	err = json.Unmarshal(data, &zone)
	if err != nil {
		return types.Zone{}, err
	}

	zone.ZoneID = zoneID

	return zone, nil
}

func (s *Storage) QueryZones(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Zone], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where("zones")

	var zoneID string
	var data json.RawMessage
	var count int64

	query := fmt.Sprintf(`
		SELECT zone_id, data, count(*) OVER () AS count
		FROM zones
		%s
		%s
		%s
	`, where, condition.OrderBy("data ->> 'name'"), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Zone]{}, err
	}

	zones := make([]types.Zone, 0)

	_, err = pgx.ForEachRow(rows, []any{&zoneID, &data, &count}, func() error {
		var zone types.Zone

		err := json.Unmarshal(data, &zone)
		if err != nil {
			return err
		}

		zone.ZoneID = zoneID
		zones = append(zones, zone)

		return nil
	})
	if err != nil {
		return types.Collection[types.Zone]{}, err
	}

	return types.Collection[types.Zone]{
		Data:       zones,
		Count:      uint64(len(zones)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) UpdateZone(ctx context.Context, zone types.Zone) error {
	data, _ := json.Marshal(zone)

	var m map[string]any
	json.Unmarshal(data, &m)

	delete(m, "id")

	data, _ = json.Marshal(m)

	args := pgx.NamedArgs{
		"zone_id": zone.ZoneID,
		"data":    string(data),
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE zones
		SET data = @data, modified_on = CURRENT_TIMESTAMP
		WHERE zone_id = @zone_id
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// DeleteZone removes the zone unless any device is still placed in it.
func (s *Storage) DeleteZone(ctx context.Context, zoneID string) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var dependents int64

	err = tx.QueryRow(ctx, `
		SELECT count(*) FROM devices WHERE zone_id = @zone_id
	`, pgx.NamedArgs{"zone_id": zoneID}).Scan(&dependents)
	if err != nil {
		return 0, err
	}

	if dependents > 0 {
		return dependents, ErrHasDependents
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM zones WHERE zone_id = @zone_id
	`, pgx.NamedArgs{"zone_id": zoneID})
	if err != nil {
		return 0, err
	}

	if tag.RowsAffected() == 0 {
		return 0, ErrNoRows
	}

	return 0, tx.Commit(ctx)
}
