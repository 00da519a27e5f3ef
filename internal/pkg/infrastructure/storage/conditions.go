package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	UserID   string
	ZoneID   string
	SensorID string
	DeviceID string
	OwnerID  string

	Email        string
	SerialNumber string
	Name         string
	Model        string
	Role         string
	Type         string
	Status       string

	Active *bool

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) Offset() int {
	if c.offset != nil {
		return *c.offset
	}
	return 0
}

func (c Condition) Limit() int {
	if c.limit != nil {
		return *c.limit
	}
	return 0
}

func (c Condition) OrderBy(dflt string) string {
	if c.sortBy == "" {
		return "ORDER BY " + dflt
	}

	sortOrder := c.sortOrder
	if sortOrder == "" {
		sortOrder = "ASC"
	}

	return fmt.Sprintf("ORDER BY %s %s", c.sortBy, sortOrder)
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""

	if c.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", *c.offset)
	}
	if c.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", *c.limit)
	}

	return offsetLimit
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.UserID != "" {
		args["user_id"] = c.UserID
	}
	if c.ZoneID != "" {
		args["zone_id"] = c.ZoneID
	}
	if c.SensorID != "" {
		args["sensor_id"] = c.SensorID
	}
	if c.DeviceID != "" {
		args["device_id"] = c.DeviceID
	}
	if c.OwnerID != "" {
		args["owner_id"] = c.OwnerID
	}
	if c.Email != "" {
		args["email"] = c.Email
	}
	if c.SerialNumber != "" {
		args["serial_number"] = c.SerialNumber
	}
	if c.Name != "" {
		args["name"] = c.Name
	}
	if c.Model != "" {
		args["model"] = c.Model
	}
	if c.Role != "" {
		args["role"] = c.Role
	}
	if c.Type != "" {
		args["type"] = c.Type
	}
	if c.Status != "" {
		args["status"] = c.Status
	}
	if c.Active != nil {
		args["active"] = *c.Active
	}

	return args
}

// Where renders the conditions that apply to the given table. Key columns
// are matched against real columns, the rest against the JSONB document.
func (c Condition) Where(table string) string {
	where := []string{}

	switch table {
	case "users":
		if c.UserID != "" {
			where = append(where, "user_id = @user_id")
		}
		if c.Email != "" {
			where = append(where, "email = @email")
		}
		if c.Role != "" {
			where = append(where, "data ->> 'role' = @role")
		}
	case "zones":
		if c.ZoneID != "" {
			where = append(where, "zone_id = @zone_id")
		}
		if c.Name != "" {
			where = append(where, "data ->> 'name' = @name")
		}
		if c.Active != nil {
			where = append(where, "(data ->> 'isActive')::boolean = @active")
		}
	case "sensors":
		if c.SensorID != "" {
			where = append(where, "sensor_id = @sensor_id")
		}
		if c.Type != "" {
			where = append(where, "data ->> 'type' = @type")
		}
		if c.Model != "" {
			where = append(where, "data ->> 'model' = @model")
		}
		if c.Active != nil {
			where = append(where, "active = @active")
		}
	case "devices":
		if c.DeviceID != "" {
			where = append(where, "device_id = @device_id")
		}
		if c.SerialNumber != "" {
			where = append(where, "serial_number = @serial_number")
		}
		if c.OwnerID != "" {
			where = append(where, "owner_id = @owner_id")
		}
		if c.ZoneID != "" {
			where = append(where, "zone_id = @zone_id")
		}
		if c.Model != "" {
			where = append(where, "data ->> 'model' = @model")
		}
		if c.Status != "" {
			where = append(where, "data ->> 'status' = @status")
		}
	case "readings":
		if c.SensorID != "" {
			where = append(where, "sensor_id = @sensor_id")
		}
	}

	if len(where) == 0 {
		return ""
	}

	return "WHERE " + strings.Join(where, " AND ")
}

func WithUserID(userID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.UserID = userID
		return c
	}
}

func WithZoneID(zoneID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ZoneID = zoneID
		return c
	}
}

func WithSensorID(sensorID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SensorID = sensorID
		return c
	}
}

func WithDeviceID(deviceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceID = deviceID
		return c
	}
}

func WithOwnerID(ownerID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.OwnerID = ownerID
		return c
	}
}

func WithEmail(email string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Email = strings.ToLower(strings.TrimSpace(email))
		return c
	}
}

func WithSerialNumber(serialNumber string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SerialNumber = serialNumber
		return c
	}
}

func WithName(name string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Name = name
		return c
	}
}

func WithModel(model string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Model = model
		return c
	}
}

func WithRole(role string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Role = role
		return c
	}
}

func WithType(t string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Type = t
		return c
	}
}

func WithStatus(status string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Status = status
		return c
	}
}

func WithActive(active bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Active = &active
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		switch strings.ToLower(sortBy) {
		case "email":
			c.sortBy = "email"
		case "serialnumber", "serial_number":
			c.sortBy = "serial_number"
		case "time":
			c.sortBy = "time"
		case "name":
			c.sortBy = "data ->> 'name'"
		case "created", "created_on":
			c.sortBy = "created_on"
		}
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func ParseConditions(ctx context.Context, params map[string][]string) []ConditionFunc {
	log := logging.GetFromContext(ctx)

	conditions := make([]ConditionFunc, 0)

	for k, v := range params {
		switch strings.ToLower(k) {
		case "email":
			conditions = append(conditions, WithEmail(v[0]))
		case "serialnumber":
			conditions = append(conditions, WithSerialNumber(v[0]))
		case "sensorid":
			conditions = append(conditions, WithSensorID(v[0]))
		case "ownerid":
			conditions = append(conditions, WithOwnerID(v[0]))
		case "zoneid":
			conditions = append(conditions, WithZoneID(v[0]))
		case "name":
			conditions = append(conditions, WithName(v[0]))
		case "model":
			conditions = append(conditions, WithModel(v[0]))
		case "role":
			conditions = append(conditions, WithRole(v[0]))
		case "type":
			conditions = append(conditions, WithType(v[0]))
		case "status":
			conditions = append(conditions, WithStatus(v[0]))
		case "active", "isactive":
			active, _ := strconv.ParseBool(v[0])
			conditions = append(conditions, WithActive(active))
		case "limit":
			limit, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithLimit(limit))
		case "offset":
			offset, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithOffset(offset))
		case "sortby":
			conditions = append(conditions, WithSortBy(v[0]))
		case "sortorder":
			conditions = append(conditions, WithSortDesc(strings.EqualFold(v[0], "desc")))
		default:
			log.Debug("unknown query parameter", "param", k, "value", v[0])
		}
	}

	return conditions
}
