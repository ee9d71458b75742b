package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"swiftrider/internal/entities"
	"swiftrider/internal/service/tracking"
)

const (
	keyPrefix = "tracking:current:"
	// ridersGeoKey - GEO индекс последних позиций курьеров, member = id курьера
	ridersGeoKey = "tracking:riders"
)

// setIfNewer пишет точку, только если в кеше нет записи с id не меньше нового.
// KEYS: текущая точка, GEO индекс. ARGV: json, id, ttl мс (0 - без ttl), lng, lat, курьер.
var setIfNewer = goredis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current then
	local ok, decoded = pcall(cjson.decode, current)
	if ok and type(decoded) == 'table' and tonumber(decoded.id) and tonumber(decoded.id) >= tonumber(ARGV[2]) then
		return 0
	end
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
redis.call('GEOADD', KEYS[2], ARGV[4], ARGV[5], ARGV[6])
return 1
`)

type Cache struct {
	client goredis.Cmdable
	ttl    time.Duration
}

func New(client goredis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func key(deliveryID int64) string {
	return keyPrefix + strconv.FormatInt(deliveryID, 10)
}

// Set кладет текущую точку доставки и двигает курьера в GEO индексе.
// Точка старше уже закешированной пропускается, ответ с опозданием не откатывает позицию.
func (c *Cache) Set(ctx context.Context, entry entities.TrackingEntry) error {
	data, err := json.Marshal(LocationCacheDB{
		ID:         entry.ID,
		DeliveryID: entry.DeliveryID,
		RiderID:    entry.RiderID,
		Latitude:   entry.Location.Latitude,
		Longitude:  entry.Location.Longitude,
		Status:     entry.Status.String(),
		Note:       entry.Note,
		CreatedAt:  entry.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal cached location: %w", err)
	}

	err = setIfNewer.Run(ctx, c.client,
		[]string{key(entry.DeliveryID), ridersGeoKey},
		data,
		entry.ID,
		c.ttl.Milliseconds(),
		entry.Location.Longitude,
		entry.Location.Latitude,
		strconv.FormatInt(entry.RiderID, 10),
	).Err()
	if err != nil {
		return fmt.Errorf("cache location: %w", err)
	}

	return nil
}

func (c *Cache) Get(ctx context.Context, deliveryID int64) (*entities.TrackingEntry, error) {
	data, err := c.client.Get(ctx, key(deliveryID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, tracking.ErrLocationNotCached
		}
		return nil, fmt.Errorf("read cached location: %w", err)
	}

	var cached LocationCacheDB
	err = json.Unmarshal(data, &cached)
	if err != nil {
		return nil, fmt.Errorf("unmarshal cached location: %w", err)
	}

	return &entities.TrackingEntry{
		ID:         cached.ID,
		DeliveryID: cached.DeliveryID,
		RiderID:    cached.RiderID,
		Location: entities.Location{
			Latitude:  cached.Latitude,
			Longitude: cached.Longitude,
		},
		Status:    entities.DeliveryStatus(cached.Status),
		Note:      cached.Note,
		CreatedAt: cached.CreatedAt,
	}, nil
}
