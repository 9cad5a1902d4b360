package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/kenzychew/pet-app-sub000/internal/domain/schedule"
)

const slotTTL = 2 * time.Minute

// SlotCache keeps computed availability per groomer/day/duration. Every
// cache failure degrades to the database path; callers never see an error.
type SlotCache struct {
	rdb *redis.Client
}

func NewSlotCache(rdb *redis.Client) *SlotCache {
	return &SlotCache{rdb: rdb}
}

func slotKey(groomerID uint, day string, durationMin int) string {
	return fmt.Sprintf("slots:%d:%s:%d", groomerID, day, durationMin)
}

func (c *SlotCache) Get(ctx context.Context, groomerID uint, day string, durationMin int) ([]schedule.Slot, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotKey(groomerID, day, durationMin)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []schedule.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, groomerID uint, day string, durationMin int, slots []schedule.Slot) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, slotKey(groomerID, day, durationMin), raw, slotTTL).Err(); err != nil {
		log.Println("slot cache set failed:", err)
	}
}

// InvalidateDays drops both duration variants for each affected day. Called
// on every appointment/time-block mutation.
func (c *SlotCache) InvalidateDays(ctx context.Context, groomerID uint, days ...string) {
	if c == nil || c.rdb == nil {
		return
	}

	keys := make([]string, 0, len(days)*2)
	for _, day := range days {
		keys = append(keys,
			slotKey(groomerID, day, 60),
			slotKey(groomerID, day, 120),
		)
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Println("slot cache invalidate failed:", err)
	}
}
