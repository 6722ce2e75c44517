// Package redis implementa el cache explícito de ítems sobre Redis.
//
// Reemplaza el espejo global en memoria del estado remoto: cada ítem se guarda
// bajo su propia clave por ID y toda mutación tiene un punto de invalidación
// definido (Set tras el alta, Invalidate tras editar o borrar).
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tu-usuario/stock-ledger/internal/application/ledger"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/pkg/config"
)

var _ ledger.ItemCache = (*ItemCache)(nil)

// ItemCache cache de ítems por ID con TTL, serializado como JSON.
type ItemCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewItemCache crea el cache desde la configuración.
// Devuelve (nil, nil) si la URL está vacía: el cache es opcional.
func NewItemCache(cfg config.RedisConfig) (*ItemCache, error) {
	if cfg.URL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ItemCache{client: client, ttl: ttl}, nil
}

func itemKey(id string) string {
	return "item:" + id
}

// Get devuelve el ítem cacheado o (nil, nil) si no está.
func (c *ItemCache) Get(ctx context.Context, id string) (*entity.Item, error) {
	data, err := c.client.Get(ctx, itemKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var item entity.Item
	if err := json.Unmarshal(data, &item); err != nil {
		// Entrada corrupta: invalidar y tratar como miss
		_ = c.client.Del(ctx, itemKey(id)).Err()
		return nil, nil
	}
	return &item, nil
}

// Set escribe el ítem en el cache con TTL.
func (c *ItemCache) Set(ctx context.Context, item *entity.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, itemKey(item.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate elimina la entrada del ítem.
func (c *ItemCache) Invalidate(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, itemKey(id)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// Health verifica la conexión a Redis.
func (c *ItemCache) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close cierra la conexión.
func (c *ItemCache) Close() error {
	return c.client.Close()
}
