package myredis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"distsn/domain"
	"distsn/helpers"
	"distsn/interfaces"
	"distsn/service"

	"github.com/go-redis/redis/v8"
)

// InstanceKeyPrefix is the key namespace of stored descriptors: "instance:<domain>".
const InstanceKeyPrefix = "instance"

type instanceStore struct {
	client redis.UniversalClient
	prefix string
}

// instanceRecord is the JSON value stored per domain.
type instanceRecord struct {
	Domain    string  `json:"domain"`
	Title     string  `json:"title,omitempty"`
	Thumbnail string  `json:"thumbnail,omitempty"`
	Speed     float64 `json:"speed,omitempty"`
}

// NewInstanceStore creates the redis instance store. Descriptors are stored under "<prefix>:<domain>".
func NewInstanceStore(client redis.UniversalClient, prefix string) interfaces.InstanceStore {
	return &instanceStore{
		client: helpers.NilPanic(client, "myredis.instance_store.go: redis client is required"),
		prefix: helpers.StrPanic(prefix, "myredis.instance_store.go: key prefix is required"),
	}
}

func (s *instanceStore) SaveInstance(ctx context.Context, instance domain.InstanceDescriptor, ttlMs int) error {
	bytes, err := json.Marshal(instanceRecord(instance))
	if err != nil {
		return service.NewInternalServerError("Redis marshal instance error", fmt.Errorf("can't marshal instance (domain='%s'), err: %w", instance.Domain, err))
	}

	err = s.client.Set(ctx, s.key(instance.Domain), bytes, time.Duration(ttlMs)*time.Millisecond).Err()
	if err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write instance to redis (domain='%s'), err: %w", instance.Domain, err))
	}

	return nil
}

func (s *instanceStore) DeleteInstance(ctx context.Context, instanceDomain string) error {
	err := s.client.Del(ctx, s.key(instanceDomain)).Err()
	if err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete instance from redis (domain='%s'), err: %w", instanceDomain, err))
	}
	return nil
}

// ListInstances reads all keys under the prefix, then their values with one MGET.
// Keys that expire between KEYS and MGET are skipped.
func (s *instanceStore) ListInstances(ctx context.Context) ([]domain.InstanceDescriptor, error) {
	fullKeys, err := s.client.Keys(ctx, s.prefix+":*").Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis get keys error", fmt.Errorf("redis get keys error, err: %w", err))
	}

	prefixWithColon := s.prefix + ":"
	keys := make([]string, 0, len(fullKeys))
	for _, k := range fullKeys {
		if strings.HasPrefix(k, prefixWithColon) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, service.NewEntityNotFoundError("No instances stored", nil)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis get values error", fmt.Errorf("redis mget error, err: %w", err))
	}

	instances := make([]domain.InstanceDescriptor, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}

		var record instanceRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil || record.Domain == "" {
			continue
		}

		instances = append(instances, domain.InstanceDescriptor(record))
	}
	if len(instances) == 0 {
		return nil, service.NewEntityNotFoundError("No instances stored", nil)
	}

	return instances, nil
}

func (s *instanceStore) key(instanceDomain string) string {
	return s.prefix + ":" + instanceDomain
}
