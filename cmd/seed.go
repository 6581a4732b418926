package main

import (
	"context"
	"fmt"
	"os"

	"distsn/domain"
	"distsn/interfaces"

	"gopkg.in/yaml.v3"
)

// yamlSeed is the root of the seed file: a list of instances.
type yamlSeed struct {
	Instances []yamlInstance `yaml:"instances"`
}

// yamlInstance is one seed entry.
type yamlInstance struct {
	Domain    string `yaml:"domain"`
	Title     string `yaml:"title"`
	Thumbnail string `yaml:"thumbnail"`
}

// loadSeed reads and validates the seed file at path.
// Returns an error on read or parse failure, on entries without a valid domain and on unsafe thumbnails.
func loadSeed(path string) ([]domain.InstanceDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read seed file: %w", err)
	}
	var seed yamlSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("can't parse seed file: %w", err)
	}

	out := make([]domain.InstanceDescriptor, 0, len(seed.Instances))
	for i, inst := range seed.Instances {
		if inst.Domain == "" {
			return nil, fmt.Errorf("seed instance #%d: domain is required", i)
		}
		if err := domain.ValidateDomain(inst.Domain); err != nil {
			return nil, fmt.Errorf("seed instance #%d: %w", i, err)
		}
		if err := domain.ValidateThumbnail(inst.Thumbnail); err != nil {
			return nil, fmt.Errorf("seed instance #%d: %w", i, err)
		}
		out = append(out, domain.InstanceDescriptor{
			Domain:    inst.Domain,
			Title:     inst.Title,
			Thumbnail: inst.Thumbnail,
		})
	}
	return out, nil
}

// writeSeed stores every descriptor with ttlMs and stops at the first store error.
func writeSeed(ctx context.Context, store interfaces.InstanceStore, instances []domain.InstanceDescriptor, ttlMs int) error {
	for _, inst := range instances {
		if err := store.SaveInstance(ctx, inst, ttlMs); err != nil {
			return fmt.Errorf("can't store seed instance %s: %w", inst.Domain, err)
		}
	}
	return nil
}
