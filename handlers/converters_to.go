package handlers

import (
	"sort"

	"distsn/domain"
	"distsn/service"
)

// toInstancesResponse converts domain descriptors to the API array: highest speed first, ties by domain.
// Never returns nil so an empty store is encoded as [].
func toInstancesResponse(instances []domain.InstanceDescriptor) []InstanceInfo {
	sorted := make([]domain.InstanceDescriptor, len(instances))
	copy(sorted, instances)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Speed != sorted[b].Speed {
			return sorted[a].Speed > sorted[b].Speed
		}
		return sorted[a].Domain < sorted[b].Domain
	})

	out := make([]InstanceInfo, 0, len(sorted))
	for _, i := range sorted {
		out = append(out, InstanceInfo{
			Domain:    i.Domain,
			Title:     service.PtrOrNil(i.Title),
			Thumbnail: service.PtrOrNil(i.Thumbnail),
			Speed:     service.PtrOrNil(i.Speed),
		})
	}
	return out
}
