package helpers

import "reflect"

// StrPanic panics with panicMessage if p is empty (no TrimSpace, only p == "" is checked); otherwise returns p.
// Used for fail-fast validation of required strings in constructors (base URL, element id, key prefix).
//
// Called from adapters.InstancesHTTP, adapters.NewElement and myredis.NewInstanceStore.
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic panics with panicMessage if v is nil (nil interface, pointer, slice, map, chan or func); otherwise returns v.
//
// Called from constructors validating required dependencies: service.NewInstanceListRenderer,
// handlers.NewHTTPServer, adapters.InstancesHTTP, adapters.NewInstanceCollector, myredis.NewInstanceStore.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// isNil covers typed nils that a plain v == nil check misses.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
