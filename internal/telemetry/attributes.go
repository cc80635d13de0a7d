// SPDX-License-Identifier: MIT

package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
)

// Common attribute keys for consistent tracing across the application.
const (
	// HTTP attributes
	HTTPMethodKey     = "http.method"
	HTTPStatusCodeKey = "http.status_code"
	HTTPRouteKey      = "http.route"

	// Collection attributes
	CollectionNameKey  = "collection.name"
	CollectionItemsKey = "collection.items"
	SearchTermKey      = "search.term"
	SearchHitKey       = "search.hit"

	// Error attributes
	ErrorKey     = "error"
	ErrorTypeKey = "error.type"
)

// HTTPAttributes creates common HTTP span attributes.
func HTTPAttributes(method, route string, statusCode int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(HTTPMethodKey, method),
		attribute.String(HTTPRouteKey, route),
		attribute.Int(HTTPStatusCodeKey, statusCode),
	}
}

// CollectionAttributes creates collection-related span attributes.
func CollectionAttributes(name string, items int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(CollectionNameKey, name),
		attribute.Int(CollectionItemsKey, items),
	}
}

// SearchAttributes creates search-related span attributes.
func SearchAttributes(term string, hit bool) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(SearchTermKey, term),
		attribute.Bool(SearchHitKey, hit),
	}
}

// ErrorAttributes creates error-related span attributes.
func ErrorAttributes(errorType string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Bool(ErrorKey, true),
		attribute.String(ErrorTypeKey, errorType),
	}
}
