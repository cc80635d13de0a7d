// SPDX-License-Identifier: MIT

// Package metrics defines the Prometheus collectors for stash.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectionsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "stash_collections",
		Help: "Number of collections currently registered",
	})

	collectionItems = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "stash_collection_items",
		Help: "Number of items stored per collection",
	}, []string{"collection"})

	itemsAddedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stash_items_added_total",
		Help: "Item add attempts per collection by outcome",
	}, []string{"collection", "outcome"}) // outcome=accepted|rejected

	findsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stash_finds_total",
		Help: "Search requests per collection by outcome",
	}, []string{"collection", "outcome"}) // outcome=hit|miss

	collectionCreateErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stash_collection_create_errors_total",
		Help: "Total number of rejected collection create requests",
	})
)

// SetCollections records the current number of registered collections.
func SetCollections(n int) {
	collectionsTotal.Set(float64(n))
}

// SetCollectionItems records the current item count of a collection.
func SetCollectionItems(collection string, n int) {
	collectionItems.WithLabelValues(collection).Set(float64(n))
}

// RecordAdd counts an add attempt for a collection.
func RecordAdd(collection string, accepted bool) {
	outcome := "accepted"
	if !accepted {
		outcome = "rejected"
	}
	itemsAddedTotal.WithLabelValues(collection, outcome).Inc()
}

// RecordFind counts a search for a collection.
func RecordFind(collection string, found bool) {
	outcome := "hit"
	if !found {
		outcome = "miss"
	}
	findsTotal.WithLabelValues(collection, outcome).Inc()
}

// RecordCreateError counts a rejected collection create request.
func RecordCreateError() {
	collectionCreateErrors.Inc()
}
