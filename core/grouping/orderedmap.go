/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Crosstab Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package grouping

// orderedMap is a map that preserves the order of insertion. Row keys must
// come back out in first-seen order, which a plain map cannot guarantee.
type orderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{values: make(map[K]V)}
}

// set adds or updates a key-value pair.
func (om *orderedMap[K, V]) set(key K, value V) {
	if _, exists := om.values[key]; !exists {
		om.keys = append(om.keys, key)
	}
	om.values[key] = value
}

// get retrieves a value by key.
func (om *orderedMap[K, V]) get(key K) (V, bool) {
	val, exists := om.values[key]
	return val, exists
}

// rangeInOrder iterates over the map in insertion order.
// If f returns false, iteration stops.
func (om *orderedMap[K, V]) rangeInOrder(f func(key K, value V) bool) {
	for _, k := range om.keys {
		if !f(k, om.values[k]) {
			break
		}
	}
}

func (om *orderedMap[K, V]) len() int {
	return len(om.keys)
}
