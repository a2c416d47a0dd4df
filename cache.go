// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Clean up expired membership answers every minute
const membershipCacheCleanup = time.Minute

// NewMembershipCache creates the cache that memoizes contains answers for a
// session. Answers expire after ttl; sessions flush it on every mutation.
func NewMembershipCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, membershipCacheCleanup)
}

func membershipKey(key int) string {
	return strconv.Itoa(key)
}

func CacheMembership(c *cache.Cache, key int, present bool) {
	c.Set(membershipKey(key), present, cache.DefaultExpiration)
}

// GetMembership returns the memoized answer for key and whether one existed
func GetMembership(c *cache.Cache, key int) (present bool, ok bool) {
	val, found := c.Get(membershipKey(key))
	if !found {
		return false, false
	}
	return val.(bool), true
}
