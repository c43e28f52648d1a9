// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package collector

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"
)

const u2 = 2

type timeStats struct {
	sum  float64
	sum2 float64
	cnt  int
}

// Stats keeps timing measurements of trials, tagged by outcome.
type Stats struct {
	mu    sync.Mutex
	start time.Time
	time  map[string]timeStats
}

// NewStats returns a new Stats object
func NewStats() *Stats {
	return &Stats{
		start: time.Now(),
		time:  make(map[string]timeStats),
	}
}

// AddTime adds a time durations to a tag
func (s *Stats) AddTime(tag string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.time[tag]
	t.sum += float64(d)
	t.sum2 += float64(d) * float64(d)
	t.cnt++
	s.time[tag] = t
}

func (ts timeStats) mean() time.Duration {
	if ts.cnt == 0 {
		return 0
	}
	return time.Duration(ts.sum / float64(ts.cnt))
}

func (ts timeStats) sd() time.Duration {
	if ts.cnt == 0 {
		return 0
	}
	cnt := float64(ts.cnt)
	v := ts.sum2/cnt - math.Pow(ts.sum/cnt, u2)
	if v < 0 {
		// rounding
		v = 0
	}
	return time.Duration(math.Sqrt(v))
}

// GetTime returns the mean and standard deviation of the durations added
// to tag, and their number.
func (s *Stats) GetTime(tag string) (time.Duration, time.Duration, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tstats, has := s.time[tag]; has {
		return tstats.mean(), tstats.sd(), tstats.cnt
	}
	return 0, 0, 0
}

// String is the string representation of the stats object.
func (s *Stats) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tags []string
	for tag := range s.time {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	elapsed := time.Since(s.start)
	str := fmt.Sprintf("Total time: %v\n", elapsed)
	for _, tag := range tags {
		tstats := s.time[tag]
		str += fmt.Sprintf("Mean time %s: %v (sd=%v cnt=%v)\n", tag, tstats.mean(), tstats.sd(), tstats.cnt)
	}
	return str
}
