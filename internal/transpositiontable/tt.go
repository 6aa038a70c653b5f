/*
 * Corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Frank Hopp
 */

// Package transpositiontable implements a fixed-size, power-of-two
// hash table caching search results keyed by zobrist hash plus the
// occupancy/side/castling/en-passant context the hash itself omits
// (spec.md §4.6). It is not thread safe; Resize and Clear must not be
// called concurrently with a running search. Entirely optional: search
// only consults it when config.Settings.Search.UseTT is set (spec.md
// §9 Open Question 4).
//
// Grounded on the teacher's internal/transpositiontable/{tt,ttentry}.go,
// renamed TtTable/TtEntry to Table/Entry and Probe/Put/GetEntry kept
// as-is since spec.md doesn't name a different contract for this
// optional component. The extra context parameters are grounded on
// original_source/src/hashtable.rs's RegHashTable, whose get/set take
// the same (key, bit_mask, player, cas_rights, enp_sqr) tuple for
// exactly this reason: Corvid's zobrist.go (like FoxSEE's own key
// scheme) hashes piece placement only.
package transpositiontable

import (
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	mylogging "github.com/fhopp/corvid/internal/logging"
	. "github.com/fhopp/corvid/internal/types"
	"github.com/fhopp/corvid/internal/util"
)

var out = message.NewPrinter(language.English)

const (
	kb = 1024
	mb = kb * kb

	// MaxSizeInMB is the largest hash size this table will allocate.
	MaxSizeInMB = 65_536
)

// Table is the transposition table itself.
type Table struct {
	log                *logging.Logger
	data               []Entry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              Stats
}

// Stats tracks table usage, surfaced via String().
type Stats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// New creates a Table sized to at most sizeInMByte megabytes.
func New(sizeInMByte int) *Table {
	tt := &Table{log: mylogging.GetLog()}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize reallocates the table to the largest power-of-two entry count
// that fits in sizeInMByte megabytes, clearing all entries.
func (tt *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * mb
	tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/EntrySize))))
	tt.hashKeyMask = tt.maxNumberOfEntries - 1

	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	}
	tt.sizeInByte = tt.maxNumberOfEntries * EntrySize

	tt.data = make([]Entry, tt.maxNumberOfEntries)

	tt.log.Info(out.Sprintf("TT size %d MB, capacity %d entries (%d bytes each), requested %d MB",
		tt.sizeInByte/mb, tt.maxNumberOfEntries, unsafe.Sizeof(Entry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// GetEntry returns the entry at key's slot if its stored key,
// occupancy, side, castling rights and en-passant square all match the
// position given, without touching statistics or age.
func (tt *Table) GetEntry(key, occ uint64, side Color, castling CastlingRights, ep Square) *Entry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	e := &tt.data[tt.hash(key)]
	if e.matches(key, occ, context(side, castling, ep)) {
		return e
	}
	return nil
}

// Probe looks up a position by its zobrist key plus the context
// (occupancy, side to move, castling rights, en-passant square) the
// key doesn't fold in (spec.md §4.6), decreasing the hit entry's age
// by one -- a probe is evidence the entry is still relevant to the
// current search.
func (tt *Table) Probe(key, occ uint64, side Color, castling CastlingRights, ep Square) *Entry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(key)]
	if e.matches(key, occ, context(side, castling, ep)) {
		e.decreaseAge()
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result under key plus its full position context
// (occupancy, side to move, castling rights, en-passant square),
// replacing the existing slot occupant only if this result is more
// valuable (deeper, or same depth but the occupant is stale).
func (tt *Table) Put(key, occ uint64, side Color, castling CastlingRights, ep Square, move Move, depth int8, value Value, bound ValueType, eval Value) {
	if tt.maxNumberOfEntries == 0 {
		return
	}

	e := &tt.data[tt.hash(key)]
	tt.Stats.numberOfPuts++
	ctx := context(side, castling, ep)

	if e.key == 0 {
		tt.numberOfEntries++
		tt.store(e, key, occ, ctx, move, depth, value, bound, eval)
		return
	}

	if !e.matches(key, occ, ctx) {
		tt.Stats.numberOfCollisions++
		if depth > e.Depth() || (depth == e.Depth() && e.Age() > 1) {
			tt.Stats.numberOfOverwrites++
			tt.store(e, key, occ, ctx, move, depth, value, bound, eval)
		}
		return
	}

	// Same position: refresh rather than discard, preserving whichever
	// of move/eval/value the caller didn't supply this time.
	tt.Stats.numberOfUpdates++
	if move != MoveNone {
		e.move = uint16(move)
	}
	if eval != ValueNA {
		e.eval = int16(eval)
	}
	if value != ValueNA {
		e.value = int16(value)
		e.vmeta = uint16(depth)<<depthShift | uint16(bound)<<vtypeShift
	}
}

func (tt *Table) store(e *Entry, key, occ uint64, ctx uint16, move Move, depth int8, value Value, bound ValueType, eval Value) {
	e.key = key
	e.occ = occ
	e.ctx = ctx
	e.move = uint16(move)
	e.eval = int16(eval)
	e.value = int16(value)
	e.vmeta = uint16(depth)<<depthShift | uint16(bound)<<vtypeShift
}

// Clear empties the table without changing its size.
func (tt *Table) Clear() {
	tt.data = make([]Entry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = Stats{}
}

// Hashfull reports how full the table is in permille, as UCI's "info
// hashfull" expects.
func (tt *Table) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// Len returns the number of occupied slots.
func (tt *Table) Len() uint64 { return tt.numberOfEntries }

// AgeEntries increments every occupied entry's age by one, called once
// per search so stale entries from earlier searches lose priority
// against fresh ones at equal depth. Parallelized across goroutines
// since a full-size table can hold tens of millions of entries.
func (tt *Table) AgeEntries() {
	start := time.Now()
	if tt.numberOfEntries > 0 {
		const goroutines = 32
		var wg sync.WaitGroup
		wg.Add(goroutines)
		slice := tt.maxNumberOfEntries / goroutines
		for i := uint64(0); i < goroutines; i++ {
			go func(i uint64) {
				defer wg.Done()
				begin := i * slice
				end := begin + slice
				if i == goroutines-1 {
					end = tt.maxNumberOfEntries
				}
				for n := begin; n < end; n++ {
					if tt.data[n].key != 0 {
						tt.data[n].increaseAge()
					}
				}
			}(i)
		}
		wg.Wait()
	}
	tt.log.Debug(out.Sprintf("aged %d entries of %d in %d ms",
		tt.numberOfEntries, len(tt.data), time.Since(start).Milliseconds()))
}

func (tt *Table) String() string {
	probes := tt.Stats.numberOfProbes
	return out.Sprintf("TT: %d MB, %d entries of %d bytes, %d used (%d%%), puts %d updates %d "+
		"collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/mb, tt.maxNumberOfEntries, unsafe.Sizeof(Entry{}), tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites,
		probes, tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+probes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+probes))
}

func (tt *Table) hash(key uint64) uint64 {
	return key & tt.hashKeyMask
}
