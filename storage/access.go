// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// AccessData - the write batch and its read overlay
//
// committed reads go directly to the database, pending reads check
// the overlay first
type AccessData struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, cache Cache) *AccessData {
	return &AccessData{
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *AccessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
}

func (d *AccessData) put(key []byte, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	d.batch.Put(key, v)
	d.cache.Set(dbPut, string(key), v)
}

func (d *AccessData) delete(key []byte) {
	d.batch.Delete(key)
	d.cache.Set(dbDelete, string(key), nil)
}

// write the whole batch in one synchronous leveldb write
func (d *AccessData) write() error {
	err := d.db.Write(d.batch, &ldb_opt.WriteOptions{Sync: true})
	d.reset()
	return err
}

// read committed data only
func (d *AccessData) get(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *AccessData) has(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

// read pending data falling back to committed data
func (d *AccessData) getPending(key []byte) ([]byte, error) {
	value, found, deleted := d.cache.Get(string(key))
	if deleted {
		return nil, leveldb.ErrNotFound
	}
	if found {
		return value, nil
	}
	return d.db.Get(key, nil)
}

func (d *AccessData) hasPending(key []byte) (bool, error) {
	_, found, deleted := d.cache.Get(string(key))
	if deleted {
		return false, nil
	}
	if found {
		return true, nil
	}
	return d.db.Has(key, nil)
}

func (d *AccessData) iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
