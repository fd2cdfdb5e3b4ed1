// facade for accessing the DB
package db

import (
	"bytes"
	"encoding/json"
	"github.com/boltdb/bolt"
)

// update (or create, if they don't exist yet) the given elements in the DB
func Update(asUser string, elements ...IBucketElement) error {
	if len(elements) == 0 {
		return nil
	}
	return db.Update(func(tx *bolt.Tx) error {
		for _, element := range elements {
			if err := put(tx, asUser, element, false); err != nil {
				return err
			}
		}
		return nil
	})
}

// create the given elements in the DB. Fails with ErrKeyExistsInBucket, without writing anything, if one of them
// already exists
func Insert(asUser string, elements ...IBucketElement) error {
	if len(elements) == 0 {
		return nil
	}
	return db.Update(func(tx *bolt.Tx) error {
		for _, element := range elements {
			if err := put(tx, asUser, element, true); err != nil {
				return err
			}
		}
		return nil
	})
}

func put(tx *bolt.Tx, asUser string, element IBucketElement, insertOnly bool) error {
	bucket := element.Bucket()
	dbBucket := tx.Bucket(bucket)
	if dbBucket == nil {
		err := &ErrBucketNotFound{string(bucket)}
		logger.WithError(err).Errorf("error updating \"%s\" bucket", string(bucket))
		return err
	}
	key := element.Key()
	if dbBucket.Get(key) == nil {
		logger.Debugf("inserting element with key = \"%s\" into \"%s\" bucket", string(key), string(bucket))
		element.MarkInsert(asUser)
	} else {
		if insertOnly {
			return &ErrKeyExistsInBucket{Bucket: string(bucket), Key: string(key)}
		}
		logger.Debugf("updating element with key = \"%s\" in \"%s\" bucket", string(key), string(bucket))
		element.MarkUpdate(asUser)
	}
	objectBytes, err := json.Marshal(element)
	if err != nil {
		logger.WithError(err).Errorf("error updating key = \"%s\" in \"%s\" bucket", string(key), string(bucket))
		return err
	}
	if err := dbBucket.Put(key, objectBytes); err != nil {
		logger.WithError(err).Errorf("error updating key = \"%s\" in \"%s\" bucket", string(key), string(bucket))
		return err
	}
	return nil
}

// delete the given elements (if they exist) from the DB
func Delete(elements ...IBucketElement) error {
	if len(elements) == 0 {
		return nil
	}
	return db.Update(func(tx *bolt.Tx) error {
		for _, element := range elements {
			bucket := element.Bucket()
			dbBucket := tx.Bucket(bucket)
			if dbBucket == nil {
				err := &ErrBucketNotFound{string(bucket)}
				logger.WithError(err).Errorf("error deleting elements from \"%s\" bucket", string(bucket))
				return err
			}
			key := element.Key()
			if err := dbBucket.Delete(key); err != nil {
				logger.WithError(err).Errorf("error deleting key = \"%s\" from \"%s\" bucket", string(key), string(bucket))
				return err
			}
		}
		return nil
	})
}

// delete every key starting with the given prefix from each of the given buckets, along with the given elements, in
// a single transaction
func DeleteWithPrefix(prefix []byte, prefixBuckets [][]byte, elements ...IBucketElement) error {
	return db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range prefixBuckets {
			dbBucket := tx.Bucket(bucket)
			if dbBucket == nil {
				err := &ErrBucketNotFound{string(bucket)}
				logger.WithError(err).Errorf("error deleting keys from \"%s\" bucket", string(bucket))
				return err
			}
			var keys [][]byte
			c := dbBucket.Cursor()
			for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
				keys = append(keys, append([]byte(nil), k...))
			}
			for _, key := range keys {
				if err := dbBucket.Delete(key); err != nil {
					logger.WithError(err).Errorf("error deleting key = \"%s\" from \"%s\" bucket", string(key), string(bucket))
					return err
				}
			}
		}
		for _, element := range elements {
			bucket := element.Bucket()
			dbBucket := tx.Bucket(bucket)
			if dbBucket == nil {
				return &ErrBucketNotFound{string(bucket)}
			}
			if err := dbBucket.Delete(element.Key()); err != nil {
				return err
			}
		}
		return nil
	})
}

// a function deciding, given the key and data of a bucket element, whether it should be deleted
type BucketElementMatchFunc func([]byte, []byte) (bool, error)

// delete every element of the given buckets accepted by the given match function, along with the given elements, in
// a single transaction
func DeleteWhere(match BucketElementMatchFunc, matchBuckets [][]byte, elements ...IBucketElement) error {
	return db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range matchBuckets {
			dbBucket := tx.Bucket(bucket)
			if dbBucket == nil {
				err := &ErrBucketNotFound{string(bucket)}
				logger.WithError(err).Errorf("error deleting keys from \"%s\" bucket", string(bucket))
				return err
			}
			var keys [][]byte
			if err := dbBucket.ForEach(func(k, v []byte) error {
				matched, err := match(k, v)
				if err != nil {
					return err
				}
				if matched {
					keys = append(keys, append([]byte(nil), k...))
				}
				return nil
			}); err != nil {
				logger.WithError(err).Errorf("error scanning \"%s\" bucket", string(bucket))
				return err
			}
			for _, key := range keys {
				logger.Debugf("deleting element with key = \"%s\" from \"%s\" bucket", string(key), string(bucket))
				if err := dbBucket.Delete(key); err != nil {
					logger.WithError(err).Errorf("error deleting key = \"%s\" from \"%s\" bucket", string(key), string(bucket))
					return err
				}
			}
		}
		for _, element := range elements {
			bucket := element.Bucket()
			dbBucket := tx.Bucket(bucket)
			if dbBucket == nil {
				return &ErrBucketNotFound{string(bucket)}
			}
			if err := dbBucket.Delete(element.Key()); err != nil {
				return err
			}
		}
		return nil
	})
}

// determines if the given key exists in the given bucket
func KeyExistsInBucket(bucket, key []byte) (bool, error) {
	exists := false
	err := db.View(func(tx *bolt.Tx) error {
		dbBucket := tx.Bucket(bucket)
		if dbBucket == nil {
			err := &ErrBucketNotFound{string(bucket)}
			logger.WithError(err).Errorf("error querying \"%s\" bucket", string(bucket))
			return err
		}
		exists = dbBucket.Get(key) != nil
		return nil
	})
	if err != nil {
		return false, err
	}
	return exists, nil
}

// a function that accepts the bucket element key and data and processes it using the implemented strategy
type BucketElementProcessingFunc func([]byte, []byte) error

// given a bucket and a processing function, process all elements in that bucket
func QueryBucket(bucket []byte, process BucketElementProcessingFunc) error {
	return QueryBucketPrefix(bucket, nil, process)
}

// given a bucket, a key prefix and a processing function, process all elements in that bucket whose key starts with
// the given prefix, in key order. A nil prefix matches all keys
func QueryBucketPrefix(bucket, prefix []byte, process BucketElementProcessingFunc) error {
	return query(bucket, prefix, prefix, process)
}

// given a bucket, a start key and a processing function, process all elements in that bucket whose key is greater
// than or equal to the start key, in key order. A nil start key processes all elements
func QueryBucketFrom(bucket, start []byte, process BucketElementProcessingFunc) error {
	return query(bucket, start, nil, process)
}

// process the elements of the given bucket, starting from the first key not lower than start, as long as their keys
// start with the given prefix
func query(bucket, start, prefix []byte, process BucketElementProcessingFunc) error {
	return db.View(func(tx *bolt.Tx) error {
		dbBucket := tx.Bucket(bucket)
		if dbBucket == nil {
			err := &ErrBucketNotFound{string(bucket)}
			logger.WithError(err).Errorf("error querying \"%s\" bucket", string(bucket))
			return err
		}
		dbCursor := dbBucket.Cursor()
		matches := func(key []byte) bool {
			return key != nil && bytes.HasPrefix(key, prefix)
		}
		var elementKey, elementBytes []byte
		if len(start) == 0 {
			elementKey, elementBytes = dbCursor.First()
		} else {
			elementKey, elementBytes = dbCursor.Seek(start)
		}
		for ; matches(elementKey); elementKey, elementBytes = dbCursor.Next() {
			if err := process(elementKey, elementBytes); err != nil {
				if _, ok := err.(*ErrStopQuery); ok {
					elementKey, _ = dbCursor.Next()
					if matches(elementKey) {
						return &ErrElementsLeftToProcess{}
					}
					return nil
				}
				logger.WithError(err).Errorf("error querying \"%s\" bucket", string(bucket))
				return err
			}
		}
		return nil
	})
}

// given a bucket and a key, return the bytes of the data assigned with that key
func GetFromBucket(bucket, key []byte) ([]byte, error) {
	var data bytes.Buffer
	if err := db.View(func(tx *bolt.Tx) error {
		dbBucket := tx.Bucket(bucket)
		if dbBucket == nil {
			err := &ErrBucketNotFound{string(bucket)}
			logger.WithError(err).Errorf("error accessing \"%s\" bucket", string(bucket))
			return err
		}
		bytesOfKey := dbBucket.Get(key)
		if bytesOfKey == nil {
			err := &ErrKeyNotFoundInBucket{string(bucket), string(key)}
			logger.WithError(err).Debugf("error accessing \"%s\" key in \"%s\" bucket", string(key), string(bucket))
			return err
		}
		_, err := data.Write(bytesOfKey)
		return err
	}); err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}
