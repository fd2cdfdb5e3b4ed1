package db

import (
	"fmt"
	"github.com/boltdb/bolt"
	"testing"
)

func verifyBuckets() error {
	return db.View(func(tx *bolt.Tx) error {
		for _, bucket := range buckets {
			if tx.Bucket([]byte(bucket)) == nil {
				return fmt.Errorf("\"%s\" bucket should exist, but it doesn't", bucket)
			}
		}
		return nil
	})
}

func TestInit(t *testing.T) {
	cleanup := InitDbForTest()
	defer cleanup()
	if err := verifyBuckets(); err != nil {
		t.Fatal(err)
	}
	encrypted, err := Encrypt(System)
	if err != nil {
		t.Fatal(err)
	}
	decrypted, err := Decrypt(encrypted)
	if err != nil {
		t.Fatal(err)
	}
	if decrypted != System {
		t.Fatalf("expected \"%s\" after decryption but got \"%s\"", System, decrypted)
	}
}
