package encryption

import (
	"encoding/base64"
	"io/ioutil"
	"path/filepath"
	"testing"
)

const (
	courseDetailsServer = "course_details_server"
	aesKeyFileName      = "course_details_server_keystore"
)

func TestAesEncryptionDecryption(t *testing.T) {
	keyFilePath := filepath.Join(t.TempDir(), aesKeyFileName)
	encryption, err := NewAesEncryption(keyFilePath)
	if err != nil {
		t.Fatal(err)
	}
	encrypted, err := encryption.Encrypt(courseDetailsServer)
	if err != nil {
		t.Fatal(err)
	}
	if encrypted == courseDetailsServer {
		t.Fatal("encrypted text is equal to the unencrypted text")
	}
	// an encryption loaded from the same key file decrypts texts encrypted before
	reloaded, err := NewAesEncryption(keyFilePath)
	if err != nil {
		t.Fatal(err)
	}
	decrypted, err := reloaded.Decrypt(encrypted)
	if err != nil {
		t.Fatal(err)
	}
	if decrypted != courseDetailsServer {
		t.Fatalf("expected: \"%s\", but got: \"%s\"", courseDetailsServer, decrypted)
	}
}

func TestDecryptAlteredText(t *testing.T) {
	encryption, err := NewAesEncryption(filepath.Join(t.TempDir(), aesKeyFileName))
	if err != nil {
		t.Fatal(err)
	}
	encrypted, err := encryption.Encrypt(courseDetailsServer)
	if err != nil {
		t.Fatal(err)
	}
	sealed, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		t.Fatal(err)
	}
	sealed[len(sealed)-1] ^= 0xff
	testCases := []struct {
		name string
		text string
	}{
		{"test altered text", base64.StdEncoding.EncodeToString(sealed)},
		{"test not base64", "%%%"},
		{"test too short", base64.StdEncoding.EncodeToString([]byte("short"))},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := encryption.Decrypt(testCase.text); err == nil {
				t.Fatal("expected decryption to fail")
			}
		})
	}
}

func TestLoadOrGenerateKeyFile(t *testing.T) {
	keyFilePath := filepath.Join(t.TempDir(), aesKeyFileName)
	key, err := LoadOrGenerateKeyFile(keyFilePath, aesKeyLength)
	if err != nil {
		t.Fatal(err)
	}
	loadedKey, err := LoadOrGenerateKeyFile(keyFilePath, aesKeyLength)
	if err != nil {
		t.Fatal(err)
	}
	if string(key) != string(loadedKey) {
		t.Fatal("expected the generated key to be loaded from the key file")
	}
	if _, err := LoadOrGenerateKeyFile(keyFilePath, 16); err == nil {
		t.Fatal("expected loading a key of a different length to fail")
	}
	badKeyFilePath := filepath.Join(t.TempDir(), "bad")
	if err := ioutil.WriteFile(badKeyFilePath, []byte("not base64!"), keyFilePerms); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrGenerateKeyFile(badKeyFilePath, aesKeyLength); err == nil {
		t.Fatal("expected loading an invalid key file to fail")
	}
}
