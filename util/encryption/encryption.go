// symmetric encryption of secrets stored by the server, keyed by a file on disk
package encryption

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"os"
)

const keyFilePerms = 0600

type Encryption interface {
	// return a decrypted version of the given encrypted string
	Decrypt(encryptedText string) (string, error)
	// return an encrypted version of the given unencrypted string
	Encrypt(unencryptedText string) (string, error)
}

// return the base64 encoded key of the given length stored in the given file. If the file doesn't exist a random key
// is generated and stored in it
func LoadOrGenerateKeyFile(path string, keyLength int) ([]byte, error) {
	keyFromFile, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		key := make([]byte, keyLength)
		if _, err := rand.Read(key); err != nil {
			return nil, err
		}
		if err := ioutil.WriteFile(path, []byte(base64.StdEncoding.EncodeToString(key)), keyFilePerms); err != nil {
			return nil, err
		}
		return key, nil
	}
	if err != nil {
		return nil, err
	}
	key, err := base64.StdEncoding.DecodeString(string(keyFromFile))
	if err != nil {
		return nil, fmt.Errorf("invalid key file (%s): %v", path, err)
	}
	if len(key) != keyLength {
		return nil, fmt.Errorf("number of bytes in key file (%s) is not as expected (%d)", path, keyLength)
	}
	return key, nil
}
