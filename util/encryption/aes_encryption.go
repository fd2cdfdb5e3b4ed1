package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

const aesKeyLength = 32 // 256 bits

// AES-GCM encryption. Encrypted texts are base64 encoded and hold the nonce followed by the sealed text
type AesEncryption struct {
	aead cipher.AEAD
}

// returns an AES encryption using the key in the given file, generating the key file if it doesn't exist
func NewAesEncryption(keyFilePath string) (*AesEncryption, error) {
	key, err := LoadOrGenerateKeyFile(keyFilePath, aesKeyLength)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &AesEncryption{aead}, nil
}

// decrypt the given base64 encoded string. Texts that were altered after encryption fail to decrypt
func (e *AesEncryption) Decrypt(encryptedText string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(encryptedText)
	if err != nil {
		return "", fmt.Errorf("error decrypting text: %v", err)
	}
	nonceSize := e.aead.NonceSize()
	if len(sealed) < nonceSize {
		return "", fmt.Errorf("error decrypting text: encrypted text is shorter than the nonce (%d bytes)", nonceSize)
	}
	plain, err := e.aead.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("error decrypting text: %v", err)
	}
	return string(plain), nil
}

// encrypt the given string and return a base64 encoded string of the encrypted value
func (e *AesEncryption) Encrypt(unencryptedText string) (string, error) {
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("error encrypting text: %v", err)
	}
	return base64.StdEncoding.EncodeToString(e.aead.Seal(nonce, nonce, []byte(unencryptedText), nil)), nil
}
