package db

import "github.com/DAv10195/course_details_server/util/encryption"

var dbEncryption encryption.Encryption

func initDbEncryption(encryptionKeyFilePath string) error {
	aesEncryption, err := encryption.NewAesEncryption(encryptionKeyFilePath)
	if err != nil {
		return err
	}
	dbEncryption = aesEncryption
	return nil
}

// decrypt a secret (e.g. a user password) stored in the DB
func Decrypt(encryptedText string) (string, error) {
	return dbEncryption.Decrypt(encryptedText)
}

// encrypt a secret (e.g. a user password) before storing it in the DB
func Encrypt(unEncryptedText string) (string, error) {
	return dbEncryption.Encrypt(unEncryptedText)
}
