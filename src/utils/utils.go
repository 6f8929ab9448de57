package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"
)

// UploadToSupabaseStorage uploads a file to the given bucket and returns the
// object's storage path and public URL. The object name is prefixed with a
// timestamp and a UUID so concurrent uploads of the same filename never clash.
func UploadToSupabaseStorage(bucket string, file *multipart.FileHeader) (string, string, error) {
	storageClient, err := database.SupabaseStorage()
	if err != nil {
		return "", "", err
	}

	fileBody, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer fileBody.Close()

	fileBytes, err := io.ReadAll(fileBody)
	if err != nil {
		return "", "", err
	}

	// Reset the file pointer to the beginning
	if _, err = fileBody.Seek(0, io.SeekStart); err != nil {
		return "", "", err
	}

	contentType := http.DetectContentType(fileBytes)
	objectPath := UniqueObjectName(file.Filename)

	_, err = storageClient.UploadFile(bucket, objectPath, fileBody, storage_go.FileOptions{ContentType: &contentType})
	if err != nil {
		return "", "", err
	}

	response := storageClient.GetPublicUrl(bucket, objectPath)
	return objectPath, response.SignedURL, nil
}

// DeleteFromSupabaseStorage deletes a file from the given bucket.
func DeleteFromSupabaseStorage(bucket, path string) error {
	storageClient, err := database.SupabaseStorage()
	if err != nil {
		return err
	}

	if _, err = storageClient.RemoveFile(bucket, []string{path}); err != nil {
		return err
	}
	return nil
}

// UniqueObjectName builds a collision-free object name for an upload.
func UniqueObjectName(filename string) string {
	return fmt.Sprintf("%d_%s-%s", time.Now().Unix(), uuid.New().String(), filename)
}

// RemoveDuplicates removes duplicate values from a slice of strings.
func RemoveDuplicates(slice []string) []string {
	seen := make(map[string]bool)
	result := []string{}

	for _, val := range slice {
		if _, ok := seen[val]; !ok {
			seen[val] = true
			result = append(result, val)
		}
	}

	return result
}
