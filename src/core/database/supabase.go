package database

import (
	"errors"
	"os"

	storage_go "github.com/supabase-community/storage-go"
)

// Buckets used for user uploads. Each content type keeps its files apart.
const (
	BucketNotes       = "notes"
	BucketEvents      = "events"
	BucketIssues      = "issues"
	BucketMarketplace = "marketplace"
	BucketLostFound   = "lost-found"
	BucketGroupFiles  = "group-files"
	BucketProfiles    = "profile-photos"
)

// SupabaseStorage initializes the storage client
func SupabaseStorage() (*storage_go.Client, error) {
	projectURL := os.Getenv("SUPABASE_URL")
	serviceKey := os.Getenv("SUPABASE_KEY")

	if projectURL == "" || serviceKey == "" {
		return nil, errors.New("missing SUPABASE_URL or SUPABASE_KEY in environment variables")
	}

	return storage_go.NewClient(projectURL+"/storage/v1", serviceKey, nil), nil
}
