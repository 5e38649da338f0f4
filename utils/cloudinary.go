package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/joho/godotenv"
)

// Bucket folders in Cloudinary. Avatars live under profiles, generated
// receipt pages under invoices.
const (
	BucketInvoices = "invoices"
	BucketProfiles = "profiles"
)

// InitCloudinary initializes the Cloudinary client
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
	if err != nil {
		return nil, err
	}
	return cld, nil
}

// UploadToCloudinary uploads a file to Cloudinary and returns the secure URL
func UploadToCloudinary(file interface{}, publicID string, folder string) (string, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return "", err
	}

	ctx := context.Background()
	uploadParams := uploader.UploadParams{
		PublicID:  publicID,
		Folder:    folder,
		Overwrite: api.Bool(true),
	}

	// Avatars get a thumbnail transformation; raw documents do not.
	if strings.HasPrefix(folder, BucketProfiles) {
		uploadParams.Transformation = "c_thumb,w_200,h_200"
	}

	resp, err := cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// UploadInvoiceHTML stores a rendered receipt page under the invoices folder,
// keyed by payment id, and returns its public URL.
func UploadInvoiceHTML(paymentID uint, html string) (string, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return "", err
	}

	resp, err := cld.Upload.Upload(context.Background(), strings.NewReader(html), uploader.UploadParams{
		PublicID:     fmt.Sprintf("%d.html", paymentID),
		Folder:       BucketInvoices,
		ResourceType: "raw",
		Overwrite:    api.Bool(true),
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// EnsureBuckets provisions the invoices and profiles folders by writing a
// marker object into each. Safe to call repeatedly.
func EnsureBuckets() error {
	cld, err := InitCloudinary()
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, bucket := range []string{BucketInvoices, BucketProfiles} {
		_, err := cld.Upload.Upload(ctx, strings.NewReader("ok"), uploader.UploadParams{
			PublicID:     ".keep",
			Folder:       bucket,
			ResourceType: "raw",
			Overwrite:    api.Bool(true),
		})
		if err != nil {
			return fmt.Errorf("failed to ensure bucket %s: %w", bucket, err)
		}
	}
	return nil
}
