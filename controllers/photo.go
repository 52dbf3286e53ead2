package controllers

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/nfnt/resize"
)

const (
	maxFileSize       = 5 * 1024 * 1024
	compressThreshold = 100 * 1024
	previewSize       = 300
)

var (
	s3Client  *minio.Client
	s3Bucket  string
	cdnDomain string
)

// InitS3 sets up the object-storage client for item and category photos.
// Must run after the .env file is loaded.
func InitS3() {
	s3Bucket = os.Getenv("S3_BUCKET")
	cdnDomain = os.Getenv("CDN_DOMAIN")

	client, err := minio.New(os.Getenv("S3_ENDPOINT"), &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), ""),
		Secure: true,
	})
	if err != nil {
		log.Fatalf("Failed to initialize S3 client: %v", err)
	}
	s3Client = client
}

// SavePhotoToS3 uploads an image under the given folder ("items" or
// "categories") and returns the CDN URLs of the full image and a thumbnail
// preview. Images above the compress threshold are re-encoded at 800px.
func SavePhotoToS3(file *multipart.FileHeader, folder, id string) (string, string, error) {
	if file.Size > maxFileSize {
		return "", "", fmt.Errorf("file size exceeds the 5MB limit")
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", "", fmt.Errorf("unsupported file format: %s", contentType)
	}

	fileExt := strings.ToLower(filepath.Ext(file.Filename))
	baseName := fmt.Sprintf("%s/%s_%d", folder, id, time.Now().Unix())
	mainFilename := fmt.Sprintf("%s%s", baseName, fileExt)
	previewFilename := fmt.Sprintf("%s_preview%s", baseName, fileExt)

	srcFile, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer srcFile.Close()

	originalData, err := io.ReadAll(srcFile)
	if err != nil {
		return "", "", fmt.Errorf("failed to read image data: %v", err)
	}

	var img image.Image
	if contentType == "image/png" {
		img, err = png.Decode(bytes.NewReader(originalData))
	} else {
		img, err = jpeg.Decode(bytes.NewReader(originalData))
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %v", err)
	}

	var bufMain bytes.Buffer
	if file.Size >= compressThreshold {
		resizedMain := resize.Resize(800, 0, img, resize.Lanczos3)
		if err := jpeg.Encode(&bufMain, resizedMain, &jpeg.Options{Quality: 80}); err != nil {
			return "", "", fmt.Errorf("failed to encode resized image: %v", err)
		}
	} else {
		bufMain.Write(originalData)
	}

	_, err = s3Client.PutObject(context.Background(), s3Bucket, mainFilename, &bufMain, int64(bufMain.Len()), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload main image to S3: %v", err)
	}

	previewImg := resize.Thumbnail(previewSize, previewSize, img, resize.Lanczos3)
	var bufPreview bytes.Buffer
	if err := jpeg.Encode(&bufPreview, previewImg, &jpeg.Options{Quality: 75}); err != nil {
		return "", "", fmt.Errorf("failed to encode preview image: %v", err)
	}
	_, err = s3Client.PutObject(context.Background(), s3Bucket, previewFilename, &bufPreview, int64(bufPreview.Len()), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload preview image to S3: %v", err)
	}

	mainURL := fmt.Sprintf("https://%s/%s", cdnDomain, mainFilename)
	previewURL := fmt.Sprintf("https://%s/%s", cdnDomain, previewFilename)
	return mainURL, previewURL, nil
}

// RemovePhotoFromS3 deletes a previously uploaded image by its CDN URL.
// Best effort: a missing object is not an error worth failing the request.
func RemovePhotoFromS3(photoURL string) {
	if photoURL == "" || cdnDomain == "" || !strings.Contains(photoURL, cdnDomain) {
		return
	}
	key := strings.TrimPrefix(photoURL, fmt.Sprintf("https://%s/", cdnDomain))
	if err := s3Client.RemoveObject(context.Background(), s3Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		log.Printf("Failed to remove %s from S3: %v", key, err)
	}
}
