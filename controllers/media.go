package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"golang.org/x/sync/errgroup"

	config "github.com/femifunmi/foundation-backend-go/config"
	models "github.com/femifunmi/foundation-backend-go/models"
	utils "github.com/femifunmi/foundation-backend-go/utils"
)

// mediaUploader is the slice of the upload gateway the reconciliation
// path needs; tests substitute a fake.
type mediaUploader interface {
	Upload(ctx context.Context, data []byte, opts utils.UploadOptions) (utils.UploadResult, error)
}

// mediaDescriptor declares the intended source of one final media item:
// either an index into the request's uploaded files or an existing URL.
type mediaDescriptor struct {
	Source    string `json:"source"` // file or url
	Type      string `json:"type"`   // photo or video
	FileIndex *int   `json:"fileIndex,omitempty"`
	MediaURL  string `json:"mediaUrl,omitempty"`
	Caption   string `json:"caption,omitempty"`
}

// uploadedFile is an in-memory copy of one multipart file.
type uploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// maxFilesPerRequest caps each multipart file list, matching the admin
// client's picker limit.
const maxFilesPerRequest = 24

// readFormFiles buffers multipart files, enforcing the file-count and
// per-file size caps.
func readFormFiles(headers []*multipart.FileHeader) ([]uploadedFile, error) {
	if len(headers) > maxFilesPerRequest {
		return nil, newRequestError(fmt.Sprintf("too many files: at most %d are accepted per request", maxFilesPerRequest))
	}

	files := make([]uploadedFile, 0, len(headers))
	for _, header := range headers {
		if header.Size > config.MaxUploadBytes {
			return nil, newRequestError(fmt.Sprintf("file %q exceeds the %d MB upload limit", header.Filename, config.MaxUploadBytes>>20))
		}

		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("open uploaded file %q: %w", header.Filename, err)
		}
		data, err := io.ReadAll(io.LimitReader(f, config.MaxUploadBytes+1))
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read uploaded file %q: %w", header.Filename, err)
		}
		if int64(len(data)) > config.MaxUploadBytes {
			return nil, newRequestError(fmt.Sprintf("file %q exceeds the %d MB upload limit", header.Filename, config.MaxUploadBytes>>20))
		}

		files = append(files, uploadedFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}

// buildMediaFromDescriptors reconciles a descriptor list against the
// uploaded files. Every file-sourced descriptor is uploaded (at most
// concurrency uploads in flight) and the results are zipped back into
// descriptor order, so the output order never depends on upload timing.
func buildMediaFromDescriptors(
	ctx context.Context,
	descriptorsJSON string,
	files []uploadedFile,
	folder string,
	up mediaUploader,
	concurrency int,
	idPrefix string,
) ([]models.MediaAsset, error) {
	var descriptors []mediaDescriptor
	if err := json.Unmarshal([]byte(descriptorsJSON), &descriptors); err != nil {
		return nil, newRequestError("invalid media descriptor payload")
	}

	// Validate everything up front: no uploads start for a payload that
	// is going to be rejected anyway.
	needed := make([]bool, len(files))
	for i, d := range descriptors {
		if !models.IsValidMediaType(d.Type) {
			return nil, newRequestError(fmt.Sprintf("media descriptor %d has invalid type %q", i, d.Type))
		}
		switch d.Source {
		case "url":
			if strings.TrimSpace(d.MediaURL) == "" {
				return nil, newRequestError(fmt.Sprintf("media descriptor %d is missing mediaUrl", i))
			}
		case "file":
			if d.FileIndex == nil {
				return nil, newRequestError(fmt.Sprintf("media descriptor %d is missing fileIndex", i))
			}
			if *d.FileIndex < 0 || *d.FileIndex >= len(files) {
				return nil, newRequestError(fmt.Sprintf("media descriptor %d references file %d, but %d file(s) were uploaded", i, *d.FileIndex, len(files)))
			}
			needed[*d.FileIndex] = true
		default:
			return nil, newRequestError(fmt.Sprintf("media descriptor %d has invalid source %q", i, d.Source))
		}
	}

	if concurrency < 1 {
		concurrency = 1
	}

	uploadedURLs := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for index := range files {
		if !needed[index] {
			continue
		}
		index := index
		g.Go(func() error {
			file := files[index]
			result, err := up.Upload(gctx, file.Data, utils.UploadOptions{
				Folder:       folder,
				ResourceType: resourceTypeFor(descriptorTypeForFile(descriptors, index), file.ContentType),
			})
			if err != nil {
				name := file.Name
				if name == "" {
					name = fmt.Sprintf("file-%d", index+1)
				}
				return fmt.Errorf("media upload failed for %q: %w", name, err)
			}
			uploadedURLs[index] = result.SecureURL
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	media := make([]models.MediaAsset, 0, len(descriptors))
	for _, d := range descriptors {
		asset := models.MediaAsset{
			ID:      utils.NewID(idPrefix),
			Type:    d.Type,
			Caption: d.Caption,
		}
		if d.Source == "url" {
			asset.MediaURL = d.MediaURL
		} else {
			asset.MediaURL = uploadedURLs[*d.FileIndex]
		}
		media = append(media, asset)
	}
	return media, nil
}

// descriptorTypeForFile finds the declared media type for a file index,
// if any descriptor claims it.
func descriptorTypeForFile(descriptors []mediaDescriptor, fileIndex int) string {
	for _, d := range descriptors {
		if d.Source == "file" && d.FileIndex != nil && *d.FileIndex == fileIndex {
			return d.Type
		}
	}
	return ""
}

// resourceTypeFor picks the upload resource kind from the declared media
// type, falling back to content-type sniffing.
func resourceTypeFor(mediaType, contentType string) string {
	if mediaType == models.MediaTypeVideo || strings.HasPrefix(contentType, "video/") {
		return "video"
	}
	return "image"
}

// uploadSingleFile pushes one multipart file through the gateway.
func uploadSingleFile(ctx context.Context, header *multipart.FileHeader, folder, resourceType string, up mediaUploader) (utils.UploadResult, error) {
	files, err := readFormFiles([]*multipart.FileHeader{header})
	if err != nil {
		return utils.UploadResult{}, err
	}
	return up.Upload(ctx, files[0].Data, utils.UploadOptions{Folder: folder, ResourceType: resourceType})
}
