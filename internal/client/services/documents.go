package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pilearning/pilearn/internal/client/client"
	"github.com/pilearning/pilearn/internal/client/models"
	"github.com/pilearning/pilearn/internal/client/repositories/kv"
	"github.com/pilearning/pilearn/internal/client/store"
	"github.com/pilearning/pilearn/internal/common"
	"github.com/pilearning/pilearn/internal/filex"
	"github.com/pilearning/pilearn/internal/logging"
)

// DocumentService sends study documents to the indexing workflow and
// keeps the per-user list of what was uploaded.
type DocumentService interface {
	List(ctx context.Context, userID string) ([]models.Document, error)
	Upload(ctx context.Context, ident models.Identity, path string) (*models.Document, error)
	Remove(ctx context.Context, userID, docID string) error
}

type documentService struct {
	client client.Client
	docs   *store.Collection[models.Document]
	log    logging.Logger
}

func NewDocumentService(c client.Client, kvRepo kv.Repository, log logging.Logger) DocumentService {
	return &documentService{
		client: c,
		docs:   store.NewCollection[models.Document](store.CollectionDocuments, kvRepo),
		log:    log,
	}
}

func (s *documentService) List(ctx context.Context, userID string) ([]models.Document, error) {
	return s.docs.Load(ctx, userID)
}

// humanSize renders a byte count the way the document list displays it.
func humanSize(n int) string {
	if n >= 1<<20 {
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	}
	return fmt.Sprintf("%.2f KB", float64(n)/(1<<10))
}

// Upload validates and reads the file at path, sends it to the indexing
// workflow base64-encoded, and records the outcome in the user's document
// list. A workflow that is unreachable still yields a list entry, with
// status "error"; unreadable, oversized, or unsupported files are
// rejected outright and record nothing.
func (s *documentService) Upload(ctx context.Context, ident models.Identity, path string) (*models.Document, error) {
	name := filepath.Base(path)

	contentType, err := filex.ContentType(name)
	if err != nil {
		return nil, err
	}

	data, err := filex.ReadDocument(path)
	if err != nil {
		return nil, err
	}

	doc := models.Document{
		ID:     uuid.NewString(),
		Name:   name,
		Type:   contentType,
		Status: models.DocumentStatusIndexed,
		Size:   humanSize(len(data)),
	}

	res, err := s.client.UploadDocument(ctx, client.UploadRequest{
		File:     base64.StdEncoding.EncodeToString(data),
		Filename: name,
	})
	switch {
	case err == nil:
		if res.Filename != "" {
			doc.Name = res.Filename
		}
		if res.FileSizeMB > 0 {
			doc.Size = fmt.Sprintf("%.2f MB", res.FileSizeMB)
		}
	case errors.Is(err, client.ErrNotConfigured):
		// demo mode keeps the optimistic "indexed" status
		s.log.Debug(ctx, "upload webhook not configured, recording document locally", "name", name)
	case errors.Is(err, client.ErrUnavailable):
		s.log.Warn(ctx, "upload webhook unreachable", "name", name, "error", err)
		doc.Status = models.DocumentStatusError
	default:
		return nil, err
	}

	docs, err := s.docs.Load(ctx, ident.ID)
	if err != nil {
		return nil, err
	}
	docs = append(docs, doc)
	if err := s.docs.Save(ctx, ident.ID, docs); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Remove deletes one entry from the user's document list. The indexed
// content on the workflow side is out of reach from here.
func (s *documentService) Remove(ctx context.Context, userID, docID string) error {
	docs, err := s.docs.Load(ctx, userID)
	if err != nil {
		return err
	}

	kept := docs[:0]
	found := false
	for _, d := range docs {
		if d.ID == docID {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return common.ErrNotFound
	}
	return s.docs.Save(ctx, userID, kept)
}
